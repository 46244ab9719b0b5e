package cli

import (
	"fmt"
	"io"

	"github.com/NikitaCOEUR/scriptcomplete/internal/view"
)

// RulesParams contains parameters for the rules command
type RulesParams struct {
	ConfigPath string
	LogLevel   string
	Out        io.Writer
	LogOutput  io.Writer
}

// Rules lists the trigger rules in the order they are tried
func Rules(params RulesParams) error {
	comp, err := initializeComponents(params.ConfigPath, params.LogLevel, params.LogOutput)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(outputOrStdout(params.Out), view.RenderRules(comp.registry.Rules()))
	return err
}
