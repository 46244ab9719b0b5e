package cli

import (
	"fmt"
	"io"

	"github.com/NikitaCOEUR/scriptcomplete/internal/action"
	"github.com/NikitaCOEUR/scriptcomplete/internal/buffer"
	"github.com/NikitaCOEUR/scriptcomplete/internal/derrors"
)

// ExpandParams contains parameters for the expand command
type ExpandParams struct {
	ConfigPath string
	LogLevel   string
	Input      InputParams
	Filter     string
	// Pick is the display name of the candidate to run
	Pick string
	// Index is the 1-based position of the candidate to run, 0 for none
	Index     int
	JSON      bool
	Out       io.Writer
	LogOutput io.Writer
}

// ExpandResult is the JSON form of an expansion
type ExpandResult struct {
	Applied   bool         `json:"applied"`
	Candidate string       `json:"candidate,omitempty"`
	Text      string       `json:"text"`
	Row       int          `json:"row"`
	Caret     int          `json:"caret"`
	Selection *buffer.Span `json:"selection,omitempty"`
}

// Expand runs one candidate against the input and prints the resulting text.
// Without a pick the selection counts as cancelled and the text is printed
// unchanged.
func Expand(params ExpandParams) error {
	if params.Pick != "" && params.Index != 0 {
		return derrors.NewInputError("flags", "use either --pick or --index, not both", nil)
	}

	comp, err := initializeComponents(params.ConfigPath, params.LogLevel, params.LogOutput)
	if err != nil {
		return err
	}

	in, err := readInput(params.Input)
	if err != nil {
		return err
	}

	actions := action.Filter(comp.catalog.Build(in.doc), params.Filter)

	index, err := pickIndex(actions, params.Pick, params.Index)
	if err != nil {
		return err
	}

	candidate := ""
	if index >= 0 && index < len(actions) {
		candidate = actions[index].DisplayName()
	}

	applied, err := comp.catalog.Execute(in.doc, actions, index)
	if err != nil {
		return err
	}
	comp.log.Debug().
		Str("candidate", candidate).
		Bool("applied", applied).
		Msg("Expansion finished")

	out := outputOrStdout(params.Out)
	if params.JSON {
		result := ExpandResult{
			Applied: applied,
			Text:    in.text(),
			Row:     in.doc.Row(),
			Caret:   in.doc.Caret(),
		}
		if applied {
			result.Candidate = candidate
		}
		if span, ok := in.doc.Selection(); ok {
			result.Selection = &span
		}
		return writeJSON(out, result)
	}

	_, err = fmt.Fprint(out, in.text())
	return err
}

// pickIndex resolves the requested candidate to a zero based index, -1 when
// nothing was picked
func pickIndex(actions []action.Action, pick string, index int) (int, error) {
	switch {
	case pick != "":
		i := action.Index(actions, pick)
		if i < 0 {
			return -1, derrors.NewNotFoundError(pick, fmt.Sprintf("no candidate named %q", pick))
		}
		return i, nil
	case index < 0 || index > len(actions):
		return -1, derrors.NewNotFoundError(fmt.Sprintf("#%d", index), fmt.Sprintf("candidate index %d out of range (1-%d)", index, len(actions)))
	default:
		return index - 1, nil
	}
}
