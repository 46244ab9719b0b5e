package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/NikitaCOEUR/scriptcomplete/internal/action"
	"github.com/NikitaCOEUR/scriptcomplete/internal/view"
)

// Output formats for candidate listings
const (
	FormatPretty = "pretty"
	FormatPlain  = "plain"
	FormatJSON   = "json"
)

// CandidatesParams contains parameters for the candidates command
type CandidatesParams struct {
	ConfigPath string
	LogLevel   string
	Input      InputParams
	Filter     string
	Format     string
	Width      int
	Out        io.Writer
	LogOutput  io.Writer
}

// Candidate is one entry of a JSON candidate listing
type Candidate struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	Align string `json:"align"`
	Kind  string `json:"kind"`
	Rule  string `json:"rule,omitempty"`
}

// Candidates prints the picker entries for the caret position
func Candidates(params CandidatesParams) error {
	comp, err := initializeComponents(params.ConfigPath, params.LogLevel, params.LogOutput)
	if err != nil {
		return err
	}

	in, err := readInput(params.Input)
	if err != nil {
		return err
	}

	actions := action.Filter(comp.catalog.Build(in.doc), params.Filter)
	comp.log.Debug().
		Str("line", in.doc.CurrentLine()).
		Int("caret", in.doc.Caret()).
		Int("count", len(actions)).
		Msg("Built candidates")

	out := outputOrStdout(params.Out)
	switch params.Format {
	case "", FormatPretty:
		_, err = fmt.Fprintln(out, view.RenderCandidates(actions, params.Width))
	case FormatPlain:
		_, err = fmt.Fprint(out, view.RenderPlain(actions))
	case FormatJSON:
		err = writeJSON(out, toCandidates(actions))
	default:
		return fmt.Errorf("unknown output format %q (expected %s, %s or %s)", params.Format, FormatPretty, FormatPlain, FormatJSON)
	}
	return err
}

// toCandidates describes actions for JSON output
func toCandidates(actions []action.Action) []Candidate {
	out := make([]Candidate, 0, len(actions))
	for i, a := range actions {
		c := Candidate{
			Index: i + 1,
			Name:  a.DisplayName(),
			Align: a.Align().String(),
			Kind:  kindOf(a),
		}
		if d, ok := a.(*action.DynamicSnippet); ok {
			c.Rule = d.Rule.Name()
		}
		out = append(out, c)
	}
	return out
}

// writeJSON writes v as indented JSON
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}
