// Package snippet provides the trigger rules that turn shorthand expressions
// into generated addon code, and the registry that tries them in order.
package snippet

import (
	"regexp"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/NikitaCOEUR/scriptcomplete/internal/buffer"
	"github.com/NikitaCOEUR/scriptcomplete/internal/trigger"
)

// Rule is a single trigger rule. Rules hold no state between calls.
type Rule interface {
	// Name identifies the rule in logs and listings
	Name() string

	// Expression is the trigger pattern matched against the current line
	Expression() *regexp.Regexp

	// Candidates returns the display names offered for a match, in order
	Candidates(m trigger.Match) []string

	// Apply renders the expansion for candidate and writes it into buf.
	// Returns a *derrors.ContractError for inputs the expression should
	// have rejected; buf is left untouched in that case.
	Apply(buf buffer.Buffer, m trigger.Match, candidate string) error
}

// Namespace holds the qualified prefixes used in generated code
type Namespace struct {
	Types  string // base classes and owner types
	Props  string // property constructors
	Keymap string // keymap variable for keymap items
}

// DefaultNamespace returns the Blender addon namespace
func DefaultNamespace() Namespace {
	return Namespace{
		Types:  "bpy.types",
		Props:  "bpy.props",
		Keymap: "km",
	}
}

// Root returns the top level module of the types namespace
func (n Namespace) Root() string {
	root, _, _ := strings.Cut(n.Types, ".")
	return root
}

// withDefaults fills empty parts from DefaultNamespace
func (n Namespace) withDefaults() Namespace {
	def := DefaultNamespace()
	if n.Types == "" {
		n.Types = def.Types
	}
	if n.Props == "" {
		n.Props = def.Props
	}
	if n.Keymap == "" {
		n.Keymap = def.Keymap
	}
	return n
}

func newTemplate(name, text string) *template.Template {
	return template.Must(template.New(name).Funcs(sprig.TxtFuncMap()).Parse(text))
}

func render(tmpl *template.Template, data any) (string, error) {
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

// replaceMatch swaps the matched span for text
func replaceMatch(buf buffer.Buffer, m trigger.Match, text string) {
	buf.SelectSpan(m.Start, m.End)
	buf.InsertText(text)
}

// leadingIndent returns the whitespace prefix of line
func leadingIndent(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}
