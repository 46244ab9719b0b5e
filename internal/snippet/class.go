package snippet

import (
	"fmt"
	"regexp"

	"github.com/NikitaCOEUR/scriptcomplete/internal/buffer"
	"github.com/NikitaCOEUR/scriptcomplete/internal/derrors"
	"github.com/NikitaCOEUR/scriptcomplete/internal/trigger"
)

var (
	classExpression = regexp.MustCompile(`=(p|o|m)\|(\w+)`)
	classTemplate   = newTemplate("class", `class {{ .Name }}({{ .Types }}.{{ .Kind }})`)

	classKinds = map[string]string{
		"p": "Panel",
		"o": "Operator",
		"m": "Menu",
	}
)

// ClassRule expands `=p|Name`, `=o|Name` and `=m|Name` into a class header
type ClassRule struct {
	ns Namespace
}

// NewClassRule creates the class declaration rule
func NewClassRule(ns Namespace) *ClassRule {
	return &ClassRule{ns: ns.withDefaults()}
}

// Name implements Rule
func (r *ClassRule) Name() string { return "class-declaration" }

// Expression implements Rule
func (r *ClassRule) Expression() *regexp.Regexp { return classExpression }

// Candidates implements Rule
func (r *ClassRule) Candidates(m trigger.Match) []string {
	kind, ok := classKinds[m.Group(1)]
	if !ok {
		return nil
	}
	return []string{fmt.Sprintf("New %s '%s'", kind, m.Group(2))}
}

// Apply implements Rule
func (r *ClassRule) Apply(buf buffer.Buffer, m trigger.Match, _ string) error {
	kind, ok := classKinds[m.Group(1)]
	if !ok {
		return derrors.NewContractError(r.Name(), m.Group(1), "unknown kind code")
	}

	text, err := render(classTemplate, map[string]string{
		"Name":  m.Group(2),
		"Types": r.ns.Types,
		"Kind":  kind,
	})
	if err != nil {
		return fmt.Errorf("failed to render class declaration: %w", err)
	}

	replaceMatch(buf, m, text)
	return nil
}
