package snippet

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/NikitaCOEUR/scriptcomplete/internal/buffer"
	"github.com/NikitaCOEUR/scriptcomplete/internal/trigger"
)

// PropertyKind is the property type inferred from a default literal
type PropertyKind int

const (
	// KindUndetermined means the literal has no recognised shape
	KindUndetermined PropertyKind = iota
	KindFloat
	KindInteger
	KindString
)

// PlaceholderCandidate is offered when no property kind can be inferred
const PlaceholderCandidate = "Property Definition ..."

var (
	propertyExpression = regexp.MustCompile(`=([A-Z]\w+)\|(\w+)\|(.*)`)
	propertyTemplate   = newTemplate("property",
		`{{ .Types }}.{{ .Owner }}.{{ .Name }} = {{ .Props }}.{{ .Constructor }}(name = "{{ .Name }}", default = {{ .Default }})`)

	// Tested in order, first match wins
	kindTests = []struct {
		expr *regexp.Regexp
		kind PropertyKind
	}{
		{regexp.MustCompile(`^[0-9]+\.[0-9]+$`), KindFloat},
		{regexp.MustCompile(`^[0-9]+$`), KindInteger},
		{regexp.MustCompile(`^(?:"[^"]*"|'[^']*')$`), KindString},
	}
)

// Label returns the human readable kind name
func (k PropertyKind) Label() string {
	switch k {
	case KindFloat:
		return "Float"
	case KindInteger:
		return "Integer"
	case KindString:
		return "String"
	default:
		return ""
	}
}

// Constructor returns the property constructor for the kind
func (k PropertyKind) Constructor() string {
	switch k {
	case KindFloat:
		return "FloatProperty"
	case KindInteger:
		return "IntProperty"
	case KindString:
		return "StringProperty"
	default:
		return ""
	}
}

// InferKind derives a property kind from the surface form of literal
func InferKind(literal string) PropertyKind {
	literal = strings.TrimSpace(literal)
	for _, test := range kindTests {
		if test.expr.MatchString(literal) {
			return test.kind
		}
	}
	return KindUndetermined
}

// PropertyRule expands `=Owner|name|default` into a property assignment
type PropertyRule struct {
	ns Namespace
}

// NewPropertyRule creates the property declaration rule
func NewPropertyRule(ns Namespace) *PropertyRule {
	return &PropertyRule{ns: ns.withDefaults()}
}

// Name implements Rule
func (r *PropertyRule) Name() string { return "property-declaration" }

// Expression implements Rule
func (r *PropertyRule) Expression() *regexp.Regexp { return propertyExpression }

// Candidates implements Rule
func (r *PropertyRule) Candidates(m trigger.Match) []string {
	kind := InferKind(m.Group(3))
	if kind == KindUndetermined {
		return []string{PlaceholderCandidate}
	}
	return []string{"New " + kind.Label() + " Property"}
}

// Apply implements Rule. An undetermined kind leaves the buffer unchanged.
func (r *PropertyRule) Apply(buf buffer.Buffer, m trigger.Match, _ string) error {
	kind := InferKind(m.Group(3))
	if kind == KindUndetermined {
		return nil
	}

	text, err := render(propertyTemplate, map[string]string{
		"Types":       r.ns.Types,
		"Props":       r.ns.Props,
		"Owner":       m.Group(1),
		"Name":        m.Group(2),
		"Constructor": kind.Constructor(),
		"Default":     strings.TrimSpace(m.Group(3)),
	})
	if err != nil {
		return fmt.Errorf("failed to render property definition: %w", err)
	}

	replaceMatch(buf, m, text)
	return nil
}
