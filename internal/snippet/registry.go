package snippet

import (
	"github.com/NikitaCOEUR/scriptcomplete/internal/trigger"
)

// Registry tries its rules in a fixed priority order. Only the first rule
// whose expression matches offers candidates.
type Registry struct {
	rules  []Rule
	byName map[string]Rule
}

// NewRegistry creates the registry with the four built-in rules
func NewRegistry(ns Namespace) *Registry {
	return NewRegistryWith(
		NewClassRule(ns),         // =p|Name, =o|Name, =m|Name
		NewPropertyRule(ns),      // =Owner|name|default
		NewKeymapSetupRule(ns),   // =keymaps
		NewKeymapBindingRule(ns), // =key|a|shift
	)
}

// NewRegistryWith creates a registry over rules, tried in the given order
func NewRegistryWith(rules ...Rule) *Registry {
	byName := make(map[string]Rule, len(rules))
	for _, r := range rules {
		byName[r.Name()] = r
	}
	return &Registry{rules: rules, byName: byName}
}

// Rules returns the rules in priority order
func (r *Registry) Rules() []Rule {
	out := make([]Rule, len(r.rules))
	copy(out, r.rules)
	return out
}

// Lookup returns the rule registered under name
func (r *Registry) Lookup(name string) (Rule, bool) {
	rule, ok := r.byName[name]
	return rule, ok
}

// Match returns the first rule whose expression matches line before caret
func (r *Registry) Match(line string, caret int) (Rule, trigger.Match, bool) {
	for _, rule := range r.rules {
		if m, ok := trigger.Find(rule.Expression(), line, caret); ok {
			return rule, m, true
		}
	}
	return nil, trigger.Match{}, false
}

// Candidates returns the matching rule and its candidate names, or a nil
// rule when nothing matches
func (r *Registry) Candidates(line string, caret int) (Rule, []string) {
	rule, m, ok := r.Match(line, caret)
	if !ok {
		return nil, nil
	}
	return rule, rule.Candidates(m)
}
