package snippet

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/NikitaCOEUR/scriptcomplete/internal/buffer"
	"github.com/NikitaCOEUR/scriptcomplete/internal/derrors"
	"github.com/NikitaCOEUR/scriptcomplete/internal/trigger"
)

const (
	// KeymapSetupCandidate is the single candidate of the keymap setup rule
	KeymapSetupCandidate = "Setup Keymap Registration"

	// keymapContext is the keymap created by the registration boilerplate
	keymapContext = "3D View"

	menuNamePrefix = "kmi.properties.name = "
)

var (
	keymapSetupExpression = regexp.MustCompile(`=keymaps`)
	keymapSetupTemplate   = newTemplate("keymap-setup", `addon_keymaps = []
def register_keymaps():
    global addon_keymaps
    wm = {{ .Root }}.context.window_manager
    {{ .Keymap }} = wm.keyconfigs.addon.keymaps.new(name = "{{ .Context }}", space_type = "{{ .Space }}")

    addon_keymaps.append({{ .Keymap }})

def unregister_keymaps():
    global addon_keymaps
    wm = {{ .Root }}.context.window_manager
    for {{ .Keymap }} in addon_keymaps:
        wm.keyconfigs.addon.keymaps.remove({{ .Keymap }})
    addon_keymaps.clear()
`)
)

// KeymapSetupRule expands `=keymaps` into keymap register/unregister routines
type KeymapSetupRule struct {
	ns Namespace
}

// NewKeymapSetupRule creates the keymap registration rule
func NewKeymapSetupRule(ns Namespace) *KeymapSetupRule {
	return &KeymapSetupRule{ns: ns.withDefaults()}
}

// Name implements Rule
func (r *KeymapSetupRule) Name() string { return "keymap-setup" }

// Expression implements Rule
func (r *KeymapSetupRule) Expression() *regexp.Regexp { return keymapSetupExpression }

// Candidates implements Rule
func (r *KeymapSetupRule) Candidates(_ trigger.Match) []string {
	return []string{KeymapSetupCandidate}
}

// Apply implements Rule
func (r *KeymapSetupRule) Apply(buf buffer.Buffer, m trigger.Match, _ string) error {
	text, err := render(keymapSetupTemplate, map[string]string{
		"Root":    r.ns.Root(),
		"Keymap":  r.ns.Keymap,
		"Context": keymapContext,
		"Space":   "VIEW_3D",
	})
	if err != nil {
		return fmt.Errorf("failed to render keymap registration: %w", err)
	}

	buf.SelectSpan(m.Start, m.End)
	buf.DeleteSelection()
	buf.InsertText(text)
	return nil
}

// Variant selects what a keymap item invokes
type Variant int

const (
	VariantOperator Variant = iota
	VariantMenu
	VariantPieMenu
)

// variantNames keeps candidate order
var variantNames = []string{
	VariantOperator: "Key for Operator",
	VariantMenu:     "Key for Menu",
	VariantPieMenu:  "Key for Pie Menu",
}

// DefaultOperator returns the operator identifier a new keymap item calls
func (v Variant) DefaultOperator() (string, bool) {
	switch v {
	case VariantOperator:
		return "transform.translate", true
	case VariantMenu:
		return "wm.call_menu", true
	case VariantPieMenu:
		return "wm.call_menu_pie", true
	}
	return "", false
}

// String returns the candidate name of the variant
func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantNames) {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	return variantNames[v]
}

// VariantFor maps a candidate name back to its variant
func VariantFor(candidate string) (Variant, bool) {
	for i, name := range variantNames {
		if name == candidate {
			return Variant(i), true
		}
	}
	return 0, false
}

var (
	keymapBindingExpression = regexp.MustCompile(`=key\|(\w+)((?i:\|(?:shift|ctrl|strg|alt))*)`)
	keymapBindingTemplate   = newTemplate("keymap-binding",
		`kmi = {{ .Keymap }}.keymap_items.new("{{ .Operator }}", type = "{{ .Key | upper }}", value = "PRESS"{{ range .Modifiers }}, {{ . }} = True{{ end }})`)
)

// Modifiers returns the modifier arguments present in a tag list such as
// "|shift|strg", always ordered ctrl, shift, alt
func Modifiers(tags string) []string {
	var ctrl, shift, alt bool
	for _, tag := range strings.Split(strings.ToLower(tags), "|") {
		switch tag {
		case "ctrl", "strg":
			ctrl = true
		case "shift":
			shift = true
		case "alt":
			alt = true
		}
	}

	mods := make([]string, 0, 3)
	if ctrl {
		mods = append(mods, "ctrl")
	}
	if shift {
		mods = append(mods, "shift")
	}
	if alt {
		mods = append(mods, "alt")
	}
	return mods
}

// KeymapBindingRule expands `=key|a|shift|ctrl` into a keymap item
type KeymapBindingRule struct {
	ns Namespace
}

// NewKeymapBindingRule creates the keymap item rule
func NewKeymapBindingRule(ns Namespace) *KeymapBindingRule {
	return &KeymapBindingRule{ns: ns.withDefaults()}
}

// Name implements Rule
func (r *KeymapBindingRule) Name() string { return "keymap-binding" }

// Expression implements Rule
func (r *KeymapBindingRule) Expression() *regexp.Regexp { return keymapBindingExpression }

// Candidates implements Rule. All variants are offered whatever the match.
func (r *KeymapBindingRule) Candidates(_ trigger.Match) []string {
	out := make([]string, len(variantNames))
	copy(out, variantNames)
	return out
}

// Apply implements Rule
func (r *KeymapBindingRule) Apply(buf buffer.Buffer, m trigger.Match, candidate string) error {
	variant, ok := VariantFor(candidate)
	if !ok {
		return derrors.NewContractError(r.Name(), candidate, "unknown variant")
	}
	operator, ok := variant.DefaultOperator()
	if !ok {
		return derrors.NewContractError(r.Name(), variant.String(), "no default operator")
	}

	text, err := render(keymapBindingTemplate, map[string]any{
		"Keymap":    r.ns.Keymap,
		"Operator":  operator,
		"Key":       m.Group(1),
		"Modifiers": Modifiers(m.Group(2)),
	})
	if err != nil {
		return fmt.Errorf("failed to render keymap item: %w", err)
	}

	indent := leadingIndent(buf.CurrentLine())
	replaceMatch(buf, m, text)

	if variant == VariantOperator {
		buf.SelectSubstring(operator)
		return nil
	}
	buf.InsertLineBreak()
	buf.InsertText(indent + menuNamePrefix)
	return nil
}
