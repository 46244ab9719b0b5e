// Package view renders candidate lists and rule listings for the terminal.
package view

import (
	"fmt"
	"strings"

	"github.com/NikitaCOEUR/scriptcomplete/internal/action"
	"github.com/NikitaCOEUR/scriptcomplete/internal/snippet"
	"github.com/charmbracelet/lipgloss"
)

// DefaultWidth is the picker width used when the caller gives none
const DefaultWidth = 40

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	indexStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	wordStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15"))

	snippetStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14"))

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// position maps an alignment hint to a lipgloss position
func position(a action.Align) lipgloss.Position {
	if a == action.AlignCenter {
		return lipgloss.Center
	}
	return lipgloss.Left
}

// RenderCandidates renders the numbered picker list. Each name is laid out
// in a column of width cells following its alignment hint.
func RenderCandidates(actions []action.Action, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	if len(actions) == 0 {
		return subtleStyle.Render("No candidates")
	}

	var b strings.Builder
	for i, a := range actions {
		style := wordStyle
		if _, ok := a.(*action.DynamicSnippet); ok {
			style = snippetStyle
		}
		name := style.Width(width).Align(position(a.Align())).Render(a.DisplayName())

		b.WriteString(indexStyle.Render(fmt.Sprintf("%2d.", i+1)))
		b.WriteString(" ")
		b.WriteString(strings.TrimRight(name, " "))
		if i < len(actions)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// RenderPlain renders one "name<TAB>ALIGN" line per action for scripts
func RenderPlain(actions []action.Action) string {
	var b strings.Builder
	for _, a := range actions {
		fmt.Fprintf(&b, "%s\t%s\n", a.DisplayName(), a.Align())
	}
	return b.String()
}

// RenderRules lists rules in the order the registry tries them
func RenderRules(rules []snippet.Rule) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Trigger rules (first match wins):"))
	for i, r := range rules {
		b.WriteString("\n")
		fmt.Fprintf(&b, "   %d. %s %s",
			i+1,
			wordStyle.Render(r.Name()),
			subtleStyle.Render(r.Expression().String()))
	}
	return b.String()
}
