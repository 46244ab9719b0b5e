// Package action unifies word completions, text insertions and dynamic
// snippet expansions behind one Action interface.
package action

import (
	"slices"

	"github.com/NikitaCOEUR/scriptcomplete/internal/buffer"
	"github.com/NikitaCOEUR/scriptcomplete/internal/snippet"
	"github.com/NikitaCOEUR/scriptcomplete/internal/trigger"
)

// Align is the alignment hint the picker uses for a display name
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// String returns LEFT or CENTER
func (a Align) String() string {
	if a == AlignCenter {
		return "CENTER"
	}
	return "LEFT"
}

// MarshalText implements encoding.TextMarshaler
func (a Align) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// Action is one entry of the candidate list
type Action interface {
	DisplayName() string
	Align() Align
	Execute(buf buffer.Buffer) error
}

// WordExtend replaces the word under the caret with Target
type WordExtend struct {
	Target string
}

// DisplayName implements Action
func (w *WordExtend) DisplayName() string { return w.Target }

// Align implements Action
func (w *WordExtend) Align() Align { return AlignLeft }

// Execute implements Action
func (w *WordExtend) Execute(buf buffer.Buffer) error {
	start, end := buffer.WordBounds(buf.CurrentLine(), buf.Caret())
	buf.SelectSpan(start, end)
	buf.InsertText(w.Target)
	return nil
}

// TextInsert inserts a fixed block of text at the caret
type TextInsert struct {
	Name string
	Text string
}

// DisplayName implements Action
func (t *TextInsert) DisplayName() string { return t.Name }

// Align implements Action
func (t *TextInsert) Align() Align { return AlignCenter }

// Execute implements Action
func (t *TextInsert) Execute(buf buffer.Buffer) error {
	buf.InsertText(t.Text)
	return nil
}

// DynamicSnippet applies one candidate of a trigger rule. The match is
// resolved again at execution time, never carried over from listing.
type DynamicSnippet struct {
	Rule      snippet.Rule
	Candidate string
}

// DisplayName implements Action
func (d *DynamicSnippet) DisplayName() string { return d.Candidate }

// Align implements Action
func (d *DynamicSnippet) Align() Align { return AlignCenter }

// resolve re-matches the rule against the current line and checks the
// candidate is still on offer
func (d *DynamicSnippet) resolve(buf buffer.Buffer) (trigger.Match, bool) {
	m, ok := trigger.Find(d.Rule.Expression(), buf.CurrentLine(), buf.Caret())
	if !ok {
		return trigger.Match{}, false
	}
	if !slices.Contains(d.Rule.Candidates(m), d.Candidate) {
		return trigger.Match{}, false
	}
	return m, true
}

// Applicable reports whether the trigger still matches the buffer
func (d *DynamicSnippet) Applicable(buf buffer.Buffer) bool {
	_, ok := d.resolve(buf)
	return ok
}

// Execute implements Action. A trigger that no longer matches is a no-op.
func (d *DynamicSnippet) Execute(buf buffer.Buffer) error {
	m, ok := d.resolve(buf)
	if !ok {
		return nil
	}
	return d.Rule.Apply(buf, m, d.Candidate)
}
