package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocument_ClampsCaret(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		row     int
		col     int
		wantRow int
		wantCol int
	}{
		{name: "inside", text: "abc\ndef", row: 1, col: 2, wantRow: 1, wantCol: 2},
		{name: "row past end", text: "abc\ndef", row: 9, col: 1, wantRow: 1, wantCol: 1},
		{name: "col past end", text: "abc", row: 0, col: 10, wantRow: 0, wantCol: 3},
		{name: "negative", text: "abc", row: -1, col: -4, wantRow: 0, wantCol: 0},
		{name: "empty text", text: "", row: 0, col: 3, wantRow: 0, wantCol: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDocument(tt.text, tt.row, tt.col)
			assert.Equal(t, tt.wantRow, d.Row())
			assert.Equal(t, tt.wantCol, d.Caret())
			assert.Equal(t, tt.text, d.Text())
		})
	}
}

func TestDocument_SelectAndInsertReplacesSelection(t *testing.T) {
	d := NewLine("x = =p|Foo")

	d.SelectSpan(4, 10)
	assert.Equal(t, "=p|Foo", d.SelectedText())
	assert.Equal(t, 10, d.Caret())

	d.InsertText("class Foo")
	assert.Equal(t, "x = class Foo", d.CurrentLine())
	assert.Equal(t, 13, d.Caret())
	_, ok := d.Selection()
	assert.False(t, ok)
}

func TestDocument_DeleteSelection(t *testing.T) {
	d := NewLine("abc=keymaps")
	d.DeleteSelection()
	assert.Equal(t, "abc=keymaps", d.CurrentLine(), "no selection is a no-op")

	d.SelectSpan(3, 11)
	d.DeleteSelection()
	assert.Equal(t, "abc", d.CurrentLine())
	assert.Equal(t, 3, d.Caret())
}

func TestDocument_InsertMultiline(t *testing.T) {
	d := NewDocument("before\nAB\nafter", 1, 1)

	d.InsertText("1\n2\n3")

	assert.Equal(t, "before\nA1\n2\n3B\nafter", d.Text())
	assert.Equal(t, 3, d.Row())
	assert.Equal(t, 1, d.Caret())
	assert.Equal(t, "3B", d.CurrentLine())
}

func TestDocument_InsertTrailingNewline(t *testing.T) {
	d := NewLine("x")
	d.InsertText("a\n")

	assert.Equal(t, "xa\n", d.Text())
	assert.Equal(t, 1, d.Row())
	assert.Equal(t, "", d.CurrentLine())
	assert.Equal(t, 0, d.Caret())
}

func TestDocument_InsertLineBreak(t *testing.T) {
	d := NewDocument("headtail", 0, 4)
	d.InsertLineBreak()
	d.InsertText("mid ")

	assert.Equal(t, []string{"head", "mid tail"}, d.Lines())
	assert.Equal(t, 4, d.Caret())
}

func TestDocument_SelectSubstring(t *testing.T) {
	d := NewLine(`new("transform.translate", x = "transform.translate")`)

	require.True(t, d.SelectSubstring("transform.translate"))
	span, ok := d.Selection()
	require.True(t, ok)
	assert.Equal(t, Span{Start: 5, End: 24}, span)

	assert.False(t, d.SelectSubstring("missing"))
	assert.False(t, d.SelectSubstring(""))
}

func TestDocument_SelectSpanClamps(t *testing.T) {
	d := NewLine("abc")
	d.SelectSpan(2, 99)
	span, _ := d.Selection()
	assert.Equal(t, Span{Start: 2, End: 3}, span)

	d.SelectSpan(3, 1)
	span, _ = d.Selection()
	assert.Equal(t, Span{Start: 3, End: 3}, span)
}

func TestWordBounds(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		caret     int
		wantStart int
		wantEnd   int
	}{
		{name: "word at end", line: "x = bl_id", caret: 9, wantStart: 4, wantEnd: 9},
		{name: "caret mid word", line: "register", caret: 3, wantStart: 0, wantEnd: 3},
		{name: "after space", line: "def ", caret: 4, wantStart: 4, wantEnd: 4},
		{name: "after punctuation", line: "f(", caret: 2, wantStart: 2, wantEnd: 2},
		{name: "caret past end", line: "abc", caret: 7, wantStart: 0, wantEnd: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := WordBounds(tt.line, tt.caret)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestCurrentWord(t *testing.T) {
	assert.Equal(t, "exe", CurrentWord(NewLine("    def exe")))
	assert.Equal(t, "", CurrentWord(NewLine("")))
}
