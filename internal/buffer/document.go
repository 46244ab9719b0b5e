package buffer

import "strings"

// Span is a selected range on one line
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Document is an in-memory multi-line Buffer
type Document struct {
	lines     []string
	row       int
	col       int
	selection *Span
}

// NewDocument creates a document from text with the caret at (row, col).
// Both are zero based and clamped to the text.
func NewDocument(text string, row, col int) *Document {
	d := &Document{lines: strings.Split(text, "\n")}
	d.row = clamp(row, 0, len(d.lines)-1)
	d.col = clamp(col, 0, len(d.lines[d.row]))
	return d
}

// NewLine creates a single-line document with the caret at the end
func NewLine(line string) *Document {
	return NewDocument(line, 0, len(line))
}

// Text returns the full document text
func (d *Document) Text() string {
	return strings.Join(d.lines, "\n")
}

// Lines returns a copy of the document lines
func (d *Document) Lines() []string {
	out := make([]string, len(d.lines))
	copy(out, d.lines)
	return out
}

// Row returns the zero based caret row
func (d *Document) Row() int {
	return d.row
}

// Selection returns the active selection, if any
func (d *Document) Selection() (Span, bool) {
	if d.selection == nil {
		return Span{}, false
	}
	return *d.selection, true
}

// SelectedText returns the text covered by the selection
func (d *Document) SelectedText() string {
	if d.selection == nil {
		return ""
	}
	return d.lines[d.row][d.selection.Start:d.selection.End]
}

// CurrentLine implements Buffer
func (d *Document) CurrentLine() string {
	return d.lines[d.row]
}

// Caret implements Buffer
func (d *Document) Caret() int {
	return d.col
}

// SelectSpan implements Buffer
func (d *Document) SelectSpan(start, end int) {
	line := d.lines[d.row]
	start = clamp(start, 0, len(line))
	end = clamp(end, start, len(line))
	d.selection = &Span{Start: start, End: end}
	d.col = end
}

// DeleteSelection implements Buffer
func (d *Document) DeleteSelection() {
	if d.selection == nil {
		return
	}
	line := d.lines[d.row]
	d.lines[d.row] = line[:d.selection.Start] + line[d.selection.End:]
	d.col = d.selection.Start
	d.selection = nil
}

// InsertText implements Buffer
func (d *Document) InsertText(text string) {
	d.DeleteSelection()

	line := d.lines[d.row]
	head, tail := line[:d.col], line[d.col:]
	parts := strings.Split(text, "\n")

	if len(parts) == 1 {
		d.lines[d.row] = head + text + tail
		d.col += len(text)
		return
	}

	inserted := make([]string, len(parts))
	copy(inserted, parts)
	inserted[0] = head + inserted[0]
	last := len(inserted) - 1
	d.col = len(inserted[last])
	inserted[last] += tail

	lines := make([]string, 0, len(d.lines)+last)
	lines = append(lines, d.lines[:d.row]...)
	lines = append(lines, inserted...)
	lines = append(lines, d.lines[d.row+1:]...)
	d.lines = lines
	d.row += last
}

// InsertLineBreak implements Buffer
func (d *Document) InsertLineBreak() {
	d.InsertText("\n")
}

// SelectSubstring implements Buffer
func (d *Document) SelectSubstring(text string) bool {
	idx := strings.Index(d.lines[d.row], text)
	if idx < 0 || text == "" {
		return false
	}
	d.SelectSpan(idx, idx+len(text))
	return true
}
