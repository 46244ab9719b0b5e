// Package buffer defines the text buffer contract the snippet engine edits
// through, plus an in-memory document that satisfies it.
package buffer

// Buffer is the host editor surface. Offsets are byte offsets into the
// current line.
type Buffer interface {
	// CurrentLine returns the text of the line holding the caret
	CurrentLine() string
	// Caret returns the caret offset within the current line
	Caret() int
	// SelectSpan selects [start, end) of the current line and moves the caret to end
	SelectSpan(start, end int)
	// DeleteSelection removes the selected text, leaving the caret at its start
	DeleteSelection()
	// InsertText replaces the selection (if any) with text and moves the caret
	// past it. Text may span several lines.
	InsertText(text string)
	// InsertLineBreak splits the current line at the caret
	InsertLineBreak()
	// SelectSubstring selects the first occurrence of text in the current line
	SelectSubstring(text string) bool
}

// WordBounds returns the span of the identifier word that ends at caret.
// start == end when the caret does not follow a word character.
func WordBounds(line string, caret int) (start, end int) {
	caret = clamp(caret, 0, len(line))
	start = caret
	for start > 0 && isWordByte(line[start-1]) {
		start--
	}
	return start, caret
}

// CurrentWord returns the word under the caret of b
func CurrentWord(b Buffer) string {
	line := b.CurrentLine()
	start, end := WordBounds(line, b.Caret())
	return line[start:end]
}

func isWordByte(c byte) bool {
	return c == '_' ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z') ||
		('0' <= c && c <= '9')
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
