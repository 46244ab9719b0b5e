// Package trigger matches trigger expressions against the text of the line
// around the caret.
package trigger

import "regexp"

// Group is one capture group of a match. Present is false for optional
// groups that did not participate.
type Group struct {
	Value   string
	Present bool
}

// Match is the result of matching a trigger expression against a line
type Match struct {
	Text   string
	Start  int
	End    int
	Groups []Group
}

// Group returns the value of capture group i (1 based), or "" when the group
// is absent or out of range
func (m Match) Group(i int) string {
	if i < 1 || i > len(m.Groups) {
		return ""
	}
	return m.Groups[i-1].Value
}

// Has reports whether capture group i participated in the match
func (m Match) Has(i int) bool {
	if i < 1 || i > len(m.Groups) {
		return false
	}
	return m.Groups[i-1].Present
}

// Find returns the rightmost match of expr in line that ends at or before
// caret. Text after the caret never takes part in the match.
func Find(expr *regexp.Regexp, line string, caret int) (Match, bool) {
	if caret < 0 {
		caret = 0
	}
	if caret > len(line) {
		caret = len(line)
	}
	head := line[:caret]

	all := expr.FindAllStringSubmatchIndex(head, -1)
	if len(all) == 0 {
		return Match{}, false
	}
	loc := all[len(all)-1]

	m := Match{
		Text:   head[loc[0]:loc[1]],
		Start:  loc[0],
		End:    loc[1],
		Groups: make([]Group, 0, len(loc)/2-1),
	}
	for i := 2; i+1 < len(loc); i += 2 {
		if loc[i] < 0 {
			m.Groups = append(m.Groups, Group{})
			continue
		}
		m.Groups = append(m.Groups, Group{Value: head[loc[i]:loc[i+1]], Present: true})
	}
	return m, true
}
