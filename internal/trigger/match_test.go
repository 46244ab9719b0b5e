package trigger

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var classExpr = regexp.MustCompile(`=(p|o|m)\|(\w+)`)

func TestFind(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		caret      int
		wantOK     bool
		wantText   string
		wantStart  int
		wantGroups []string
	}{
		{
			name:       "whole line",
			line:       "=p|MyPanel",
			caret:      10,
			wantOK:     true,
			wantText:   "=p|MyPanel",
			wantGroups: []string{"p", "MyPanel"},
		},
		{
			name:       "indented trigger",
			line:       "    =o|Run",
			caret:      10,
			wantOK:     true,
			wantText:   "=o|Run",
			wantStart:  4,
			wantGroups: []string{"o", "Run"},
		},
		{
			name:       "text after caret is ignored",
			line:       "=m|Main rest",
			caret:      5,
			wantOK:     true,
			wantText:   "=m|Ma",
			wantGroups: []string{"m", "Ma"},
		},
		{
			name:       "rightmost match wins",
			line:       "=p|First =o|Second",
			caret:      18,
			wantOK:     true,
			wantText:   "=o|Second",
			wantStart:  9,
			wantGroups: []string{"o", "Second"},
		},
		{
			name:   "caret before trigger",
			line:   "=p|MyPanel",
			caret:  2,
			wantOK: false,
		},
		{
			name:   "no trigger",
			line:   "class MyPanel(bpy.types.Panel)",
			caret:  30,
			wantOK: false,
		},
		{
			name:       "caret clamped",
			line:       "=p|X1",
			caret:      99,
			wantOK:     true,
			wantText:   "=p|X1",
			wantGroups: []string{"p", "X1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := Find(classExpr, tt.line, tt.caret)
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.wantText, m.Text)
			assert.Equal(t, tt.wantStart, m.Start)
			assert.Equal(t, tt.wantStart+len(tt.wantText), m.End)
			for i, g := range tt.wantGroups {
				assert.Equal(t, g, m.Group(i+1))
				assert.True(t, m.Has(i+1))
			}
		})
	}
}

func TestFind_OptionalGroups(t *testing.T) {
	expr := regexp.MustCompile(`=key\|(\w+)(\|(shift))?`)

	m, ok := Find(expr, "=key|a", 6)
	require.True(t, ok)
	assert.Equal(t, "a", m.Group(1))
	assert.False(t, m.Has(2))
	assert.False(t, m.Has(3))
	assert.Equal(t, "", m.Group(3))
	assert.Equal(t, "", m.Group(0))
	assert.Equal(t, "", m.Group(9))
}

func TestFind_Idempotent(t *testing.T) {
	line := "  x = =p|Thing"
	first, ok := Find(classExpr, line, len(line))
	require.True(t, ok)

	second, ok := Find(classExpr, line, len(line))
	require.True(t, ok)
	assert.Equal(t, first, second)
}
