package action

import (
	"encoding/json"
	"testing"

	"github.com/NikitaCOEUR/scriptcomplete/internal/buffer"
	"github.com/NikitaCOEUR/scriptcomplete/internal/snippet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlign(t *testing.T) {
	assert.Equal(t, "LEFT", AlignLeft.String())
	assert.Equal(t, "CENTER", AlignCenter.String())

	data, err := json.Marshal(map[string]Align{"align": AlignCenter})
	require.NoError(t, err)
	assert.JSONEq(t, `{"align":"CENTER"}`, string(data))
}

func TestWordExtend(t *testing.T) {
	doc := buffer.NewLine("    bl_id")
	a := &WordExtend{Target: "bl_idname"}

	assert.Equal(t, "bl_idname", a.DisplayName())
	assert.Equal(t, AlignLeft, a.Align())
	require.NoError(t, a.Execute(doc))
	assert.Equal(t, "    bl_idname", doc.Text())
	assert.Equal(t, 13, doc.Caret())
}

func TestWordExtend_KeepsTextAfterCaret(t *testing.T) {
	doc := buffer.NewDocument("regi()", 0, 4)
	require.NoError(t, (&WordExtend{Target: "register"}).Execute(doc))
	assert.Equal(t, "register()", doc.Text())
}

func TestTextInsert(t *testing.T) {
	doc := buffer.NewLine("    ")
	a := &TextInsert{Name: "Finished", Text: `return {"FINISHED"}`}

	assert.Equal(t, AlignCenter, a.Align())
	require.NoError(t, a.Execute(doc))
	assert.Equal(t, `    return {"FINISHED"}`, doc.Text())
}

func TestDynamicSnippet_Execute(t *testing.T) {
	rule := snippet.NewClassRule(snippet.DefaultNamespace())
	a := &DynamicSnippet{Rule: rule, Candidate: "New Panel 'MyPanel'"}
	doc := buffer.NewLine("=p|MyPanel")

	assert.Equal(t, AlignCenter, a.Align())
	assert.True(t, a.Applicable(doc))
	require.NoError(t, a.Execute(doc))
	assert.Equal(t, "class MyPanel(bpy.types.Panel)", doc.Text())
}

func TestDynamicSnippet_StaleMatchIsNoOp(t *testing.T) {
	rule := snippet.NewClassRule(snippet.DefaultNamespace())

	tests := []struct {
		name string
		line string
	}{
		{name: "trigger removed", line: "class Foo"},
		{name: "identifier edited", line: "=p|Other"},
		{name: "kind edited", line: "=o|MyPanel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &DynamicSnippet{Rule: rule, Candidate: "New Panel 'MyPanel'"}
			doc := buffer.NewLine(tt.line)

			assert.False(t, a.Applicable(doc))
			require.NoError(t, a.Execute(doc))
			assert.Equal(t, tt.line, doc.Text())
		})
	}
}
