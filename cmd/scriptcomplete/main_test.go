package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the app with args and returns what it printed
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp(&out, strings.NewReader(stdin))
	err := app.Run(context.Background(), append([]string{"scriptcomplete"}, args...))
	return out.String(), err
}

func testConfigPath(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".scriptcomplete.yml")
	require.NoError(t, os.WriteFile(path, []byte("words:\n  - execute\ninserts: []\nlog_level: error\n"), 0644))
	return path
}

func TestApp_Candidates(t *testing.T) {
	out, err := run(t, "", "--config", testConfigPath(t), "candidates", "--line", "=o|Run", "--format", "plain")
	require.NoError(t, err)
	assert.Equal(t, "New Operator 'Run'\tCENTER\n", out)
}

func TestApp_CandidatesJSON(t *testing.T) {
	out, err := run(t, "", "--config", testConfigPath(t), "candidates", "--line", "=keymaps", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "Setup Keymap Registration"`)
	assert.Contains(t, out, `"rule": "keymap-setup"`)
}

func TestApp_ExpandFromStdin(t *testing.T) {
	out, err := run(t, "import bpy\n=p|Tools\n",
		"--config", testConfigPath(t), "expand", "--file", "-", "--index", "1")
	require.NoError(t, err)
	assert.Equal(t, "import bpy\nclass Tools(bpy.types.Panel)\n", out)
}

func TestApp_ExpandProperty(t *testing.T) {
	out, err := run(t, "", "--config", testConfigPath(t),
		"expand", "--line", "=Scene|ratio|0.5", "--pick", "New Float Property")
	require.NoError(t, err)
	assert.Equal(t, "bpy.types.Scene.ratio = bpy.props.FloatProperty(name = \"ratio\", default = 0.5)", out)
}

func TestApp_Rules(t *testing.T) {
	out, err := run(t, "", "--config", testConfigPath(t), "rules")
	require.NoError(t, err)
	assert.Contains(t, out, "property-declaration")
}

func TestApp_Schema(t *testing.T) {
	outputFile := filepath.Join(t.TempDir(), "schema.json")
	_, err := run(t, "", "schema", outputFile)
	require.NoError(t, err)
	assert.FileExists(t, outputFile)
}

func TestApp_ExpandUnknownPick(t *testing.T) {
	_, err := run(t, "", "--config", testConfigPath(t), "expand", "--line", "=p|Tools", "--pick", "nope")
	require.Error(t, err)
}
