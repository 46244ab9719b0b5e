package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSchemaJSON(t *testing.T) {
	var schema map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(GetSchemaJSON()), &schema))
	assert.Equal(t, "object", schema["type"])

	props, ok := schema["properties"].(map[string]interface{})
	require.True(t, ok)
	for _, key := range []string{"namespace", "words", "inserts", "filter_inserts", "log_level"} {
		assert.Contains(t, props, key)
	}
}

func TestValidateWithSchema(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		content   string
		wantValid bool
		wantField string
	}{
		{
			name:      "valid yaml",
			path:      "c.yml",
			content:   "namespace:\n  types: bpy.types\nwords: [execute]\n",
			wantValid: true,
		},
		{
			name:      "empty yaml",
			path:      "c.yaml",
			content:   "",
			wantValid: true,
		},
		{
			name:      "valid toml",
			path:      "c.toml",
			content:   "filter_inserts = false\n",
			wantValid: true,
		},
		{
			name:      "unknown key",
			path:      "c.json",
			content:   `{"aliases": {}}`,
			wantValid: false,
		},
		{
			name:      "word is not an identifier",
			path:      "c.yml",
			content:   "words: [\"not a word\"]\n",
			wantValid: false,
			wantField: "words.0",
		},
		{
			name:      "insert without text",
			path:      "c.yml",
			content:   "inserts:\n  - name: Broken\n",
			wantValid: false,
		},
		{
			name:      "bad log level",
			path:      "c.json",
			content:   `{"log_level": "loud"}`,
			wantValid: false,
			wantField: "log_level",
		},
		{
			name:      "yaml syntax",
			path:      "c.yml",
			content:   "words: [unclosed",
			wantValid: false,
			wantField: "syntax",
		},
		{
			name:      "json syntax",
			path:      "c.json",
			content:   "{",
			wantValid: false,
			wantField: "syntax",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ValidateWithSchema(tt.path, []byte(tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.wantValid, result.Valid, "%+v", result.Errors)
			if tt.wantField != "" {
				require.NotEmpty(t, result.Errors)
				assert.Equal(t, tt.wantField, result.Errors[0].Field)
			}
		})
	}
}

func TestValidateWithSchema_UnsupportedFormat(t *testing.T) {
	_, err := ValidateWithSchema("config.ini", []byte("x=1"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file format")
}
