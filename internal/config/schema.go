package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var schemaJSON string

var errUnsupportedFormat = errors.New("unsupported file format")

// GetSchemaJSON returns the JSON Schema for scriptcomplete configuration
func GetSchemaJSON() string {
	return schemaJSON
}

// decodeDocument turns config file content into a JSON-compatible tree
func decodeDocument(path string, content []byte) (interface{}, error) {
	var data interface{}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, fmt.Errorf("invalid YAML syntax: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(content, &data); err != nil {
			return nil, fmt.Errorf("invalid JSON syntax: %w", err)
		}
	case ".toml":
		m, err := toml.Parser().Unmarshal(content)
		if err != nil {
			return nil, fmt.Errorf("invalid TOML syntax: %w", err)
		}
		data = m
	default:
		return nil, fmt.Errorf("%w: %q", errUnsupportedFormat, filepath.Ext(path))
	}

	// An empty document is an empty config
	if data == nil {
		data = map[string]interface{}{}
	}
	return data, nil
}

// ValidateWithSchema validates config content against the JSON Schema
func ValidateWithSchema(path string, content []byte) (*ValidationResult, error) {
	result := &ValidationResult{
		Valid:  true,
		Errors: []ValidationError{},
	}

	data, err := decodeDocument(path, content)
	if err != nil {
		if errors.Is(err, errUnsupportedFormat) {
			return nil, err
		}
		result.Valid = false
		result.Errors = append(result.Errors, ValidationError{
			Field:   "syntax",
			Message: err.Error(),
		})
		return result, nil
	}

	schemaLoader := gojsonschema.NewStringLoader(GetSchemaJSON())
	documentLoader := gojsonschema.NewGoLoader(data)

	validationResult, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("schema validation error: %w", err)
	}

	if !validationResult.Valid() {
		result.Valid = false
		for _, verr := range validationResult.Errors() {
			result.Errors = append(result.Errors, ValidationError{
				Field:   verr.Field(),
				Message: verr.Description(),
			})
		}
	}

	return result, nil
}
