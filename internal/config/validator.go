package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

var dottedIdentifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)*$`)

// ValidationError represents a validation error with details
type ValidationError struct {
	Field   string
	Message string
}

// ValidationResult contains the results of config validation
type ValidationResult struct {
	Valid  bool
	Errors []ValidationError
}

func (r *ValidationResult) add(field, format string, args ...interface{}) {
	r.Valid = false
	r.Errors = append(r.Errors, ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
}

// Validate loads a config file and checks what the schema cannot express
func Validate(path string) (*ValidationResult, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	result := &ValidationResult{
		Valid:  true,
		Errors: []ValidationError{},
	}

	cfg, err := Load(path)
	if err != nil {
		result.add("syntax", "Failed to parse config: %v", err)
		return result, nil
	}

	CheckConfig(cfg, result)
	return result, nil
}

// CheckConfig records semantic problems of an already loaded config
func CheckConfig(cfg *Config, result *ValidationResult) {
	namespace := map[string]string{
		"namespace/types":  cfg.Namespace.Types,
		"namespace/props":  cfg.Namespace.Props,
		"namespace/keymap": cfg.Namespace.Keymap,
	}
	for _, field := range []string{"namespace/types", "namespace/props", "namespace/keymap"} {
		value := namespace[field]
		if !dottedIdentifier.MatchString(value) {
			result.add(field, "Namespace %q must be a dotted identifier", value)
		}
	}
	if strings.Contains(cfg.Namespace.Keymap, ".") {
		result.add("namespace/keymap", "Keymap variable %q must be a plain identifier", cfg.Namespace.Keymap)
	}

	seenWords := make(map[string]bool, len(cfg.Words))
	for _, word := range cfg.Words {
		if seenWords[word] {
			result.add("words/"+word, "Word %q is listed more than once", word)
		}
		seenWords[word] = true
	}

	seenInserts := make(map[string]bool, len(cfg.Inserts))
	for i, ins := range cfg.Inserts {
		field := fmt.Sprintf("inserts/%d", i)
		if strings.TrimSpace(ins.Name) == "" {
			result.add(field, "Insert name is empty")
			continue
		}
		if strings.TrimSpace(ins.Text) == "" {
			result.add(field, "Insert %q has no text", ins.Name)
		}
		if seenInserts[ins.Name] {
			result.add(field, "Insert name %q is used more than once", ins.Name)
		}
		seenInserts[ins.Name] = true
	}
}
