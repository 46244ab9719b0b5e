package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/NikitaCOEUR/scriptcomplete/internal/config"
)

// Validate validates a scriptcomplete configuration file
func Validate(configPath string, out io.Writer) error {
	out = outputOrStdout(out)

	if configPath == "" {
		currentDir, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}

		path, ok := config.FindLocalConfig(currentDir)
		if !ok {
			return fmt.Errorf("no config file found in current directory")
		}
		configPath = path
	}

	_, _ = fmt.Fprintf(out, "Validating: %s\n\n", configPath)

	content, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Schema first, semantic checks only on a structurally valid file
	result, err := config.ValidateWithSchema(configPath, content)
	if err != nil {
		return err
	}

	if result.Valid {
		customResult, err := config.Validate(configPath)
		if err != nil {
			return err
		}
		if !customResult.Valid {
			result.Valid = false
			result.Errors = append(result.Errors, customResult.Errors...)
		}
	}

	if result.Valid {
		_, _ = fmt.Fprintln(out, "✅ Configuration is valid!")
		return nil
	}

	_, _ = fmt.Fprintln(out, "❌ Configuration has errors:")
	for i, validationErr := range result.Errors {
		_, _ = fmt.Fprintf(out, "%d. [%s] %s\n", i+1, validationErr.Field, validationErr.Message)
	}

	_, _ = fmt.Fprintf(out, "\nFound %d error(s)\n", len(result.Errors))

	return fmt.Errorf("validation failed")
}
