package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/NikitaCOEUR/scriptcomplete/internal/config"
	"github.com/NikitaCOEUR/scriptcomplete/internal/derrors"
)

// Init creates a sample .scriptcomplete.yml in dir, or the global config
func Init(global bool, dir string, out io.Writer) error {
	out = outputOrStdout(out)
	var configPath string

	if global {
		globalPath, err := config.GetGlobalConfigPath()
		if err != nil {
			return derrors.NewConfigurationError("", "failed to get global config path", err)
		}
		configPath = globalPath

		if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
			return derrors.NewConfigurationError(configPath, "failed to create config directory", err)
		}
	} else {
		if dir == "" {
			currentDir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get current directory: %w", err)
			}
			dir = currentDir
		}
		configPath = filepath.Join(dir, config.SupportedConfigNames[0])
	}

	if _, err := os.Stat(configPath); err == nil {
		return derrors.NewAlreadyExistsError(configPath, fmt.Sprintf("config file already exists: %s", configPath))
	}

	if err := os.WriteFile(configPath, []byte(config.SampleConfig), 0644); err != nil {
		return derrors.NewConfigurationError(configPath, "failed to create config file", err)
	}

	if global {
		_, _ = fmt.Fprintf(out, "Created global config: %s\n", configPath)
	} else {
		_, _ = fmt.Fprintf(out, "Created sample config: %s\n", configPath)
	}
	_, _ = fmt.Fprintln(out, "\nNext steps:")
	_, _ = fmt.Fprintln(out, "  1. Edit the config file to suit your needs")
	_, _ = fmt.Fprintln(out, "  2. Run 'scriptcomplete validate' to check it")
	_, _ = fmt.Fprintln(out, "  3. Run 'scriptcomplete candidates --line \"=p|Panel\"' to try it")

	return nil
}
