// Package config handles loading and parsing of scriptcomplete configuration files.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/NikitaCOEUR/scriptcomplete/internal/derrors"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

//go:embed defaults.yml
var defaultsYAML []byte

// SupportedConfigNames contains supported configuration file names (in order of preference)
var SupportedConfigNames = []string{
	".scriptcomplete.yml",
	".scriptcomplete.yaml",
	".scriptcomplete.toml",
	".scriptcomplete.json",
}

const (
	// GlobalConfigName is the name of the global config file
	GlobalConfigName = "config.yml"
)

// NamespaceConfig holds the prefixes used in generated code
type NamespaceConfig struct {
	Types  string `koanf:"types"`
	Props  string `koanf:"props"`
	Keymap string `koanf:"keymap"`
}

// InsertConfig is a named text block offered as a completion
type InsertConfig struct {
	Name string `koanf:"name"`
	Text string `koanf:"text"`
}

// Config represents a scriptcomplete configuration
type Config struct {
	Namespace     NamespaceConfig `koanf:"namespace"`
	Words         []string        `koanf:"words"`
	Inserts       []InsertConfig  `koanf:"inserts"`
	FilterInserts bool            `koanf:"filter_inserts"`
	LogLevel      string          `koanf:"log_level"`

	// Source is the file layered over the defaults, empty for defaults only
	Source string `koanf:"-"`
}

// parserFor returns the koanf parser for a config file extension
func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return yaml.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, fmt.Errorf("unsupported config format: %s", filepath.Ext(path))
	}
}

// Defaults returns the built-in configuration
func Defaults() (*Config, error) {
	return Load("")
}

// Load reads the built-in defaults and layers the file at path over them.
// An empty path loads the defaults only. Lists in the file replace the
// default lists rather than extending them.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(rawbytes.Provider(defaultsYAML), yaml.Parser()); err != nil {
		return nil, derrors.NewConfigurationError("defaults.yml", "failed to load built-in defaults", err)
	}

	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, derrors.NewConfigurationError(path, "failed to load config", err)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, derrors.NewConfigurationError(path, "failed to load config", err)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, derrors.NewConfigurationError(path, "failed to unmarshal config", err)
	}
	cfg.Source = path

	return cfg, nil
}

// FindLocalConfig returns the first supported config file in dir
func FindLocalConfig(dir string) (string, bool) {
	for _, name := range SupportedConfigNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

// GetGlobalConfigPath returns the path to the global config file
func GetGlobalConfigPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}

	return filepath.Join(configHome, "scriptcomplete", GlobalConfigName), nil
}

// Resolve picks the config file for dir: a local file first, then the
// global one. Returns "" when neither exists.
func Resolve(dir string) string {
	if path, ok := FindLocalConfig(dir); ok {
		return path
	}

	globalPath, err := GetGlobalConfigPath()
	if err != nil {
		return ""
	}
	if _, err := os.Stat(globalPath); err == nil {
		return globalPath
	}
	return ""
}

// SampleConfig is written by `scriptcomplete init`
const SampleConfig = `# scriptcomplete configuration
# Prefixes used in generated code
namespace:
  types: bpy.types
  props: bpy.props
  keymap: km

# Offer text inserts only when their name fuzzy matches the word under the caret
filter_inserts: true

# Word completions (replace the built-in list)
words:
  - bl_idname
  - bl_label
  - execute
  - invoke

# Text blocks inserted at the caret
inserts:
  - name: Operator Execute
    text: |-
      def execute(self, context):
          return {"FINISHED"}
`
