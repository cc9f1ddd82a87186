package config

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/atinylittleshell/memsh/internal/core"
)

// Loader handles loading and parsing of config.yaml files.
type Loader struct {
	logger *zap.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		logger: logger,
	}
}

// LoadResult contains the result of loading a configuration file.
type LoadResult struct {
	Config *Config
	Errors []error
}

// LoadFromFile loads configuration from a YAML file.
// Returns the configuration and any non-fatal errors encountered.
// If the file doesn't exist, returns default configuration with no error.
func (l *Loader) LoadFromFile(path string) (*LoadResult, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			l.logger.Debug("config file not found, using defaults", zap.String("path", path))
			return &LoadResult{
				Config: DefaultConfig(),
				Errors: []error{},
			}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return l.LoadFromString(string(content))
}

// LoadFromString loads configuration from YAML source. Settings that are
// present but invalid are reported in Errors and replaced by their defaults.
func (l *Loader) LoadFromString(source string) (*LoadResult, error) {
	result := &LoadResult{
		Config: DefaultConfig(),
		Errors: []error{},
	}

	if err := yaml.Unmarshal([]byte(source), result.Config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	l.validate(result)
	return result, nil
}

// LoadDefaultConfigPath loads configuration from the default path
// (~/.memsh/config.yaml).
func (l *Loader) LoadDefaultConfigPath() (*LoadResult, error) {
	return l.LoadFromFile(core.ConfigFile())
}

func (l *Loader) validate(result *LoadResult) {
	defaults := DefaultConfig()
	cfg := result.Config

	switch cfg.Theme {
	case ThemeLight, ThemeDark:
	case "":
		cfg.Theme = defaults.Theme
	default:
		result.Errors = append(result.Errors, fmt.Errorf("theme must be %q or %q, got %q", ThemeLight, ThemeDark, cfg.Theme))
		cfg.Theme = defaults.Theme
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = defaults.LogLevel
	} else if _, err := zap.ParseAtomicLevel(cfg.LogLevel); err != nil {
		result.Errors = append(result.Errors, fmt.Errorf("invalid logLevel: %w", err))
		cfg.LogLevel = defaults.LogLevel
	}

	if cfg.Structure == nil {
		cfg.Structure = defaults.Structure
	}

	for _, err := range result.Errors {
		l.logger.Warn("invalid config value", zap.Error(err))
	}
}
