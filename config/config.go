// Package config provides configuration management for the routemap
// tooling, loaded from YAML, .env files and environment variables.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Config is the routemap tool configuration.
type Config struct {
	Manifest ManifestConfig `yaml:"manifest" env:"MANIFEST"`
	Router   RouterConfig   `yaml:"router" env:"ROUTER"`
	Logger   LoggerConfig   `yaml:"logger" env:"LOGGER"`
}

// ManifestConfig locates the route manifest.
type ManifestConfig struct {
	Path string `yaml:"path" env:"PATH" default:"routes.yaml" validate:"required"`
}

// RouterConfig holds route-builder settings.
type RouterConfig struct {
	// StrictBindings rejects error handlers with conflicting or
	// unresolvable binding attributes instead of resolving them by
	// precedence.
	StrictBindings bool `yaml:"strict_bindings" env:"STRICT_BINDINGS"`
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level            string   `yaml:"level" env:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Encoding         string   `yaml:"encoding" env:"ENCODING" default:"json" validate:"oneof=json console"`
	OutputPaths      []string `yaml:"output_paths" env:"OUTPUT_PATHS" default:"stdout"`
	ErrorOutputPaths []string `yaml:"error_output_paths" env:"ERROR_OUTPUT_PATHS" default:"stderr"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Manifest: ManifestConfig{
			Path: "routes.yaml",
		},
		Logger: LoggerConfig{
			Level:            "info",
			Encoding:         "json",
			OutputPaths:      []string{"stdout"},
			ErrorOutputPaths: []string{"stderr"},
		},
	}
}

var validate = validator.New()

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// BuildLogger constructs a zap logger from the logger configuration.
func (c *Config) BuildLogger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(c.Logger.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", c.Logger.Level, err)
	}

	zapCfg := zap.NewProductionConfig()
	if c.Logger.Encoding == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = level
	zapCfg.Encoding = c.Logger.Encoding
	if len(c.Logger.OutputPaths) > 0 {
		zapCfg.OutputPaths = c.Logger.OutputPaths
	}
	if len(c.Logger.ErrorOutputPaths) > 0 {
		zapCfg.ErrorOutputPaths = c.Logger.ErrorOutputPaths
	}
	return zapCfg.Build()
}
