package config

import (
	"fmt"
	"os"

	bofryconfig "github.com/Bofry/config"
)

// Loader loads configuration from YAML files, .env files and
// environment variables through the Bofry/config service.
type Loader struct {
	yamlFile   string
	dotEnvFile string
	envPrefix  string
}

// NewLoader creates a loader with the ROUTEMAP_ environment prefix.
func NewLoader() *Loader {
	return &Loader{
		envPrefix: "ROUTEMAP_",
	}
}

// WithYAMLFile sets the YAML configuration file path.
func (l *Loader) WithYAMLFile(path string) *Loader {
	l.yamlFile = path
	return l
}

// WithDotEnvFile sets the .env file path.
func (l *Loader) WithDotEnvFile(path string) *Loader {
	l.dotEnvFile = path
	return l
}

// WithEnvPrefix sets the environment variable prefix.
func (l *Loader) WithEnvPrefix(prefix string) *Loader {
	l.envPrefix = prefix
	return l
}

// Load fills cfg from the configured sources, starting from defaults,
// and validates the result. Missing files are skipped silently.
func (l *Loader) Load(cfg *Config) error {
	*cfg = *DefaultConfig()

	// Bofry/config panics on errors, so recover into an error return.
	var loadErr error
	func() {
		defer func() {
			if r := recover(); r != nil {
				if err, ok := r.(error); ok {
					loadErr = err
				} else {
					loadErr = fmt.Errorf("configuration loading panic: %v", r)
				}
			}
		}()

		service := bofryconfig.NewConfigurationService(cfg)

		if l.yamlFile != "" {
			if _, err := os.Stat(l.yamlFile); err == nil {
				service.LoadYamlFile(l.yamlFile)
			} else if !os.IsNotExist(err) {
				loadErr = fmt.Errorf("failed to check YAML file: %w", err)
				return
			}
		}

		if l.dotEnvFile != "" {
			if _, err := os.Stat(l.dotEnvFile); err == nil {
				service.LoadDotEnvFile(l.dotEnvFile)
			} else if !os.IsNotExist(err) {
				loadErr = fmt.Errorf("failed to check .env file: %w", err)
				return
			}
		}

		envPrefix := l.envPrefix
		if len(envPrefix) > 0 && envPrefix[len(envPrefix)-1] == '_' {
			envPrefix = envPrefix[:len(envPrefix)-1]
		}
		service.LoadEnvironmentVariables(envPrefix)
	}()

	if loadErr != nil {
		return loadErr
	}

	return cfg.Validate()
}
