// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"

	"jzorko/emso-scan/internal/validation"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Scan struct {
		ReferenceLabel string `mapstructure:"reference_label" yaml:"reference_label"`
	} `mapstructure:"scan" yaml:"scan"`

	Output struct {
		Format string `mapstructure:"format" yaml:"format"`
		Path   string `mapstructure:"path" yaml:"path"`
	} `mapstructure:"output" yaml:"output"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then an optional config file, then EMSO_* environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.emso-scan")
	v.AddConfigPath(".emso-scan")
	v.AddConfigPath(".")

	v.SetEnvPrefix("EMSO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("scan.reference_label", "Številka:")

	v.SetDefault("output.format", "json")
	v.SetDefault("output.path", "output.json")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if err := validation.IsValidReferenceLabel(config.Scan.ReferenceLabel); err != nil {
		return err
	}

	if err := validation.IsValidOutputFormat(config.Output.Format); err != nil {
		return err
	}

	if config.Output.Path == "" {
		return fmt.Errorf("output path must not be empty")
	}

	return nil
}

// ConfigureLoggingFromConfig configures logging based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
