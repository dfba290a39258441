package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfigDefaults(t *testing.T) {
	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "Številka:", cfg.Scan.ReferenceLabel)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "output.json", cfg.Output.Path)
}

func TestInitializeConfigEnvOverride(t *testing.T) {
	t.Setenv("EMSO_LOG_LEVEL", "debug")
	t.Setenv("EMSO_OUTPUT_FORMAT", "csv")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "csv", cfg.Output.Format)
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.Log.Level = "info"
		cfg.Log.Format = "text"
		cfg.Scan.ReferenceLabel = "Številka:"
		cfg.Output.Format = "json"
		cfg.Output.Path = "output.json"
		return cfg
	}

	assert.NoError(t, validateConfig(valid()))

	cfg := valid()
	cfg.Log.Level = "verbose"
	assert.Error(t, validateConfig(cfg))

	cfg = valid()
	cfg.Log.Format = "yaml"
	assert.Error(t, validateConfig(cfg))

	cfg = valid()
	cfg.Scan.ReferenceLabel = ""
	assert.Error(t, validateConfig(cfg))

	cfg = valid()
	cfg.Output.Format = "xml"
	assert.Error(t, validateConfig(cfg))

	cfg = valid()
	cfg.Output.Path = ""
	assert.Error(t, validateConfig(cfg))
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	cfg := &Config{}
	cfg.Log.Level = "debug"
	cfg.Log.Format = "json"

	logger := ConfigureLoggingFromConfig(cfg)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}

func TestConfigureLoggingFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_FORMAT", "text")

	logger := ConfigureLogging()
	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("EMSO_SCAN_TEST_KEY", "value")
	assert.Equal(t, "value", GetEnv("EMSO_SCAN_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("EMSO_SCAN_TEST_MISSING", "fallback"))
}
