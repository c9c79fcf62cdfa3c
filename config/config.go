package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. HIGHTON_HIGHRISE_API_KEY.
const EnvPrefix = "HIGHTON"

// Load loads the configuration from file and environment. An explicit
// configPath must exist; when searching the default locations a missing file
// is fine as long as the environment supplies the credentials.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".highton"))
		}

		v.AddConfigPath("/etc/highton/")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values. Every key that may come
// from the environment needs a default so AutomaticEnv sees it on Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("highrise.user", "")
	v.SetDefault("highrise.api_key", "")
	v.SetDefault("highrise.base_url", "")
	v.SetDefault("highrise.user_agent", "")
	v.SetDefault("highrise.timeout", "30s")

	v.SetDefault("output.format", "table")
	v.SetDefault("output.show_details", false)

	v.SetDefault("filter.default", "")

	// Safety defaults
	v.SetDefault("safety.dry_run", false)
	v.SetDefault("safety.confirm_delete", true)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.Highrise.User == "" {
		return fmt.Errorf("highrise.user is required")
	}

	if cfg.Highrise.APIKey == "" || cfg.Highrise.APIKey == "your-api-key-here" {
		return fmt.Errorf("highrise.api_key must be set to a valid API key")
	}

	if cfg.Highrise.Timeout <= 0 {
		return fmt.Errorf("highrise.timeout must be positive, got %s", cfg.Highrise.Timeout)
	}

	validOutputs := map[string]bool{
		"table": true,
		"json":  true,
		"yaml":  true,
	}
	if !validOutputs[cfg.Output.Format] {
		return fmt.Errorf("invalid output format: %s", cfg.Output.Format)
	}

	for name, preset := range cfg.Filter.Presets {
		if strings.TrimSpace(preset.Expression) == "" {
			return fmt.Errorf("filter preset %s has no expression", name)
		}
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
