package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	Highrise HighriseConfig `mapstructure:"highrise"`
	Output   OutputConfig   `mapstructure:"output"`
	Filter   FilterConfig   `mapstructure:"filter"`
	Safety   SafetyConfig   `mapstructure:"safety"`
	Logging  LoggingConfig  `mapstructure:"logging"`

	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-"`
}

// HighriseConfig holds Highrise API connection details
type HighriseConfig struct {
	User      string        `mapstructure:"user"`
	APIKey    string        `mapstructure:"api_key"`
	BaseURL   string        `mapstructure:"base_url"`
	UserAgent string        `mapstructure:"user_agent"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// OutputConfig controls how results are printed
type OutputConfig struct {
	Format      string `mapstructure:"format"`
	ShowDetails bool   `mapstructure:"show_details"`
}

// FilterConfig contains the default filter and named presets
type FilterConfig struct {
	Default string                  `mapstructure:"default"`
	Presets map[string]FilterPreset `mapstructure:"presets"`
}

// FilterPreset is a named filter expression
type FilterPreset struct {
	Expression  string `mapstructure:"expression"`
	Description string `mapstructure:"description"`
}

// Expressions returns preset name to expression, for filter.Manager.
func (f FilterConfig) Expressions() map[string]string {
	out := make(map[string]string, len(f.Presets))
	for name, preset := range f.Presets {
		out[name] = preset.Expression
	}
	return out
}

// SafetyConfig contains safety-related settings
type SafetyConfig struct {
	DryRun        bool `mapstructure:"dry_run"`
	ConfirmDelete bool `mapstructure:"confirm_delete"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
