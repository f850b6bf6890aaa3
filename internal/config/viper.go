// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Input struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
		Sheet     string `mapstructure:"sheet" yaml:"sheet"`
	} `mapstructure:"input" yaml:"input"`

	Display struct {
		CurrencyMarker string `mapstructure:"currency_marker" yaml:"currency_marker"`
		UnitMarker     string `mapstructure:"unit_marker" yaml:"unit_marker"`
		TopN           int    `mapstructure:"top_n" yaml:"top_n"`
		LabelWidth     int    `mapstructure:"label_width" yaml:"label_width"`
	} `mapstructure:"display" yaml:"display"`

	Aliases struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"aliases" yaml:"aliases"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then an optional config file, then ISSUANCE_* environment
// variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.issuance-dash")
	v.AddConfigPath(".issuance-dash")
	v.AddConfigPath(".")

	v.SetEnvPrefix("ISSUANCE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("input.delimiter", ",")
	v.SetDefault("input.sheet", "")
	v.SetDefault("display.currency_marker", "SAR")
	v.SetDefault("display.unit_marker", "Units")
	v.SetDefault("display.top_n", 10)
	v.SetDefault("display.label_width", 30)
	v.SetDefault("aliases.file", "")
}

func validate(cfg *Config) error {
	if cfg.Display.TopN <= 0 {
		return fmt.Errorf("display.top_n must be positive, got %d", cfg.Display.TopN)
	}
	if cfg.Display.LabelWidth <= 0 {
		return fmt.Errorf("display.label_width must be positive, got %d", cfg.Display.LabelWidth)
	}
	if len(cfg.Input.Delimiter) > 1 {
		return fmt.Errorf("input.delimiter must be a single character, got %q", cfg.Input.Delimiter)
	}
	return nil
}
