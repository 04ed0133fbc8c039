package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"horse.fit/polyglot/internal/language"
)

type Config struct {
	Environment string `envconfig:"ENVIRONMENT" default:"local"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	// DefaultTargetLang is the target selection a fresh session starts with.
	// Provider selection (TRANSLATION_PROVIDER) and the local endpoint
	// (TRANSLATION_ENDPOINT, TRANSLATION_MODEL) are read by the translation
	// registry itself.
	DefaultTargetLang string `envconfig:"DEFAULT_TARGET_LANG" default:"ur"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.LogLevel) == "" {
		return fmt.Errorf("LOG_LEVEL is required")
	}

	target := language.NormalizeTag(c.DefaultTargetLang)
	if target == "" {
		return fmt.Errorf("DEFAULT_TARGET_LANG is required")
	}
	if target == language.AutoCode {
		return fmt.Errorf("DEFAULT_TARGET_LANG must be a concrete language, not %q", language.AutoCode)
	}
	if !language.Default().Has(target) {
		return fmt.Errorf("DEFAULT_TARGET_LANG %q is not a known language code", c.DefaultTargetLang)
	}
	return nil
}

// DefaultTargetName resolves the configured default target to its display
// name.
func (c *Config) DefaultTargetName() string {
	if c == nil {
		return ""
	}
	return language.Default().NameForCode(c.DefaultTargetLang)
}
