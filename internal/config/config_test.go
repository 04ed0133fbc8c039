package config

import "testing"

func TestValidateAcceptsDefaults(t *testing.T) {
	t.Parallel()

	cfg := Config{
		Environment:       "local",
		LogLevel:          "info",
		DefaultTargetLang: "ur",
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate defaults: %v", err)
	}
	if got := cfg.DefaultTargetName(); got != "urdu" {
		t.Fatalf("unexpected default target name: %q", got)
	}
}

func TestValidateRejectsAutoTarget(t *testing.T) {
	t.Parallel()

	cfg := Config{LogLevel: "info", DefaultTargetLang: "auto"}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected auto default target to be rejected")
	}
}

func TestValidateRejectsUnknownTarget(t *testing.T) {
	t.Parallel()

	cfg := Config{LogLevel: "info", DefaultTargetLang: "xx"}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected unknown default target to be rejected")
	}
}
