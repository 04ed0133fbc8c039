package app

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"horse.fit/polyglot/internal/cli"
	"horse.fit/polyglot/internal/config"
	"horse.fit/polyglot/internal/language"
)

// loadEnvironment applies the --env file and loads validated configuration.
func loadEnvironment(envLoader *cli.EnvLoader) (*config.Config, error) {
	if envLoader != nil {
		if _, err := envLoader.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// resolveTargetCode turns a --to flag value (display name or code) into a
// concrete target code, falling back to the configured default.
func resolveTargetCode(raw string, cfg *config.Config) (string, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		value = cfg.DefaultTargetLang
	}
	code, err := language.Default().ResolveCode(value)
	if err != nil {
		return "", err
	}
	if code == language.AutoCode {
		return "", fmt.Errorf("target language must be a concrete language, not %q", language.AutoName)
	}
	return code, nil
}

func parseOrExitCode(fs *flag.FlagSet, args []string) (int, bool) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0, false
		}
		return 2, false
	}
	return 0, true
}
