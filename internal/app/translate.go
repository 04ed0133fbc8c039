package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"horse.fit/polyglot/internal/cli"
	"horse.fit/polyglot/internal/language"
	"horse.fit/polyglot/internal/translation"

	"golang.org/x/text/cases"
	textlanguage "golang.org/x/text/language"
)

func runTranslate(args []string) int {
	fs := flag.NewFlagSet("translate", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	envLoader := cli.AddEnvFlag(fs, ".env", "Path to the .env file")
	timeout := fs.Duration("timeout", 2*time.Minute, "Command timeout")
	from := fs.String("from", language.AutoName, "Source language (display name or code)")
	to := fs.String("to", "", "Target language (display name or code; defaults to DEFAULT_TARGET_LANG)")
	provider := fs.String("provider", "", "Translation provider name (for example: google, local)")

	if code, ok := parseOrExitCode(fs, args); !ok {
		return code
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "translate requires exactly one text argument")
		return 2
	}

	text := fs.Arg(0)
	if strings.TrimSpace(text) == "" {
		fmt.Fprintln(os.Stderr, "translate requires non-empty text")
		return 2
	}

	cfg, err := loadEnvironment(envLoader)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	catalog := language.Default()
	sourceCode, err := catalog.ResolveCode(*from)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unknown source language: %s\n", *from)
		return 2
	}
	targetCode, err := resolveTargetCode(*to, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	registry := translation.NewRegistryFromEnv()
	resolver := translation.NewResolver(registry, *provider)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	result, err := resolver.Resolve(ctx, text, sourceCode, targetCode)
	if err != nil {
		var pe *translation.ProviderError
		if errors.As(err, &pe) {
			fmt.Fprintf(os.Stderr, "Translation failed (%s via %s): %v\n", pe.Op, pe.Provider, pe.Err)
		} else {
			fmt.Fprintf(os.Stderr, "Translation failed: %v\n", err)
		}
		return 1
	}
	if result == nil {
		// Whitespace-only input is a no-op by contract.
		return 0
	}

	if sourceCode == language.AutoCode {
		detected := cases.Title(textlanguage.Und).String(catalog.NameForCode(result.ResolvedSourceCode))
		fmt.Fprintf(os.Stderr, "Detected source language: %s\n", detected)
	}
	fmt.Println(result.TranslatedText)
	return 0
}
