package app

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"horse.fit/polyglot/internal/batch"
	"horse.fit/polyglot/internal/cli"
	"horse.fit/polyglot/internal/tabular"
	"horse.fit/polyglot/internal/translation"
)

func runBatch(args []string) int {
	fs := flag.NewFlagSet("batch", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	envLoader := cli.AddEnvFlag(fs, ".env", "Path to the .env file")
	timeout := fs.Duration("timeout", 30*time.Minute, "Command timeout")
	input := fs.String("input", "", "CSV file to translate")
	output := fs.String("output", "", "Output CSV path (default: translated_<input> next to the input)")
	column := fs.String("column", "", "Name of the column to translate")
	to := fs.String("to", "", "Target language (display name or code; defaults to DEFAULT_TARGET_LANG)")
	provider := fs.String("provider", "", "Translation provider name (for example: google, local)")

	if code, ok := parseOrExitCode(fs, args); !ok {
		return code
	}
	if *input == "" {
		fmt.Fprintln(os.Stderr, "--input is required")
		return 2
	}
	if *column == "" {
		fmt.Fprintln(os.Stderr, "--column is required")
		return 2
	}

	cfg, err := loadEnvironment(envLoader)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	targetCode, err := resolveTargetCode(*to, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	inputFile, err := os.Open(*input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Open input: %v\n", err)
		return 1
	}
	table, err := tabular.ReadCSV(inputFile)
	_ = inputFile.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Read input: %v\n", err)
		return 1
	}

	cells, err := table.Column(*column)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	registry := translation.NewRegistryFromEnv()
	driver := batch.NewDriver(translation.NewResolver(registry, *provider))

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	outcomes, err := driver.Run(ctx, cells, batch.Options{
		TargetCode: targetCode,
		Progress: func(p batch.Progress) {
			fmt.Fprintf(os.Stderr, "Translating %s (%.0f%%)\n", p.Label(), p.Fraction*100)
		},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Batch translation failed: %v\n", err)
		return 1
	}

	values := make([]string, len(outcomes))
	failed := 0
	for i, outcome := range outcomes {
		values[i] = outcome.Value()
		if outcome.Failed {
			failed++
		}
	}
	if err := table.AppendColumn(tabular.OutputColumnName(targetCode), values); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	outputPath := *output
	if outputPath == "" {
		dir, base := filepath.Split(*input)
		outputPath = filepath.Join(dir, "translated_"+base)
	}

	outputFile, err := os.Create(outputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Create output: %v\n", err)
		return 1
	}
	if err := tabular.WriteCSV(outputFile, table); err != nil {
		_ = outputFile.Close()
		fmt.Fprintf(os.Stderr, "Write output: %v\n", err)
		return 1
	}
	if err := outputFile.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Close output: %v\n", err)
		return 1
	}

	fmt.Printf("batch input=%s output=%s lang=%s rows=%d failed=%d\n",
		*input, outputPath, targetCode, len(outcomes), failed)
	return 0
}
