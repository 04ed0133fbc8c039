package app

import (
	"flag"
	"fmt"
	"os"

	"horse.fit/polyglot/internal/language"
)

func runLanguages(args []string) int {
	fs := flag.NewFlagSet("languages", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	if code, ok := parseOrExitCode(fs, args); !ok {
		return code
	}

	fmt.Printf("%-8s %s\n", language.AutoCode, language.AutoName+" (source only)")
	for _, pair := range language.Default().Pairs() {
		fmt.Printf("%-8s %s\n", pair.Code, pair.Name)
	}
	return 0
}
