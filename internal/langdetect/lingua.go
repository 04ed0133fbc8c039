package langdetect

import (
	"strings"
	"sync"
	"unicode"

	lingua "github.com/pemistahl/lingua-go"
)

// minLetters guards against classifying strings too short to carry a
// language signal.
const minLetters = 3

var (
	detectorOnce sync.Once
	detector     lingua.LanguageDetector
)

// Detect returns the ISO 639-1 code of the dominant language of text, or an
// empty string when no confident detection is possible.
func Detect(text string) string {
	sample := strings.TrimSpace(text)
	if sample == "" {
		return ""
	}

	letters := 0
	for _, r := range sample {
		if unicode.IsLetter(r) {
			letters++
		}
	}
	if letters < minLetters {
		return ""
	}

	language, exists := getDetector().DetectLanguageOf(sample)
	if !exists {
		return ""
	}

	code := strings.ToLower(language.IsoCode639_1().String())
	if len(code) != 2 {
		return ""
	}
	return code
}

func getDetector() lingua.LanguageDetector {
	detectorOnce.Do(func() {
		detector = lingua.NewLanguageDetectorBuilder().
			FromAllLanguages().
			WithPreloadedLanguageModels().
			Build()
	})
	return detector
}
