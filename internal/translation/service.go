package translation

import "context"

// Provider is the boundary to an external detect/translate capability.
type Provider interface {
	// Detect returns the language code of text.
	Detect(ctx context.Context, text string) (string, error)
	// Translate converts text between two concrete languages. SourceLang is
	// never the "auto" sentinel; detection happens before this call.
	Translate(ctx context.Context, req TranslateRequest) (*TranslateResponse, error)
	Name() string
	SupportedLanguages() []string
}

// TranslateRequest describes one translation request.
type TranslateRequest struct {
	Text       string
	SourceLang string // catalog code (for example: "en", "zh-cn")
	TargetLang string
}

// TranslateResponse contains translated text and provider metadata.
type TranslateResponse struct {
	Text         string
	SourceLang   string
	TargetLang   string
	ProviderName string
	LatencyMs    int64
}
