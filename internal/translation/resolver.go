package translation

import (
	"context"
	"fmt"
	"strings"

	"horse.fit/polyglot/internal/language"
)

// Result is the outcome of one successful resolution. ResolvedSourceCode is
// always a concrete language code; when the request carried the "auto"
// sentinel it holds the code detected at run time.
type Result struct {
	TranslatedText     string
	ResolvedSourceCode string
}

// Resolver turns a (text, source code, target code) triple into one concrete
// provider round trip, detecting the source language first when the request
// asks for automatic detection.
//
// Resolve never panics past the provider boundary: empty input yields
// (nil, nil) and any provider fault yields (nil, *ProviderError).
type Resolver struct {
	registry *Registry
	provider string // requested provider name; empty uses the registry default
}

func NewResolver(registry *Registry, provider string) *Resolver {
	return &Resolver{
		registry: registry,
		provider: strings.TrimSpace(provider),
	}
}

// ProviderName reports the provider the resolver will call.
func (r *Resolver) ProviderName() string {
	if r == nil || r.registry == nil {
		return ""
	}
	if r.provider != "" {
		return r.provider
	}
	return r.registry.DefaultProvider()
}

// Resolve translates text from sourceCode (possibly "auto") into targetCode.
// Whitespace-only text is a no-op signal: (nil, nil) with zero provider
// calls.
func (r *Resolver) Resolve(ctx context.Context, text, sourceCode, targetCode string) (*Result, error) {
	if r == nil || r.registry == nil {
		return nil, fmt.Errorf("resolver is not initialized")
	}
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	targetLang := language.NormalizeTag(targetCode)
	if targetLang == "" || targetLang == language.AutoCode {
		return nil, fmt.Errorf("target language %q is not a concrete language", targetCode)
	}

	provider, err := r.registry.Provider(r.provider)
	if err != nil {
		return nil, err
	}

	effectiveSource := language.NormalizeTag(sourceCode)
	if effectiveSource == "" || effectiveSource == language.AutoCode {
		detected, err := provider.Detect(ctx, text)
		if err != nil {
			return nil, &ProviderError{Provider: provider.Name(), Op: OpDetect, Err: err}
		}
		effectiveSource = language.NormalizeTag(detected)
		if effectiveSource == "" || effectiveSource == language.AutoCode {
			return nil, &ProviderError{
				Provider: provider.Name(),
				Op:       OpDetect,
				Err:      fmt.Errorf("detected language %q is not usable", detected),
			}
		}
	}

	resp, err := provider.Translate(ctx, TranslateRequest{
		Text:       text,
		SourceLang: effectiveSource,
		TargetLang: targetLang,
	})
	if err != nil {
		return nil, &ProviderError{Provider: provider.Name(), Op: OpTranslate, Err: err}
	}

	translated := strings.TrimSpace(resp.Text)
	if translated == "" {
		return nil, &ProviderError{
			Provider: provider.Name(),
			Op:       OpTranslate,
			Err:      fmt.Errorf("empty translation"),
		}
	}

	return &Result{
		TranslatedText:     translated,
		ResolvedSourceCode: effectiveSource,
	}, nil
}
