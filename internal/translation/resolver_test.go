package translation

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

type stubProvider struct {
	name           string
	detectCalls    int
	translateCalls int
	detectResult   string
	detectErr      error
	translateErr   error
	translateFn    func(req TranslateRequest) string
	lastRequest    TranslateRequest
}

func (p *stubProvider) Name() string {
	return p.name
}

func (p *stubProvider) SupportedLanguages() []string {
	return []string{"en", "es", "fr"}
}

func (p *stubProvider) Detect(_ context.Context, _ string) (string, error) {
	p.detectCalls++
	if p.detectErr != nil {
		return "", p.detectErr
	}
	return p.detectResult, nil
}

func (p *stubProvider) Translate(_ context.Context, req TranslateRequest) (*TranslateResponse, error) {
	p.translateCalls++
	p.lastRequest = req
	if p.translateErr != nil {
		return nil, p.translateErr
	}
	text := req.Text
	if p.translateFn != nil {
		text = p.translateFn(req)
	}
	return &TranslateResponse{
		Text:         text,
		SourceLang:   req.SourceLang,
		TargetLang:   req.TargetLang,
		ProviderName: p.name,
	}, nil
}

func newStubResolver(provider *stubProvider) *Resolver {
	registry := NewRegistry(provider.name)
	if err := registry.Register(provider); err != nil {
		panic(fmt.Sprintf("register stub provider: %v", err))
	}
	return NewResolver(registry, provider.name)
}

func TestResolveEchoProviderRoundTrips(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{name: "stub"}
	resolver := newStubResolver(provider)

	result, err := resolver.Resolve(context.Background(), "hello world", "en", "en")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if result == nil {
		t.Fatalf("expected a result")
	}
	if result.TranslatedText != "hello world" {
		t.Fatalf("unexpected translation: %q", result.TranslatedText)
	}
	if result.ResolvedSourceCode != "en" {
		t.Fatalf("unexpected resolved source: %q", result.ResolvedSourceCode)
	}
	if provider.detectCalls != 0 {
		t.Fatalf("did not expect detection for a concrete source, got %d calls", provider.detectCalls)
	}
}

func TestResolveEmptyInputIsNoOp(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{name: "stub"}
	resolver := newStubResolver(provider)

	for _, text := range []string{"", "   ", "\n\t "} {
		result, err := resolver.Resolve(context.Background(), text, "auto", "es")
		if err != nil {
			t.Fatalf("resolve %q: %v", text, err)
		}
		if result != nil {
			t.Fatalf("expected nil result for %q, got %+v", text, result)
		}
	}
	if provider.detectCalls != 0 || provider.translateCalls != 0 {
		t.Fatalf("expected zero provider calls, got detect=%d translate=%d", provider.detectCalls, provider.translateCalls)
	}
}

func TestResolveAutoDetectsThenTranslates(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{
		name:         "stub",
		detectResult: "de",
		translateFn:  func(_ TranslateRequest) string { return "hello" },
	}
	resolver := newStubResolver(provider)

	result, err := resolver.Resolve(context.Background(), "hallo", "auto", "en")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if provider.detectCalls != 1 {
		t.Fatalf("unexpected detect call count: %d", provider.detectCalls)
	}
	if provider.lastRequest.SourceLang != "de" {
		t.Fatalf("detected code was not used as effective source: %q", provider.lastRequest.SourceLang)
	}
	if result.ResolvedSourceCode != "de" {
		t.Fatalf("unexpected resolved source: %q", result.ResolvedSourceCode)
	}
	if result.TranslatedText != "hello" {
		t.Fatalf("unexpected translation: %q", result.TranslatedText)
	}
}

func TestResolveDetectFailureIsProviderError(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{
		name:      "stub",
		detectErr: errors.New("network down"),
	}
	resolver := newStubResolver(provider)

	result, err := resolver.Resolve(context.Background(), "hallo", "auto", "en")
	if result != nil {
		t.Fatalf("expected nil result, got %+v", result)
	}
	var pe *ProviderError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
	if pe.Op != OpDetect {
		t.Fatalf("unexpected op: %q", pe.Op)
	}
	if provider.translateCalls != 0 {
		t.Fatalf("detection failure must short-circuit translation, got %d calls", provider.translateCalls)
	}
}

func TestResolveTranslateFailureIsProviderError(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{
		name:         "stub",
		translateErr: errors.New("quota exceeded"),
	}
	resolver := newStubResolver(provider)

	_, err := resolver.Resolve(context.Background(), "hello", "en", "es")
	var pe *ProviderError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
	if pe.Op != OpTranslate || pe.Provider != "stub" {
		t.Fatalf("unexpected provider error fields: %+v", pe)
	}
	if !IsProviderError(err) {
		t.Fatalf("IsProviderError should report true")
	}
}

func TestResolveRejectsAutoTarget(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{name: "stub"}
	resolver := newStubResolver(provider)

	if _, err := resolver.Resolve(context.Background(), "hello", "en", "auto"); err == nil {
		t.Fatalf("expected auto target to be rejected")
	}
	if _, err := resolver.Resolve(context.Background(), "hello", "en", ""); err == nil {
		t.Fatalf("expected empty target to be rejected")
	}
}
