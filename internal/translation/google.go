package translation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"horse.fit/polyglot/internal/language"
)

const (
	// DefaultGoogleEndpoint is the unofficial Google web translation endpoint.
	DefaultGoogleEndpoint = "https://translate.googleapis.com/translate_a/single"

	googleClientParam = "gtx"
)

// GoogleProvider calls the unofficial Google web translation endpoint. The
// endpoint is free and rate-sensitive, so every call goes through a circuit
// breaker: after repeated consecutive failures the provider fails fast for a
// cool-down window instead of hammering the service.
type GoogleProvider struct {
	endpoint string
	client   *http.Client
	breaker  *gobreaker.CircuitBreaker
}

// NewGoogleProvider builds a provider against the default public endpoint.
func NewGoogleProvider() *GoogleProvider {
	return NewGoogleProviderWithEndpoint(DefaultGoogleEndpoint)
}

// NewGoogleProviderWithEndpoint builds a provider against a custom endpoint,
// used by tests and self-hosted mirrors.
func NewGoogleProviderWithEndpoint(endpoint string) *GoogleProvider {
	trimmed := strings.TrimSpace(endpoint)
	if trimmed == "" {
		trimmed = DefaultGoogleEndpoint
	}
	return &GoogleProvider{
		endpoint: trimmed,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "google-translate",
			Timeout: 30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
		}),
	}
}

func (p *GoogleProvider) Name() string {
	return "google"
}

func (p *GoogleProvider) SupportedLanguages() []string {
	pairs := language.Default().Pairs()
	codes := make([]string, 0, len(pairs))
	for _, pair := range pairs {
		codes = append(codes, pair.Code)
	}
	return codes
}

// Detect resolves the language of text via a probe translation with
// sl=auto; the endpoint reports the detected source alongside the result.
func (p *GoogleProvider) Detect(ctx context.Context, text string) (string, error) {
	if p == nil {
		return "", fmt.Errorf("google provider is nil")
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("text is required")
	}

	result, err := p.fetch(ctx, text, language.AutoCode, "en")
	if err != nil {
		return "", err
	}
	detected := language.NormalizeTag(result.detectedSource)
	if detected == "" || detected == language.AutoCode {
		return "", fmt.Errorf("endpoint reported no detected language")
	}
	return detected, nil
}

func (p *GoogleProvider) Translate(ctx context.Context, req TranslateRequest) (*TranslateResponse, error) {
	if p == nil {
		return nil, fmt.Errorf("google provider is nil")
	}
	if strings.TrimSpace(req.Text) == "" {
		return nil, fmt.Errorf("text is required")
	}

	sourceLang := language.NormalizeTag(req.SourceLang)
	if sourceLang == "" {
		sourceLang = language.AutoCode
	}
	targetLang := language.NormalizeTag(req.TargetLang)
	if targetLang == "" {
		return nil, fmt.Errorf("target language is required")
	}

	started := time.Now()
	result, err := p.fetch(ctx, req.Text, sourceLang, targetLang)
	if err != nil {
		return nil, err
	}
	if result.text == "" {
		return nil, fmt.Errorf("endpoint returned an empty translation")
	}

	resolvedSource := language.NormalizeTag(result.detectedSource)
	if resolvedSource == "" || resolvedSource == language.AutoCode {
		resolvedSource = sourceLang
	}

	return &TranslateResponse{
		Text:         result.text,
		SourceLang:   resolvedSource,
		TargetLang:   targetLang,
		ProviderName: p.Name(),
		LatencyMs:    time.Since(started).Milliseconds(),
	}, nil
}

type googleResult struct {
	text           string
	detectedSource string
}

func (p *GoogleProvider) fetch(ctx context.Context, text, sourceLang, targetLang string) (googleResult, error) {
	query := url.Values{}
	query.Set("client", googleClientParam)
	query.Set("sl", sourceLang)
	query.Set("tl", targetLang)
	query.Set("dt", "t")
	query.Set("q", text)

	requestURL := p.endpoint + "?" + query.Encode()

	raw, err := p.breaker.Execute(func() (any, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build translation request: %w", err)
		}

		resp, err := p.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("send translation request: %w", err)
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("read translation response: %w", err)
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, fmt.Errorf("translation endpoint status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
		}
		return body, nil
	})
	if err != nil {
		return googleResult{}, err
	}

	body, ok := raw.([]byte)
	if !ok {
		return googleResult{}, fmt.Errorf("unexpected breaker payload %T", raw)
	}
	return parseGoogleResponse(body)
}

// parseGoogleResponse decodes the endpoint's nested-array payload. The first
// element holds sentence chunks ([translated, original, ...]); the third
// holds the detected source language.
func parseGoogleResponse(body []byte) (googleResult, error) {
	var payload []any
	if err := json.Unmarshal(body, &payload); err != nil {
		return googleResult{}, fmt.Errorf("decode translation response: %w", err)
	}
	if len(payload) == 0 {
		return googleResult{}, fmt.Errorf("translation response is empty")
	}

	chunks, ok := payload[0].([]any)
	if !ok {
		return googleResult{}, fmt.Errorf("translation response missing sentence chunks")
	}

	var builder strings.Builder
	for _, rawChunk := range chunks {
		chunk, ok := rawChunk.([]any)
		if !ok || len(chunk) == 0 {
			continue
		}
		if segment, ok := chunk[0].(string); ok {
			builder.WriteString(segment)
		}
	}

	result := googleResult{text: strings.TrimSpace(builder.String())}
	if len(payload) > 2 {
		if detected, ok := payload[2].(string); ok {
			result.detectedSource = detected
		}
	}
	return result, nil
}
