package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/text/cases"
	textlanguage "golang.org/x/text/language"

	"horse.fit/polyglot/internal/batch"
	"horse.fit/polyglot/internal/language"
	"horse.fit/polyglot/internal/session"
	"horse.fit/polyglot/internal/tabular"
	"horse.fit/polyglot/internal/translation"
)

func (s *Server) handleLanguages(c echo.Context) error {
	return success(c, map[string]any{
		"sources": s.catalog.SourceNames(),
		"targets": s.catalog.TargetNames(),
	})
}

type sessionResponse struct {
	Source       string `json:"source"`
	Target       string `json:"target"`
	HistoryCount int    `json:"history_count"`
}

func (s *Server) sessionSnapshot() sessionResponse {
	return sessionResponse{
		Source:       s.state.Source,
		Target:       s.state.Target,
		HistoryCount: s.state.History.Len(),
	}
}

func (s *Server) handleSession(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return success(c, map[string]any{"session": s.sessionSnapshot()})
}

func (s *Server) handleSwap(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Swap()
	return success(c, map[string]any{"session": s.sessionSnapshot()})
}

type translateRequest struct {
	Text   string `json:"text"`
	Source string `json:"source,omitempty"` // display name or code; empty keeps the session selection
	Target string `json:"target,omitempty"`
}

type translateResponse struct {
	TranslatedText string `json:"translated_text"`
	SourceCode     string `json:"source_code"`
	TargetCode     string `json:"target_code"`
	// DetectedSource is the title-cased display name of the detected
	// language, set only when the request asked for automatic detection.
	DetectedSource string `json:"detected_source,omitempty"`
}

func (s *Server) handleTranslate(c echo.Context) error {
	var req translateRequest
	if err := c.Bind(&req); err != nil {
		return failValidation(c, map[string]string{"body": "must be a JSON object"})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(req.Source) != "" {
		code, err := s.catalog.ResolveCode(req.Source)
		if err != nil {
			return failValidation(c, map[string]string{"source": "is not a known language"})
		}
		s.state.Source = s.catalog.NameForCode(code)
	}
	if strings.TrimSpace(req.Target) != "" {
		code, err := s.catalog.ResolveCode(req.Target)
		if err != nil || code == language.AutoCode {
			return failValidation(c, map[string]string{"target": "must be a concrete language"})
		}
		s.state.Target = s.catalog.NameForCode(code)
	}

	sourceCode, err := s.catalog.CodeForName(s.state.Source)
	if err != nil {
		return failValidation(c, map[string]string{"source": "is not a known language"})
	}
	targetCode, err := s.catalog.CodeForName(s.state.Target)
	if err != nil {
		return failValidation(c, map[string]string{"target": "is not a known language"})
	}

	result, err := s.resolver.Resolve(c.Request().Context(), req.Text, sourceCode, targetCode)
	if err != nil {
		if translation.IsProviderError(err) {
			s.logger.Warn().Err(err).Msg("interactive translation failed")
			return fail(c, http.StatusBadGateway, "Translation failed, please try again", nil)
		}
		s.logger.Error().Err(err).Msg("resolve translation failed")
		return internalError(c, "Failed to translate")
	}
	if result == nil {
		return failValidation(c, map[string]string{"text": "is required"})
	}

	// Failed requests are reported once and never recorded.
	s.state.History.Append(session.Entry{
		OriginalText:   req.Text,
		TranslatedText: result.TranslatedText,
		SourceLabel:    s.state.Source,
		TargetLabel:    s.state.Target,
		Timestamp:      time.Now().UTC(),
	})

	resp := translateResponse{
		TranslatedText: result.TranslatedText,
		SourceCode:     result.ResolvedSourceCode,
		TargetCode:     targetCode,
	}
	if sourceCode == language.AutoCode {
		resp.DetectedSource = titleCase(s.catalog.NameForCode(result.ResolvedSourceCode))
	}
	return success(c, resp)
}

func (s *Server) handleHistory(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.state.History.NewestFirst()
	if entries == nil {
		entries = []session.Entry{}
	}
	return success(c, map[string]any{"items": entries})
}

func (s *Server) handleHistoryClear(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cleared := s.state.History.Len()
	s.state.History.Clear()
	return success(c, map[string]any{"cleared": cleared})
}

func (s *Server) handleBatch(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return failValidation(c, map[string]string{"file": "a CSV upload is required"})
	}

	column := strings.TrimSpace(c.FormValue("column"))
	if column == "" {
		return failValidation(c, map[string]string{"column": "is required"})
	}

	targetCode, err := s.catalog.ResolveCode(c.FormValue("target"))
	if err != nil || targetCode == language.AutoCode {
		return failValidation(c, map[string]string{"target": "must be a concrete language"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		s.logger.Error().Err(err).Msg("open batch upload failed")
		return internalError(c, "Failed to read upload")
	}
	defer file.Close()

	table, err := tabular.ReadCSV(file)
	if err != nil {
		return failValidation(c, map[string]string{"file": err.Error()})
	}

	cells, err := table.Column(column)
	if err != nil {
		return failValidation(c, map[string]string{"column": err.Error()})
	}

	driver := batch.NewDriver(s.resolver)

	s.mu.Lock()
	defer s.mu.Unlock()

	outcomes, err := driver.Run(c.Request().Context(), cells, batch.Options{
		TargetCode: targetCode,
		Progress: func(p batch.Progress) {
			s.logger.Debug().
				Int("row", p.Row).
				Int("total", p.Total).
				Float64("fraction", p.Fraction).
				Msg("batch translation progress")
		},
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("batch translation failed")
		return internalError(c, "Batch translation failed")
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
		s.logger.Error().Err(err).Msg("append output column failed")
		return internalError(c, "Batch translation failed")
	}

	s.logger.Info().
		Int("rows", len(outcomes)).
		Int("failed", failed).
		Str("target", targetCode).
		Msg("batch translation completed")

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", "translated_"+filepath.Base(fileHeader.Filename)))
	c.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)

	if err := tabular.WriteCSV(c.Response(), table); err != nil && !errors.Is(err, context.Canceled) {
		s.logger.Error().Err(err).Msg("write batch response failed")
	}
	return nil
}

// titleCase is presentation-only, applied to detected language names before
// they reach the client.
func titleCase(name string) string {
	return cases.Title(textlanguage.Und).String(name)
}
