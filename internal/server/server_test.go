package server

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rankcraft/internal/app"
	"rankcraft/internal/export"
	"rankcraft/internal/flows"
	"rankcraft/internal/youtube"
	"rankcraft/pkg/config"
	"rankcraft/pkg/prompts"
)

type stubLLM struct {
	response string
	err      error
}

func (s *stubLLM) Name() string { return "stub" }

func (s *stubLLM) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return s.response, s.err
}

func (s *stubLLM) GenerateJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return s.response, s.err
}

func (s *stubLLM) GenerateImageJSON(ctx context.Context, systemPrompt, userPrompt, mimeType string, image []byte) (string, error) {
	return s.response, s.err
}

type stubEnricher struct {
	content     *youtube.ChannelContent
	suggestions []string
	err         error
}

func (s *stubEnricher) FetchChannelContent(ctx context.Context, rawURL string, sampleSize int) (*youtube.ChannelContent, error) {
	return s.content, s.err
}

func (s *stubEnricher) KeywordSuggestions(ctx context.Context, topic string, limit int) ([]string, error) {
	return s.suggestions, s.err
}

func newTestRouter(t *testing.T, llmResponse string, llmErr error, yt *stubEnricher) http.Handler {
	t.Helper()

	promptSet, err := prompts.LoadFrom("../../prompts.yaml")
	if err != nil {
		t.Fatalf("load prompts: %v", err)
	}

	svc := &app.Service{
		Config: &config.Config{},
		Generator: flows.NewGenerator(flows.GeneratorOptions{
			LLM:     &stubLLM{response: llmResponse, err: llmErr},
			YouTube: yt,
			Prompts: promptSet,
		}),
		Exporter: export.NewLocalStore(t.TempDir()),
	}

	return NewRouter(NewHandler(svc))
}

func doRequest(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t, "", nil, &stubEnricher{})

	rec := doRequest(t, router, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", rec.Code)
	}
}

func TestCaptionsEndpoint(t *testing.T) {
	entries := make([]string, 5)
	for i := range entries {
		entries[i] = fmt.Sprintf(`{"caption":"c%d","cta":"follow %d"}`, i, i)
	}
	response := `{"captions":[` + strings.Join(entries, ",") + `]}`

	router := newTestRouter(t, response, nil, &stubEnricher{})

	rec := doRequest(t, router, http.MethodPost, "/api/captions", `{"topic":"meal prep"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200: %s", rec.Code, rec.Body)
	}
	if !strings.Contains(rec.Body.String(), `"captions"`) {
		t.Errorf("response %s is missing captions", rec.Body)
	}
}

func TestValidationErrorsMapTo400(t *testing.T) {
	router := newTestRouter(t, "", nil, &stubEnricher{})

	rec := doRequest(t, router, http.MethodPost, "/api/captions", `{"topic":"x"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "violations") {
		t.Errorf("response %s is missing field violations", rec.Body)
	}
}

func TestMalformedBodyMapsTo400(t *testing.T) {
	router := newTestRouter(t, "", nil, &stubEnricher{})

	rec := doRequest(t, router, http.MethodPost, "/api/captions", `{"topic":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", rec.Code)
	}
}

func TestResolutionErrorsMapTo422(t *testing.T) {
	yt := &stubEnricher{err: &youtube.ResolutionError{URL: "https://example.com/page", Reason: "unrecognized YouTube URL"}}
	router := newTestRouter(t, "", nil, yt)

	rec := doRequest(t, router, http.MethodPost, "/api/competitor-analysis", `{"sourceUrl":"https://example.com/page"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("got status %d, want 422: %s", rec.Code, rec.Body)
	}
}

func TestGenerationFailuresMapTo502(t *testing.T) {
	router := newTestRouter(t, "", fmt.Errorf("model down"), &stubEnricher{})

	rec := doRequest(t, router, http.MethodPost, "/api/ranks", `{"topic":"sourdough","url":"https://example.com"}`)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("got status %d, want 502: %s", rec.Code, rec.Body)
	}
}

func TestSchemaFailuresMapTo502(t *testing.T) {
	router := newTestRouter(t, `{"rankedKeywords":[]}`, nil, &stubEnricher{})

	rec := doRequest(t, router, http.MethodPost, "/api/ranks", `{"topic":"sourdough","url":"https://example.com"}`)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("got status %d, want 502: %s", rec.Code, rec.Body)
	}
}

func TestReportsEndpoint(t *testing.T) {
	router := newTestRouter(t, "", nil, &stubEnricher{})

	rec := doRequest(t, router, http.MethodGet, "/api/reports", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"reports"`) {
		t.Errorf("response %s is missing reports", rec.Body)
	}
}
