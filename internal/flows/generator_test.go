package flows

import (
	"context"
	"sync"
	"testing"

	"rankcraft/internal/youtube"
	"rankcraft/pkg/prompts"
)

// fakeLLM answers with a canned response, or via respond when behavior must
// vary per call. Safe for concurrent use.
type fakeLLM struct {
	mu       sync.Mutex
	response string
	err      error
	respond  func(call int, userPrompt string) (string, error)

	calls      int
	lastSystem string
	lastUser   string
	lastMime   string
	lastImage  []byte
}

func (f *fakeLLM) Name() string { return "fake" }

func (f *fakeLLM) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return f.GenerateJSON(ctx, systemPrompt, userPrompt)
}

func (f *fakeLLM) GenerateJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	call := f.calls
	f.calls++
	f.lastSystem = systemPrompt
	f.lastUser = userPrompt
	if f.respond != nil {
		return f.respond(call, userPrompt)
	}
	return f.response, f.err
}

func (f *fakeLLM) GenerateImageJSON(ctx context.Context, systemPrompt, userPrompt, mimeType string, image []byte) (string, error) {
	f.mu.Lock()
	f.lastMime = mimeType
	f.lastImage = image
	f.mu.Unlock()
	return f.GenerateJSON(ctx, systemPrompt, userPrompt)
}

type fakeEnricher struct {
	content     *youtube.ChannelContent
	suggestions []string
	err         error

	lastURL   string
	lastTopic string
}

func (f *fakeEnricher) FetchChannelContent(ctx context.Context, rawURL string, sampleSize int) (*youtube.ChannelContent, error) {
	f.lastURL = rawURL
	return f.content, f.err
}

func (f *fakeEnricher) KeywordSuggestions(ctx context.Context, topic string, limit int) ([]string, error) {
	f.lastTopic = topic
	return f.suggestions, f.err
}

func testPrompts(t *testing.T) *prompts.Prompts {
	t.Helper()
	p, err := prompts.LoadFrom("../../prompts.yaml")
	if err != nil {
		t.Fatalf("load prompts: %v", err)
	}
	return p
}

func newTestGenerator(t *testing.T, client *fakeLLM, yt *fakeEnricher) *Generator {
	t.Helper()
	return NewGenerator(GeneratorOptions{
		LLM:     client,
		YouTube: yt,
		Prompts: testPrompts(t),
	})
}
