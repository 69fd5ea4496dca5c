package flows

import (
	"context"

	"rankcraft/internal/llm"
	"rankcraft/internal/youtube"
	"rankcraft/pkg/prompts"
)

// enricher is the slice of the YouTube client the flows depend on.
type enricher interface {
	FetchChannelContent(ctx context.Context, rawURL string, sampleSize int) (*youtube.ChannelContent, error)
	KeywordSuggestions(ctx context.Context, topic string, limit int) ([]string, error)
}

// Generator owns the per-feature generation flows: it binds validated
// requests into prompts, calls the model, and enforces each feature's
// output schema.
type Generator struct {
	llm           llm.Client
	youtube       enricher
	prompts       *prompts.Prompts
	batchSize     int
	sampleSize    int
	suggestionCap int
}

type GeneratorOptions struct {
	LLM     llm.Client
	YouTube enricher
	Prompts *prompts.Prompts

	// IdeaBatchSize is the number of parallel generations per ideas request.
	IdeaBatchSize int
	// UploadSampleSize caps how many competitor uploads ground the analysis.
	UploadSampleSize int
	// SuggestionCap bounds the keyword suggestion list fed to the model.
	SuggestionCap int
}

func NewGenerator(opts GeneratorOptions) *Generator {
	batch := opts.IdeaBatchSize
	if batch <= 0 {
		batch = 5
	}
	sample := opts.UploadSampleSize
	if sample <= 0 {
		sample = 20
	}
	suggestions := opts.SuggestionCap
	if suggestions <= 0 {
		suggestions = 30
	}

	return &Generator{
		llm:           opts.LLM,
		youtube:       opts.YouTube,
		prompts:       opts.Prompts,
		batchSize:     batch,
		sampleSize:    sample,
		suggestionCap: suggestions,
	}
}
