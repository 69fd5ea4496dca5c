package flows

import (
	"context"
	"fmt"

	"rankcraft/internal/llm"
	"rankcraft/pkg/prompts"
)

type captionEnvelope struct {
	Captions []Caption `json:"captions"`
}

// GenerateCaptions produces exactly CaptionCount reel captions for a topic,
// each with its own call to action.
func (g *Generator) GenerateCaptions(ctx context.Context, req CaptionsRequest) ([]Caption, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	userPrompt, err := g.prompts.RenderCaptions(prompts.CaptionParams{
		Topic: req.Topic,
		Count: CaptionCount,
	})
	if err != nil {
		return nil, err
	}

	raw, err := g.llm.GenerateJSON(ctx, g.prompts.System.Captions, userPrompt)
	if err != nil {
		return nil, err
	}

	envelope, err := llm.ParseObject[captionEnvelope](raw)
	if err != nil {
		return nil, err
	}

	captions := envelope.Captions
	if len(captions) < CaptionCount {
		return nil, &llm.SchemaError{
			Reason: fmt.Sprintf("expected %d captions, got %d", CaptionCount, len(captions)),
		}
	}
	return captions[:CaptionCount], nil
}
