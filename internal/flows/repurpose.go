package flows

import (
	"context"
	"fmt"

	"rankcraft/internal/llm"
	"rankcraft/pkg/prompts"
)

type scriptEnvelope struct {
	ShortScripts []ShortScript `json:"shortScripts"`
}

// RepurposeVideo turns a long-form video into one short script per target
// platform.
func (g *Generator) RepurposeVideo(ctx context.Context, req RepurposeRequest) ([]ShortScript, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	userPrompt, err := g.prompts.RenderRepurpose(prompts.RepurposeParams{
		VideoDescription: req.VideoDescription,
		VideoURL:         req.VideoURL,
		Platforms:        req.Platforms,
	})
	if err != nil {
		return nil, err
	}

	raw, err := g.llm.GenerateJSON(ctx, g.prompts.System.Repurpose, userPrompt)
	if err != nil {
		return nil, err
	}

	envelope, err := llm.ParseObject[scriptEnvelope](raw)
	if err != nil {
		return nil, err
	}

	scripts := envelope.ShortScripts
	if len(scripts) < len(req.Platforms) {
		return nil, &llm.SchemaError{
			Reason: fmt.Sprintf("expected %d scripts, got %d", len(req.Platforms), len(scripts)),
		}
	}
	return scripts[:len(req.Platforms)], nil
}
