package flows

import (
	"context"
	"fmt"

	"rankcraft/internal/llm"
	"rankcraft/pkg/prompts"
)

type rankEnvelope struct {
	RankedKeywords []RankedKeyword `json:"rankedKeywords"`
}

// TrackRanks produces a simulated rank report of exactly RankCount keywords
// for a topic and URL. The data is model-generated, not live search results.
func (g *Generator) TrackRanks(ctx context.Context, req RanksRequest) ([]RankedKeyword, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	userPrompt, err := g.prompts.RenderRanks(prompts.RankParams{
		Topic: req.Topic,
		URL:   req.URL,
	})
	if err != nil {
		return nil, err
	}

	raw, err := g.llm.GenerateJSON(ctx, g.prompts.System.Ranks, userPrompt)
	if err != nil {
		return nil, err
	}

	envelope, err := llm.ParseObject[rankEnvelope](raw)
	if err != nil {
		return nil, err
	}

	ranked := envelope.RankedKeywords
	if len(ranked) < RankCount {
		return nil, &llm.SchemaError{
			Reason: fmt.Sprintf("expected %d ranked keywords, got %d", RankCount, len(ranked)),
		}
	}
	ranked = ranked[:RankCount]

	for _, r := range ranked {
		if !validLevel(r.Competition) {
			return nil, &llm.SchemaError{Reason: fmt.Sprintf("invalid competition level %q", r.Competition)}
		}
	}
	return ranked, nil
}
