package flows

import (
	"context"
	"fmt"

	"rankcraft/internal/llm"
	"rankcraft/pkg/prompts"
)

// AnalyzeCompetitor resolves the channel behind a URL, samples its most
// viewed recent uploads and asks the model for an analysis grounded in that
// real data.
func (g *Generator) AnalyzeCompetitor(ctx context.Context, req CompetitorRequest) (*CompetitorAnalysis, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	content, err := g.youtube.FetchChannelContent(ctx, req.SourceURL, g.sampleSize)
	if err != nil {
		return nil, fmt.Errorf("fetch channel content: %w", err)
	}

	userPrompt, err := g.prompts.RenderCompetitor(prompts.CompetitorParams{
		SourceURL:   req.SourceURL,
		VideoTitles: content.VideoTitles,
		VideoTags:   content.VideoTags,
	})
	if err != nil {
		return nil, err
	}

	raw, err := g.llm.GenerateJSON(ctx, g.prompts.System.Competitor, userPrompt)
	if err != nil {
		return nil, err
	}

	analysis, err := llm.ParseObject[CompetitorAnalysis](raw)
	if err != nil {
		return nil, err
	}
	if len(analysis.TopVideos) < TopVideoCount {
		return nil, &llm.SchemaError{
			Reason: fmt.Sprintf("expected %d top videos, got %d", TopVideoCount, len(analysis.TopVideos)),
		}
	}
	analysis.TopVideos = analysis.TopVideos[:TopVideoCount]
	if len(analysis.ContentAngles) == 0 {
		return nil, &llm.SchemaError{Reason: "analysis is missing content angles"}
	}
	return analysis, nil
}
