package flows

import (
	"context"
	"fmt"

	"rankcraft/internal/llm"
	"rankcraft/pkg/prompts"
)

type keywordEnvelope struct {
	Keywords []Keyword `json:"keywords"`
}

// ResearchKeywords enriches a topic with live YouTube keyword suggestions
// and has the model select and score exactly KeywordCount of them. Surplus
// entries are truncated; a deficit is a schema failure.
func (g *Generator) ResearchKeywords(ctx context.Context, req KeywordsRequest) ([]Keyword, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	suggestions, err := g.youtube.KeywordSuggestions(ctx, req.Topic, g.suggestionCap)
	if err != nil {
		return nil, fmt.Errorf("fetch keyword suggestions: %w", err)
	}

	userPrompt, err := g.prompts.RenderKeywords(prompts.KeywordParams{
		Topic:       req.Topic,
		Suggestions: suggestions,
	})
	if err != nil {
		return nil, err
	}

	raw, err := g.llm.GenerateJSON(ctx, g.prompts.System.Keywords, userPrompt)
	if err != nil {
		return nil, err
	}

	envelope, err := llm.ParseObject[keywordEnvelope](raw)
	if err != nil {
		return nil, err
	}

	keywords := envelope.Keywords
	if len(keywords) < KeywordCount {
		return nil, &llm.SchemaError{
			Reason: fmt.Sprintf("expected %d keywords, got %d", KeywordCount, len(keywords)),
		}
	}
	keywords = keywords[:KeywordCount]

	for _, k := range keywords {
		if !validLevel(k.Competition) {
			return nil, &llm.SchemaError{Reason: fmt.Sprintf("invalid competition level %q", k.Competition)}
		}
		if !validLevel(k.Difficulty) {
			return nil, &llm.SchemaError{Reason: fmt.Sprintf("invalid difficulty level %q", k.Difficulty)}
		}
	}
	return keywords, nil
}

func validLevel(level string) bool {
	return level == "low" || level == "medium" || level == "high"
}
