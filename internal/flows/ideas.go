package flows

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"rankcraft/internal/llm"
	"rankcraft/pkg/prompts"
)

const maxDescriptionLength = 150

type ideaEnvelope struct {
	Idea *ContentIdea `json:"idea"`
}

// GenerateIdeas fans out batchSize parallel single-idea generations and
// collects whatever succeeds. Individual failures are logged and counted,
// not raised; the call errors only when the whole batch fails.
func (g *Generator) GenerateIdeas(ctx context.Context, req IdeasRequest) (*IdeasResult, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	// Every generation sees the titles known at launch time: whatever the
	// caller already has. The list is a best-effort novelty hint, not a
	// uniqueness guarantee.
	existing := req.ExistingTitles

	type indexed struct {
		index int
		idea  *ContentIdea
		err   error
	}

	results := make(chan indexed, g.batchSize)
	var wg sync.WaitGroup
	for i := 0; i < g.batchSize; i++ {
		wg.Add(1)
		go func(index int) {
			defer wg.Done()
			idea, err := g.generateOneIdea(ctx, req, existing)
			results <- indexed{index: index, idea: idea, err: err}
		}(i)
	}
	wg.Wait()
	close(results)

	ordered := make([]*ContentIdea, g.batchSize)
	failed := 0
	for r := range results {
		if r.err != nil {
			failed++
			slog.Warn("idea generation failed", "index", r.index, "error", r.err)
			continue
		}
		ordered[r.index] = r.idea
	}

	result := &IdeasResult{Failed: failed}
	for _, idea := range ordered {
		if idea == nil {
			continue
		}
		postProcessIdea(idea)
		result.Ideas = append(result.Ideas, *idea)
	}

	if len(result.Ideas) == 0 {
		return nil, ErrNoIdeas
	}
	return result, nil
}

func (g *Generator) generateOneIdea(ctx context.Context, req IdeasRequest, existing []string) (*ContentIdea, error) {
	userPrompt, err := g.prompts.RenderIdea(prompts.IdeaParams{
		Category:       req.Category,
		Subcategory:    req.Subcategory,
		TargetAudience: req.TargetAudience,
		Language:       req.Language,
		Format:         req.Format,
		Tone:           req.Tone,
		ExistingTitles: existing,
	})
	if err != nil {
		return nil, err
	}

	content, err := g.llm.GenerateJSON(ctx, g.prompts.System.Ideas, userPrompt)
	if err != nil {
		return nil, err
	}

	envelope, err := llm.ParseObject[ideaEnvelope](content)
	if err != nil {
		return nil, err
	}
	if envelope.Idea == nil || envelope.Idea.Title == "" {
		return nil, &llm.SchemaError{Reason: "response is missing the idea"}
	}
	if err := enforceIdeaCounts(envelope.Idea); err != nil {
		return nil, err
	}
	return envelope.Idea, nil
}

// enforceIdeaCounts applies the fixed sub-array sizes: surplus entries are
// truncated, a deficit rejects the idea.
func enforceIdeaCounts(idea *ContentIdea) error {
	counts := []struct {
		field string
		want  int
		items *[]string
	}{
		{"seoTitleVariations", TitleVariationCount, &idea.SEOTitleVariations},
		{"thumbnailConcepts", 3, &idea.ThumbnailConcepts},
		{"tags", 5, &idea.Tags},
		{"timestampedStructurePoints", 3, &idea.TimestampedStructurePoints},
	}

	for _, c := range counts {
		if len(*c.items) < c.want {
			return &llm.SchemaError{
				Reason: fmt.Sprintf("expected %d %s, got %d", c.want, c.field, len(*c.items)),
			}
		}
		*c.items = (*c.items)[:c.want]
	}
	return nil
}

func postProcessIdea(idea *ContentIdea) {
	if runes := []rune(idea.ShortDescription); len(runes) > maxDescriptionLength {
		idea.ShortDescription = string(runes[:maxDescriptionLength])
	}
	for i, tag := range idea.Tags {
		idea.Tags[i] = strings.ToLower(tag)
	}
}
