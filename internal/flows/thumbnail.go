package flows

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"rankcraft/internal/llm"
	"rankcraft/pkg/prompts"
)

// CritiqueThumbnail sends the decoded thumbnail image and video title to a
// vision-capable model and returns the structured critique.
func (g *Generator) CritiqueThumbnail(ctx context.Context, req ThumbnailRequest) (*ThumbnailReview, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	mimeType, image, err := decodeDataURI(req.ImageDataURI)
	if err != nil {
		return nil, &ValidationError{Violations: []FieldViolation{
			{Field: "imageDataUri", Message: err.Error()},
		}}
	}

	userPrompt, err := g.prompts.RenderThumbnail(prompts.ThumbnailParams{
		VideoTitle: req.VideoTitle,
	})
	if err != nil {
		return nil, err
	}

	raw, err := g.llm.GenerateImageJSON(ctx, g.prompts.System.Thumbnail, userPrompt, mimeType, image)
	if err != nil {
		return nil, err
	}

	review, err := llm.ParseObject[ThumbnailReview](raw)
	if err != nil {
		return nil, err
	}
	if review.CTRPredictionScore < 0 || review.CTRPredictionScore > 100 {
		return nil, &llm.SchemaError{
			Reason: fmt.Sprintf("ctrPredictionScore %d is outside [0, 100]", review.CTRPredictionScore),
		}
	}
	return review, nil
}

// decodeDataURI splits a "data:<mime>;base64,<payload>" URI into its media
// type and decoded bytes.
func decodeDataURI(uri string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return "", nil, fmt.Errorf("not a data URI")
	}

	header, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, fmt.Errorf("data URI has no payload")
	}

	mimeType, encoding, _ := strings.Cut(header, ";")
	if mimeType == "" {
		mimeType = "image/png"
	}
	if encoding != "base64" {
		return "", nil, fmt.Errorf("data URI must be base64 encoded")
	}

	image, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("decode image payload: %w", err)
	}
	return mimeType, image, nil
}
