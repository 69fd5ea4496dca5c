package flows

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

const minFieldLength = 2

// validator accumulates field violations so a request reports every problem
// at once instead of failing on the first.
type validator struct {
	violations []FieldViolation
}

func (v *validator) add(field, message string) {
	v.violations = append(v.violations, FieldViolation{Field: field, Message: message})
}

func (v *validator) minLen(field, value string) {
	if utf8.RuneCountInString(strings.TrimSpace(value)) < minFieldLength {
		v.add(field, fmt.Sprintf("must be at least %d characters", minFieldLength))
	}
}

func (v *validator) oneOf(field, value string, allowed ...string) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	v.add(field, fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")))
}

func (v *validator) validURL(field, value string) {
	u, err := url.Parse(strings.TrimSpace(value))
	if err != nil || u.Scheme == "" || u.Host == "" {
		v.add(field, "must be a valid URL")
	}
}

func (v *validator) dataURI(field, value string) {
	if !strings.HasPrefix(value, "data:") || !strings.Contains(value, ",") {
		v.add(field, "must be a data URI")
	}
}

func (v *validator) err() error {
	if len(v.violations) == 0 {
		return nil
	}
	return &ValidationError{Violations: v.violations}
}

func (r IdeasRequest) validate() error {
	var v validator
	v.minLen("category", r.Category)
	v.minLen("subcategory", r.Subcategory)
	v.minLen("targetAudience", r.TargetAudience)
	v.minLen("language", r.Language)
	v.oneOf("format", r.Format, "short", "long")
	v.minLen("tone", r.Tone)
	return v.err()
}

func (r CompetitorRequest) validate() error {
	var v validator
	v.validURL("sourceUrl", r.SourceURL)
	return v.err()
}

func (r KeywordsRequest) validate() error {
	var v validator
	v.minLen("topic", r.Topic)
	return v.err()
}

func (r CaptionsRequest) validate() error {
	var v validator
	v.minLen("topic", r.Topic)
	return v.err()
}

func (r RanksRequest) validate() error {
	var v validator
	v.minLen("topic", r.Topic)
	v.validURL("url", r.URL)
	return v.err()
}

func (r ThumbnailRequest) validate() error {
	var v validator
	v.dataURI("imageDataUri", r.ImageDataURI)
	v.minLen("videoTitle", r.VideoTitle)
	return v.err()
}

func (r RepurposeRequest) validate() error {
	var v validator
	v.minLen("videoDescription", r.VideoDescription)
	v.validURL("videoUrl", r.VideoURL)
	if len(r.Platforms) == 0 {
		v.add("platforms", "at least one target platform is required")
	}
	for i, p := range r.Platforms {
		if strings.TrimSpace(p) == "" {
			v.add(fmt.Sprintf("platforms[%d]", i), "must not be empty")
		}
	}
	return v.err()
}
