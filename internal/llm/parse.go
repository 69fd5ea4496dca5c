package llm

import (
	"encoding/json"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// ParseObject decodes an LLM response into T. Markdown fences are stripped
// and malformed JSON gets one repair pass before the response is rejected.
func ParseObject[T any](content string) (*T, error) {
	raw := stripFences(content)

	var result T
	if err := json.Unmarshal([]byte(raw), &result); err == nil {
		return &result, nil
	}

	repaired, err := jsonrepair.JSONRepair(raw)
	if err != nil {
		return nil, &SchemaError{Reason: "invalid JSON", Err: err}
	}
	if err := json.Unmarshal([]byte(repaired), &result); err != nil {
		return nil, &SchemaError{Reason: "invalid JSON after repair", Err: err}
	}
	return &result, nil
}

// stripFences removes a surrounding markdown code fence, if present, and
// otherwise trims to the outermost JSON object or array.
func stripFences(content string) string {
	s := strings.TrimSpace(content)

	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
		return strings.TrimSpace(s)
	}

	start := strings.IndexAny(s, "{[")
	if start < 0 {
		return s
	}
	end := strings.LastIndexAny(s, "}]")
	if end <= start {
		return s
	}
	return s[start : end+1]
}
