package youtube

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ResolutionError means no usable channel or video identifier could be
// derived from the caller's input, or the resolved channel had nothing to
// analyze. It is a logical failure, distinct from a transport error.
type ResolutionError struct {
	URL    string
	Reason string
}

func (e *ResolutionError) Error() string {
	if e.URL != "" {
		return fmt.Sprintf("could not resolve %q: %s", e.URL, e.Reason)
	}
	return e.Reason
}

// errorMessage extracts a human-readable message from a provider error body.
// The API is inconsistent about its error shape, so extraction strategies are
// tried in a fixed order with a guaranteed fallback.
func errorMessage(status int, body []byte) string {
	// Shape 1: {"error": {"message": "..."}}
	var nested struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &nested); err == nil && nested.Error.Message != "" {
		return unwrapMessage(nested.Error.Message)
	}

	// Shape 2: {"errors": [{"message": "..."}]}
	var list struct {
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(body, &list); err == nil && len(list.Errors) > 0 && list.Errors[0].Message != "" {
		return unwrapMessage(list.Errors[0].Message)
	}

	// Shape 3: {"message": "..."}
	var flat struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &flat); err == nil && flat.Message != "" {
		return unwrapMessage(flat.Message)
	}

	return fmt.Sprintf("HTTP %d", status)
}

// unwrapMessage handles message fields that themselves contain a
// JSON-encoded object with its own message.
func unwrapMessage(msg string) string {
	trimmed := strings.TrimSpace(msg)
	if !strings.HasPrefix(trimmed, "{") {
		return msg
	}

	var inner struct {
		Message string `json:"message"`
		Error   struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal([]byte(trimmed), &inner); err != nil {
		return msg
	}
	if inner.Error.Message != "" {
		return inner.Error.Message
	}
	if inner.Message != "" {
		return inner.Message
	}
	return msg
}
