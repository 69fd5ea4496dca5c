package flows

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoIdeas means every generation in an ideas batch failed.
var ErrNoIdeas = errors.New("all idea generations failed")

// ValidationError reports request fields that violate input rules. It is
// raised before any remote call is made.
type ValidationError struct {
	Violations []FieldViolation
}

type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = fmt.Sprintf("%s: %s", v.Field, v.Message)
	}
	return "invalid request: " + strings.Join(parts, "; ")
}
