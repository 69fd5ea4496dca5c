package llm

import (
	"context"
	"fmt"
)

// Client is a text-generation backend. Implementations issue exactly one
// outbound call per invocation and never retry; retry policy belongs to the
// caller.
type Client interface {
	Name() string
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	GenerateJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	GenerateImageJSON(ctx context.Context, systemPrompt, userPrompt, mimeType string, image []byte) (string, error)
}

// SchemaError reports a response that could not be parsed into the expected
// structure. Callers treat it the same as a transport failure: the
// generation failed.
type SchemaError struct {
	Reason string
	Err    error
}

func (e *SchemaError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("response does not match expected schema: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("response does not match expected schema: %s", e.Reason)
}

func (e *SchemaError) Unwrap() error { return e.Err }
