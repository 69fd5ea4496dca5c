package llm

import (
	"errors"
	"testing"
)

type payload struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

func TestParseObject(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    payload
		wantErr bool
	}{
		{
			name:    "clean JSON",
			content: `{"name":"a","items":["x","y"]}`,
			want:    payload{Name: "a", Items: []string{"x", "y"}},
		},
		{
			name:    "fenced JSON",
			content: "```json\n{\"name\":\"a\",\"items\":[\"x\"]}\n```",
			want:    payload{Name: "a", Items: []string{"x"}},
		},
		{
			name:    "fence without language",
			content: "```\n{\"name\":\"a\"}\n```",
			want:    payload{Name: "a"},
		},
		{
			name:    "prose around the object",
			content: `Here is the result: {"name":"a"} hope that helps!`,
			want:    payload{Name: "a"},
		},
		{
			name:    "trailing comma repaired",
			content: `{"name":"a","items":["x",],}`,
			want:    payload{Name: "a", Items: []string{"x"}},
		},
		{
			name:    "single quotes repaired",
			content: `{'name': 'a'}`,
			want:    payload{Name: "a"},
		},
		{
			name:    "not JSON at all",
			content: `sorry, I cannot help with that`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseObject[payload](tt.content)
			if tt.wantErr {
				var serr *SchemaError
				if !errors.As(err, &serr) {
					t.Fatalf("got %v, want SchemaError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Name != tt.want.Name || len(got.Items) != len(tt.want.Items) {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSchemaErrorUnwrap(t *testing.T) {
	inner := errors.New("boom")
	err := &SchemaError{Reason: "bad shape", Err: inner}

	if !errors.Is(err, inner) {
		t.Error("SchemaError does not unwrap to its cause")
	}
	if err.Error() == "" {
		t.Error("empty error string")
	}
}
