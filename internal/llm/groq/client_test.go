package groq

import (
	"testing"
	"time"
)

func TestNewClientAppliesTimeout(t *testing.T) {
	client, err := NewClient("test-key", "llama-3.3-70b-versatile", 45*time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.Name() != "groq" {
		t.Errorf("got name %q", client.Name())
	}
}
