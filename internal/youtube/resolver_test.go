package youtube

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"watch URL", "https://www.youtube.com/watch?v=ABC123", "ABC123"},
		{"short link with params", "https://youtu.be/XYZ789?foo=bar", "XYZ789"},
		{"embed URL", "https://www.youtube.com/embed/DEF456", "DEF456"},
		{"legacy v path", "https://www.youtube.com/v/GHI000", "GHI000"},
		{"watch URL extra params", "https://www.youtube.com/watch?list=PL1&v=JKL111", "JKL111"},
		{"channel URL", "https://www.youtube.com/channel/UC999", ""},
		{"not a video", "https://example.com/watch", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractVideoID(tt.url); got != tt.want {
				t.Errorf("ExtractVideoID(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestResolveChannelIDDirect(t *testing.T) {
	client := NewClient(Config{APIKey: "test"})

	got, err := client.ResolveChannelID(context.Background(), "https://www.youtube.com/channel/UC999")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "UC999" {
		t.Errorf("got channel id %q, want UC999", got)
	}
}

func TestResolveChannelIDViaVideo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/videos" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("id"); got != "ABC123" {
			t.Errorf("got video id %q, want ABC123", got)
		}
		w.Write([]byte(`{"items":[{"id":"ABC123","snippet":{"title":"T","channelId":"UCowner"},"statistics":{"viewCount":"10"}}]}`))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test"})
	client.baseURL = server.URL

	got, err := client.ResolveChannelID(context.Background(), "https://www.youtube.com/watch?v=ABC123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "UCowner" {
		t.Errorf("got channel id %q, want UCowner", got)
	}
}

func TestResolveChannelIDHandleFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("q"); got != "somecreator" {
			t.Errorf("got query %q, want somecreator", got)
		}
		if got := r.URL.Query().Get("type"); got != "channel" {
			t.Errorf("got type %q, want channel", got)
		}
		w.Write([]byte(`{"items":[{"id":{"channelId":"UChandle"},"snippet":{"title":"Some Creator"}}]}`))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test"})
	client.baseURL = server.URL

	got, err := client.ResolveChannelID(context.Background(), "https://www.youtube.com/@somecreator")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "UChandle" {
		t.Errorf("got channel id %q, want UChandle", got)
	}
}

func TestResolveChannelIDUnrecognized(t *testing.T) {
	client := NewClient(Config{APIKey: "test"})

	_, err := client.ResolveChannelID(context.Background(), "https://example.com/nothing")
	var rerr *ResolutionError
	if !errors.As(err, &rerr) {
		t.Fatalf("got %v, want ResolutionError", err)
	}
}

func TestResolveChannelIDVideoNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[]}`))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test"})
	client.baseURL = server.URL

	_, err := client.ResolveChannelID(context.Background(), "https://youtu.be/GONE")
	var rerr *ResolutionError
	if !errors.As(err, &rerr) {
		t.Fatalf("got %v, want ResolutionError", err)
	}
}
