package youtube

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newChannelServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/channels", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[{"contentDetails":{"relatedPlaylists":{"uploads":"UUfit"}}}]}`))
	})
	mux.HandleFunc("/playlistItems", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("maxResults"); got != "20" {
			t.Errorf("got maxResults %q, want 20", got)
		}
		w.Write([]byte(`{"items":[
			{"contentDetails":{"videoId":"v1"}},
			{"contentDetails":{"videoId":"v2"}},
			{"contentDetails":{"videoId":"v3"}}
		]}`))
	})
	mux.HandleFunc("/videos", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[
			{"id":"v1","snippet":{"title":"Morning Yoga","channelId":"UCfit","tags":["yoga","stretch"]},"statistics":{"viewCount":"100"}},
			{"id":"v2","snippet":{"title":"HIIT Blast","channelId":"UCfit","tags":["hiit","Yoga"]},"statistics":{"viewCount":"5000"}},
			{"id":"v3","snippet":{"title":"Cooldown","channelId":"UCfit"},"statistics":{"viewCount":"300"}}
		]}`))
	})
	return httptest.NewServer(mux)
}

func TestFetchChannelContent(t *testing.T) {
	server := newChannelServer(t)
	defer server.Close()

	client := NewClient(Config{APIKey: "test"})
	client.baseURL = server.URL

	content, err := client.FetchChannelContent(context.Background(), "https://www.youtube.com/channel/UCfit", 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantTitles := []string{"HIIT Blast", "Cooldown", "Morning Yoga"}
	if len(content.VideoTitles) != len(wantTitles) {
		t.Fatalf("got %d titles, want %d", len(content.VideoTitles), len(wantTitles))
	}
	for i, want := range wantTitles {
		if content.VideoTitles[i] != want {
			t.Errorf("titles[%d] = %q, want %q (sorted by views)", i, content.VideoTitles[i], want)
		}
	}

	// "Yoga" dedupes against "yoga" case-insensitively.
	wantTags := []string{"hiit", "Yoga", "stretch"}
	if len(content.VideoTags) != len(wantTags) {
		t.Fatalf("got tags %v, want %v", content.VideoTags, wantTags)
	}
}

func TestFetchChannelContentEmptyChannel(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/channels", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[{"contentDetails":{"relatedPlaylists":{"uploads":"UUempty"}}}]}`))
	})
	mux.HandleFunc("/playlistItems", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[]}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := NewClient(Config{APIKey: "test"})
	client.baseURL = server.URL

	_, err := client.FetchChannelContent(context.Background(), "https://www.youtube.com/channel/UCempty", 20)
	var rerr *ResolutionError
	if !errors.As(err, &rerr) {
		t.Fatalf("got %v, want ResolutionError", err)
	}
}

func TestKeywordSuggestions(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "sourdough baking" {
			t.Errorf("got query %q, want sourdough baking", got)
		}
		w.Write([]byte(`{"items":[
			{"id":{"videoId":"v1"},"snippet":{"title":"Sourdough Starter Guide"}},
			{"id":{"videoId":"v2"},"snippet":{"title":"Easy Sourdough Bread!"}}
		]}`))
	})
	mux.HandleFunc("/videos", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[
			{"id":"v1","snippet":{"title":"Sourdough Starter Guide","tags":["sourdough starter","baking"]},"statistics":{"viewCount":"1"}}
		]}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := NewClient(Config{APIKey: "test"})
	client.baseURL = server.URL

	suggestions, err := client.KeywordSuggestions(context.Background(), "sourdough baking", 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]bool{
		"sourdough baking tutorial":      true,
		"how to use sourdough baking":    true,
		"sourdough starter":              true,
		"sourdough starter guide":        true,
		"easy sourdough bread":           true,
	}
	got := make(map[string]bool, len(suggestions))
	for _, s := range suggestions {
		if got[s] {
			t.Errorf("duplicate suggestion %q", s)
		}
		got[s] = true
	}
	for s := range want {
		if !got[s] {
			t.Errorf("missing suggestion %q in %v", s, suggestions)
		}
	}
}

func TestKeywordSuggestionsCap(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		items := ""
		for i := 0; i < 10; i++ {
			if i > 0 {
				items += ","
			}
			items += fmt.Sprintf(`{"id":{"videoId":"v%d"},"snippet":{"title":"Unique Title Number %d About Things"}}`, i, i)
		}
		w.Write([]byte(`{"items":[` + items + `]}`))
	})
	mux.HandleFunc("/videos", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[]}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := NewClient(Config{APIKey: "test"})
	client.baseURL = server.URL

	suggestions, err := client.KeywordSuggestions(context.Background(), "things", 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(suggestions) > 8 {
		t.Errorf("got %d suggestions, want at most 8", len(suggestions))
	}
}
