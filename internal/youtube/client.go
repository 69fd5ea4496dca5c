package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultBaseURL = "https://www.googleapis.com/youtube/v3"

// Client is a read-only YouTube Data API v3 client authenticated with an API
// key. Calls are never retried; failures carry a normalized provider message.
type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
}

type Config struct {
	APIKey  string
	Timeout time.Duration
}

// Video is the subset of video metadata this service consumes.
type Video struct {
	ID        string
	Title     string
	ChannelID string
	Tags      []string
	ViewCount uint64
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}

	return &Client{
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    defaultBaseURL,
	}
}

type videoListResponse struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title     string   `json:"title"`
			ChannelID string   `json:"channelId"`
			Tags      []string `json:"tags"`
		} `json:"snippet"`
		Statistics struct {
			ViewCount string `json:"viewCount"`
		} `json:"statistics"`
	} `json:"items"`
}

type channelListResponse struct {
	Items []struct {
		ContentDetails struct {
			RelatedPlaylists struct {
				Uploads string `json:"uploads"`
			} `json:"relatedPlaylists"`
		} `json:"contentDetails"`
	} `json:"items"`
}

type playlistItemsResponse struct {
	Items []struct {
		ContentDetails struct {
			VideoID string `json:"videoId"`
		} `json:"contentDetails"`
	} `json:"items"`
}

type searchListResponse struct {
	Items []struct {
		ID struct {
			VideoID   string `json:"videoId"`
			ChannelID string `json:"channelId"`
		} `json:"id"`
		Snippet struct {
			Title     string `json:"title"`
			ChannelID string `json:"channelId"`
		} `json:"snippet"`
	} `json:"items"`
}

// Videos fetches snippet and statistics for up to 50 video ids.
func (c *Client) Videos(ctx context.Context, ids []string) ([]Video, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	params := url.Values{}
	params.Set("part", "snippet,statistics")
	params.Set("id", joinIDs(ids))

	var resp videoListResponse
	if err := c.get(ctx, "/videos", params, &resp); err != nil {
		return nil, err
	}

	videos := make([]Video, 0, len(resp.Items))
	for _, item := range resp.Items {
		views, _ := strconv.ParseUint(item.Statistics.ViewCount, 10, 64)
		videos = append(videos, Video{
			ID:        item.ID,
			Title:     item.Snippet.Title,
			ChannelID: item.Snippet.ChannelID,
			Tags:      item.Snippet.Tags,
			ViewCount: views,
		})
	}
	return videos, nil
}

// UploadsPlaylistID returns the id of the channel's uploads playlist.
func (c *Client) UploadsPlaylistID(ctx context.Context, channelID string) (string, error) {
	params := url.Values{}
	params.Set("part", "contentDetails")
	params.Set("id", channelID)

	var resp channelListResponse
	if err := c.get(ctx, "/channels", params, &resp); err != nil {
		return "", err
	}

	if len(resp.Items) == 0 || resp.Items[0].ContentDetails.RelatedPlaylists.Uploads == "" {
		return "", &ResolutionError{Reason: fmt.Sprintf("no uploads playlist found for channel %s", channelID)}
	}
	return resp.Items[0].ContentDetails.RelatedPlaylists.Uploads, nil
}

// PlaylistVideoIDs lists up to max video ids from a playlist.
func (c *Client) PlaylistVideoIDs(ctx context.Context, playlistID string, max int) ([]string, error) {
	params := url.Values{}
	params.Set("part", "contentDetails")
	params.Set("playlistId", playlistID)
	params.Set("maxResults", strconv.Itoa(max))

	var resp playlistItemsResponse
	if err := c.get(ctx, "/playlistItems", params, &resp); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.ContentDetails.VideoID != "" {
			ids = append(ids, item.ContentDetails.VideoID)
		}
	}
	return ids, nil
}

// SearchChannelID returns the channel id of the top channel search result.
func (c *Client) SearchChannelID(ctx context.Context, name string) (string, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("q", name)
	params.Set("type", "channel")
	params.Set("maxResults", "1")

	var resp searchListResponse
	if err := c.get(ctx, "/search", params, &resp); err != nil {
		return "", err
	}

	if len(resp.Items) == 0 {
		return "", &ResolutionError{Reason: fmt.Sprintf("no channel found for %q", name)}
	}
	if id := resp.Items[0].ID.ChannelID; id != "" {
		return id, nil
	}
	return resp.Items[0].Snippet.ChannelID, nil
}

// SearchVideoIDs returns ids and titles of the top video results for a query.
func (c *Client) SearchVideoIDs(ctx context.Context, query string, max int) ([]string, []string, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("q", query)
	params.Set("type", "video")
	params.Set("maxResults", strconv.Itoa(max))

	var resp searchListResponse
	if err := c.get(ctx, "/search", params, &resp); err != nil {
		return nil, nil, err
	}

	var ids, titles []string
	for _, item := range resp.Items {
		if item.ID.VideoID == "" {
			continue
		}
		ids = append(ids, item.ID.VideoID)
		titles = append(titles, item.Snippet.Title)
	}
	return ids, titles, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("youtube api: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("youtube api: %s", errorMessage(resp.StatusCode, body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}
	return nil
}

func joinIDs(ids []string) string {
	out := ids[0]
	for _, id := range ids[1:] {
		out += "," + id
	}
	return out
}
