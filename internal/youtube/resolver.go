package youtube

import (
	"context"
	"regexp"
)

// Video id patterns are tried before channel patterns so a watch URL that
// happens to carry extra path segments still resolves through its video.
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`[?&]v=([a-zA-Z0-9_-]+)`),
	regexp.MustCompile(`youtu\.be/([a-zA-Z0-9_-]+)`),
	regexp.MustCompile(`/embed/([a-zA-Z0-9_-]+)`),
	regexp.MustCompile(`/v/([a-zA-Z0-9_-]+)`),
}

var channelIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`/channel/([a-zA-Z0-9_-]+)`),
	regexp.MustCompile(`/c/([a-zA-Z0-9_-]+)`),
	regexp.MustCompile(`/user/([a-zA-Z0-9_-]+)`),
}

var handlePattern = regexp.MustCompile(`/@([a-zA-Z0-9_.-]+)`)

// ExtractVideoID pulls a video id out of a watch, short-link, embed or /v/
// URL. Returns "" when the URL matches none of the known shapes.
func ExtractVideoID(rawURL string) string {
	for _, p := range videoIDPatterns {
		if m := p.FindStringSubmatch(rawURL); m != nil {
			return m[1]
		}
	}
	return ""
}

func extractChannelID(rawURL string) string {
	for _, p := range channelIDPatterns {
		if m := p.FindStringSubmatch(rawURL); m != nil {
			return m[1]
		}
	}
	return ""
}

func extractHandle(rawURL string) string {
	if m := handlePattern.FindStringSubmatch(rawURL); m != nil {
		return m[1]
	}
	return ""
}

// ResolveChannelID turns any supported YouTube URL into a channel id. Video
// URLs resolve through the video's owning channel, /channel/ style URLs yield
// the id directly, and @handle URLs fall back to a channel search taking the
// top result.
func (c *Client) ResolveChannelID(ctx context.Context, rawURL string) (string, error) {
	if videoID := ExtractVideoID(rawURL); videoID != "" {
		videos, err := c.Videos(ctx, []string{videoID})
		if err != nil {
			return "", err
		}
		if len(videos) == 0 || videos[0].ChannelID == "" {
			return "", &ResolutionError{URL: rawURL, Reason: "video not found"}
		}
		return videos[0].ChannelID, nil
	}

	if channelID := extractChannelID(rawURL); channelID != "" {
		return channelID, nil
	}

	if handle := extractHandle(rawURL); handle != "" {
		id, err := c.SearchChannelID(ctx, handle)
		if err != nil {
			if rerr, ok := err.(*ResolutionError); ok {
				rerr.URL = rawURL
			}
			return "", err
		}
		return id, nil
	}

	return "", &ResolutionError{URL: rawURL, Reason: "unrecognized YouTube URL"}
}
