package youtube

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// ChannelContent is a sample of a channel's recent uploads, ordered by view
// count, used as grounding material for analysis.
type ChannelContent struct {
	ChannelID   string
	VideoTitles []string
	VideoTags   []string
}

// FetchChannelContent resolves a channel from any supported URL and samples
// up to sampleSize of its most recent uploads, sorted most-viewed first.
// Tags are deduplicated across the sample.
func (c *Client) FetchChannelContent(ctx context.Context, rawURL string, sampleSize int) (*ChannelContent, error) {
	channelID, err := c.ResolveChannelID(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	playlistID, err := c.UploadsPlaylistID(ctx, channelID)
	if err != nil {
		return nil, err
	}

	ids, err := c.PlaylistVideoIDs(ctx, playlistID, sampleSize)
	if err != nil {
		return nil, fmt.Errorf("list uploads: %w", err)
	}
	if len(ids) == 0 {
		return nil, &ResolutionError{URL: rawURL, Reason: "channel has no uploads to analyze"}
	}

	videos, err := c.Videos(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("fetch upload details: %w", err)
	}
	if len(videos) == 0 {
		return nil, &ResolutionError{URL: rawURL, Reason: "channel has no uploads to analyze"}
	}

	sort.Slice(videos, func(i, j int) bool {
		return videos[i].ViewCount > videos[j].ViewCount
	})

	content := &ChannelContent{ChannelID: channelID}
	seen := make(map[string]bool)
	for _, v := range videos {
		content.VideoTitles = append(content.VideoTitles, v.Title)
		for _, tag := range v.Tags {
			key := strings.ToLower(tag)
			if !seen[key] {
				seen[key] = true
				content.VideoTags = append(content.VideoTags, tag)
			}
		}
	}
	return content, nil
}

var longTailTemplates = []string{
	"%s tutorial",
	"how to use %s",
	"%s for beginners",
	"best %s tips",
	"%s explained",
}

var tokenPattern = regexp.MustCompile(`[a-z0-9]+(?:[ '][a-z0-9]+)*`)

// KeywordSuggestions builds candidate keywords for a topic from live search
// results: phrases mined from result titles and tags, plus templated
// long-tail variants of the topic. Deduplicated and capped at limit entries.
func (c *Client) KeywordSuggestions(ctx context.Context, topic string, limit int) ([]string, error) {
	ids, titles, err := c.SearchVideoIDs(ctx, topic, 10)
	if err != nil {
		return nil, err
	}

	var tags []string
	if len(ids) > 0 {
		videos, err := c.Videos(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("fetch search result details: %w", err)
		}
		for _, v := range videos {
			tags = append(tags, v.Tags...)
		}
	}

	var suggestions []string
	seen := make(map[string]bool)
	add := func(s string) {
		s = strings.TrimSpace(strings.ToLower(s))
		if len(s) < 4 || seen[s] {
			return
		}
		seen[s] = true
		suggestions = append(suggestions, s)
	}

	for _, t := range longTailTemplates {
		add(fmt.Sprintf(t, topic))
	}
	for _, tag := range tags {
		add(tag)
	}
	for _, title := range titles {
		for _, phrase := range tokenPattern.FindAllString(strings.ToLower(title), -1) {
			add(phrase)
		}
	}

	if limit > 0 && len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions, nil
}
