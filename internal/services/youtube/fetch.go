package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"scribe/internal/services"
	"scribe/internal/transcript"
)

// FetchTranscript downloads the caption transcript for a video id.
func (c *Client) FetchTranscript(ctx context.Context, videoID string) (transcript.Transcript, error) {
	var empty transcript.Transcript

	page, err := c.fetchWatchPage(ctx, videoID)
	if err != nil {
		return empty, err
	}
	player, err := parsePlayerResponse(page)
	if err != nil {
		return empty, services.Wrap(services.ErrUpstream, "youtube", "fetch", "parse watch page", err)
	}
	if err := player.playable(); err != nil {
		return empty, err
	}

	tracks := player.captionTracks()
	if len(tracks) == 0 {
		return empty, services.Wrap(services.ErrTranscriptsDisabled, "youtube", "fetch", "video has no caption tracks", nil)
	}
	track := selectTrack(tracks, c.preferences)
	if strings.TrimSpace(track.BaseURL) == "" {
		return empty, services.Wrap(services.ErrUpstream, "youtube", "fetch", "caption track has no url", nil)
	}

	segments, err := c.fetchTimedText(ctx, track.BaseURL)
	if err != nil {
		return empty, err
	}
	return transcript.Transcript{
		Segments:  segments,
		Language:  track.LanguageCode,
		Generated: track.Generated(),
	}, nil
}

func (c *Client) fetchWatchPage(ctx context.Context, videoID string) (string, error) {
	watchURL := fmt.Sprintf("%s/watch?v=%s", c.baseURL, videoID)
	resp, err := c.get(ctx, watchURL)
	if err != nil {
		return "", services.Wrap(services.ErrUpstream, "youtube", "fetch", "request watch page", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return "", services.Wrap(services.ErrVideoUnavailable, "youtube", "fetch", fmt.Sprintf("watch page returned %d", resp.StatusCode), nil)
	case resp.StatusCode != http.StatusOK:
		return "", services.Wrap(services.ErrUpstream, "youtube", "fetch", fmt.Sprintf("watch page returned %d", resp.StatusCode), nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", services.Wrap(services.ErrUpstream, "youtube", "fetch", "read watch page", err)
	}
	return string(body), nil
}

func (c *Client) fetchTimedText(ctx context.Context, trackURL string) ([]transcript.Segment, error) {
	resp, err := c.get(ctx, c.timedTextURL(trackURL))
	if err != nil {
		return nil, services.Wrap(services.ErrUpstream, "youtube", "fetch", "request timedtext", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, services.Wrap(services.ErrUpstream, "youtube", "fetch", fmt.Sprintf("timedtext returned %d", resp.StatusCode), nil)
	}
	var payload timedTextResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, services.Wrap(services.ErrUpstream, "youtube", "fetch", "decode timedtext", err)
	}
	return payload.segments(), nil
}

// timedTextURL resolves a caption track url against the client base and
// requests the json3 format.
func (c *Client) timedTextURL(trackURL string) string {
	if strings.HasPrefix(trackURL, "/") {
		trackURL = c.baseURL + trackURL
	}
	if strings.Contains(trackURL, "?") {
		return trackURL + "&fmt=json3"
	}
	return trackURL + "?fmt=json3"
}

func (c *Client) get(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	c.setHeaders(req)
	return c.httpClient.Do(req)
}
