package youtube

import (
	"encoding/json"
	"errors"
	"strings"

	"scribe/internal/services"
	"scribe/internal/transcript"
)

// playerResponseMarker precedes the embedded player JSON on every watch page.
const playerResponseMarker = "var ytInitialPlayerResponse = "

type playerResponse struct {
	PlayabilityStatus struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	} `json:"playabilityStatus"`
	Captions struct {
		Renderer struct {
			CaptionTracks []captionTrack `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
	VideoDetails struct {
		Title string `json:"title"`
	} `json:"videoDetails"`
}

type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"`
	Name         struct {
		SimpleText string `json:"simpleText"`
	} `json:"name"`
}

// Generated reports whether the track was machine transcribed.
func (t captionTrack) Generated() bool {
	return t.Kind == "asr"
}

// parsePlayerResponse extracts the player JSON embedded in watch page HTML.
// The payload is a single object literal, so decoding one JSON value from the
// marker offset tolerates whatever script text follows it.
func parsePlayerResponse(page string) (*playerResponse, error) {
	idx := strings.Index(page, playerResponseMarker)
	if idx < 0 {
		return nil, errors.New("player response not found")
	}
	dec := json.NewDecoder(strings.NewReader(page[idx+len(playerResponseMarker):]))
	var player playerResponse
	if err := dec.Decode(&player); err != nil {
		return nil, err
	}
	return &player, nil
}

// playable classifies videos the watch page refuses to serve.
func (p *playerResponse) playable() error {
	status := strings.ToUpper(strings.TrimSpace(p.PlayabilityStatus.Status))
	switch status {
	case "", "OK":
		return nil
	case "ERROR", "LOGIN_REQUIRED", "UNPLAYABLE":
		message := "video is unavailable"
		if reason := strings.TrimSpace(p.PlayabilityStatus.Reason); reason != "" {
			message = reason
		}
		return services.Wrap(services.ErrVideoUnavailable, "youtube", "fetch", message, nil)
	default:
		return nil
	}
}

func (p *playerResponse) captionTracks() []captionTrack {
	return p.Captions.Renderer.CaptionTracks
}

type timedTextResponse struct {
	Events []timedTextEvent `json:"events"`
}

type timedTextEvent struct {
	StartMs    int64          `json:"tStartMs"`
	DurationMs int64          `json:"dDurationMs"`
	Segs       []timedTextSeg `json:"segs"`
}

type timedTextSeg struct {
	UTF8 string `json:"utf8"`
}

// segments converts json3 events into transcript segments, preserving event
// order. Events without text, such as window styling markers, are skipped.
func (r timedTextResponse) segments() []transcript.Segment {
	segments := make([]transcript.Segment, 0, len(r.Events))
	for _, event := range r.Events {
		if len(event.Segs) == 0 {
			continue
		}
		var parts []string
		for _, seg := range event.Segs {
			if seg.UTF8 != "" {
				parts = append(parts, seg.UTF8)
			}
		}
		text := strings.TrimSpace(strings.Join(parts, ""))
		if text == "" {
			continue
		}
		segments = append(segments, transcript.Segment{
			Text:     text,
			Start:    float64(event.StartMs) / 1000.0,
			Duration: float64(event.DurationMs) / 1000.0,
		})
	}
	return segments
}
