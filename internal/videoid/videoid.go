package videoid

import (
	"fmt"
	"net/url"
	"strings"

	"scribe/internal/services"
)

// ParseError reports an input from which no video identifier could be derived.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("no video id derivable from %q", e.Input)
}

// Detail returns the original input so clients see exactly what was rejected.
func (e *ParseError) Detail() string { return e.Input }

// Unwrap ties parse failures into the shared failure taxonomy.
func (e *ParseError) Unwrap() error { return services.ErrInvalidURL }

// matchers is the ordered list of recognized URL shapes. The first match wins,
// so more specific shapes come before the generic query fallback.
var matchers = []func(u *url.URL) (string, bool){
	matchShorts,
	matchWatch,
	matchShortLink,
	matchEmbed,
	matchLegacyPlayer,
	matchQueryFallback,
}

// Extract derives the video identifier from a user-supplied URL string. It
// performs no network access and no identifier validation beyond structural
// extraction; YouTube's current 11-character convention is never assumed.
func Extract(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", &ParseError{Input: raw}
	}
	parsed, err := parseLenient(trimmed)
	if err != nil {
		return "", &ParseError{Input: raw}
	}
	for _, match := range matchers {
		if id, ok := match(parsed); ok {
			return id, nil
		}
	}
	return "", &ParseError{Input: raw}
}

// parseLenient accepts scheme-less inputs such as "youtube.com/watch?v=x" by
// retrying with an https prefix when the first parse yields no host.
func parseLenient(raw string) (*url.URL, error) {
	parsed, err := url.Parse(raw)
	if err == nil && parsed.Host != "" {
		return parsed, nil
	}
	retry, retryErr := url.Parse("https://" + raw)
	if retryErr == nil && retry.Host != "" {
		return retry, nil
	}
	if err != nil {
		return nil, err
	}
	return parsed, nil
}

// matchShorts extracts from youtube.com/shorts/<id> and youtu.be/shorts/<id>.
func matchShorts(u *url.URL) (string, bool) {
	if !isYouTubeHost(u) && !isShortHost(u) {
		return "", false
	}
	segments := pathSegments(u)
	if len(segments) >= 2 && segments[0] == "shorts" {
		return segments[1], segments[1] != ""
	}
	return "", false
}

// matchWatch extracts the v query parameter from youtube.com/watch URLs.
func matchWatch(u *url.URL) (string, bool) {
	if !isYouTubeHost(u) {
		return "", false
	}
	segments := pathSegments(u)
	if len(segments) == 0 || segments[0] != "watch" {
		return "", false
	}
	id := u.Query().Get("v")
	return id, id != ""
}

// matchShortLink extracts the leading path segment from youtu.be links.
func matchShortLink(u *url.URL) (string, bool) {
	if !isShortHost(u) {
		return "", false
	}
	segments := pathSegments(u)
	if len(segments) == 0 {
		return "", false
	}
	return segments[0], segments[0] != ""
}

// matchEmbed extracts from youtube.com/embed/<id> player URLs.
func matchEmbed(u *url.URL) (string, bool) {
	if !isYouTubeHost(u) {
		return "", false
	}
	segments := pathSegments(u)
	if len(segments) >= 2 && segments[0] == "embed" {
		return segments[1], segments[1] != ""
	}
	return "", false
}

// matchLegacyPlayer extracts from the legacy youtube.com/v/<id> player path.
func matchLegacyPlayer(u *url.URL) (string, bool) {
	if !isYouTubeHost(u) {
		return "", false
	}
	segments := pathSegments(u)
	if len(segments) >= 2 && segments[0] == "v" {
		return segments[1], segments[1] != ""
	}
	return "", false
}

// matchQueryFallback accepts any youtube.com path carrying a v parameter.
func matchQueryFallback(u *url.URL) (string, bool) {
	if !isYouTubeHost(u) {
		return "", false
	}
	id := u.Query().Get("v")
	return id, id != ""
}

func isYouTubeHost(u *url.URL) bool {
	host := strings.ToLower(u.Hostname())
	return host == "youtube.com" || strings.HasSuffix(host, ".youtube.com")
}

func isShortHost(u *url.URL) bool {
	return strings.ToLower(u.Hostname()) == "youtu.be"
}

func pathSegments(u *url.URL) []string {
	trimmed := strings.Trim(u.EscapedPath(), "/")
	if trimmed == "" {
		return nil
	}
	segments := strings.Split(trimmed, "/")
	for i, segment := range segments {
		if unescaped, err := url.PathUnescape(segment); err == nil {
			segments[i] = unescaped
		}
	}
	return segments
}
