package youtube

import (
	"fmt"
	"math/rand"
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

// defaultUserAgents covers current desktop and mobile browsers so transcript
// traffic blends in with ordinary page loads.
var defaultUserAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/121.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/121.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:122.0) Gecko/20100101 Firefox/122.0",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10.15; rv:122.0) Gecko/20100101 Firefox/122.0",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.2 Safari/605.1.15",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/121.0.0.0 Safari/537.36 Edg/121.0.0.0",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/121.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Linux; Android 13; Pixel 7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/121.0.0.0 Mobile Safari/537.36",
	"Mozilla/5.0 (iPhone; CPU iPhone OS 17_2 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1",
}

func agentPool(custom []string) []string {
	pool := make([]string, 0, len(custom))
	for _, agent := range custom {
		if trimmed := strings.TrimSpace(agent); trimmed != "" {
			pool = append(pool, trimmed)
		}
	}
	if len(pool) == 0 {
		return defaultUserAgents
	}
	return pool
}

func randomIndex(n int) int {
	if n <= 1 {
		return 0
	}
	return rand.Intn(n)
}

// setHeaders applies a rotating User-Agent plus browser-like headers.
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", c.userAgents[c.pickIndex(len(c.userAgents))])
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", acceptLanguage(c.preferences))
}

// acceptLanguage renders the preference list with descending quality values.
func acceptLanguage(tags []language.Tag) string {
	parts := make([]string, 0, len(tags))
	for i, tag := range tags {
		if i == 0 {
			parts = append(parts, tag.String())
			continue
		}
		q := 1.0 - 0.1*float64(i)
		if q < 0.1 {
			q = 0.1
		}
		parts = append(parts, fmt.Sprintf("%s;q=%.1f", tag, q))
	}
	return strings.Join(parts, ",")
}
