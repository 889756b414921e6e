package youtube

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"

	"scribe/internal/config"
)

const (
	defaultBaseURL     = "https://www.youtube.com"
	defaultHTTPTimeout = 10 * time.Second
)

// Config captures the settings the YouTube client needs.
type Config struct {
	// BaseURL is the YouTube origin, overridable for tests.
	BaseURL string
	// Timeout bounds each upstream request.
	Timeout time.Duration
	// Languages lists caption language preferences in priority order.
	Languages []string
	// ProxyURL optionally routes requests through an http, https, or
	// socks5 proxy.
	ProxyURL string
	// UserAgents overrides the built-in User-Agent rotation pool.
	UserAgents []string
}

// ConfigFrom maps the application configuration into client settings.
func ConfigFrom(cfg *config.Config) Config {
	if cfg == nil {
		return Config{}
	}
	return Config{
		BaseURL:    cfg.YouTube.BaseURL,
		Timeout:    time.Duration(cfg.YouTube.TimeoutSeconds) * time.Second,
		Languages:  cfg.YouTube.Languages,
		ProxyURL:   cfg.YouTube.ProxyURL,
		UserAgents: cfg.YouTube.UserAgents,
	}
}

// Client scrapes transcripts from YouTube watch pages.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	preferences []language.Tag
	userAgents  []string
	pickIndex   func(n int) int
}

// Option customizes the YouTube client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// New constructs a YouTube transcript client.
func New(cfg Config, opts ...Option) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	transport, err := buildTransport(cfg.ProxyURL)
	if err != nil {
		return nil, err
	}
	client := &Client{
		baseURL:     strings.TrimRight(base, "/"),
		httpClient:  &http.Client{Timeout: timeout, Transport: transport},
		preferences: parsePreferences(cfg.Languages),
		userAgents:  agentPool(cfg.UserAgents),
		pickIndex:   randomIndex,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

func parsePreferences(codes []string) []language.Tag {
	tags := make([]language.Tag, 0, len(codes))
	for _, code := range codes {
		tag, err := language.Parse(strings.TrimSpace(code))
		if err != nil {
			continue
		}
		tags = append(tags, tag)
	}
	if len(tags) == 0 {
		tags = append(tags, language.English)
	}
	return tags
}
