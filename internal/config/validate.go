package config

import (
	"fmt"
	"net"
	"net/url"

	"golang.org/x/text/language"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateYouTube(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if _, _, err := net.SplitHostPort(c.Server.Bind); err != nil {
		return fmt.Errorf("server.bind must be host:port, got %q: %w", c.Server.Bind, err)
	}
	return nil
}

func (c *Config) validateYouTube() error {
	parsed, err := url.Parse(c.YouTube.BaseURL)
	if err != nil {
		return fmt.Errorf("youtube.base_url is not a valid URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("youtube.base_url must use http or https, got %q", c.YouTube.BaseURL)
	}
	if parsed.Host == "" {
		return fmt.Errorf("youtube.base_url must include a host, got %q", c.YouTube.BaseURL)
	}
	for _, lang := range c.YouTube.Languages {
		if _, err := language.Parse(lang); err != nil {
			return fmt.Errorf("youtube.languages entry %q is not a valid language tag: %w", lang, err)
		}
	}
	if c.YouTube.ProxyURL != "" {
		proxy, err := url.Parse(c.YouTube.ProxyURL)
		if err != nil {
			return fmt.Errorf("youtube.proxy_url is not a valid URL: %w", err)
		}
		switch proxy.Scheme {
		case "http", "https", "socks5":
		default:
			return fmt.Errorf("youtube.proxy_url must use http, https, or socks5, got %q", c.YouTube.ProxyURL)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "auto", "console", "json":
	default:
		return fmt.Errorf("logging.format must be auto, console, or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
