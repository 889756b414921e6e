package config

const (
	defaultBind           = "127.0.0.1:8001"
	defaultYouTubeBaseURL = "https://www.youtube.com"
	defaultYouTubeTimeout = 10
	defaultLogDir         = "~/.local/share/scribe/logs"
	defaultLogFormat      = "auto"
	defaultLogLevel       = "info"
)

func defaultLanguages() []string {
	return []string{"en"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Server: Server{
			Bind: defaultBind,
		},
		YouTube: YouTube{
			BaseURL:        defaultYouTubeBaseURL,
			TimeoutSeconds: defaultYouTubeTimeout,
			Languages:      defaultLanguages(),
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
			Dir:    defaultLogDir,
		},
	}
}
