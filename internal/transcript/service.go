package transcript

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"scribe/internal/logging"
	"scribe/internal/services"
	"scribe/internal/videoid"
)

// Service orchestrates a single transcript request: parse the URL, invoke the
// provider exactly once, and surface the result or its classified failure. It
// holds no state across requests and is safe for concurrent use.
type Service struct {
	provider Provider
	logger   *slog.Logger
}

// NewService wires a provider into a request handler. A nil logger falls back
// to a no-op logger.
func NewService(provider Provider, logger *slog.Logger) *Service {
	return &Service{
		provider: provider,
		logger:   logging.NewComponentLogger(logger, "transcript"),
	}
}

// Handle processes one transcript request. Failures are always classified:
// missing URL, underivable identifier, provider-reported conditions, and
// anything unrecognized as an upstream failure. There are no retries; a
// transient provider failure surfaces immediately.
func (s *Service) Handle(ctx context.Context, req Request) (Response, error) {
	rawURL := strings.TrimSpace(req.URL)
	if rawURL == "" {
		return Response{}, services.Wrap(services.ErrInvalidRequest, "transcript", "handle", "url is required", nil)
	}

	videoID, err := videoid.Extract(rawURL)
	if err != nil {
		s.logger.Debug("rejected url", logging.String("url", rawURL), logging.Error(err))
		return Response{}, err
	}

	ctx = services.WithVideoID(ctx, videoID)
	log := logging.WithContext(ctx, s.logger)

	started := time.Now()
	fetched, err := s.fetch(ctx, videoID)
	if err != nil {
		err = classify(err)
		log.Warn("transcript fetch failed",
			logging.String("kind", services.Kind(err)),
			logging.Duration("elapsed", time.Since(started)),
			logging.Error(err))
		return Response{}, err
	}

	log.Info("transcript fetched",
		logging.Int("segments", len(fetched.Segments)),
		logging.String("language", fetched.Language),
		logging.Bool("generated", fetched.Generated),
		logging.Duration("elapsed", time.Since(started)))

	return Response{VideoID: videoID, Segments: fetched.Segments}, nil
}

// fetch runs the single provider call while honoring caller cancellation. A
// canceled context wins the race so the handler never hangs on a provider
// that ignores its context.
func (s *Service) fetch(ctx context.Context, videoID string) (Transcript, error) {
	type outcome struct {
		transcript Transcript
		err        error
	}

	results := make(chan outcome, 1)
	go func() {
		fetched, err := s.provider.FetchTranscript(ctx, videoID)
		results <- outcome{transcript: fetched, err: err}
	}()

	select {
	case <-ctx.Done():
		return Transcript{}, services.Wrap(services.ErrUpstream, "transcript", "fetch", "request canceled", ctx.Err())
	case result := <-results:
		return result.transcript, result.err
	}
}

// classify guarantees every provider failure carries exactly one marker.
// Cancellation and unrecognized errors both classify as upstream failures.
func classify(err error) error {
	switch {
	case services.Classified(err):
		return err
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return services.Wrap(services.ErrUpstream, "transcript", "fetch", "request canceled", err)
	default:
		return services.Wrap(services.ErrUpstream, "transcript", "fetch", "provider failure", err)
	}
}
