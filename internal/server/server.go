package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"scribe/internal/config"
	"scribe/internal/logging"
	"scribe/internal/transcript"
)

// TranscriptHandler resolves transcript requests for the HTTP layer.
type TranscriptHandler interface {
	Handle(ctx context.Context, req transcript.Request) (transcript.Response, error)
}

// Server binds the transcript service to an HTTP listener.
type Server struct {
	bind    string
	logger  *slog.Logger
	service TranscriptHandler
	version string

	listener net.Listener
	server   *http.Server
}

// New constructs the HTTP server for the configured bind address.
func New(cfg *config.Config, service TranscriptHandler, logger *slog.Logger, version string) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("configuration required")
	}
	if service == nil {
		return nil, errors.New("transcript handler required")
	}

	srv := &Server{
		bind:    strings.TrimSpace(cfg.Server.Bind),
		logger:  logger,
		service: service,
		version: strings.TrimSpace(version),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/transcript", srv.handleTranscript)
	mux.HandleFunc("/health", srv.handleHealth)
	mux.HandleFunc("/", srv.handleBanner)

	srv.server = &http.Server{
		Handler:           srv.withRequestID(srv.withAccessLog(mux)),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return srv, nil
}

// Handler returns the fully wrapped route handler.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start begins serving requests and shuts down when ctx is canceled.
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.bind)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.bind, err)
	}
	s.listener = listener

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log().Error("http server error", logging.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}()

	s.log().Info("http server listening", logging.String("address", listener.Addr().String()))
	return nil
}

// Stop shuts the server down outside of context cancellation.
func (s *Server) Stop() {
	if s == nil {
		return
	}
	if s.server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}
	if s.listener != nil {
		_ = s.listener.Close()
		s.listener = nil
	}
}

// Addr reports the bound listen address once Start has succeeded.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

func (s *Server) log() *slog.Logger {
	return logging.NewComponentLogger(s.logger, "server")
}
