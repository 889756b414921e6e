package server

import (
	"encoding/json"
	"net/http"

	"scribe/internal/api"
	"scribe/internal/logging"
	"scribe/internal/services"
	"scribe/internal/transcript"
)

const serviceName = "scribe"

func (s *Server) handleTranscript(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "MethodNotAllowedError", "method not allowed")
		return
	}
	var req api.TranscriptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeServiceError(w, services.Wrap(services.ErrInvalidRequest, "server", "decode", "request body is not valid json", err))
		return
	}
	resp, err := s.service.Handle(r.Context(), transcript.Request{URL: req.URL})
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, api.FromResponse(resp))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "MethodNotAllowedError", "method not allowed")
		return
	}
	s.writeJSON(w, http.StatusOK, api.HealthResponse{Status: "ok"})
}

// handleBanner identifies the service at the root path. The catch-all mux
// pattern also lands unknown paths here, so anything but "/" is a 404.
func (s *Server) handleBanner(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		s.writeError(w, http.StatusNotFound, "NotFoundError", "not found")
		return
	}
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "MethodNotAllowedError", "method not allowed")
		return
	}
	s.writeJSON(w, http.StatusOK, api.BannerResponse{Service: serviceName, Version: s.version})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log().Error("failed to encode response", logging.Error(err))
	}
}

func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	status, body := api.FromError(err)
	s.writeJSON(w, status, body)
}

func (s *Server) writeError(w http.ResponseWriter, status int, code, detail string) {
	s.writeJSON(w, status, api.ErrorResponse{Error: code, Detail: detail})
}
