package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"scribe/internal/api"
	"scribe/internal/config"
	"scribe/internal/logging"
	"scribe/internal/services"
	"scribe/internal/transcript"
)

type providerStub struct {
	result transcript.Transcript
	err    error
	calls  int
}

func (p *providerStub) FetchTranscript(ctx context.Context, videoID string) (transcript.Transcript, error) {
	p.calls++
	if p.err != nil {
		return transcript.Transcript{}, p.err
	}
	return p.result, nil
}

func newTestServer(t *testing.T, provider transcript.Provider) *Server {
	t.Helper()
	cfg := config.Default()
	svc := transcript.NewService(provider, logging.NewNop())
	srv, err := New(&cfg, svc, logging.NewNop(), "test")
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	return srv
}

func postTranscript(t *testing.T, srv *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/transcript", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) api.ErrorResponse {
	t.Helper()
	var body api.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return body
}

func TestTranscriptEndpointReturnsSegments(t *testing.T) {
	provider := &providerStub{result: transcript.Transcript{
		Segments: []transcript.Segment{{Text: "Hello", Start: 0.0, Duration: 1.2}},
		Language: "en",
	}}
	srv := newTestServer(t, provider)

	w := postTranscript(t, srv, `{"url": "https://www.youtube.com/watch?v=jN_ZyKAUytQ"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type = %q", ct)
	}
	var body api.TranscriptResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.VideoID != "jN_ZyKAUytQ" {
		t.Fatalf("video id = %q", body.VideoID)
	}
	if len(body.Segments) != 1 || body.Segments[0].Text != "Hello" {
		t.Fatalf("segments = %+v", body.Segments)
	}
	if provider.calls != 1 {
		t.Fatalf("provider calls = %d", provider.calls)
	}
}

func TestTranscriptEndpointRejectsUnparseableURL(t *testing.T) {
	provider := &providerStub{}
	srv := newTestServer(t, provider)

	w := postTranscript(t, srv, `{"url": "not a url"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	body := decodeError(t, w)
	if body.Error != "InvalidUrlError" {
		t.Fatalf("error = %q", body.Error)
	}
	if body.Detail != "not a url" {
		t.Fatalf("detail = %q, want the original input", body.Detail)
	}
	if provider.calls != 0 {
		t.Fatalf("provider calls = %d", provider.calls)
	}
}

func TestTranscriptEndpointRejectsEmptyURL(t *testing.T) {
	provider := &providerStub{}
	srv := newTestServer(t, provider)

	w := postTranscript(t, srv, `{"url": ""}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	if body := decodeError(t, w); body.Error != "InvalidRequestError" {
		t.Fatalf("error = %q", body.Error)
	}
	if provider.calls != 0 {
		t.Fatalf("provider calls = %d", provider.calls)
	}
}

func TestTranscriptEndpointMapsUnavailableVideo(t *testing.T) {
	provider := &providerStub{err: services.Wrap(services.ErrVideoUnavailable, "youtube", "fetch", "video removed", nil)}
	srv := newTestServer(t, provider)

	w := postTranscript(t, srv, `{"url": "https://youtu.be/gone12345AB"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
	if body := decodeError(t, w); body.Error != "VideoUnavailableError" {
		t.Fatalf("error = %q", body.Error)
	}
}

func TestTranscriptEndpointMapsDisabledTranscripts(t *testing.T) {
	provider := &providerStub{err: services.Wrap(services.ErrTranscriptsDisabled, "youtube", "fetch", "video has no caption tracks", nil)}
	srv := newTestServer(t, provider)

	w := postTranscript(t, srv, `{"url": "https://youtu.be/jN_ZyKAUytQ"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
	if body := decodeError(t, w); body.Error != "TranscriptsDisabledError" {
		t.Fatalf("error = %q", body.Error)
	}
}

func TestTranscriptEndpointMapsUpstreamFailureWithoutRetry(t *testing.T) {
	provider := &providerStub{err: services.Wrap(services.ErrUpstream, "youtube", "fetch", "watch page returned 503", nil)}
	srv := newTestServer(t, provider)

	w := postTranscript(t, srv, `{"url": "https://www.youtube.com/watch?v=jN_ZyKAUytQ"}`)
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d", w.Code)
	}
	if body := decodeError(t, w); body.Error != "UpstreamError" {
		t.Fatalf("error = %q", body.Error)
	}
	if provider.calls != 1 {
		t.Fatalf("provider calls = %d", provider.calls)
	}
}

func TestTranscriptEndpointRejectsMalformedBody(t *testing.T) {
	provider := &providerStub{}
	srv := newTestServer(t, provider)

	w := postTranscript(t, srv, `{"url": `)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	if body := decodeError(t, w); body.Error != "InvalidRequestError" {
		t.Fatalf("error = %q", body.Error)
	}
	if provider.calls != 0 {
		t.Fatalf("provider calls = %d", provider.calls)
	}
}

func TestTranscriptEndpointRejectsWrongMethod(t *testing.T) {
	srv := newTestServer(t, &providerStub{})

	req := httptest.NewRequest(http.MethodGet, "/transcript", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestTranscriptEndpointSerializesEmptyTranscript(t *testing.T) {
	provider := &providerStub{result: transcript.Transcript{Language: "en"}}
	srv := newTestServer(t, provider)

	w := postTranscript(t, srv, `{"url": "https://www.youtube.com/watch?v=jN_ZyKAUytQ"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"segments":[]`) {
		t.Fatalf("body = %s", w.Body.String())
	}
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t, &providerStub{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body api.HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Status != "ok" {
		t.Fatalf("health status = %q", body.Status)
	}
}

func TestBannerEndpointIdentifiesService(t *testing.T) {
	srv := newTestServer(t, &providerStub{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body api.BannerResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Service != "scribe" || body.Version != "test" {
		t.Fatalf("banner = %+v", body)
	}
}

func TestUnknownPathReturnsNotFound(t *testing.T) {
	srv := newTestServer(t, &providerStub{})

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestRequestIDGeneratedWhenAbsent(t *testing.T) {
	srv := newTestServer(t, &providerStub{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected a generated request id")
	}
}

func TestRequestIDEchoedWhenSupplied(t *testing.T) {
	srv := newTestServer(t, &providerStub{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "req-42")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	if got := w.Header().Get("X-Request-ID"); got != "req-42" {
		t.Fatalf("request id = %q", got)
	}
}

func TestStartServesAndShutsDownOnCancel(t *testing.T) {
	cfg := config.Default()
	cfg.Server.Bind = "127.0.0.1:0"
	svc := transcript.NewService(&providerStub{}, logging.NewNop())
	srv, err := New(&cfg, svc, logging.NewNop(), "test")
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	if err := srv.Start(ctx); err != nil {
		t.Fatalf("start server: %v", err)
	}
	defer srv.Stop()

	resp, err := http.Get("http://" + srv.Addr() + "/health")
	if err != nil {
		t.Fatalf("health request: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("health status = %d", resp.StatusCode)
	}

	cancel()
}
