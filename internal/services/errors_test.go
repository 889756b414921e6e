package services_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"scribe/internal/services"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := services.Wrap(services.ErrUpstream, "youtube", "fetch watch page", "request failed", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, services.ErrUpstream) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"youtube", "fetch watch page", "request failed"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapNilMarkerDefaultsToUpstream(t *testing.T) {
	err := services.Wrap(nil, "handler", "fetch", "", errors.New("io"))
	if !errors.Is(err, services.ErrUpstream) {
		t.Fatalf("expected upstream marker, got %v", err)
	}
}

func TestKindMapping(t *testing.T) {
	cases := []struct {
		marker error
		want   string
	}{
		{services.ErrInvalidRequest, "InvalidRequestError"},
		{services.ErrInvalidURL, "InvalidUrlError"},
		{services.ErrVideoUnavailable, "VideoUnavailableError"},
		{services.ErrTranscriptsDisabled, "TranscriptsDisabledError"},
		{services.ErrUpstream, "UpstreamError"},
	}
	for _, tc := range cases {
		err := services.Wrap(tc.marker, "provider", "fetch", "", nil)
		if got := services.Kind(err); got != tc.want {
			t.Fatalf("Kind(%v) = %q, want %q", tc.marker, got, tc.want)
		}
	}
	if got := services.Kind(errors.New("naked")); got != "UpstreamError" {
		t.Fatalf("expected unclassified errors to report UpstreamError, got %q", got)
	}
}

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		marker error
		want   int
	}{
		{services.ErrInvalidRequest, http.StatusBadRequest},
		{services.ErrInvalidURL, http.StatusBadRequest},
		{services.ErrVideoUnavailable, http.StatusNotFound},
		{services.ErrTranscriptsDisabled, http.StatusNotFound},
		{services.ErrUpstream, http.StatusBadGateway},
	}
	for _, tc := range cases {
		err := services.Wrap(tc.marker, "provider", "fetch", "", nil)
		if got := services.HTTPStatus(err); got != tc.want {
			t.Fatalf("HTTPStatus(%v) = %d, want %d", tc.marker, got, tc.want)
		}
	}
	if got := services.HTTPStatus(errors.New("naked")); got != http.StatusBadGateway {
		t.Fatalf("expected unclassified errors to map to 502, got %d", got)
	}
}

func TestClassified(t *testing.T) {
	if services.Classified(errors.New("naked")) {
		t.Fatal("expected naked error to be unclassified")
	}
	err := services.Wrap(services.ErrTranscriptsDisabled, "youtube", "captions", "none listed", nil)
	if !services.Classified(err) {
		t.Fatal("expected wrapped error to be classified")
	}
}

type inputDetailError struct {
	input string
}

func (e *inputDetailError) Error() string  { return "no video id derivable from " + e.input }
func (e *inputDetailError) Detail() string { return e.input }

func TestDetailPrefersDetailer(t *testing.T) {
	err := services.Wrap(services.ErrInvalidURL, "parser", "extract", "", &inputDetailError{input: "not a url"})
	if got := services.Detail(err); got != "not a url" {
		t.Fatalf("expected detail from Detailer, got %q", got)
	}
}

func TestDetailStripsMarkerPrefix(t *testing.T) {
	err := services.Wrap(services.ErrUpstream, "youtube", "timedtext", "status 503", nil)
	got := services.Detail(err)
	if strings.HasPrefix(got, "upstream failure") {
		t.Fatalf("expected marker prefix to be stripped, got %q", got)
	}
	if !strings.Contains(got, "status 503") {
		t.Fatalf("expected cause in detail, got %q", got)
	}
	if services.Detail(nil) != "" {
		t.Fatal("expected empty detail for nil error")
	}
}
