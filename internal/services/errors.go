package services

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Failure markers for the transcript pipeline. Every error that crosses a
// component boundary is tagged with exactly one of these at its point of
// origin; Kind and HTTPStatus classify by unwrapping.
var (
	ErrInvalidRequest      = errors.New("invalid request")
	ErrInvalidURL          = errors.New("invalid url")
	ErrVideoUnavailable    = errors.New("video unavailable")
	ErrTranscriptsDisabled = errors.New("transcripts disabled")
	ErrUpstream            = errors.New("upstream failure")
)

var markers = []error{
	ErrInvalidRequest,
	ErrInvalidURL,
	ErrVideoUnavailable,
	ErrTranscriptsDisabled,
	ErrUpstream,
}

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrUpstream
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Classified reports whether err already carries one of the failure markers.
func Classified(err error) bool {
	for _, marker := range markers {
		if errors.Is(err, marker) {
			return true
		}
	}
	return false
}

// Kind returns the wire identifier for the failure class of err. Errors that
// carry no marker classify as upstream failures.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return "InvalidRequestError"
	case errors.Is(err, ErrInvalidURL):
		return "InvalidUrlError"
	case errors.Is(err, ErrVideoUnavailable):
		return "VideoUnavailableError"
	case errors.Is(err, ErrTranscriptsDisabled):
		return "TranscriptsDisabledError"
	default:
		return "UpstreamError"
	}
}

// HTTPStatus maps the failure class of err to the response status code.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidRequest), errors.Is(err, ErrInvalidURL):
		return http.StatusBadRequest
	case errors.Is(err, ErrVideoUnavailable), errors.Is(err, ErrTranscriptsDisabled):
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}

// Detailer lets an error expose a client-facing detail string that differs
// from its Error() text.
type Detailer interface {
	Detail() string
}

// Detail returns the client-facing detail for err. Errors implementing
// Detailer win; otherwise the marker prefix is stripped from the message so
// clients see the cause without the internal classification tag.
func Detail(err error) string {
	if err == nil {
		return ""
	}
	var detailer Detailer
	if errors.As(err, &detailer) {
		return detailer.Detail()
	}
	msg := err.Error()
	for _, marker := range markers {
		if prefix := marker.Error() + ": "; strings.HasPrefix(msg, prefix) {
			return strings.TrimPrefix(msg, prefix)
		}
	}
	return msg
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
