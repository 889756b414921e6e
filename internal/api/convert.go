package api

import (
	"scribe/internal/services"
	"scribe/internal/transcript"
)

// FromResponse converts a handler result into its wire form.
func FromResponse(resp transcript.Response) TranscriptResponse {
	segments := make([]TranscriptSegment, 0, len(resp.Segments))
	for _, seg := range resp.Segments {
		segments = append(segments, TranscriptSegment{
			Text:     seg.Text,
			Start:    seg.Start,
			Duration: seg.Duration,
		})
	}
	return TranscriptResponse{VideoID: resp.VideoID, Segments: segments}
}

// FromError converts a classified error into an HTTP status and wire body.
func FromError(err error) (int, ErrorResponse) {
	return services.HTTPStatus(err), ErrorResponse{
		Error:  services.Kind(err),
		Detail: services.Detail(err),
	}
}
