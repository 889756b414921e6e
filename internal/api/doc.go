// Package api defines wire-format types and converters for the HTTP API
// layer. It translates internal transcript models into transport-friendly
// DTOs so handlers never couple response encoding to service internals.
//
// # Key Types
//
// TranscriptRequest: the POST /transcript body carrying the raw video URL.
//
// TranscriptResponse: resolved video id plus ordered caption segments.
//
// ErrorResponse: stable machine-readable error name with a human detail.
//
// HealthResponse/BannerResponse: liveness and service identification bodies.
//
// # Converters
//
// FromResponse: transcript.Response -> TranscriptResponse with a non-nil
// segments slice so empty transcripts serialize as [] rather than null.
//
// FromError: classified error -> (HTTP status, ErrorResponse) using the
// services error taxonomy.
//
// # Design Notes
//
// DTOs use camelCase JSON tags for JavaScript/TypeScript consumers. Error
// names mirror the service-level classification one to one, so clients can
// branch on ErrorResponse.Error without parsing detail text.
package api
