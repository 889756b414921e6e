// Package services defines shared utilities consumed by the transcript
// pipeline and its external integrations.
//
// Key responsibilities:
//   - Context helpers that stamp request correlation identifiers and video
//     identifiers for logging and tracing.
//   - Structured failure markers plus the Wrap helper that classify every
//     error crossing a component boundary into exactly one response kind,
//     and the Kind/HTTPStatus/Detail mappers that shape those failures for
//     the wire.
//
// Use these helpers when wiring new pipeline logic so error handling and
// observability stay uniform across components.
package services
