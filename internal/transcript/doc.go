// Package transcript holds the core request-handling pipeline: domain types
// for transcripts and segments, the Provider capability interface, and the
// Service that turns a URL into a transcript response.
//
// The Service performs no retries, holds no cross-request state, and maps
// every failure to exactly one of the shared failure markers, so the HTTP
// surface can derive the response status mechanically. Providers are injected,
// which keeps the pipeline testable with deterministic substitutes.
package transcript
