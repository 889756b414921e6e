// Package server exposes the transcript service over HTTP.
//
// The surface is deliberately small: POST /transcript resolves a video URL
// into caption segments, GET /health reports liveness, and GET / identifies
// the service. Every response is JSON, every request carries a correlation
// id, and classified service errors map onto stable status codes and error
// names so clients can branch without parsing detail text.
package server
