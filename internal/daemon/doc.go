// Package daemon coordinates the long-running scribe process.
//
// It wires configuration, logging, the YouTube transcript client, and the
// HTTP server into a single lifecycle with flock-based locking to prevent
// multiple instances from binding the same address. Orchestration logic
// lives here; request handling belongs to the server and transcript
// packages.
package daemon
