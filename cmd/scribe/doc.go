// Package main hosts the scribe CLI entrypoint and command graph.
//
// The Cobra-based command tree runs the transcript HTTP service in the
// foreground, performs one-shot transcript fetches for debugging, and
// scaffolds configuration files. It centralizes configuration resolution and
// logging setup so subcommands can focus on user experience instead of
// wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
