// Package http implements the HTTP/JSON transport of the fretboard-keeper
// server.
//
// It wires routes under the configured API prefix, resolves bearer tokens to
// usernames, and maps service and storage errors to status codes. Every error
// response has the body {"detail": "..."}. Tracing, access logging, gzip,
// CORS and per-request timeouts are applied as middleware before requests
// reach the handlers.
package http
