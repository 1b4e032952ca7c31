// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the
// orchestration API: record writes, per-entity sync runs, imports,
// comparisons and the upload queue status.
package http
