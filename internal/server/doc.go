// Package server runs the HTTP API, the gRPC health endpoint and the
// background upload workers as one unit. All of them stop together when a
// signal arrives or any of them fails.
package server
