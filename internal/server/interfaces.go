package server

import "context"

// Server defines the lifecycle contract of the application server.
//
// RunServer blocks until ctx is done, a termination signal arrives or one
// of the components fails; it then shuts everything down. Shutdown may be
// called from another goroutine to stop a running server early.
type Server interface {
	RunServer(ctx context.Context) error
	Shutdown()
}
