package server

import "context"

// Server defines the lifecycle contract of the local fallback server.
type Server interface {
	// RunServer serves requests until SIGTERM, SIGINT or SIGQUIT is
	// received, then shuts down gracefully.
	RunServer()

	// Serve serves requests until ctx is cancelled or the listener fails.
	// A cancelled ctx is a clean stop and returns nil.
	Serve(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
