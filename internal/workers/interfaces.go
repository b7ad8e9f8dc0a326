// Package workers runs the long-lived background loops of the application:
// the connectivity resolver, the force-local flag watcher and the sync
// orchestrator.
package workers

import "context"

// Worker is a background loop. Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}

// Func adapts a plain function to [Worker].
type Func func(ctx context.Context)

// Run implements [Worker].
func (f Func) Run(ctx context.Context) {
	f(ctx)
}
