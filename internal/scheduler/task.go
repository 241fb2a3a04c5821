// Package scheduler hosts the background tasks that run outside the request
// path. Task failures are isolated: a failing run is logged and the host
// process keeps going.
package scheduler

import (
	"context"
)

// Task defines the interface for background task implementations
//
//go:generate mockgen -source=task.go -destination=../mocks/task.go -package=mocks -mock_names=Task=MockTask
type Task interface {
	// Start begins the task's main loop
	// This is a blocking call that runs until the context is canceled
	Start(ctx context.Context) error

	// Stop gracefully stops the task
	// This should wait for any in-progress work to complete
	Stop(ctx context.Context) error

	// Name returns the task's name for logging and identification
	Name() string
}
