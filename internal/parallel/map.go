package parallel

import (
	"context"
	"errors"
)

// ErrClosed is returned when work is handed to a closed pool.
var ErrClosed = errors.New("parallel: pool is closed")

// Map applies fn to every item on the pool and returns the results in input
// order. On cancellation the results of skipped items are zero values.
func Map[T, R any](ctx context.Context, p *WorkerPool, items []T, fn func(int, T) R) ([]R, error) {
	out := make([]R, len(items))
	jobs := make([]func(), len(items))
	for i, item := range items {
		jobs[i] = func() { out[i] = fn(i, item) }
	}
	err := p.Run(ctx, jobs)
	return out, err
}
