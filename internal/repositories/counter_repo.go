package repositories

import "context"

// CounterRepository issues dense, never-reused public IDs per entity kind.
type CounterRepository interface {
	// Next atomically increments the named counter and returns the new value.
	Next(ctx context.Context, name string) (int64, error)
	// Current returns the last value issued, or 0 if none was.
	Current(ctx context.Context, name string) (int64, error)
}
