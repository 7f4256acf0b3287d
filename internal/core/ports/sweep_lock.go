package ports

import "context"

// SweepLock guarantees that at most one process runs the lifecycle sweep at a time.
//
// TryLock returns ok=false without error when another holder has the lock.
// When ok is true the caller must call release once the sweep is done.
type SweepLock interface {
	TryLock(ctx context.Context) (release func(), ok bool, err error)
}
