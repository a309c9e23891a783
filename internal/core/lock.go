package core

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// RequestLock serializes the in-flight request for one guild. Acquisition
// respects context cancellation, so a waiter gives up when its deadline
// passes instead of queueing forever.
type RequestLock struct {
	sem chan struct{}
}

// LockWithContext blocks until the lock is acquired or ctx is done,
// reporting which happened.
func (l *RequestLock) LockWithContext(ctx context.Context) bool {
	select {
	case l.sem <- struct{}{}:
		return true
	case <-ctx.Done():
		return false
	}
}

// Unlock releases the lock. Releasing an unheld lock is a no-op.
func (l *RequestLock) Unlock() {
	select {
	case <-l.sem:
	default:
	}
}

var requestLocks sync.Map

// GetRequestLock returns the lock for key, creating it on first use.
// Callers passing the same key always share one lock.
func GetRequestLock(key string) *RequestLock {
	if lock, ok := requestLocks.Load(key); ok {
		return lock.(*RequestLock)
	}
	actual, _ := requestLocks.LoadOrStore(key, &RequestLock{sem: make(chan struct{}, 1)})
	return actual.(*RequestLock)
}

// WithRequestLock runs onSuccess while holding the lock for key. If the
// lock cannot be acquired before ctx expires, onTimeout runs instead
// (when non-nil) and onSuccess never does.
func WithRequestLock(ctx context.Context, key string, operation string, onSuccess func(), onTimeout func()) {
	logger := GetLogger()
	if logCtx, ok := ctx.(interface{ GetLogger() *zap.SugaredLogger }); ok {
		logger = logCtx.GetLogger()
	}

	lock := GetRequestLock(key)
	logger.Debugw("lock_acquiring", "guild", key, "operation", operation)
	if !lock.LockWithContext(ctx) {
		logger.Warnw("lock_timeout", "guild", key, "operation", operation)
		if onTimeout != nil {
			onTimeout()
		}
		return
	}
	logger.Debugw("lock_acquired", "guild", key, "operation", operation)
	defer func() {
		logger.Debugw("lock_released", "guild", key, "operation", operation)
		lock.Unlock()
	}()

	onSuccess()
}
