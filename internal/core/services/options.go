package services

import (
	"time"

	"github.com/srgjo27/hotel_inventory/internal/core/ports"
)

const (
	defaultLockTimeout    = 5 * time.Second
	defaultStorageTimeout = 10 * time.Second
	defaultPendingGrace   = 24 * time.Hour
)

type options struct {
	now            func() time.Time
	lockTimeout    time.Duration
	storageTimeout time.Duration
	pendingGrace   time.Duration
	cache          ports.RoomCache
}

type Option func(*options)

// WithClock replaces the wall clock used for audit fields and stay-window
// checks.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithLockTimeout bounds how long an operation waits for a room lock.
func WithLockTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.lockTimeout = d
		}
	}
}

// WithStorageTimeout bounds the storage work done while a room lock is held.
func WithStorageTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.storageTimeout = d
		}
	}
}

// WithPendingGrace sets how long after its check-in date a pending
// reservation is kept before the cleanup worker cancels it.
func WithPendingGrace(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.pendingGrace = d
		}
	}
}

func WithRoomCache(cache ports.RoomCache) Option {
	return func(o *options) {
		o.cache = cache
	}
}

func buildOptions(opts []Option) options {
	o := options{
		now:            func() time.Time { return time.Now().UTC() },
		lockTimeout:    defaultLockTimeout,
		storageTimeout: defaultStorageTimeout,
		pendingGrace:   defaultPendingGrace,
	}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}
