package lock

import (
	"context"
	"sync"
)

// Local serializes room operations inside a single process. Entries are
// dropped once no goroutine holds or waits for them.
type Local struct {
	mu    sync.Mutex
	rooms map[int64]*roomLock
}

type roomLock struct {
	sem  chan struct{}
	refs int
}

func NewLocal() *Local {
	return &Local{rooms: make(map[int64]*roomLock)}
}

func (l *Local) Lock(ctx context.Context, roomID int64) (func(), error) {
	l.mu.Lock()
	rl, ok := l.rooms[roomID]
	if !ok {
		rl = &roomLock{sem: make(chan struct{}, 1)}
		l.rooms[roomID] = rl
	}
	rl.refs++
	l.mu.Unlock()

	select {
	case rl.sem <- struct{}{}:
		var once sync.Once
		return func() {
			once.Do(func() {
				<-rl.sem
				l.release(roomID, rl)
			})
		}, nil
	case <-ctx.Done():
		l.release(roomID, rl)
		return nil, ctx.Err()
	}
}

func (l *Local) release(roomID int64, rl *roomLock) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rl.refs--
	if rl.refs == 0 {
		delete(l.rooms, roomID)
	}
}
