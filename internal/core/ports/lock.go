package ports

import "context"

// RoomLocker serializes mutations touching the same room. Lock blocks until
// the room is free or ctx is done; the returned func releases it.
type RoomLocker interface {
	Lock(ctx context.Context, roomID int64) (func(), error)
}
