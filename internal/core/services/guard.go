package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/srgjo27/hotel_inventory/internal/core/domain"
	"github.com/srgjo27/hotel_inventory/internal/core/ports"
)

type roomGuard struct {
	locker         ports.RoomLocker
	lockTimeout    time.Duration
	storageTimeout time.Duration
}

// run executes fn while holding the lock of roomID. The caller's context
// can abort the wait for the lock; once the lock is held fn runs to
// completion, bounded only by the storage timeout.
func (g roomGuard) run(ctx context.Context, roomID int64, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("room %d: %w", roomID, err)
	}

	lockCtx, cancel := context.WithTimeout(ctx, g.lockTimeout)
	defer cancel()

	unlock, err := g.locker.Lock(lockCtx, roomID)
	if err != nil {
		return fmt.Errorf("failed to lock room %d: %w", roomID, err)
	}
	defer unlock()

	opCtx, opCancel := context.WithTimeout(context.WithoutCancel(ctx), g.storageTimeout)
	defer opCancel()

	return fn(opCtx)
}

// withStorage bounds repository work done outside the room lock.
func (g roomGuard) withStorage(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, g.storageTimeout)
}

func loadActiveRoom(ctx context.Context, rooms ports.RoomRepository, roomID int64) (*domain.Room, error) {
	if roomID <= 0 {
		return nil, domain.ErrRoomNotFound
	}

	room, err := rooms.GetByID(ctx, roomID)
	if err != nil {
		return nil, err
	}

	if !room.IsActive {
		return nil, domain.ErrRoomNotFound
	}

	return room, nil
}

func invalidateRooms(ctx context.Context, cache ports.RoomCache) {
	if cache == nil {
		return
	}

	if err := cache.Invalidate(ctx); err != nil {
		log.Printf("Failed to invalidate room cache: %v", err)
	}
}

func fail[T any](op string, err error) domain.OperationResult[T] {
	if domain.CodeOf(err) == domain.CodeInfrastructureFailure {
		log.Printf("%s: %v", op, err)
	}

	return domain.FromError[T](err)
}
