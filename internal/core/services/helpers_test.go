package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/srgjo27/hotel_inventory/internal/adapter/lock"
	"github.com/srgjo27/hotel_inventory/internal/adapter/repository/memory"
	"github.com/srgjo27/hotel_inventory/internal/core/domain"
	"github.com/srgjo27/hotel_inventory/internal/core/services"
	"github.com/stretchr/testify/require"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

type testEnv struct {
	clock        *testClock
	store        *memory.Store
	rooms        *services.RoomService
	reservations *services.ReservationService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	clock := &testClock{now: day(1)}
	store := memory.NewStore()
	locker := lock.NewLocal()

	opts := []services.Option{
		services.WithClock(clock.Now),
		services.WithLockTimeout(time.Second),
	}

	return &testEnv{
		clock:        clock,
		store:        store,
		rooms:        services.NewRoomService(store.Rooms(), store.Reservations(), locker, opts...),
		reservations: services.NewReservationService(store.Reservations(), store.Rooms(), locker, opts...),
	}
}

func staffCtx() context.Context {
	return services.WithActor(context.Background(), "frontdesk")
}

func (e *testEnv) mustRoom(t *testing.T, number string, price float64) services.RoomDTO {
	t.Helper()

	res := e.rooms.Create(staffCtx(), services.RoomAddDTO{Number: number, Price: price, FloorID: 1, CategoryID: 2})
	require.True(t, res.Success, res.Message)

	return res.Data
}

func (e *testEnv) mustReservation(t *testing.T, roomID int64, checkIn, checkOut time.Time) services.ReservationDTO {
	t.Helper()

	res := e.reservations.Create(staffCtx(), services.ReservationAddDTO{
		RoomID:   roomID,
		GuestID:  42,
		CheckIn:  checkIn,
		CheckOut: checkOut,
	})
	require.True(t, res.Success, res.Message)

	return res.Data
}

func (e *testEnv) roomStatus(t *testing.T, roomID int64) domain.RoomStatus {
	t.Helper()

	res := e.rooms.GetByID(context.Background(), roomID)
	require.True(t, res.Success, res.Message)

	return res.Data.StatusID
}

// stall blocks like a hung storage backend until ctx gives up.
func stall(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(2 * time.Second):
		return errors.New("storage never answered")
	}
}
