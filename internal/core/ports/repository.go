package ports

import (
	"context"
	"time"

	"github.com/srgjo27/hotel_inventory/internal/core/domain"
)

// RoomRepository loads rooms including soft-deleted ones; callers decide
// what an inactive room means. Create assigns the id. Update succeeds only
// if room.Version matches the stored version and then increments it.
type RoomRepository interface {
	GetByID(ctx context.Context, roomID int64) (*domain.Room, error)
	GetByNumber(ctx context.Context, number string) (*domain.Room, error)
	ListActive(ctx context.Context) ([]domain.Room, error)
	Create(ctx context.Context, room *domain.Room) error
	Update(ctx context.Context, room *domain.Room) error
}

type ReservationRepository interface {
	GetByID(ctx context.Context, reservationID int64) (*domain.Reservation, error)
	ListActive(ctx context.Context) ([]domain.Reservation, error)
	ListClaimingByRoom(ctx context.Context, roomID int64) ([]domain.Reservation, error)
	ListClaimingBetween(ctx context.Context, checkIn, checkOut time.Time) ([]domain.Reservation, error)
	ListStalePending(ctx context.Context, checkInBefore time.Time) ([]domain.Reservation, error)
	Create(ctx context.Context, reservation *domain.Reservation) error
	// UpdateWithRoom persists the reservation and, when room is not nil,
	// the room in a single atomic step.
	UpdateWithRoom(ctx context.Context, reservation *domain.Reservation, room *domain.Room) error
}
