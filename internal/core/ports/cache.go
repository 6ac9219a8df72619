package ports

import (
	"context"

	"github.com/srgjo27/hotel_inventory/internal/core/domain"
)

type RoomCache interface {
	Rooms(ctx context.Context) ([]domain.Room, bool, error)
	SetRooms(ctx context.Context, rooms []domain.Room) error
	Invalidate(ctx context.Context) error
}
