// Package memory keeps rooms and reservations in process memory. It is used
// by tests and by local runs without PostgreSQL. Every read hands out
// copies, so callers never observe a partially applied write.
package memory

import (
	"sync"

	"github.com/srgjo27/hotel_inventory/internal/core/domain"
)

type Store struct {
	mu           sync.RWMutex
	rooms        map[int64]domain.Room
	reservations map[int64]domain.Reservation
	nextRoomID   int64
	nextResID    int64
}

func NewStore() *Store {
	return &Store{
		rooms:        make(map[int64]domain.Room),
		reservations: make(map[int64]domain.Reservation),
	}
}

func (s *Store) Rooms() *RoomRepository {
	return &RoomRepository{store: s}
}

func (s *Store) Reservations() *ReservationRepository {
	return &ReservationRepository{store: s}
}
