package memory

import (
	"context"
	"sort"

	"github.com/srgjo27/hotel_inventory/internal/core/domain"
)

type RoomRepository struct {
	store *Store
}

func (r *RoomRepository) GetByID(ctx context.Context, roomID int64) (*domain.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	room, ok := r.store.rooms[roomID]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}

	return &room, nil
}

func (r *RoomRepository) GetByNumber(ctx context.Context, number string) (*domain.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if room, ok := r.store.activeRoomByNumber(number); ok {
		return &room, nil
	}

	return nil, domain.ErrRoomNotFound
}

func (r *RoomRepository) ListActive(ctx context.Context) ([]domain.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rooms := make([]domain.Room, 0, len(r.store.rooms))
	for _, room := range r.store.rooms {
		if room.IsActive {
			rooms = append(rooms, room)
		}
	}

	sort.Slice(rooms, func(i, j int) bool { return rooms[i].ID < rooms[j].ID })

	return rooms, nil
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, taken := r.store.activeRoomByNumber(room.Number); taken {
		return domain.ErrRoomNumberTaken
	}

	r.store.nextRoomID++
	room.ID = r.store.nextRoomID
	room.Version = 1
	r.store.rooms[room.ID] = *room

	return nil
}

func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return r.store.updateRoom(room)
}

func (s *Store) activeRoomByNumber(number string) (domain.Room, bool) {
	for _, room := range s.rooms {
		if room.IsActive && room.Number == number {
			return room, true
		}
	}

	return domain.Room{}, false
}

// updateRoom must be called with s.mu held for writing.
func (s *Store) updateRoom(room *domain.Room) error {
	stored, ok := s.rooms[room.ID]
	if !ok {
		return domain.ErrRoomNotFound
	}

	if stored.Version != room.Version {
		return domain.ErrRoomModified
	}

	if room.IsActive {
		if other, taken := s.activeRoomByNumber(room.Number); taken && other.ID != room.ID {
			return domain.ErrRoomNumberTaken
		}
	}

	room.Version++
	s.rooms[room.ID] = *room

	return nil
}
