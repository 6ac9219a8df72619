package services

import (
	"context"
	"errors"
	"log"
	"sort"
	"time"

	"github.com/srgjo27/hotel_inventory/internal/core/domain"
	"github.com/srgjo27/hotel_inventory/internal/core/ports"
)

var _ ports.Service[int64, RoomDTO, RoomAddDTO, RoomUpdateDTO] = (*RoomService)(nil)

type RoomService struct {
	rooms        ports.RoomRepository
	reservations ports.ReservationRepository
	guard        roomGuard
	cache        ports.RoomCache
	now          func() time.Time
}

func NewRoomService(rooms ports.RoomRepository, reservations ports.ReservationRepository, locker ports.RoomLocker, opts ...Option) *RoomService {
	o := buildOptions(opts)

	return &RoomService{
		rooms:        rooms,
		reservations: reservations,
		guard: roomGuard{
			locker:         locker,
			lockTimeout:    o.lockTimeout,
			storageTimeout: o.storageTimeout,
		},
		cache: o.cache,
		now:   o.now,
	}
}

func (s *RoomService) GetByID(ctx context.Context, id int64) domain.OperationResult[RoomDTO] {
	ctx, cancel := s.guard.withStorage(ctx)
	defer cancel()

	room, err := loadActiveRoom(ctx, s.rooms, id)
	if err != nil {
		return fail[RoomDTO]("get room", err)
	}

	return domain.Ok(toRoomDTO(*room))
}

// GetAll lists active rooms ordered by id. The list may come from the room
// cache when one is configured.
func (s *RoomService) GetAll(ctx context.Context) domain.OperationResult[[]RoomDTO] {
	ctx, cancel := s.guard.withStorage(ctx)
	defer cancel()

	if s.cache != nil {
		rooms, ok, err := s.cache.Rooms(ctx)
		if err != nil {
			log.Printf("Room cache read failed, falling back to storage: %v", err)
		} else if ok {
			return domain.Ok(toRoomDTOs(rooms))
		}
	}

	rooms, err := s.rooms.ListActive(ctx)
	if err != nil {
		return fail[[]RoomDTO]("list rooms", err)
	}

	sort.Slice(rooms, func(i, j int) bool { return rooms[i].ID < rooms[j].ID })

	if s.cache != nil {
		if err := s.cache.SetRooms(ctx, rooms); err != nil {
			log.Printf("Failed to cache room list: %v", err)
		}
	}

	return domain.Ok(toRoomDTOs(rooms))
}

func (s *RoomService) Create(ctx context.Context, in RoomAddDTO) domain.OperationResult[RoomDTO] {
	number, err := domain.NormalizeRoomNumber(in.Number)
	if err != nil {
		return fail[RoomDTO]("create room", err)
	}

	if err := domain.ValidatePrice(in.Price); err != nil {
		return fail[RoomDTO]("create room", err)
	}

	if in.FloorID < 0 || in.CategoryID < 0 {
		return fail[RoomDTO]("create room", domain.ErrInvalidReference)
	}

	status := in.StatusID
	if status == "" {
		status = domain.RoomAvailable
	}

	if status != domain.RoomAvailable && !status.OnHold() {
		return fail[RoomDTO]("create room", domain.ErrInvalidRoomStatus)
	}

	ctx, cancel := s.guard.withStorage(ctx)
	defer cancel()

	if err := s.ensureNumberFree(ctx, number, 0); err != nil {
		return fail[RoomDTO]("create room", err)
	}

	room := &domain.Room{
		Audit:       domain.NewAudit(ActorFrom(ctx), s.now()),
		Number:      number,
		Description: in.Description,
		Price:       in.Price,
		FloorID:     in.FloorID,
		CategoryID:  in.CategoryID,
		StatusID:    status,
	}

	if err := s.rooms.Create(ctx, room); err != nil {
		return fail[RoomDTO]("create room", err)
	}

	invalidateRooms(ctx, s.cache)

	return domain.Ok(toRoomDTO(*room))
}

// Update applies the fields set in the DTO. A status change follows the
// administrative rules of SetStatus.
func (s *RoomService) Update(ctx context.Context, in RoomUpdateDTO) domain.OperationResult[RoomDTO] {
	var number string
	if in.Number != nil {
		n, err := domain.NormalizeRoomNumber(*in.Number)
		if err != nil {
			return fail[RoomDTO]("update room", err)
		}
		number = n
	}

	if in.Price != nil {
		if err := domain.ValidatePrice(*in.Price); err != nil {
			return fail[RoomDTO]("update room", err)
		}
	}

	if (in.FloorID != nil && *in.FloorID < 0) || (in.CategoryID != nil && *in.CategoryID < 0) {
		return fail[RoomDTO]("update room", domain.ErrInvalidReference)
	}

	if in.StatusID != nil && !in.StatusID.Valid() {
		return fail[RoomDTO]("update room", domain.ErrInvalidRoomStatus)
	}

	return s.mutate(ctx, "update room", in.ID, func(ctx context.Context, room *domain.Room) error {
		if in.Number != nil && number != room.Number {
			if err := s.ensureNumberFree(ctx, number, room.ID); err != nil {
				return err
			}
			room.Number = number
		}

		if in.StatusID != nil {
			if err := s.applyAdministrative(ctx, room, *in.StatusID); err != nil {
				return err
			}
		}

		if in.Description != nil {
			room.Description = *in.Description
		}

		if in.Price != nil {
			room.Price = *in.Price
		}

		if in.FloorID != nil {
			room.FloorID = *in.FloorID
		}

		if in.CategoryID != nil {
			room.CategoryID = *in.CategoryID
		}

		return nil
	})
}

// UpdatePrice changes the price of a room whatever its status.
func (s *RoomService) UpdatePrice(ctx context.Context, in PriceUpdateDTO) domain.OperationResult[RoomDTO] {
	if err := domain.ValidatePrice(in.Price); err != nil {
		return fail[RoomDTO]("update room price", err)
	}

	return s.mutate(ctx, "update room price", in.RoomID, func(ctx context.Context, room *domain.Room) error {
		return room.SetPrice(in.Price, ActorFrom(ctx), s.now())
	})
}

// SetStatus puts a room on or takes it off an administrative hold.
func (s *RoomService) SetStatus(ctx context.Context, in RoomStatusUpdateDTO) domain.OperationResult[RoomDTO] {
	if !in.StatusID.Valid() {
		return fail[RoomDTO]("set room status", domain.ErrInvalidRoomStatus)
	}

	return s.mutate(ctx, "set room status", in.RoomID, func(ctx context.Context, room *domain.Room) error {
		return s.applyAdministrative(ctx, room, in.StatusID)
	})
}

// Deactivate soft-deletes a room that no reservation claims.
func (s *RoomService) Deactivate(ctx context.Context, id int64) domain.OperationResult[RoomDTO] {
	return s.mutate(ctx, "deactivate room", id, func(ctx context.Context, room *domain.Room) error {
		if err := s.ensureUnclaimed(ctx, room.ID); err != nil {
			return err
		}

		room.Deactivate(ActorFrom(ctx), s.now())
		return nil
	})
}

// FindAvailable returns the active rooms that are not on hold and that no
// reservation claims during [checkIn, checkOut).
func (s *RoomService) FindAvailable(ctx context.Context, checkIn, checkOut time.Time) domain.OperationResult[[]RoomDTO] {
	if err := domain.ValidateStayWindow(checkIn, checkOut); err != nil {
		return fail[[]RoomDTO]("find available rooms", err)
	}

	ctx, cancel := s.guard.withStorage(ctx)
	defer cancel()

	rooms, err := s.rooms.ListActive(ctx)
	if err != nil {
		return fail[[]RoomDTO]("find available rooms", err)
	}

	claims, err := s.reservations.ListClaimingBetween(ctx, checkIn, checkOut)
	if err != nil {
		return fail[[]RoomDTO]("find available rooms", err)
	}

	booked := make(map[int64]struct{}, len(claims))
	for i := range claims {
		if claims[i].ClaimsRoom() && claims[i].Overlaps(checkIn, checkOut) {
			booked[claims[i].RoomID] = struct{}{}
		}
	}

	available := make([]domain.Room, 0, len(rooms))
	for _, room := range rooms {
		if room.StatusID.OnHold() {
			continue
		}

		if _, ok := booked[room.ID]; ok {
			continue
		}

		available = append(available, room)
	}

	sort.Slice(available, func(i, j int) bool { return available[i].ID < available[j].ID })

	return domain.Ok(toRoomDTOs(available))
}

// mutate loads the active room under its lock, lets change modify it and
// persists it. Nothing is written when change fails.
func (s *RoomService) mutate(ctx context.Context, op string, id int64, change func(ctx context.Context, room *domain.Room) error) domain.OperationResult[RoomDTO] {
	if id <= 0 {
		return fail[RoomDTO](op, domain.ErrRoomNotFound)
	}

	var updated domain.Room
	err := s.guard.run(ctx, id, func(ctx context.Context) error {
		room, err := loadActiveRoom(ctx, s.rooms, id)
		if err != nil {
			return err
		}

		if err := change(ctx, room); err != nil {
			return err
		}

		room.Touch(ActorFrom(ctx), s.now())

		if err := s.rooms.Update(ctx, room); err != nil {
			return err
		}

		updated = *room
		return nil
	})
	if err != nil {
		return fail[RoomDTO](op, err)
	}

	invalidateRooms(ctx, s.cache)

	return domain.Ok(toRoomDTO(updated))
}

func (s *RoomService) applyAdministrative(ctx context.Context, room *domain.Room, to domain.RoomStatus) error {
	if err := room.CanSetAdministrative(to); err != nil {
		return err
	}

	if to == room.StatusID {
		return nil
	}

	if err := s.ensureUnclaimed(ctx, room.ID); err != nil {
		return err
	}

	room.StatusID = to
	return nil
}

func (s *RoomService) ensureUnclaimed(ctx context.Context, roomID int64) error {
	claims, err := s.reservations.ListClaimingByRoom(ctx, roomID)
	if err != nil {
		return err
	}

	for i := range claims {
		if claims[i].ClaimsRoom() {
			return domain.ErrRoomHasActiveReservations
		}
	}

	return nil
}

func (s *RoomService) ensureNumberFree(ctx context.Context, number string, self int64) error {
	existing, err := s.rooms.GetByNumber(ctx, number)
	if errors.Is(err, domain.ErrRoomNotFound) {
		return nil
	}

	if err != nil {
		return err
	}

	if existing.IsActive && existing.ID != self {
		return domain.ErrRoomNumberTaken
	}

	return nil
}
