package services

import (
	"context"
	"log"
	"time"

	"github.com/srgjo27/hotel_inventory/internal/core/domain"
	"github.com/srgjo27/hotel_inventory/internal/core/ports"
)

var _ ports.Service[int64, ReservationDTO, ReservationAddDTO, ReservationUpdateDTO] = (*ReservationService)(nil)

type ReservationService struct {
	reservations ports.ReservationRepository
	rooms        ports.RoomRepository
	guard        roomGuard
	cache        ports.RoomCache
	now          func() time.Time
	pendingGrace time.Duration
}

func NewReservationService(reservations ports.ReservationRepository, rooms ports.RoomRepository, locker ports.RoomLocker, opts ...Option) *ReservationService {
	o := buildOptions(opts)

	return &ReservationService{
		reservations: reservations,
		rooms:        rooms,
		guard: roomGuard{
			locker:         locker,
			lockTimeout:    o.lockTimeout,
			storageTimeout: o.storageTimeout,
		},
		cache:        o.cache,
		now:          o.now,
		pendingGrace: o.pendingGrace,
	}
}

func (s *ReservationService) GetByID(ctx context.Context, id int64) domain.OperationResult[ReservationDTO] {
	ctx, cancel := s.guard.withStorage(ctx)
	defer cancel()

	res, err := s.loadActive(ctx, id)
	if err != nil {
		return fail[ReservationDTO]("get reservation", err)
	}

	return domain.Ok(toReservationDTO(*res))
}

func (s *ReservationService) GetAll(ctx context.Context) domain.OperationResult[[]ReservationDTO] {
	ctx, cancel := s.guard.withStorage(ctx)
	defer cancel()

	list, err := s.reservations.ListActive(ctx)
	if err != nil {
		return fail[[]ReservationDTO]("list reservations", err)
	}

	return domain.Ok(toReservationDTOs(list))
}

// Create books a room for a stay window. The reservation starts PENDING and
// leaves the room status untouched.
func (s *ReservationService) Create(ctx context.Context, in ReservationAddDTO) domain.OperationResult[ReservationDTO] {
	if in.RoomID <= 0 {
		return fail[ReservationDTO]("create reservation", domain.ErrRoomRequired)
	}

	if in.GuestID <= 0 {
		return fail[ReservationDTO]("create reservation", domain.ErrGuestRequired)
	}

	if err := domain.ValidateStayWindow(in.CheckIn, in.CheckOut); err != nil {
		return fail[ReservationDTO]("create reservation", err)
	}

	var created domain.Reservation
	err := s.guard.run(ctx, in.RoomID, func(ctx context.Context) error {
		room, err := loadActiveRoom(ctx, s.rooms, in.RoomID)
		if err != nil {
			return err
		}

		if room.StatusID.OnHold() {
			return domain.ErrRoomOnHold
		}

		claims, err := s.reservations.ListClaimingByRoom(ctx, room.ID)
		if err != nil {
			return err
		}

		if domain.FindOverlap(claims, 0, in.CheckIn, in.CheckOut) != nil {
			return domain.ErrOverlappingReservation
		}

		res := &domain.Reservation{
			Audit:    domain.NewAudit(ActorFrom(ctx), s.now()),
			RoomID:   room.ID,
			GuestID:  in.GuestID,
			CheckIn:  in.CheckIn,
			CheckOut: in.CheckOut,
			StatusID: domain.ReservationPending,
		}

		if err := s.reservations.Create(ctx, res); err != nil {
			return err
		}

		created = *res
		return nil
	})
	if err != nil {
		return fail[ReservationDTO]("create reservation", err)
	}

	log.Printf("Reservation %d created for room %d (%s - %s)", created.ID, created.RoomID,
		created.CheckIn.Format(time.DateOnly), created.CheckOut.Format(time.DateOnly))

	return domain.Ok(toReservationDTO(created))
}

// Update changes guest or stay dates of a reservation that is not terminal.
// After check-in only the check-out date may move.
func (s *ReservationService) Update(ctx context.Context, in ReservationUpdateDTO) domain.OperationResult[ReservationDTO] {
	if in.GuestID != nil && *in.GuestID <= 0 {
		return fail[ReservationDTO]("update reservation", domain.ErrGuestRequired)
	}

	return s.mutate(ctx, "update reservation", in.ID, func(ctx context.Context, res *domain.Reservation) (*domain.Room, error) {
		if res.StatusID.Terminal() {
			return nil, domain.ErrTerminalReservation
		}

		checkIn, checkOut := res.CheckIn, res.CheckOut
		if in.CheckIn != nil {
			checkIn = *in.CheckIn
		}
		if in.CheckOut != nil {
			checkOut = *in.CheckOut
		}

		if res.StatusID == domain.ReservationCheckedIn && !checkIn.Equal(res.CheckIn) {
			return nil, domain.ErrCheckInFrozen
		}

		if err := domain.ValidateStayWindow(checkIn, checkOut); err != nil {
			return nil, err
		}

		if !checkIn.Equal(res.CheckIn) || !checkOut.Equal(res.CheckOut) {
			claims, err := s.reservations.ListClaimingByRoom(ctx, res.RoomID)
			if err != nil {
				return nil, err
			}

			if domain.FindOverlap(claims, res.ID, checkIn, checkOut) != nil {
				return nil, domain.ErrOverlappingReservation
			}
		}

		res.CheckIn, res.CheckOut = checkIn, checkOut
		if in.GuestID != nil {
			res.GuestID = *in.GuestID
		}

		res.Touch(ActorFrom(ctx), s.now())
		return nil, nil
	})
}

// Confirm moves a pending reservation to CONFIRMED and reserves the room.
func (s *ReservationService) Confirm(ctx context.Context, id int64) domain.OperationResult[ReservationDTO] {
	return s.transition(ctx, "confirm reservation", id, domain.ReservationConfirmed)
}

// CheckIn is only possible inside the stay window and occupies the room.
func (s *ReservationService) CheckIn(ctx context.Context, id int64) domain.OperationResult[ReservationDTO] {
	return s.transition(ctx, "check in reservation", id, domain.ReservationCheckedIn)
}

func (s *ReservationService) CheckOut(ctx context.Context, id int64) domain.OperationResult[ReservationDTO] {
	return s.transition(ctx, "check out reservation", id, domain.ReservationCheckedOut)
}

// Cancel releases the room if the reservation had reserved it and no other
// confirmed reservation still claims it.
func (s *ReservationService) Cancel(ctx context.Context, id int64) domain.OperationResult[ReservationDTO] {
	return s.transition(ctx, "cancel reservation", id, domain.ReservationCancelled)
}

// Deactivate soft-deletes a checked-out or cancelled reservation.
func (s *ReservationService) Deactivate(ctx context.Context, id int64) domain.OperationResult[ReservationDTO] {
	return s.mutate(ctx, "deactivate reservation", id, func(ctx context.Context, res *domain.Reservation) (*domain.Room, error) {
		if !res.StatusID.Terminal() {
			return nil, domain.ErrReservationNotTerminal
		}

		res.Deactivate(ActorFrom(ctx), s.now())
		return nil, nil
	})
}

func (s *ReservationService) transition(ctx context.Context, op string, id int64, to domain.ReservationStatus) domain.OperationResult[ReservationDTO] {
	return s.mutate(ctx, op, id, func(ctx context.Context, res *domain.Reservation) (*domain.Room, error) {
		if err := res.CanTransition(to); err != nil {
			return nil, err
		}

		now := s.now()
		actor := ActorFrom(ctx)

		room, err := s.rooms.GetByID(ctx, res.RoomID)
		if err != nil {
			return nil, err
		}
		before := room.StatusID

		switch to {
		case domain.ReservationConfirmed:
			err = room.Reserve()
		case domain.ReservationCheckedIn:
			if !res.InStayWindow(now) {
				return nil, domain.ErrOutsideStayWindow
			}
			err = room.Occupy()
		case domain.ReservationCheckedOut:
			err = s.release(ctx, res, room)
		case domain.ReservationCancelled:
			if res.StatusID == domain.ReservationConfirmed && room.StatusID == domain.RoomReserved {
				err = s.release(ctx, res, room)
			}
		}
		if err != nil {
			return nil, err
		}

		if err := res.Transition(to, actor, now); err != nil {
			return nil, err
		}

		if room.StatusID == before {
			return nil, nil
		}

		room.Touch(actor, now)
		return room, nil
	})
}

func (s *ReservationService) release(ctx context.Context, res *domain.Reservation, room *domain.Room) error {
	claims, err := s.reservations.ListClaimingByRoom(ctx, room.ID)
	if err != nil {
		return err
	}

	stillReserved := false
	for i := range claims {
		if claims[i].ID != res.ID && claims[i].IsActive && claims[i].StatusID == domain.ReservationConfirmed {
			stillReserved = true
			break
		}
	}

	room.Release(stillReserved)
	return nil
}

// mutate re-reads the reservation under the lock of its room, applies
// change and persists the reservation together with the room change
// returns, if any.
func (s *ReservationService) mutate(
	ctx context.Context,
	op string,
	id int64,
	change func(ctx context.Context, res *domain.Reservation) (*domain.Room, error),
) domain.OperationResult[ReservationDTO] {
	readCtx, cancel := s.guard.withStorage(ctx)
	current, err := s.loadActive(readCtx, id)
	cancel()
	if err != nil {
		return fail[ReservationDTO](op, err)
	}

	var (
		updated     domain.Reservation
		roomChanged bool
	)
	err = s.guard.run(ctx, current.RoomID, func(ctx context.Context) error {
		res, err := s.loadActive(ctx, id)
		if err != nil {
			return err
		}

		room, err := change(ctx, res)
		if err != nil {
			return err
		}

		if err := s.reservations.UpdateWithRoom(ctx, res, room); err != nil {
			return err
		}

		updated = *res
		roomChanged = room != nil
		return nil
	})
	if err != nil {
		return fail[ReservationDTO](op, err)
	}

	if roomChanged {
		invalidateRooms(ctx, s.cache)
	}

	return domain.Ok(toReservationDTO(updated))
}

func (s *ReservationService) loadActive(ctx context.Context, id int64) (*domain.Reservation, error) {
	if id <= 0 {
		return nil, domain.ErrReservationNotFound
	}

	res, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !res.IsActive {
		return nil, domain.ErrReservationNotFound
	}

	return res, nil
}

// CancelStalePending cancels pending reservations whose check-in date is
// older than the pending grace period.
func (s *ReservationService) CancelStalePending(ctx context.Context) ([]ReservationDTO, error) {
	cutoff := s.now().Add(-s.pendingGrace)

	listCtx, cancel := s.guard.withStorage(ctx)
	stale, err := s.reservations.ListStalePending(listCtx, cutoff)
	cancel()
	if err != nil {
		return nil, err
	}

	var cancelled []ReservationDTO
	for _, res := range stale {
		result := s.Cancel(ctx, res.ID)
		if !result.Success {
			log.Printf("Failed to cancel stale reservation %d: %s", res.ID, result.Message)
			continue
		}

		cancelled = append(cancelled, result.Data)
	}

	return cancelled, nil
}

func (s *ReservationService) RunBackgroundCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Printf("Background Worker started: Checking stale pending reservations every %s...", interval)

	for {
		select {
		case <-ctx.Done():
			log.Println("Background Worker stopped.")
			return
		case <-ticker.C:
			s.processStalePending(ctx)
		}
	}
}

func (s *ReservationService) processStalePending(ctx context.Context) {
	cancelled, err := s.CancelStalePending(ctx)
	if err != nil {
		log.Printf("Error fetching stale pending reservations: %v", err)
		return
	}

	for _, res := range cancelled {
		log.Printf("Reservation %d for room %d was never confirmed and has been cancelled.", res.ID, res.RoomID)
	}
}
