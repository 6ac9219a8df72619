package memory

import (
	"context"
	"sort"
	"time"

	"github.com/srgjo27/hotel_inventory/internal/core/domain"
)

type ReservationRepository struct {
	store *Store
}

func (r *ReservationRepository) GetByID(ctx context.Context, reservationID int64) (*domain.Reservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	res, ok := r.store.reservations[reservationID]
	if !ok {
		return nil, domain.ErrReservationNotFound
	}

	return &res, nil
}

func (r *ReservationRepository) ListActive(ctx context.Context) ([]domain.Reservation, error) {
	return r.filter(ctx, func(res *domain.Reservation) bool {
		return res.IsActive
	})
}

func (r *ReservationRepository) ListClaimingByRoom(ctx context.Context, roomID int64) ([]domain.Reservation, error) {
	return r.filter(ctx, func(res *domain.Reservation) bool {
		return res.RoomID == roomID && res.ClaimsRoom()
	})
}

func (r *ReservationRepository) ListClaimingBetween(ctx context.Context, checkIn, checkOut time.Time) ([]domain.Reservation, error) {
	return r.filter(ctx, func(res *domain.Reservation) bool {
		return res.ClaimsRoom() && res.Overlaps(checkIn, checkOut)
	})
}

func (r *ReservationRepository) ListStalePending(ctx context.Context, checkInBefore time.Time) ([]domain.Reservation, error) {
	return r.filter(ctx, func(res *domain.Reservation) bool {
		return res.IsActive && res.StatusID == domain.ReservationPending && res.CheckIn.Before(checkInBefore)
	})
}

func (r *ReservationRepository) Create(ctx context.Context, reservation *domain.Reservation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.overlaps(reservation) {
		return domain.ErrOverlappingReservation
	}

	r.store.nextResID++
	reservation.ID = r.store.nextResID
	r.store.reservations[reservation.ID] = *reservation

	return nil
}

func (r *ReservationRepository) UpdateWithRoom(ctx context.Context, reservation *domain.Reservation, room *domain.Room) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.reservations[reservation.ID]; !ok {
		return domain.ErrReservationNotFound
	}

	if r.store.overlaps(reservation) {
		return domain.ErrOverlappingReservation
	}

	if room != nil {
		// Apply to a copy first so a version conflict leaves the caller's
		// room untouched as well.
		next := *room
		if err := r.store.updateRoom(&next); err != nil {
			return err
		}
		*room = next
	}

	r.store.reservations[reservation.ID] = *reservation

	return nil
}

func (r *ReservationRepository) filter(ctx context.Context, keep func(res *domain.Reservation) bool) ([]domain.Reservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.Reservation, 0)
	for _, res := range r.store.reservations {
		if keep(&res) {
			out = append(out, res)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// overlaps must be called with s.mu held.
func (s *Store) overlaps(res *domain.Reservation) bool {
	if !res.ClaimsRoom() {
		return false
	}

	for id, other := range s.reservations {
		if id == res.ID || other.RoomID != res.RoomID || !other.ClaimsRoom() {
			continue
		}

		if other.Overlaps(res.CheckIn, res.CheckOut) {
			return true
		}
	}

	return false
}
