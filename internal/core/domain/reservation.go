package domain

import "time"

type ReservationStatus string

const (
	ReservationPending    ReservationStatus = "PENDING"
	ReservationConfirmed  ReservationStatus = "CONFIRMED"
	ReservationCheckedIn  ReservationStatus = "CHECKED_IN"
	ReservationCheckedOut ReservationStatus = "CHECKED_OUT"
	ReservationCancelled  ReservationStatus = "CANCELLED"
)

// ClaimingStatuses are the statuses in which a reservation holds its room
// for the stay window.
var ClaimingStatuses = []ReservationStatus{ReservationPending, ReservationConfirmed, ReservationCheckedIn}

var reservationTransitions = map[ReservationStatus][]ReservationStatus{
	ReservationPending:   {ReservationConfirmed, ReservationCancelled},
	ReservationConfirmed: {ReservationCheckedIn, ReservationCancelled},
	ReservationCheckedIn: {ReservationCheckedOut},
}

func (s ReservationStatus) Claims() bool {
	return s == ReservationPending || s == ReservationConfirmed || s == ReservationCheckedIn
}

func (s ReservationStatus) Terminal() bool {
	return s == ReservationCheckedOut || s == ReservationCancelled
}

type Reservation struct {
	Audit
	RoomID   int64             `json:"roomId"`
	GuestID  int64             `json:"guestId"`
	CheckIn  time.Time         `json:"checkIn"`
	CheckOut time.Time         `json:"checkOut"`
	StatusID ReservationStatus `json:"statusId"`
}

func ValidateStayWindow(checkIn, checkOut time.Time) error {
	if checkIn.IsZero() || checkOut.IsZero() || !checkIn.Before(checkOut) {
		return ErrInvalidStayWindow
	}

	return nil
}

// Overlaps reports whether [checkIn, checkOut) intersects the reservation's
// own half-open window.
func (r *Reservation) Overlaps(checkIn, checkOut time.Time) bool {
	return r.CheckIn.Before(checkOut) && checkIn.Before(r.CheckOut)
}

// ClaimsRoom reports whether the reservation blocks its room for its window.
func (r *Reservation) ClaimsRoom() bool {
	return r.IsActive && r.StatusID.Claims()
}

func (r *Reservation) InStayWindow(now time.Time) bool {
	return !now.Before(r.CheckIn) && now.Before(r.CheckOut)
}

func (r *Reservation) CanTransition(to ReservationStatus) error {
	if r.StatusID.Terminal() {
		return ErrTerminalReservation
	}

	for _, next := range reservationTransitions[r.StatusID] {
		if next == to {
			return nil
		}
	}

	return ErrIllegalTransition
}

func (r *Reservation) Transition(to ReservationStatus, actor string, now time.Time) error {
	if err := r.CanTransition(to); err != nil {
		return err
	}

	r.StatusID = to
	r.Touch(actor, now)

	return nil
}

// FindOverlap returns the first reservation in existing, other than the one
// with id exclude, that claims its room over [checkIn, checkOut).
func FindOverlap(existing []Reservation, exclude int64, checkIn, checkOut time.Time) *Reservation {
	for i := range existing {
		other := &existing[i]
		if other.ID == exclude || !other.ClaimsRoom() {
			continue
		}

		if other.Overlaps(checkIn, checkOut) {
			return other
		}
	}

	return nil
}
