package domain

import (
	"math"
	"strings"
	"time"
)

type RoomStatus string

const (
	RoomAvailable    RoomStatus = "AVAILABLE"
	RoomOccupied     RoomStatus = "OCCUPIED"
	RoomReserved     RoomStatus = "RESERVED"
	RoomMaintenance  RoomStatus = "MAINTENANCE"
	RoomOutOfService RoomStatus = "OUT_OF_SERVICE"
)

const (
	MinRoomPrice = 0.01
	MaxRoomPrice = 1_000_000.0
)

func (s RoomStatus) Valid() bool {
	switch s {
	case RoomAvailable, RoomOccupied, RoomReserved, RoomMaintenance, RoomOutOfService:
		return true
	}
	return false
}

// OnHold reports whether the status is an administrative hold.
func (s RoomStatus) OnHold() bool {
	return s == RoomMaintenance || s == RoomOutOfService
}

type Room struct {
	Audit
	Number      string     `json:"number"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	FloorID     int64      `json:"floorId"`
	CategoryID  int64      `json:"categoryId"`
	StatusID    RoomStatus `json:"statusId"`
	Version     int        `json:"version"`
}

func ValidatePrice(price float64) error {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return ErrPriceOutOfRange
	}

	if price < MinRoomPrice || price > MaxRoomPrice {
		return ErrPriceOutOfRange
	}

	// Prices are stored with two decimal places.
	cents := price * 100
	if math.Abs(cents-math.Round(cents)) > 1e-6 {
		return ErrPriceTooPrecise
	}

	return nil
}

func NormalizeRoomNumber(number string) (string, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return "", ErrRoomNumberRequired
	}

	return number, nil
}

func (r *Room) SetPrice(price float64, actor string, now time.Time) error {
	if err := ValidatePrice(price); err != nil {
		return err
	}

	r.Price = price
	r.Touch(actor, now)

	return nil
}

// CanSetAdministrative checks an administrative status change. It does not
// know about reservations; callers must ensure none claims the room.
// OCCUPIED and RESERVED are driven by reservations only.
func (r *Room) CanSetAdministrative(to RoomStatus) error {
	if !to.Valid() {
		return ErrInvalidRoomStatus
	}

	if to == r.StatusID {
		return nil
	}

	switch to {
	case RoomMaintenance, RoomOutOfService:
		if r.StatusID == RoomOccupied || r.StatusID == RoomReserved {
			return ErrIllegalRoomTransition
		}
		return nil
	case RoomAvailable:
		if r.StatusID.OnHold() {
			return nil
		}
	}

	return ErrIllegalRoomTransition
}

// Reserve marks the room as claimed by a confirmed reservation. A room that
// is already reserved or occupied keeps its status.
func (r *Room) Reserve() error {
	switch r.StatusID {
	case RoomAvailable:
		r.StatusID = RoomReserved
		return nil
	case RoomReserved, RoomOccupied:
		return nil
	}

	return ErrRoomOnHold
}

func (r *Room) Occupy() error {
	switch r.StatusID {
	case RoomAvailable, RoomReserved:
		r.StatusID = RoomOccupied
		return nil
	case RoomOccupied:
		return ErrIllegalRoomTransition
	}

	return ErrRoomOnHold
}

// Release frees the room after a check-out or cancellation. stillReserved
// tells whether another confirmed reservation still claims it.
func (r *Room) Release(stillReserved bool) {
	if r.StatusID.OnHold() {
		return
	}

	if stillReserved {
		r.StatusID = RoomReserved
		return
	}

	r.StatusID = RoomAvailable
}
