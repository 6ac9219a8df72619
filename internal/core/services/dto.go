package services

import (
	"time"

	"github.com/srgjo27/hotel_inventory/internal/core/domain"
)

type RoomDTO struct {
	ID          int64             `json:"id"`
	Number      string            `json:"number"`
	Description string            `json:"description"`
	Price       float64           `json:"price"`
	FloorID     int64             `json:"floorId"`
	CategoryID  int64             `json:"categoryId"`
	StatusID    domain.RoomStatus `json:"statusId"`
	CreatedAt   time.Time         `json:"createdAt"`
	CreatedBy   string            `json:"createdBy"`
	ModifiedAt  time.Time         `json:"modifiedAt"`
	ModifiedBy  string            `json:"modifiedBy"`
}

type RoomAddDTO struct {
	Number      string            `json:"number"`
	Description string            `json:"description"`
	Price       float64           `json:"price"`
	FloorID     int64             `json:"floorId"`
	CategoryID  int64             `json:"categoryId"`
	StatusID    domain.RoomStatus `json:"statusId,omitempty"`
}

// RoomUpdateDTO changes only the fields that are set.
type RoomUpdateDTO struct {
	ID          int64              `json:"id"`
	Number      *string            `json:"number,omitempty"`
	Description *string            `json:"description,omitempty"`
	Price       *float64           `json:"price,omitempty"`
	FloorID     *int64             `json:"floorId,omitempty"`
	CategoryID  *int64             `json:"categoryId,omitempty"`
	StatusID    *domain.RoomStatus `json:"statusId,omitempty"`
}

type PriceUpdateDTO struct {
	RoomID int64   `json:"roomId"`
	Price  float64 `json:"price"`
}

type RoomStatusUpdateDTO struct {
	RoomID   int64             `json:"roomId"`
	StatusID domain.RoomStatus `json:"statusId"`
}

type ReservationDTO struct {
	ID         int64                    `json:"id"`
	RoomID     int64                    `json:"roomId"`
	GuestID    int64                    `json:"guestId"`
	CheckIn    time.Time                `json:"checkIn"`
	CheckOut   time.Time                `json:"checkOut"`
	StatusID   domain.ReservationStatus `json:"statusId"`
	CreatedAt  time.Time                `json:"createdAt"`
	CreatedBy  string                   `json:"createdBy"`
	ModifiedAt time.Time                `json:"modifiedAt"`
	ModifiedBy string                   `json:"modifiedBy"`
}

type ReservationAddDTO struct {
	RoomID   int64     `json:"roomId"`
	GuestID  int64     `json:"guestId"`
	CheckIn  time.Time `json:"checkIn"`
	CheckOut time.Time `json:"checkOut"`
}

type ReservationUpdateDTO struct {
	ID       int64      `json:"id"`
	GuestID  *int64     `json:"guestId,omitempty"`
	CheckIn  *time.Time `json:"checkIn,omitempty"`
	CheckOut *time.Time `json:"checkOut,omitempty"`
}

func toRoomDTO(r domain.Room) RoomDTO {
	return RoomDTO{
		ID:          r.ID,
		Number:      r.Number,
		Description: r.Description,
		Price:       r.Price,
		FloorID:     r.FloorID,
		CategoryID:  r.CategoryID,
		StatusID:    r.StatusID,
		CreatedAt:   r.CreatedAt,
		CreatedBy:   r.CreatedBy,
		ModifiedAt:  r.ModifiedAt,
		ModifiedBy:  r.ModifiedBy,
	}
}

func toRoomDTOs(rooms []domain.Room) []RoomDTO {
	out := make([]RoomDTO, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, toRoomDTO(r))
	}
	return out
}

func toReservationDTO(r domain.Reservation) ReservationDTO {
	return ReservationDTO{
		ID:         r.ID,
		RoomID:     r.RoomID,
		GuestID:    r.GuestID,
		CheckIn:    r.CheckIn,
		CheckOut:   r.CheckOut,
		StatusID:   r.StatusID,
		CreatedAt:  r.CreatedAt,
		CreatedBy:  r.CreatedBy,
		ModifiedAt: r.ModifiedAt,
		ModifiedBy: r.ModifiedBy,
	}
}

func toReservationDTOs(reservations []domain.Reservation) []ReservationDTO {
	out := make([]ReservationDTO, 0, len(reservations))
	for _, r := range reservations {
		out = append(out, toReservationDTO(r))
	}
	return out
}
