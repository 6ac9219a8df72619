package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
)

var (
	ErrRoomNotFound        = fmt.Errorf("room %w", ErrNotFound)
	ErrReservationNotFound = fmt.Errorf("reservation %w", ErrNotFound)
)

var (
	ErrPriceOutOfRange    = fmt.Errorf("%w: price must be between 0.01 and 1000000", ErrValidation)
	ErrPriceTooPrecise    = fmt.Errorf("%w: price must have at most two decimal places", ErrValidation)
	ErrRoomNumberRequired = fmt.Errorf("%w: room number is required", ErrValidation)
	ErrInvalidReference   = fmt.Errorf("%w: floor and category ids must not be negative", ErrValidation)
	ErrInvalidRoomStatus  = fmt.Errorf("%w: unknown room status", ErrValidation)
	ErrInvalidStayWindow  = fmt.Errorf("%w: check-in must be before check-out", ErrValidation)
	ErrRoomRequired       = fmt.Errorf("%w: room id is required", ErrValidation)
	ErrGuestRequired      = fmt.Errorf("%w: guest id is required", ErrValidation)
)

var (
	ErrRoomNumberTaken           = fmt.Errorf("%w: room number is already in use", ErrConflict)
	ErrRoomModified              = fmt.Errorf("%w: room was modified by another operation", ErrConflict)
	ErrRoomOnHold                = fmt.Errorf("%w: room is under maintenance or out of service", ErrConflict)
	ErrRoomHasActiveReservations = fmt.Errorf("%w: room has pending, confirmed or checked-in reservations", ErrConflict)
	ErrIllegalRoomTransition     = fmt.Errorf("%w: illegal room status transition", ErrConflict)
	ErrOverlappingReservation    = fmt.Errorf("%w: room is already booked for an overlapping period", ErrConflict)
	ErrIllegalTransition         = fmt.Errorf("%w: illegal reservation status transition", ErrConflict)
	ErrTerminalReservation       = fmt.Errorf("%w: reservation is in a terminal state", ErrConflict)
	ErrReservationNotTerminal    = fmt.Errorf("%w: only checked-out or cancelled reservations can be removed", ErrConflict)
	ErrOutsideStayWindow         = fmt.Errorf("%w: check-in is only possible within the reservation dates", ErrConflict)
	ErrCheckInFrozen             = fmt.Errorf("%w: check-in date cannot change after arrival", ErrConflict)
)
