package domain_test

import (
	"testing"
	"time"

	"github.com/srgjo27/hotel_inventory/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestValidateStayWindow(t *testing.T) {
	assert.NoError(t, domain.ValidateStayWindow(day(10), day(12)))
	assert.ErrorIs(t, domain.ValidateStayWindow(day(12), day(12)), domain.ErrValidation)
	assert.ErrorIs(t, domain.ValidateStayWindow(day(13), day(12)), domain.ErrInvalidStayWindow)
	assert.ErrorIs(t, domain.ValidateStayWindow(time.Time{}, day(12)), domain.ErrInvalidStayWindow)
}

func TestReservation_Overlaps(t *testing.T) {
	r := domain.Reservation{CheckIn: day(10), CheckOut: day(12)}

	assert.True(t, r.Overlaps(day(11), day(13)))
	assert.True(t, r.Overlaps(day(9), day(11)))
	assert.True(t, r.Overlaps(day(10), day(12)))
	assert.True(t, r.Overlaps(day(8), day(14)))
	assert.False(t, r.Overlaps(day(12), day(14)))
	assert.False(t, r.Overlaps(day(8), day(10)))
}

func TestReservation_Transitions(t *testing.T) {
	all := []domain.ReservationStatus{
		domain.ReservationPending,
		domain.ReservationConfirmed,
		domain.ReservationCheckedIn,
		domain.ReservationCheckedOut,
		domain.ReservationCancelled,
	}

	allowed := map[domain.ReservationStatus]map[domain.ReservationStatus]bool{
		domain.ReservationPending:   {domain.ReservationConfirmed: true, domain.ReservationCancelled: true},
		domain.ReservationConfirmed: {domain.ReservationCheckedIn: true, domain.ReservationCancelled: true},
		domain.ReservationCheckedIn: {domain.ReservationCheckedOut: true},
	}

	for _, from := range all {
		for _, to := range all {
			r := domain.Reservation{StatusID: from}
			err := r.Transition(to, "clerk", day(10))

			switch {
			case allowed[from][to]:
				assert.NoError(t, err, "%s -> %s", from, to)
				assert.Equal(t, to, r.StatusID)
			case from.Terminal():
				assert.ErrorIs(t, err, domain.ErrTerminalReservation, "%s -> %s", from, to)
				assert.Equal(t, from, r.StatusID)
			default:
				assert.ErrorIs(t, err, domain.ErrIllegalTransition, "%s -> %s", from, to)
				assert.Equal(t, from, r.StatusID)
			}
		}
	}
}

func TestReservation_InStayWindow(t *testing.T) {
	r := domain.Reservation{CheckIn: day(10), CheckOut: day(12)}

	assert.True(t, r.InStayWindow(day(10)))
	assert.True(t, r.InStayWindow(day(11).Add(15*time.Hour)))
	assert.False(t, r.InStayWindow(day(9)))
	assert.False(t, r.InStayWindow(day(12)))
}

func TestFindOverlap(t *testing.T) {
	existing := []domain.Reservation{
		{Audit: domain.Audit{ID: 1, IsActive: true}, CheckIn: day(10), CheckOut: day(12), StatusID: domain.ReservationCancelled},
		{Audit: domain.Audit{ID: 2, IsActive: false}, CheckIn: day(10), CheckOut: day(12), StatusID: domain.ReservationPending},
		{Audit: domain.Audit{ID: 3, IsActive: true}, CheckIn: day(10), CheckOut: day(12), StatusID: domain.ReservationConfirmed},
	}

	found := domain.FindOverlap(existing, 0, day(11), day(13))
	if assert.NotNil(t, found) {
		assert.Equal(t, int64(3), found.ID)
	}

	assert.Nil(t, domain.FindOverlap(existing, 3, day(11), day(13)))
	assert.Nil(t, domain.FindOverlap(existing, 0, day(12), day(13)))
}
