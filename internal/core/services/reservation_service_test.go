package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/srgjo27/hotel_inventory/internal/core/domain"
	"github.com/srgjo27/hotel_inventory/internal/core/ports/mocks"
	"github.com/srgjo27/hotel_inventory/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateReservation_ConcurrentOverlappingRequests(t *testing.T) {
	env := newTestEnv(t)
	room := env.mustRoom(t, "101", 150)

	const workers = 20

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(guest int64) {
			defer wg.Done()

			res := env.reservations.Create(staffCtx(), services.ReservationAddDTO{
				RoomID:   room.ID,
				GuestID:  guest,
				CheckIn:  day(10),
				CheckOut: day(12),
			})

			mu.Lock()
			defer mu.Unlock()
			if res.Success {
				successes++
			} else if res.ErrorCode == domain.CodeConflict {
				conflicts++
			}
		}(int64(i + 1))
	}

	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, workers-1, conflicts)

	all := env.reservations.GetAll(context.Background())
	require.True(t, all.Success)
	assert.Len(t, all.Data, 1)
}

func TestConfirm_ConcurrentOnSameRoom(t *testing.T) {
	env := newTestEnv(t)
	room := env.mustRoom(t, "101", 150)

	ids := make([]int64, 0, 5)
	for i := 0; i < 5; i++ {
		r := env.mustReservation(t, room.ID, day(2*i+2), day(2*i+4))
		ids = append(ids, r.ID)
	}

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			assert.True(t, env.reservations.Confirm(staffCtx(), id).Success)
		}(id)
	}
	wg.Wait()

	assert.Equal(t, domain.RoomReserved, env.roomStatus(t, room.ID))
}

func TestConfirm_PersistsReservationAndRoomTogether(t *testing.T) {
	reservations := mocks.NewReservationRepository(t)
	rooms := mocks.NewRoomRepository(t)
	locker := mocks.NewRoomLocker(t)
	cache := mocks.NewRoomCache(t)

	res := &domain.Reservation{Audit: domain.Audit{ID: 5, IsActive: true}, RoomID: 9, GuestID: 1, CheckIn: day(10), CheckOut: day(12), StatusID: domain.ReservationPending}
	room := &domain.Room{Audit: domain.Audit{ID: 9, IsActive: true}, StatusID: domain.RoomAvailable, Version: 2}

	reservations.On("GetByID", mock.Anything, int64(5)).Return(res, nil).Twice()
	locker.On("Lock", mock.Anything, int64(9)).Return(func() {}, nil).Once()
	rooms.On("GetByID", mock.Anything, int64(9)).Return(room, nil).Once()
	reservations.On("UpdateWithRoom", mock.Anything,
		mock.MatchedBy(func(r *domain.Reservation) bool { return r.StatusID == domain.ReservationConfirmed }),
		mock.MatchedBy(func(r *domain.Room) bool { return r != nil && r.StatusID == domain.RoomReserved }),
	).Return(nil).Once()
	cache.On("Invalidate", mock.Anything).Return(nil).Once()

	svc := services.NewReservationService(reservations, rooms, locker, services.WithRoomCache(cache))
	out := svc.Confirm(services.WithActor(context.Background(), "desk-2"), 5)

	require.True(t, out.Success, out.Message)
	assert.Equal(t, domain.ReservationConfirmed, out.Data.StatusID)
	assert.Equal(t, "desk-2", out.Data.ModifiedBy)
}

func TestConfirm_StorageFailureReportsInfrastructure(t *testing.T) {
	reservations := mocks.NewReservationRepository(t)
	rooms := mocks.NewRoomRepository(t)
	locker := mocks.NewRoomLocker(t)

	res := &domain.Reservation{Audit: domain.Audit{ID: 5, IsActive: true}, RoomID: 9, GuestID: 1, CheckIn: day(10), CheckOut: day(12), StatusID: domain.ReservationPending}
	room := &domain.Room{Audit: domain.Audit{ID: 9, IsActive: true}, StatusID: domain.RoomAvailable, Version: 2}

	reservations.On("GetByID", mock.Anything, int64(5)).Return(res, nil).Twice()
	locker.On("Lock", mock.Anything, int64(9)).Return(func() {}, nil).Once()
	rooms.On("GetByID", mock.Anything, int64(9)).Return(room, nil).Once()
	reservations.On("UpdateWithRoom", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("tx aborted")).Once()

	svc := services.NewReservationService(reservations, rooms, locker)
	out := svc.Confirm(context.Background(), 5)

	assert.False(t, out.Success)
	assert.Equal(t, domain.CodeInfrastructureFailure, out.ErrorCode)
}

func TestConfirm_RoomModifiedConcurrentlyIsConflict(t *testing.T) {
	reservations := mocks.NewReservationRepository(t)
	rooms := mocks.NewRoomRepository(t)
	locker := mocks.NewRoomLocker(t)

	res := &domain.Reservation{Audit: domain.Audit{ID: 5, IsActive: true}, RoomID: 9, GuestID: 1, CheckIn: day(10), CheckOut: day(12), StatusID: domain.ReservationPending}
	room := &domain.Room{Audit: domain.Audit{ID: 9, IsActive: true}, StatusID: domain.RoomAvailable, Version: 2}

	reservations.On("GetByID", mock.Anything, int64(5)).Return(res, nil).Twice()
	locker.On("Lock", mock.Anything, int64(9)).Return(func() {}, nil).Once()
	rooms.On("GetByID", mock.Anything, int64(9)).Return(room, nil).Once()
	reservations.On("UpdateWithRoom", mock.Anything, mock.Anything, mock.Anything).Return(domain.ErrRoomModified).Once()

	svc := services.NewReservationService(reservations, rooms, locker)
	out := svc.Confirm(context.Background(), 5)

	assert.Equal(t, domain.CodeConflict, out.ErrorCode)
}

func TestCreateReservation_LockUnavailable(t *testing.T) {
	reservations := mocks.NewReservationRepository(t)
	rooms := mocks.NewRoomRepository(t)
	locker := mocks.NewRoomLocker(t)

	locker.On("Lock", mock.Anything, int64(9)).Return(nil, errors.New("redis: connection pool timeout")).Once()

	svc := services.NewReservationService(reservations, rooms, locker)
	out := svc.Create(context.Background(), services.ReservationAddDTO{RoomID: 9, GuestID: 1, CheckIn: day(10), CheckOut: day(12)})

	assert.Equal(t, domain.CodeInfrastructureFailure, out.ErrorCode)
	reservations.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateReservation_StorageRejectsOverlap(t *testing.T) {
	reservations := mocks.NewReservationRepository(t)
	rooms := mocks.NewRoomRepository(t)
	locker := mocks.NewRoomLocker(t)

	room := &domain.Room{Audit: domain.Audit{ID: 9, IsActive: true}, StatusID: domain.RoomAvailable}

	locker.On("Lock", mock.Anything, int64(9)).Return(func() {}, nil).Once()
	rooms.On("GetByID", mock.Anything, int64(9)).Return(room, nil).Once()
	reservations.On("ListClaimingByRoom", mock.Anything, int64(9)).Return(nil, nil).Once()
	reservations.On("Create", mock.Anything, mock.Anything).Return(domain.ErrOverlappingReservation).Once()

	svc := services.NewReservationService(reservations, rooms, locker)
	out := svc.Create(context.Background(), services.ReservationAddDTO{RoomID: 9, GuestID: 1, CheckIn: day(10), CheckOut: day(12)})

	assert.Equal(t, domain.CodeConflict, out.ErrorCode)
}

func TestCancelStalePending_ListFailure(t *testing.T) {
	reservations := mocks.NewReservationRepository(t)
	rooms := mocks.NewRoomRepository(t)
	locker := mocks.NewRoomLocker(t)

	reservations.On("ListStalePending", mock.Anything, day(4)).Return(nil, errors.New("timeout")).Once()

	svc := services.NewReservationService(reservations, rooms, locker, services.WithClock((&testClock{now: day(5)}).Now))
	cancelled, err := svc.CancelStalePending(context.Background())

	assert.Error(t, err)
	assert.Empty(t, cancelled)
}

func TestReservationReads_BoundedByStorageTimeout(t *testing.T) {
	reservations := mocks.NewReservationRepository(t)
	rooms := mocks.NewRoomRepository(t)
	locker := mocks.NewRoomLocker(t)

	reservations.On("GetByID", mock.Anything, int64(5)).Return(func(ctx context.Context, _ int64) (*domain.Reservation, error) {
		return nil, stall(ctx)
	}).Twice()
	reservations.On("ListActive", mock.Anything).Return(func(ctx context.Context) ([]domain.Reservation, error) {
		return nil, stall(ctx)
	}).Once()

	svc := services.NewReservationService(reservations, rooms, locker, services.WithStorageTimeout(50*time.Millisecond))

	start := time.Now()
	byID := svc.GetByID(context.Background(), 5)
	all := svc.GetAll(context.Background())
	confirm := svc.Confirm(context.Background(), 5)

	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, domain.CodeInfrastructureFailure, byID.ErrorCode)
	assert.Equal(t, domain.CodeInfrastructureFailure, all.ErrorCode)
	assert.Equal(t, domain.CodeInfrastructureFailure, confirm.ErrorCode)
	locker.AssertNotCalled(t, "Lock", mock.Anything, mock.Anything)
}

func TestCancelStalePending_BoundedByStorageTimeout(t *testing.T) {
	reservations := mocks.NewReservationRepository(t)
	rooms := mocks.NewRoomRepository(t)
	locker := mocks.NewRoomLocker(t)

	reservations.On("ListStalePending", mock.Anything, mock.Anything).Return(func(ctx context.Context, _ time.Time) ([]domain.Reservation, error) {
		return nil, stall(ctx)
	}).Once()

	svc := services.NewReservationService(reservations, rooms, locker, services.WithStorageTimeout(50*time.Millisecond))

	start := time.Now()
	cancelled, err := svc.CancelStalePending(context.Background())

	assert.Less(t, time.Since(start), time.Second)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Empty(t, cancelled)
}
