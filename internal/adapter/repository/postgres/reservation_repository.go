package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/srgjo27/hotel_inventory/internal/core/domain"
)

const reservationColumns = `id, room_id, guest_id, check_in, check_out, status,
	is_active, created_at, created_by, modified_at, modified_by`

type ReservationRepository struct {
	db *sql.DB
}

func NewReservationRepository(db *sql.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) GetByID(ctx context.Context, reservationID int64) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`

	res, err := scanReservation(r.db.QueryRowContext(ctx, query, reservationID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}

		return nil, fmt.Errorf("get reservation %d: %w", reservationID, err)
	}

	return &res, nil
}

func (r *ReservationRepository) ListActive(ctx context.Context) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE is_active ORDER BY id`

	return r.list(ctx, query)
}

func (r *ReservationRepository) ListClaimingByRoom(ctx context.Context, roomID int64) ([]domain.Reservation, error) {
	query := `
	SELECT ` + reservationColumns + `
	FROM reservations
	WHERE room_id = $1 AND is_active AND status = ANY($2)
	ORDER BY id
	`

	return r.list(ctx, query, roomID, pq.Array(domain.ClaimingStatuses))
}

func (r *ReservationRepository) ListClaimingBetween(ctx context.Context, checkIn, checkOut time.Time) ([]domain.Reservation, error) {
	query := `
	SELECT ` + reservationColumns + `
	FROM reservations
	WHERE is_active AND status = ANY($1) AND check_in < $3 AND $2 < check_out
	ORDER BY id
	`

	return r.list(ctx, query, pq.Array(domain.ClaimingStatuses), checkIn, checkOut)
}

func (r *ReservationRepository) ListStalePending(ctx context.Context, checkInBefore time.Time) ([]domain.Reservation, error) {
	query := `
	SELECT ` + reservationColumns + `
	FROM reservations
	WHERE is_active AND status = $1 AND check_in < $2
	ORDER BY id
	LIMIT 100
	`

	return r.list(ctx, query, domain.ReservationPending, checkInBefore)
}

func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	query := `
	INSERT INTO reservations (room_id, guest_id, check_in, check_out, status,
		is_active, created_at, created_by, modified_at, modified_by)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		res.RoomID, res.GuestID, res.CheckIn, res.CheckOut, res.StatusID,
		res.IsActive, res.CreatedAt, res.CreatedBy, res.ModifiedAt, res.ModifiedBy,
	).Scan(&res.ID)
	if err != nil {
		return translate(fmt.Errorf("insert reservation: %w", err))
	}

	return nil
}

func (r *ReservationRepository) UpdateWithRoom(ctx context.Context, res *domain.Reservation, room *domain.Room) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer tx.Rollback()

	query := `
	UPDATE reservations
	SET guest_id = $1,
		check_in = $2,
		check_out = $3,
		status = $4,
		is_active = $5,
		modified_at = $6,
		modified_by = $7
	WHERE id = $8
	`

	result, err := tx.ExecContext(ctx, query,
		res.GuestID, res.CheckIn, res.CheckOut, res.StatusID,
		res.IsActive, res.ModifiedAt, res.ModifiedBy, res.ID,
	)
	if err != nil {
		return translate(fmt.Errorf("update reservation %d: %w", res.ID, err))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return domain.ErrReservationNotFound
	}

	if room != nil {
		if err := updateRoom(ctx, tx, room); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	if room != nil {
		room.Version++
	}

	return nil
}

func (r *ReservationRepository) list(ctx context.Context, query string, args ...any) ([]domain.Reservation, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	defer rows.Close()

	var out []domain.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}

		out = append(out, res)
	}

	return out, rows.Err()
}

func scanReservation(row scanner) (domain.Reservation, error) {
	var res domain.Reservation
	err := row.Scan(
		&res.ID,
		&res.RoomID,
		&res.GuestID,
		&res.CheckIn,
		&res.CheckOut,
		&res.StatusID,
		&res.IsActive,
		&res.CreatedAt,
		&res.CreatedBy,
		&res.ModifiedAt,
		&res.ModifiedBy,
	)

	return res, err
}
