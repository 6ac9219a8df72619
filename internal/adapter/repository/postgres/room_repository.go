package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/srgjo27/hotel_inventory/internal/core/domain"
)

const (
	uniqueViolation    = "23505"
	exclusionViolation = "23P01"
)

const roomColumns = `id, number, description, price, floor_id, category_id, status, version,
	is_active, created_at, created_by, modified_at, modified_by`

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type scanner interface {
	Scan(dest ...any) error
}

type RoomRepository struct {
	db *sql.DB
}

func NewRoomRepository(db *sql.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) GetByID(ctx context.Context, roomID int64) (*domain.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1`

	room, err := scanRoom(r.db.QueryRowContext(ctx, query, roomID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoomNotFound
		}

		return nil, fmt.Errorf("get room %d: %w", roomID, err)
	}

	return &room, nil
}

func (r *RoomRepository) GetByNumber(ctx context.Context, number string) (*domain.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE number = $1 AND is_active`

	room, err := scanRoom(r.db.QueryRowContext(ctx, query, number))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoomNotFound
		}

		return nil, fmt.Errorf("get room by number %q: %w", number, err)
	}

	return &room, nil
}

func (r *RoomRepository) ListActive(ctx context.Context) ([]domain.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE is_active ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}

	defer rows.Close()

	var rooms []domain.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}

		rooms = append(rooms, room)
	}

	return rooms, rows.Err()
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	query := `
	INSERT INTO rooms (number, description, price, floor_id, category_id, status, version,
		is_active, created_at, created_by, modified_at, modified_by)
	VALUES ($1, $2, $3, $4, $5, $6, 1, $7, $8, $9, $10, $11)
	RETURNING id, version
	`

	err := r.db.QueryRowContext(ctx, query,
		room.Number, room.Description, room.Price, room.FloorID, room.CategoryID, room.StatusID,
		room.IsActive, room.CreatedAt, room.CreatedBy, room.ModifiedAt, room.ModifiedBy,
	).Scan(&room.ID, &room.Version)
	if err != nil {
		return translate(fmt.Errorf("insert room: %w", err))
	}

	return nil
}

func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) error {
	if err := updateRoom(ctx, r.db, room); err != nil {
		return err
	}

	room.Version++
	return nil
}

// updateRoom writes room guarded by its version. It does not bump
// room.Version; callers do so once the write is committed.
func updateRoom(ctx context.Context, q execer, room *domain.Room) error {
	query := `
	UPDATE rooms
	SET number = $1,
		description = $2,
		price = $3,
		floor_id = $4,
		category_id = $5,
		status = $6,
		is_active = $7,
		modified_at = $8,
		modified_by = $9,
		version = version + 1
	WHERE id = $10 AND version = $11
	`

	result, err := q.ExecContext(ctx, query,
		room.Number, room.Description, room.Price, room.FloorID, room.CategoryID, room.StatusID,
		room.IsActive, room.ModifiedAt, room.ModifiedBy, room.ID, room.Version,
	)
	if err != nil {
		return translate(fmt.Errorf("update room %d: %w", room.ID, err))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return domain.ErrRoomModified
	}

	return nil
}

func scanRoom(row scanner) (domain.Room, error) {
	var room domain.Room
	err := row.Scan(
		&room.ID,
		&room.Number,
		&room.Description,
		&room.Price,
		&room.FloorID,
		&room.CategoryID,
		&room.StatusID,
		&room.Version,
		&room.IsActive,
		&room.CreatedAt,
		&room.CreatedBy,
		&room.ModifiedAt,
		&room.ModifiedBy,
	)

	return room, err
}

// translate turns constraint violations into domain conflicts.
func translate(err error) error {
	var pgErr *pq.Error
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case uniqueViolation:
		return domain.ErrRoomNumberTaken
	case exclusionViolation:
		return domain.ErrOverlappingReservation
	}

	return err
}
