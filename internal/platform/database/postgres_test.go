package database

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type unreachableDriver struct{}

func (unreachableDriver) Open(string) (driver.Conn, error) {
	return nil, errors.New("connection refused")
}

func init() {
	sql.Register("unreachable", unreachableDriver{})
}

func TestNewPostgresDB_ClosesPoolOfFailedAttempts(t *testing.T) {
	var opened []*sql.DB

	origOpen, origRetries, origDelay := openDB, maxRetries, retryDelay
	t.Cleanup(func() {
		openDB, maxRetries, retryDelay = origOpen, origRetries, origDelay
	})

	openDB = func(_, dsn string) (*sql.DB, error) {
		db, err := sql.Open("unreachable", dsn)
		if err == nil {
			opened = append(opened, db)
		}
		return db, err
	}
	maxRetries = 3
	retryDelay = 0

	db, err := NewPostgresDB(Config{Host: "localhost", Port: "5432", User: "postgres", DBName: "hotel_inventory"})

	assert.Nil(t, db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")

	require.Len(t, opened, 3)
	for _, db := range opened {
		assert.ErrorContains(t, db.Ping(), "database is closed")
	}
}

func TestConfigDSN(t *testing.T) {
	cfg := Config{Host: "db", Port: "5433", User: "app", Password: "secret", DBName: "hotel"}

	assert.Equal(t, "postgres://app:secret@db:5433/hotel?sslmode=disable", cfg.DSN())
}
