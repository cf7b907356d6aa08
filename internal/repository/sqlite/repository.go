package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/kyawhtet1234/GoalFlow/internal/errors"
	"github.com/kyawhtet1234/GoalFlow/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository defines the interface for the durable key-value record store.
// Each key holds one JSON-encoded document rewritten whole on every change.
type Repository interface {
	// Get returns the value stored under key. The boolean reports whether
	// the key exists; a missing key is not an error.
	Get(ctx context.Context, key string) (string, bool, error)

	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value string) error

	// Delete removes the record stored under key. Deleting a missing key
	// is a no-op.
	Delete(ctx context.Context, key string) error

	// ListRecords returns every stored record, ordered by key.
	ListRecords(ctx context.Context) ([]*Record, error)

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite-backed record store at the given path.
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewStorageError("open database", err)
	}

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewStorageError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// Get returns the value stored under key, if present.
func (r *SQLiteRepository) Get(ctx context.Context, key string) (string, bool, error) {
	query := `SELECT value FROM records WHERE key = ?`

	var value string
	err := r.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, HandleStorageError("get record", err)
	}
	return value, true, nil
}

// Put stores value under key, replacing any previous value.
func (r *SQLiteRepository) Put(ctx context.Context, key string, value string) error {
	query := `
	INSERT INTO records (key, value, updated_at)
	VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

	return Execute(ctx, r.db, query, "put record", key, value, FormatTimeForDB(time.Now()))
}

// Delete removes the record stored under key.
func (r *SQLiteRepository) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM records WHERE key = ?`
	return Execute(ctx, r.db, query, "delete record", key)
}

// ListRecords returns every stored record, ordered by key.
func (r *SQLiteRepository) ListRecords(ctx context.Context) ([]*Record, error) {
	query := `SELECT key, value, updated_at FROM records ORDER BY key ASC`
	return QueryMultiple(ctx, r.db, query, ScanRecords, "records")
}
