package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"github.com/vanshika/addressbook/internal/book"
)

// SQLiteStore persists the address book as a single-row JSON snapshot inside
// a sqlite database. The snapshot is rewritten transactionally on every Save.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore opens (creating if necessary) the database at opts.Path and
// ensures the snapshot table exists.
func NewSQLiteStore(ctx context.Context, opts Options) (*SQLiteStore, error) {
	if opts.Path == "" {
		return nil, ErrMissingPath
	}
	if dir := filepath.Dir(opts.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}

	db, err := sql.Open("sqlite", opts.Path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS snapshots (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		snapshot_id TEXT NOT NULL,
		saved_at TEXT NOT NULL,
		payload BLOB NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create snapshots table: %w", err)
	}

	return &SQLiteStore{db: db, path: opts.Path}, nil
}

// Load reads the stored snapshot. An empty database degrades to an empty
// book; a corrupt payload surfaces an error.
func (s *SQLiteStore) Load(ctx context.Context) (*book.Book, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM snapshots WHERE id = 1`).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return book.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("select snapshot: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot payload: %w", err)
	}

	loaded, err := Decode(snap)
	if err != nil {
		return nil, fmt.Errorf("restore %s: %w", s.path, err)
	}
	return loaded, nil
}

// Save replaces the stored snapshot with the current book state.
func (s *SQLiteStore) Save(ctx context.Context, b *book.Book) (retErr error) {
	snap := Encode(b)
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, `INSERT INTO snapshots (id, snapshot_id, saved_at, payload)
		VALUES (1, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET snapshot_id = excluded.snapshot_id,
			saved_at = excluded.saved_at, payload = excluded.payload`,
		snap.SnapshotID, snap.SavedAt.Format("2006-01-02T15:04:05Z07:00"), payload); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}

	return tx.Commit()
}

// Close releases the database handle.
func (s *SQLiteStore) Close(context.Context) error {
	return s.db.Close()
}
