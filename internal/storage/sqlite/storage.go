package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/mcoot/fastlane/internal/model"
	"github.com/mcoot/fastlane/internal/storage"
)

const schema = `CREATE TABLE IF NOT EXISTS saves (
	slot     TEXT PRIMARY KEY,
	data     BLOB NOT NULL,
	saved_at INTEGER NOT NULL
)`

// Storage is a SQLite-backed implementation of the storage interface. Every
// slot is one row of the saves table.
type Storage struct {
	db   *sql.DB
	slot string
}

// Open opens the database at path, creating the schema if needed
func Open(path, slot string) (*Storage, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	if slot == "" {
		slot = storage.DefaultSlot
	}

	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Storage{db: db, slot: slot}, nil
}

// Close releases the underlying database connection
func (s *Storage) Close() error {
	return s.db.Close()
}

// Ensure Storage implements the interface
var _ storage.Store = (*Storage)(nil)

func (s *Storage) Load(ctx context.Context) (*model.Snapshot, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT data FROM saves WHERE slot = ?`, s.slot).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("load slot %s: %w", s.slot, err)
	}
	return storage.Decode(data)
}

func (s *Storage) Save(ctx context.Context, snap *model.Snapshot) error {
	data, err := storage.Encode(snap)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO saves (slot, data, saved_at) VALUES (?, ?, ?)
		 ON CONFLICT(slot) DO UPDATE SET data = excluded.data, saved_at = excluded.saved_at`,
		s.slot, data, snap.SavedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("save slot %s: %w", s.slot, err)
	}
	return nil
}

func (s *Storage) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM saves WHERE slot = ?`, s.slot); err != nil {
		return fmt.Errorf("clear slot %s: %w", s.slot, err)
	}
	return nil
}

// SavedAt returns when the slot was last written, or ErrSaveNotFound
func (s *Storage) SavedAt(ctx context.Context) (time.Time, error) {
	var millis int64
	err := s.db.QueryRowContext(ctx, `SELECT saved_at FROM saves WHERE slot = ?`, s.slot).Scan(&millis)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, model.ErrSaveNotFound
		}
		return time.Time{}, fmt.Errorf("saved at for slot %s: %w", s.slot, err)
	}
	return time.UnixMilli(millis).UTC(), nil
}
