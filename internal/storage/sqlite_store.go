package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/sandeepkv93/zenflow/internal/model"
)

const (
	keyRoutines = "routines"
	keyEvents   = "events"
	keyTheme    = "theme"

	sqliteTimeLayout = time.RFC3339Nano
)

// SQLiteStore keeps each collection as a JSON array under its key in a small
// key-value table.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	store, err := NewSQLiteStore(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) LoadRoutines(ctx context.Context) ([]model.Routine, error) {
	raw, err := s.getValue(ctx, keyRoutines)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return []model.Routine{}, nil
		}
		return nil, err
	}
	var routines []model.Routine
	if err := json.Unmarshal([]byte(raw), &routines); err != nil {
		// Malformed persisted state degrades to an empty collection.
		return []model.Routine{}, nil
	}
	if routines == nil {
		routines = []model.Routine{}
	}
	return routines, nil
}

func (s *SQLiteStore) SaveRoutines(ctx context.Context, routines []model.Routine) error {
	return s.putJSON(ctx, keyRoutines, routines)
}

func (s *SQLiteStore) LoadEvents(ctx context.Context) ([]model.Event, error) {
	raw, err := s.getValue(ctx, keyEvents)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return []model.Event{}, nil
		}
		return nil, err
	}
	var events []model.Event
	if err := json.Unmarshal([]byte(raw), &events); err != nil {
		return []model.Event{}, nil
	}
	if events == nil {
		events = []model.Event{}
	}
	return events, nil
}

func (s *SQLiteStore) SaveEvents(ctx context.Context, events []model.Event) error {
	return s.putJSON(ctx, keyEvents, events)
}

func (s *SQLiteStore) LoadTheme(ctx context.Context) (string, error) {
	raw, err := s.getValue(ctx, keyTheme)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ThemeDark, nil
		}
		return "", err
	}
	switch raw {
	case ThemeLight, ThemeDark:
		return raw, nil
	default:
		return ThemeDark, nil
	}
}

func (s *SQLiteStore) SaveTheme(ctx context.Context, theme string) error {
	return s.putValue(ctx, keyTheme, theme)
}

func (s *SQLiteStore) putJSON(ctx context.Context, key string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return s.putValue(ctx, key, string(payload))
}

func (s *SQLiteStore) putValue(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC().Format(sqliteTimeLayout),
	)
	return err
}

func (s *SQLiteStore) getValue(ctx context.Context, key string) (string, error) {
	row := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key)
	var value string
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	return value, nil
}
