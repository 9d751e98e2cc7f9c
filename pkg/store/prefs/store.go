// Package prefs persists the session and compensation preference records as
// JSON blobs in a small SQLite key-value table. The contract with callers is
// deliberately forgiving: a missing or unparseable record yields defaults,
// never an error, and corrupt rows are dropped on read.
package prefs

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"

	"github.com/de-tools/work-pulse/pkg/models/domain"
	"github.com/de-tools/work-pulse/pkg/services/compensation"
)

const (
	keySession      = "session"
	keyCompensation = "salaryPreferences"
	keyCalendar     = "calendarConfig"
)

// Store is a SQLite-backed preference store. Use ":memory:" as the path for
// tests.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// New opens (and migrates) the preference database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open preference database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate preference database: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
	CREATE TABLE IF NOT EXISTS preferences (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);`)
	return err
}

// LoadSession returns the persisted session, or an empty one when nothing
// usable is stored.
func (s *Store) LoadSession(ctx context.Context) domain.Session {
	var session domain.Session
	if !s.load(ctx, keySession, &session) {
		return domain.Session{TokenType: "Bearer"}
	}
	if session.TokenType == "" {
		session.TokenType = "Bearer"
	}
	return session
}

// SaveSession persists the authenticated session record.
func (s *Store) SaveSession(ctx context.Context, session domain.Session) error {
	return s.save(ctx, keySession, session)
}

// ClearSession removes the persisted session.
func (s *Store) ClearSession(ctx context.Context) error {
	return s.delete(ctx, keySession)
}

// LoadCompensation returns the persisted salary preferences, falling back
// to defaults (USD, everything off) when the record is missing or corrupt.
func (s *Store) LoadCompensation(ctx context.Context) domain.CompensationConfig {
	var cfg domain.CompensationConfig
	if !s.load(ctx, keyCompensation, &cfg) {
		return compensation.DefaultConfig()
	}
	if cfg.Currency == "" {
		cfg.Currency = compensation.DefaultCurrency
	}
	return cfg
}

// SaveCompensation persists the salary preferences.
func (s *Store) SaveCompensation(ctx context.Context, cfg domain.CompensationConfig) error {
	return s.save(ctx, keyCompensation, cfg)
}

// LoadCalendar returns the persisted calendar configuration, or nil when
// nothing usable is stored so the caller can apply its defaults.
func (s *Store) LoadCalendar(ctx context.Context) *domain.CalendarConfig {
	var cfg domain.CalendarConfig
	if !s.load(ctx, keyCalendar, &cfg) {
		return nil
	}
	return &cfg
}

// SaveCalendar persists the calendar configuration.
func (s *Store) SaveCalendar(ctx context.Context, cfg domain.CalendarConfig) error {
	return s.save(ctx, keyCalendar, cfg)
}

// load reads and decodes one record. Malformed blobs are deleted and
// reported as absent; storage trouble is logged, not surfaced.
func (s *Store) load(ctx context.Context, key string, out any) bool {
	logger := zerolog.Ctx(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM preferences WHERE key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false
	}
	if err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("failed to read preference")
		return false
	}

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("discarding malformed preference record")
		_, _ = s.db.ExecContext(ctx, `DELETE FROM preferences WHERE key = ?`, key)
		return false
	}
	return true
}

func (s *Store) save(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode preference %q: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(raw), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to write preference %q: %w", key, err)
	}
	return nil
}

func (s *Store) delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.ExecContext(ctx, `DELETE FROM preferences WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete preference %q: %w", key, err)
	}
	return nil
}
