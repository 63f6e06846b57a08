package sqlitestore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/financeflow/financeflow_backend/internal/apperrors"
	"github.com/financeflow/financeflow_backend/internal/core/domain"
	portsrepo "github.com/financeflow/financeflow_backend/internal/core/ports/repositories"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // sqlite driver
)

// Fixed storage keys. These mirror the keys the browser front-end used for
// its local storage, so the snapshot stays recognizable across the stack.
const (
	userKey  = "financeflow_user"
	tokenKey = "financeflow_token"
)

// SessionStore persists the active user record and token in a local sqlite
// file. It is the only durable state in the system.
type SessionStore struct {
	db *sqlx.DB
}

var _ portsrepo.SessionStore = (*SessionStore)(nil)

// NewSessionStore opens (or creates) the sqlite file at path and ensures the
// snapshot table exists.
func NewSessionStore(path string) (*SessionStore, error) {
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}
	s := &SessionStore{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SessionStore) initSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS session_snapshot (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at DATETIME DEFAULT (strftime('%Y-%m-%d %H:%M:%f', 'now'))
		);
	`)
	if err != nil {
		return fmt.Errorf("init session schema: %w", err)
	}
	return nil
}

func (s *SessionStore) SaveSnapshot(ctx context.Context, user domain.User, token string) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode session user: %w", err)
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	defer tx.Rollback()

	upsert := `INSERT OR REPLACE INTO session_snapshot (key, value) VALUES (?, ?)`
	if _, err := tx.ExecContext(ctx, upsert, userKey, string(payload)); err != nil {
		return fmt.Errorf("save snapshot user: %w", err)
	}
	if _, err := tx.ExecContext(ctx, upsert, tokenKey, token); err != nil {
		return fmt.Errorf("save snapshot token: %w", err)
	}
	return tx.Commit()
}

func (s *SessionStore) LoadSnapshot(ctx context.Context) (*domain.User, string, error) {
	var payload string
	err := s.db.GetContext(ctx, &payload, `SELECT value FROM session_snapshot WHERE key = ?`, userKey)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, "", apperrors.ErrNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("load snapshot: %w", err)
	}

	var user domain.User
	if err := json.Unmarshal([]byte(payload), &user); err != nil {
		return nil, "", fmt.Errorf("decode session user: %w", err)
	}

	var token string
	err = s.db.GetContext(ctx, &token, `SELECT value FROM session_snapshot WHERE key = ?`, tokenKey)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, "", fmt.Errorf("load snapshot token: %w", err)
	}
	return &user, token, nil
}

func (s *SessionStore) ClearSnapshot(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM session_snapshot WHERE key IN (?, ?)`, userKey, tokenKey)
	if err != nil {
		return fmt.Errorf("clear snapshot: %w", err)
	}
	return nil
}

// Token returns the stored bearer token, or empty when none is persisted.
// It backs the gateway's TokenProvider.
func (s *SessionStore) Token(ctx context.Context) string {
	var token string
	if err := s.db.GetContext(ctx, &token, `SELECT value FROM session_snapshot WHERE key = ?`, tokenKey); err != nil {
		return ""
	}
	return token
}

// Close releases the underlying database handle.
func (s *SessionStore) Close() error {
	return s.db.Close()
}
