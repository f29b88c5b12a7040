package session

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

var ErrNoToken = errors.New("no stored credential")

const tokenKey = "token"

// Store is the client-local credential store. The bearer token lives here
// between sessions; it is read once at the start of each fetch cycle and
// removed on logout or when an identity lookup fails.
type Store struct {
	*sql.DB
}

// Open creates the store, initializing the schema if needed.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating session directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening session store: %w", err)
	}

	s := &Store{db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return s, nil
}

func (s *Store) initSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS credentials (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
	`

	if _, err := s.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	return nil
}

// SetToken stores the bearer token, replacing any previous one.
func (s *Store) SetToken(token string) error {
	_, err := s.Exec(
		"INSERT INTO credentials (key, value, updated_at) VALUES (?, ?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at",
		tokenKey, token, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("storing token: %w", err)
	}
	return nil
}

// Token returns the stored bearer token, or ErrNoToken when the viewer is
// not logged in.
func (s *Store) Token() (string, error) {
	var token string
	err := s.QueryRow("SELECT value FROM credentials WHERE key = ?", tokenKey).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNoToken
	}
	if err != nil {
		return "", fmt.Errorf("reading token: %w", err)
	}
	return token, nil
}

// DeleteToken removes the stored credential.
func (s *Store) DeleteToken() error {
	if _, err := s.Exec("DELETE FROM credentials WHERE key = ?", tokenKey); err != nil {
		return fmt.Errorf("deleting token: %w", err)
	}
	return nil
}
