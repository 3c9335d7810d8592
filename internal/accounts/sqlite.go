package accounts

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store on a local SQLite database. It exists for
// deployments where the single-file JSON artifact is not enough: writes
// are transactional and safe across processes.
type SQLiteStore struct {
	mu sync.Mutex
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the database at path and ensures the
// schema exists.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creando directorio del almacén: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("abriendo el almacén: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, err
	}

	schema := `
	CREATE TABLE IF NOT EXISTS accounts (
		email TEXT PRIMARY KEY,
		password_hash TEXT NOT NULL,
		profile TEXT NOT NULL DEFAULT '{}',
		created_at TEXT NOT NULL
	);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("inicializando el esquema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error { return s.db.Close() }

// Create implements Store.
func (s *SQLiteStore) Create(email, password string, profile Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var exists int
	err := s.db.QueryRow("SELECT 1 FROM accounts WHERE email = ?", email).Scan(&exists)
	if err == nil {
		return ErrAlreadyExists
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return err
	}
	profileJSON, err := json.Marshal(profile.Clone())
	if err != nil {
		return err
	}

	_, err = s.db.Exec(
		"INSERT INTO accounts (email, password_hash, profile, created_at) VALUES (?, ?, ?, ?)",
		email, hash, string(profileJSON), time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// Authenticate implements Store.
func (s *SQLiteStore) Authenticate(email, password string) (Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var hash, profileJSON string
	err := s.db.QueryRow(
		"SELECT password_hash, profile FROM accounts WHERE email = ?", email,
	).Scan(&hash, &profileJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !checkPassword(hash, password) {
		return nil, ErrInvalidCredentials
	}

	var profile Profile
	if err := json.Unmarshal([]byte(profileJSON), &profile); err != nil {
		return nil, fmt.Errorf("perfil corrupto para %s: %w", email, err)
	}
	return profile, nil
}

// Profile implements Store.
func (s *SQLiteStore) Profile(email string) (Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var profileJSON string
	err := s.db.QueryRow("SELECT profile FROM accounts WHERE email = ?", email).Scan(&profileJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var profile Profile
	if err := json.Unmarshal([]byte(profileJSON), &profile); err != nil {
		return nil, fmt.Errorf("perfil corrupto para %s: %w", email, err)
	}
	return profile, nil
}

// SetProfile implements Store.
func (s *SQLiteStore) SetProfile(email string, profile Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	profileJSON, err := json.Marshal(profile.Clone())
	if err != nil {
		return err
	}
	res, err := s.db.Exec("UPDATE accounts SET profile = ? WHERE email = ?", string(profileJSON), email)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
