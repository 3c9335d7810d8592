package accounts

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// FileStore keeps the whole account mapping in one JSON artifact, read in
// full and rewritten in full on every mutation. Mutations are serialized
// behind a mutex and land via temp-file + rename, so a crash mid-write
// leaves the previous artifact intact.
//
// Known limitation: separate processes sharing the same file still race
// read-modify-write against each other (last writer wins). Use
// SQLiteStore when that matters.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore uses path as the persistence artifact. A missing file is
// equivalent to an empty store.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) load() (map[string]Account, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]Account{}, nil
		}
		return nil, fmt.Errorf("leyendo el almacén de cuentas: %w", err)
	}

	byEmail := map[string]Account{}
	if err := json.Unmarshal(data, &byEmail); err != nil {
		return nil, fmt.Errorf("almacén de cuentas corrupto: %w", err)
	}
	return byEmail, nil
}

func (s *FileStore) save(byEmail map[string]Account) error {
	data, err := json.MarshalIndent(byEmail, "", "  ")
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// Create implements Store.
func (s *FileStore) Create(email, password string, profile Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	byEmail, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := byEmail[email]; ok {
		return ErrAlreadyExists
	}

	hash, err := hashPassword(password)
	if err != nil {
		return err
	}
	byEmail[email] = Account{
		Email:        email,
		PasswordHash: hash,
		Profile:      profile.Clone(),
		CreatedAt:    time.Now().UTC(),
	}
	return s.save(byEmail)
}

// Authenticate implements Store.
func (s *FileStore) Authenticate(email, password string) (Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	byEmail, err := s.load()
	if err != nil {
		return nil, err
	}
	acct, ok := byEmail[email]
	if !ok || !checkPassword(acct.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return acct.Profile.Clone(), nil
}

// Profile implements Store.
func (s *FileStore) Profile(email string) (Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	byEmail, err := s.load()
	if err != nil {
		return nil, err
	}
	acct, ok := byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	return acct.Profile.Clone(), nil
}

// SetProfile implements Store.
func (s *FileStore) SetProfile(email string, profile Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	byEmail, err := s.load()
	if err != nil {
		return err
	}
	acct, ok := byEmail[email]
	if !ok {
		return ErrNotFound
	}
	acct.Profile = profile.Clone()
	byEmail[email] = acct
	return s.save(byEmail)
}
