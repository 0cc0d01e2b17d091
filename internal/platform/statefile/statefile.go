// Package statefile is the key-value storage the host provides for the single
// durable value this system keeps: the last selected demo role. Everything
// else is in-memory and reset on restart.
package statefile

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"sync"
)

const lastRoleKey = "lastSelectedRole"

type Store struct {
	mu   sync.Mutex
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

// LastSelectedRole returns the persisted role, or "" when nothing has been
// saved yet.
func (s *Store) LastSelectedRole() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.read()
	if err != nil {
		return "", err
	}
	return values[lastRoleKey], nil
}

// SaveLastSelectedRole overwrites the persisted role.
func (s *Store) SaveLastSelectedRole(role string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.read()
	if err != nil {
		return err
	}
	values[lastRoleKey] = role

	data, err := json.Marshal(values)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Clear removes the persisted role, used on logout.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.read()
	if err != nil {
		return err
	}
	delete(values, lastRoleKey)

	data, err := json.Marshal(values)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

func (s *Store) read() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, err
	}
	values := map[string]string{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &values); err != nil {
			// a corrupt state file only costs the remembered role
			return map[string]string{}, nil
		}
	}
	return values, nil
}
