// Package memory implements an in-memory user store.
package memory

import (
	"sync"

	"userregistry/pkg/user"
)

// Store provides an in-memory implementation of user.Store. Users are kept in
// insertion order. The id sequence is guarded by the same lock as the slice so
// a Clear guard can never race an Add.
type Store struct {
	mu    sync.RWMutex
	users []user.User
	seq   *user.Sequence
}

var _ user.Store = (*Store)(nil)

// New creates an empty store whose first id is 0. Each store owns its own
// sequence.
func New() *Store {
	return &Store{users: make([]user.User, 0), seq: user.NewSequence(0)}
}

// Add assigns the next id and appends the user.
func (s *Store) Add(f user.Fields) user.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := user.User{
		ID:        s.seq.Next(),
		FirstName: f.FirstName,
		LastName:  f.LastName,
		Age:       f.Age,
	}
	s.users = append(s.users, u)
	return u
}

// Remove deletes the user with the given id and reports whether it existed.
func (s *Store) Remove(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, u := range s.users {
		if u.ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return true
		}
	}
	return false
}

// Find retrieves a user by id.
func (s *Store) Find(id int) (user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

// Clear removes every user, but only when expected matches the current count.
// The sequence is not reset.
func (s *Store) Clear(expected int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.users) != expected {
		return &user.CountMismatchError{Expected: expected, Actual: len(s.users)}
	}
	s.users = make([]user.User, 0)
	return nil
}

// Count returns the number of stored users.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

// Snapshot returns a copy of all users in insertion order.
func (s *Store) Snapshot() []user.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]user.User, len(s.users))
	copy(out, s.users)
	return out
}
