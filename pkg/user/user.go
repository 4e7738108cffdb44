// Package user defines the registry's user record and the store contract.
package user

import (
	"errors"
	"fmt"
)

// User is a registered person. Users are never modified after creation.
type User struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Age       int    `json:"age"`
}

// Fields holds the caller supplied attributes of a user that is about to be
// added. Values are expected to be validated already.
type Fields struct {
	FirstName string
	LastName  string
	Age       int
}

// Store defines the operations of the user registry. Implementations must make
// every operation atomic with respect to the others.
type Store interface {
	Add(f Fields) User
	Remove(id int) bool
	Find(id int) (User, error)
	Clear(expected int) error
	Count() int
	Snapshot() []User
}

// ErrNotFound indicates the requested user does not exist.
var ErrNotFound = errors.New("user not found")

// CountMismatchError is returned by Clear when the caller's expected number of
// users differs from the number currently stored.
type CountMismatchError struct {
	Expected int
	Actual   int
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("expected %d users but found %d", e.Expected, e.Actual)
}
