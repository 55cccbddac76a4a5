// Package idgen allocates record identifiers.
package idgen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// MaxAttempts bounds how many candidates Next draws before giving up.
const MaxAttempts = 8

// ErrExhausted is returned when every candidate was already taken.
var ErrExhausted = errors.New("idgen: no free identifier found")

// ExistsFunc reports whether id is already used by a record.
type ExistsFunc func(id string) (bool, error)

// New returns a fresh random identifier: a version 4 UUID rendered as
// 32 lowercase hex characters.
func New() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Next returns an identifier that exists reports as unused.
//
// A lookup error aborts generation and is returned wrapped.
func Next(exists ExistsFunc) (string, error) {
	for i := 0; i < MaxAttempts; i++ {
		id := New()
		taken, err := exists(id)
		if err != nil {
			return "", fmt.Errorf("checking identifier %s: %w", id, err)
		}
		if !taken {
			return id, nil
		}
	}
	return "", ErrExhausted
}
