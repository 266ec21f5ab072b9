// Package store provides narrow, per-entity repository interfaces over
// the persisted database, keeping business logic unit-testable with
// in-memory fakes.
package store

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a referenced record does not exist.
var ErrNotFound = errors.New("record not found")

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
