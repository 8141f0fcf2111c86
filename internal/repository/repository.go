// Package repository provides the data access layer. Each entity gets an
// interface plus a GORM-backed implementation; handlers never touch the
// store directly.
package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
