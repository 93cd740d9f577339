package repository

import (
	"errors"

	"github.com/godofwar007/Store-income-control/internal/db"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// ErrForbidden is returned when a record exists but belongs to another shop.
var ErrForbidden = errors.New("record belongs to another shop")

// IsDuplicate detects unique constraint violation.
func IsDuplicate(err error) bool {
	return db.IsUniqueViolation(err)
}

// IsMissingReference detects foreign key constraint violation.
func IsMissingReference(err error) bool {
	return db.IsForeignKeyViolation(err)
}
