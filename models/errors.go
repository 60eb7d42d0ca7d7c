package models

import (
	"errors"
	"fmt"
	"math"
)

// MaxID is the largest key a SERIAL column can hold. Larger ids never match a row.
const MaxID = math.MaxInt32

func validID(id uint) bool {
	return id <= MaxID
}

var (
	// ErrNotFound is matched by every NotFoundError.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateCategoryName is returned when a category name is already taken.
	ErrDuplicateCategoryName = errors.New("category name already exists")

	// ErrReferentialIntegrity is returned when the store rejects a write because
	// of a foreign key.
	ErrReferentialIntegrity = errors.New("referential integrity violation")

	// ErrUnknownCategory is returned when a product references a category that does not exist.
	ErrUnknownCategory = fmt.Errorf("category does not exist: %w", ErrReferentialIntegrity)
)

// NotFoundError reports a failed lookup by primary key.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %d", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
