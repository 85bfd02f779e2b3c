package repository

import (
	"errors"

	"gorm.io/gorm"
)

// Sentinel errors shared by all repositories. Services and handlers match on
// these with errors.Is to pick the HTTP status.
var (
	ErrNotFound = errors.New("resource not found")
	ErrConflict = errors.New("resource already exists")
)

// translate converts GORM driver errors into the repository taxonomy.
// The postgres driver is opened with TranslateError so unique-key violations
// surface as gorm.ErrDuplicatedKey.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	default:
		return err
	}
}
