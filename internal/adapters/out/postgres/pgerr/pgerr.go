// Package pgerr turns GORM errors into the errs vocabulary. It relies on the
// connection being opened with gorm.Config{TranslateError: true}, which makes
// the postgres dialector report constraint violations as gorm sentinels.
package pgerr

import (
	"errors"

	"selfstorage/internal/pkg/errs"

	"gorm.io/gorm"
)

// Wrap classifies err from the named operation. Unique and foreign key
// violations get their own errors; anything else is treated as the store
// being unavailable.
func Wrap(operation string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errs.NewObjectAlreadyExistsError(operation, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return errs.NewRelationViolatedError(operation, err)
	default:
		return errs.NewStorageUnavailableError(operation, err)
	}
}
