package commands

import (
	"errors"
	"fmt"

	"selfstorage/internal/core/domain/model/kernel"
	"selfstorage/internal/pkg/errs"
)

var (
	ErrUnitNotFound      = errors.New("storage unit not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrWarehouseNotFound = errors.New("warehouse not found")
)

// notFound replaces a repository ErrObjectNotFound with the command level sentinel.
// Any other error is returned unchanged.
func notFound(err error, sentinel error, id kernel.UUID) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return fmt.Errorf("%w: %s", sentinel, id)
	}
	return err
}
