package commands

import (
	"errors"

	"selfstorage/internal/core/domain/model/kernel"
	"selfstorage/internal/pkg/guard"
)

var ErrDeleteUserCommandIsNotConstructed = errors.New(
	"DeleteUserCommand must be created via NewDeleteUserCommand constructor",
)

// DeleteUserCommand removes a user together with all of their orders.
type DeleteUserCommand struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteUserCommand(userID kernel.UUID) (DeleteUserCommand, error) {
	if err := userID.Validate(); err != nil {
		return DeleteUserCommand{}, err
	}
	return DeleteUserCommand{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteUserCommand) Validate() error {
	return c.guard.Validate(ErrDeleteUserCommandIsNotConstructed)
}

func (c DeleteUserCommand) UserID() kernel.UUID {
	return c.userID
}
