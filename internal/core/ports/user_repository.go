package ports

import (
	"context"

	"selfstorage/internal/core/domain/model/kernel"
	"selfstorage/internal/core/domain/model/user"
)

type UserRepository interface {
	Add(ctx context.Context, aggregate *user.User) error
	Update(ctx context.Context, aggregate *user.User) error
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// Delete removes the user row only; orders are handled by the caller.
	Delete(ctx context.Context, id kernel.UUID) error
}
