package queries

import (
	"errors"

	"selfstorage/internal/core/domain/model/kernel"
	"selfstorage/internal/pkg/guard"
)

var ErrGetUserOrdersQueryIsNotConstructed = errors.New(
	"GetUserOrdersQuery must be created via NewGetUserOrdersQuery constructor",
)

// GetUserOrdersQuery lists the orders of one customer. Completed orders are
// left out unless includeCompleted is set.
//
// Example:
//
//	query, err := NewGetUserOrdersQuery(userID, false)
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type GetUserOrdersQuery struct {
	userID           kernel.UUID
	includeCompleted bool

	guard guard.ConstructorGuard
}

func NewGetUserOrdersQuery(userID kernel.UUID, includeCompleted bool) (GetUserOrdersQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserOrdersQuery{}, err
	}

	return GetUserOrdersQuery{
		userID:           userID,
		includeCompleted: includeCompleted,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

func (q GetUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUserOrdersQueryIsNotConstructed)
}

func (q GetUserOrdersQuery) UserID() kernel.UUID {
	return q.userID
}

func (q GetUserOrdersQuery) IncludeCompleted() bool {
	return q.includeCompleted
}
