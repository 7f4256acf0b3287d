package commands

import (
	"errors"
	"strings"
	"time"

	"selfstorage/internal/core/domain/model/kernel"
	"selfstorage/internal/core/domain/model/order"
	"selfstorage/internal/pkg/errs"
	"selfstorage/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// Customer carries the contact details collected together with an order.
// They create the user on the first order and refresh it on later ones.
type Customer struct {
	ID      kernel.UUID
	Name    string
	Phone   string
	Address string
}

// CreateOrderCommand books any free unit of the requested size for the customer.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), customer, kernel.Small, start, 30, order.NewSelfDelivery())
//	if errors.Is(err, kernel.ErrInvalidDuration) {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	customer Customer
	size     kernel.Size
	period   kernel.RentalPeriod
	delivery order.Delivery

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(
	orderID kernel.UUID,
	customer Customer,
	size kernel.Size,
	start time.Time,
	days int,
	delivery order.Delivery,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomer(customer),
		cmd.setSize(size),
		cmd.setPeriod(start, days),
		cmd.setDelivery(delivery),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) Customer() Customer {
	return c.customer
}

func (c CreateOrderCommand) Size() kernel.Size {
	return c.size
}

func (c CreateOrderCommand) Period() kernel.RentalPeriod {
	return c.period
}

func (c CreateOrderCommand) Delivery() order.Delivery {
	return c.delivery
}

func (c *CreateOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *CreateOrderCommand) setCustomer(customer Customer) error {
	customer.Name = strings.TrimSpace(customer.Name)
	customer.Phone = strings.TrimSpace(customer.Phone)
	customer.Address = strings.TrimSpace(customer.Address)

	var problems []error
	if err := customer.ID.Validate(); err != nil {
		problems = append(problems, err)
	}
	if customer.Name == "" {
		problems = append(problems, errs.NewValueIsRequiredError("customer name"))
	}
	if customer.Phone == "" {
		problems = append(problems, errs.NewValueIsRequiredError("customer phone"))
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}

	c.customer = customer
	return nil
}

func (c *CreateOrderCommand) setSize(size kernel.Size) error {
	if err := size.Validate(); err != nil {
		return err
	}
	c.size = size
	return nil
}

func (c *CreateOrderCommand) setPeriod(start time.Time, days int) error {
	period, err := kernel.NewRentalPeriod(start, days)
	if err != nil {
		return err
	}
	c.period = period
	return nil
}

func (c *CreateOrderCommand) setDelivery(delivery order.Delivery) error {
	if err := delivery.Validate(); err != nil {
		return err
	}
	c.delivery = delivery
	return nil
}
