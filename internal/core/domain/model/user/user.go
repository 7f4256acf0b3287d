package user

import (
	"errors"
	"strings"

	"selfstorage/internal/core/domain/model/kernel"
	"selfstorage/internal/pkg/errs"
	"selfstorage/internal/pkg/guard"
)

var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

// User is a customer. Orders reference the user by id; deleting a user
// releases and deletes all of its orders in the same transaction.
type User struct {
	id      kernel.UUID
	name    string
	phone   string
	address string

	guard guard.ConstructorGuard
}

// NewUser requires a name and a phone number. The address is optional.
func NewUser(id kernel.UUID, name, phone, address string) (*User, error) {
	return RestoreUser(id, name, phone, address)
}

func RestoreUser(id kernel.UUID, name, phone, address string) (*User, error) {
	u := &User{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		u.setID(id),
		u.setContacts(name, phone, address),
	); err != nil {
		return nil, err
	}

	return u, nil
}

func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

func (u *User) ID() kernel.UUID {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Phone() string {
	return u.phone
}

func (u *User) Address() string {
	return u.address
}

// UpdateContacts replaces name and phone. An empty address keeps the stored one,
// so a self-delivery order does not wipe the address of a returning customer.
// Nothing changes if validation fails.
func (u *User) UpdateContacts(name, phone, address string) error {
	if strings.TrimSpace(address) == "" {
		address = u.address
	}

	next := *u
	if err := next.setContacts(name, phone, address); err != nil {
		return err
	}

	*u = next
	return nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setContacts(name, phone, address string) error {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)

	var problems []error
	if name == "" {
		problems = append(problems, errs.NewValueIsRequiredError("user name"))
	}
	if phone == "" {
		problems = append(problems, errs.NewValueIsRequiredError("user phone"))
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}

	u.name = name
	u.phone = phone
	u.address = strings.TrimSpace(address)
	return nil
}
