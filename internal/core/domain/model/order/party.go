package order

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// ErrPartyIsNotConstructed is returned when a Party was not created via NewParty.
var ErrPartyIsNotConstructed = errors.New("Party must be created via NewParty")

// Party identifies one side of an order: the buyer or the seller.
// It carries only a reference (the user id) plus denormalized display data;
// the order never holds a copy of the user record that could drift from the
// source of truth.
type Party struct {
	id    kernel.UUID
	name  string
	email string

	isConstructed bool
}

// NewParty creates a validated Party. The email is optional (sellers are
// referenced without one) but the id and display name are required.
func NewParty(id kernel.UUID, name, email string) (Party, error) {
	if err := id.Validate(); err != nil {
		return Party{}, err
	}
	if name == "" {
		return Party{}, errs.NewValueIsRequiredError("party name")
	}

	return Party{
		id:            id,
		name:          name,
		email:         email,
		isConstructed: true,
	}, nil
}

// Validate ensures the Party was created through NewParty.
func (p Party) Validate() error {
	if !p.isConstructed {
		return ErrPartyIsNotConstructed
	}
	return nil
}

// ID returns the party's user id.
func (p Party) ID() kernel.UUID {
	return p.id
}

// Name returns the party's display name.
func (p Party) Name() string {
	return p.name
}

// Email returns the party's email, or empty when not recorded.
func (p Party) Email() string {
	return p.email
}
