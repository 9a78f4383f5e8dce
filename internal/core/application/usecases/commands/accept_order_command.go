package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand represents the seller picking up a pending order to
// start working on it.
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	callerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptOrderCommand creates a command for the seller to accept an order.
func NewAcceptOrderCommand(orderID, callerID kernel.UUID) (AcceptOrderCommand, error) {
	cmd := AcceptOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(orderID.Validate(), callerID.Validate()); err != nil {
		return AcceptOrderCommand{}, err
	}

	cmd.orderID = orderID
	cmd.callerID = callerID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAcceptOrderCommandIsNotConstructed if validation fails.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

// OrderID returns the order being accepted.
func (c AcceptOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CallerID returns the user attempting the transition.
func (c AcceptOrderCommand) CallerID() kernel.UUID {
	return c.callerID
}
