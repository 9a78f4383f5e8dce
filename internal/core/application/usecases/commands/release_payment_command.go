package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrReleasePaymentCommandIsNotConstructed = errors.New(
	"ReleasePaymentCommand must be created via NewReleasePaymentCommand constructor",
)

// ReleasePaymentCommand represents the buyer accepting delivered work,
// completing the order and releasing the escrowed payment to the seller.
type ReleasePaymentCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	callerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewReleasePaymentCommand creates a command to complete an order and settle
// the seller's earnings.
func NewReleasePaymentCommand(orderID, callerID kernel.UUID) (ReleasePaymentCommand, error) {
	if err := errors.Join(orderID.Validate(), callerID.Validate()); err != nil {
		return ReleasePaymentCommand{}, err
	}

	return ReleasePaymentCommand{
		orderID:  orderID,
		callerID: callerID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrReleasePaymentCommandIsNotConstructed if validation fails.
func (c ReleasePaymentCommand) Validate() error {
	return c.guard.Validate(ErrReleasePaymentCommandIsNotConstructed)
}

// OrderID returns the order being completed.
func (c ReleasePaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CallerID returns the user releasing the payment.
func (c ReleasePaymentCommand) CallerID() kernel.UUID {
	return c.callerID
}
