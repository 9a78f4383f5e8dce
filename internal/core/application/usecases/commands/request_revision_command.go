package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrRequestRevisionCommandIsNotConstructed = errors.New(
	"RequestRevisionCommand must be created via NewRequestRevisionCommand constructor",
)

// RequestRevisionCommand represents the buyer sending delivered work back
// with change requests. Each request consumes one revision from the package's
// allowance.
type RequestRevisionCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	callerID kernel.UUID
	message  string

	guard guard.ConstructorGuard
}

// NewRequestRevisionCommand creates a command to request a revision.
// The message explaining what to change is mandatory.
func NewRequestRevisionCommand(orderID, callerID kernel.UUID, message string) (RequestRevisionCommand, error) {
	if err := errors.Join(orderID.Validate(), callerID.Validate()); err != nil {
		return RequestRevisionCommand{}, err
	}
	if message == "" {
		return RequestRevisionCommand{}, errs.NewValueIsRequiredError("revisionMessage")
	}

	return RequestRevisionCommand{
		orderID:  orderID,
		callerID: callerID,
		message:  message,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRequestRevisionCommandIsNotConstructed if validation fails.
func (c RequestRevisionCommand) Validate() error {
	return c.guard.Validate(ErrRequestRevisionCommandIsNotConstructed)
}

// OrderID returns the order being sent back.
func (c RequestRevisionCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CallerID returns the user requesting the revision.
func (c RequestRevisionCommand) CallerID() kernel.UUID {
	return c.callerID
}

// Message returns the buyer's change request.
func (c RequestRevisionCommand) Message() string {
	return c.message
}
