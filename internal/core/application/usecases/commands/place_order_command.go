package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrGigTitleIsRequired      = errors.New("gig title is required")
	ErrPaymentMethodIsRequired = errors.New("payment method is required")
)

// PlaceOrderCommand represents a buyer's checkout of a gig package.
// Carries the parties, the gig, the purchased package terms, and the buyer's
// requirements. The service fee and order number are computed by the handler,
// not supplied by the caller.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(
//	    kernel.NewUUID(), buyer, seller, gigID, "Logo design",
//	    pkg, "Two concepts, vector files please", "card",
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	buyer         order.Party
	seller        order.Party
	gigID         kernel.UUID
	gigTitle      string
	pkg           order.Package
	requirements  string
	paymentMethod string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// The parties and package must already be valid value objects; the gig title
// and payment method must not be empty.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	buyer order.Party,
	seller order.Party,
	gigID kernel.UUID,
	gigTitle string,
	pkg order.Package,
	requirements string,
	paymentMethod string,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setParties(buyer, seller),
		cmd.setGig(gigID, gigTitle),
		cmd.setPackage(pkg),
		cmd.setPaymentMethod(paymentMethod),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	cmd.requirements = requirements

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the order to create.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Buyer returns the ordering party.
func (c PlaceOrderCommand) Buyer() order.Party {
	return c.buyer
}

// Seller returns the party delivering the work.
func (c PlaceOrderCommand) Seller() order.Party {
	return c.seller
}

// GigID returns the identifier of the gig being purchased.
func (c PlaceOrderCommand) GigID() kernel.UUID {
	return c.gigID
}

// GigTitle returns the gig title captured at checkout.
func (c PlaceOrderCommand) GigTitle() string {
	return c.gigTitle
}

// Package returns the purchased package terms.
func (c PlaceOrderCommand) Package() order.Package {
	return c.pkg
}

// Requirements returns the buyer's brief for the work.
func (c PlaceOrderCommand) Requirements() string {
	return c.requirements
}

// PaymentMethod returns the payment method used at checkout.
func (c PlaceOrderCommand) PaymentMethod() string {
	return c.paymentMethod
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setParties(buyer, seller order.Party) error {
	if err := errors.Join(buyer.Validate(), seller.Validate()); err != nil {
		return err
	}

	c.buyer = buyer
	c.seller = seller
	return nil
}

func (c *PlaceOrderCommand) setGig(gigID kernel.UUID, gigTitle string) error {
	if err := gigID.Validate(); err != nil {
		return err
	}
	if gigTitle == "" {
		return ErrGigTitleIsRequired
	}

	c.gigID = gigID
	c.gigTitle = gigTitle
	return nil
}

func (c *PlaceOrderCommand) setPackage(pkg order.Package) error {
	if err := pkg.Validate(); err != nil {
		return err
	}

	c.pkg = pkg
	return nil
}

func (c *PlaceOrderCommand) setPaymentMethod(paymentMethod string) error {
	if paymentMethod == "" {
		return ErrPaymentMethodIsRequired
	}

	c.paymentMethod = paymentMethod
	return nil
}
