package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrDeliverOrderCommandIsNotConstructed = errors.New(
	"DeliverOrderCommand must be created via NewDeliverOrderCommand constructor",
)

// DeliverableFile describes one uploaded file carried with a delivery.
type DeliverableFile struct {
	Name      string
	URL       string
	ByteSize  int64
	MediaType string
}

// DeliverOrderCommand represents the seller submitting the work for buyer
// review. It may carry the final batch of files, links, and the delivery note;
// anything attached earlier already counts toward the delivery record.
//
// Example:
//
//	cmd, err := NewDeliverOrderCommand(orderID, sellerID,
//	    []DeliverableFile{{Name: "logo.zip", URL: "https://cdn.example.com/logo.zip", ByteSize: 1 << 20, MediaType: "application/zip"}},
//	    nil, "Final files attached, thanks!")
type DeliverOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	callerID kernel.UUID
	files    []DeliverableFile
	links    []string
	note     string

	guard guard.ConstructorGuard
}

// NewDeliverOrderCommand creates a command to deliver an order.
// Files, links, and note are all optional here; at least one deliverable must
// exist on the order by delivery time, which the aggregate enforces.
func NewDeliverOrderCommand(
	orderID, callerID kernel.UUID,
	files []DeliverableFile,
	links []string,
	note string,
) (DeliverOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), callerID.Validate()); err != nil {
		return DeliverOrderCommand{}, err
	}

	return DeliverOrderCommand{
		orderID:  orderID,
		callerID: callerID,
		files:    files,
		links:    links,
		note:     note,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeliverOrderCommandIsNotConstructed if validation fails.
func (c DeliverOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeliverOrderCommandIsNotConstructed)
}

// OrderID returns the order being delivered.
func (c DeliverOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CallerID returns the user attempting the delivery.
func (c DeliverOrderCommand) CallerID() kernel.UUID {
	return c.callerID
}

// Files returns the files carried with this delivery.
func (c DeliverOrderCommand) Files() []DeliverableFile {
	return c.files
}

// Links returns the links carried with this delivery.
func (c DeliverOrderCommand) Links() []string {
	return c.links
}

// Note returns the delivery note carried with this delivery.
func (c DeliverOrderCommand) Note() string {
	return c.note
}
