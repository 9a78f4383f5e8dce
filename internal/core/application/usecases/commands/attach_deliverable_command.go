package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrAttachDeliverableCommandIsNotConstructed = errors.New(
		"AttachDeliverableCommand must be created via one of its constructors",
	)
	ErrDeliveryNoteIsEmpty = errors.New("delivery note must not be empty")
)

// AttachKind discriminates what an AttachDeliverableCommand carries.
type AttachKind int

const (
	AttachUnknown AttachKind = iota
	AttachFile
	AttachLink
	AttachNote
)

// AttachDeliverableCommand adds one piece of the delivery record to an order
// the seller is working on: an uploaded file, a shared link, or the delivery
// note. Files and links accumulate; the note is overwritten.
//
// Example:
//
//	cmd, err := NewAttachLinkCommand(orderID, sellerID, "https://drive.example.com/batch-1")
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
type AttachDeliverableCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	callerID kernel.UUID
	kind     AttachKind

	fileName      string
	fileURL       string
	fileByteSize  int64
	fileMediaType string

	link string
	note string

	guard guard.ConstructorGuard
}

// NewAttachFileCommand creates a command to add an uploaded file to the
// order's delivery record. URL and size validation happen in the aggregate.
func NewAttachFileCommand(
	orderID, callerID kernel.UUID,
	fileName, fileURL string,
	fileByteSize int64,
	fileMediaType string,
) (AttachDeliverableCommand, error) {
	cmd, err := newAttachDeliverableCommand(orderID, callerID, AttachFile)
	if err != nil {
		return AttachDeliverableCommand{}, err
	}

	cmd.fileName = fileName
	cmd.fileURL = fileURL
	cmd.fileByteSize = fileByteSize
	cmd.fileMediaType = fileMediaType

	return cmd, nil
}

// NewAttachLinkCommand creates a command to add a shared link to the order's
// delivery record.
func NewAttachLinkCommand(orderID, callerID kernel.UUID, link string) (AttachDeliverableCommand, error) {
	cmd, err := newAttachDeliverableCommand(orderID, callerID, AttachLink)
	if err != nil {
		return AttachDeliverableCommand{}, err
	}

	cmd.link = link

	return cmd, nil
}

// NewAttachNoteCommand creates a command to set the order's delivery note.
func NewAttachNoteCommand(orderID, callerID kernel.UUID, note string) (AttachDeliverableCommand, error) {
	if note == "" {
		return AttachDeliverableCommand{}, ErrDeliveryNoteIsEmpty
	}

	cmd, err := newAttachDeliverableCommand(orderID, callerID, AttachNote)
	if err != nil {
		return AttachDeliverableCommand{}, err
	}

	cmd.note = note

	return cmd, nil
}

func newAttachDeliverableCommand(orderID, callerID kernel.UUID, kind AttachKind) (AttachDeliverableCommand, error) {
	if err := errors.Join(orderID.Validate(), callerID.Validate()); err != nil {
		return AttachDeliverableCommand{}, err
	}

	return AttachDeliverableCommand{
		orderID:  orderID,
		callerID: callerID,
		kind:     kind,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through a constructor.
// Returns ErrAttachDeliverableCommandIsNotConstructed if validation fails.
func (c AttachDeliverableCommand) Validate() error {
	return c.guard.Validate(ErrAttachDeliverableCommandIsNotConstructed)
}

// OrderID returns the order whose delivery record is extended.
func (c AttachDeliverableCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CallerID returns the user attaching the deliverable.
func (c AttachDeliverableCommand) CallerID() kernel.UUID {
	return c.callerID
}

// Kind returns what the command carries: a file, a link, or the note.
func (c AttachDeliverableCommand) Kind() AttachKind {
	return c.kind
}

// FileName returns the uploaded file's display name.
func (c AttachDeliverableCommand) FileName() string {
	return c.fileName
}

// FileURL returns the uploaded file's download URL.
func (c AttachDeliverableCommand) FileURL() string {
	return c.fileURL
}

// FileByteSize returns the uploaded file's size in bytes.
func (c AttachDeliverableCommand) FileByteSize() int64 {
	return c.fileByteSize
}

// FileMediaType returns the uploaded file's media type.
func (c AttachDeliverableCommand) FileMediaType() string {
	return c.fileMediaType
}

// Link returns the shared link.
func (c AttachDeliverableCommand) Link() string {
	return c.link
}

// Note returns the delivery note text.
func (c AttachDeliverableCommand) Note() string {
	return c.note
}
