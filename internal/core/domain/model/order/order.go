package order

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrActorNotPermitted is returned when the caller is not the party allowed
	// to perform the requested operation (e.g. a seller approving their own work).
	ErrActorNotPermitted = errors.New("caller is not permitted to perform this operation")

	// ErrNothingDelivered is returned when a delivery transition is attempted
	// with no delivery files and no delivery links attached.
	ErrNothingDelivered = errors.New("at least one delivery file or link is required before delivering")

	// ErrRevisionQuotaExhausted is returned when the buyer requests a revision
	// after using up the package's revision allowance.
	ErrRevisionQuotaExhausted = errors.New("revision quota is exhausted")
)

// Order is the aggregate root for one commissioned unit of work between a buyer
// and a seller. It owns the lifecycle state machine, the delivery record, and
// the revision quota; settlement and review bookkeeping hang off its transitions.
//
// Order maintains these invariants:
//   - TotalAmount is always price + serviceFee; it is derived, never stored independently
//   - 0 <= revisionCount <= maxRevisions
//   - completion happens at most once (Completed is terminal)
//   - every mutation is authorized against the caller's party role
//
// All fields are private; orders are created via NewOrder and reconstructed
// from persistence via RestoreOrder.
type Order struct {
	id          kernel.UUID
	orderNumber string

	buyer  Party
	seller Party

	gigID    kernel.UUID
	gigTitle string
	pkg      Package

	serviceFee    kernel.Money
	paymentStatus PaymentStatus
	paymentMethod string
	requirements  string

	status        Status
	revisionCount int

	createdAt          time.Time
	expectedDeliveryAt time.Time
	deliveredAt        *time.Time
	completedAt        *time.Time

	lastRevisionAt      *time.Time
	lastRevisionMessage string

	deliveryFiles []Artifact
	deliveryLinks []string
	deliveryNote  string

	conversationID string

	isConstructed bool
}

// NewOrder creates a new Order in Pending status with payment already held.
// The service fee is platform revenue on top of the package price; the buyer
// is charged TotalAmount, the seller is eventually credited only the price.
//
// The expected delivery date is computed from the package's delivery window.
// A conversation identifier is minted so the parties can message about the
// order from the moment it exists.
func NewOrder(
	id kernel.UUID,
	orderNumber string,
	buyer Party,
	seller Party,
	gigID kernel.UUID,
	gigTitle string,
	pkg Package,
	requirements string,
	paymentMethod string,
	serviceFee kernel.Money,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		paymentStatus: PaymentPaid,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setParties(buyer, seller),
		o.setGig(gigID, gigTitle),
		o.setPackage(pkg),
		o.setPaymentMethod(paymentMethod),
	); err != nil {
		return nil, err
	}

	o.serviceFee = serviceFee
	o.requirements = requirements
	o.createdAt = now
	o.expectedDeliveryAt = now.AddDate(0, 0, pkg.DeliveryDays())
	o.conversationID = fmt.Sprintf("%s_%s_%d", buyer.ID(), seller.ID(), now.UnixMilli())

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence without re-running the
// creation workflow. The stored state is still validated against the aggregate
// invariants so corrupt rows surface as errors instead of invalid aggregates.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	buyer Party,
	seller Party,
	gigID kernel.UUID,
	gigTitle string,
	pkg Package,
	requirements string,
	paymentMethod string,
	serviceFee kernel.Money,
	paymentStatus PaymentStatus,
	status Status,
	revisionCount int,
	createdAt time.Time,
	expectedDeliveryAt time.Time,
	deliveredAt *time.Time,
	completedAt *time.Time,
	lastRevisionAt *time.Time,
	lastRevisionMessage string,
	deliveryFiles []Artifact,
	deliveryLinks []string,
	deliveryNote string,
	conversationID string,
) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setParties(buyer, seller),
		o.setGig(gigID, gigTitle),
		o.setPackage(pkg),
		o.setPaymentMethod(paymentMethod),
		status.Validate(),
		paymentStatus.Validate(),
	); err != nil {
		return nil, err
	}

	if revisionCount < 0 || revisionCount > pkg.MaxRevisions() {
		return nil, errs.NewValueIsOutOfRangeError("revisionCount", revisionCount, 0, pkg.MaxRevisions())
	}

	o.serviceFee = serviceFee
	o.paymentStatus = paymentStatus
	o.requirements = requirements
	o.status = status
	o.revisionCount = revisionCount
	o.createdAt = createdAt
	o.expectedDeliveryAt = expectedDeliveryAt
	o.deliveredAt = deliveredAt
	o.completedAt = completedAt
	o.lastRevisionAt = lastRevisionAt
	o.lastRevisionMessage = lastRevisionMessage
	o.deliveryFiles = deliveryFiles
	o.deliveryLinks = deliveryLinks
	o.deliveryNote = deliveryNote
	o.conversationID = conversationID

	return o, nil
}

// Validate ensures the Order instance was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the human-readable, immutable order number.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// Buyer returns the commissioning party.
func (o *Order) Buyer() Party {
	return o.buyer
}

// Seller returns the delivering party.
func (o *Order) Seller() Party {
	return o.seller
}

// GigID returns the identifier of the gig the order was placed against.
func (o *Order) GigID() kernel.UUID {
	return o.gigID
}

// GigTitle returns the title of the gig the order was placed against.
func (o *Order) GigTitle() string {
	return o.gigTitle
}

// Package returns the commercial package terms fixed at creation.
func (o *Order) Package() Package {
	return o.pkg
}

// Price returns the package price. This is the amount credited to the seller
// on settlement.
func (o *Order) Price() kernel.Money {
	return o.pkg.Price()
}

// ServiceFee returns the platform fee charged on top of the price.
func (o *Order) ServiceFee() kernel.Money {
	return o.serviceFee
}

// TotalAmount returns price + serviceFee. The invariant holds at every
// observable state because the total is derived rather than stored.
func (o *Order) TotalAmount() kernel.Money {
	return o.pkg.Price().Add(o.serviceFee)
}

// PaymentStatus returns the payment outcome tag.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// PaymentMethod returns the payment method tag chosen at checkout.
func (o *Order) PaymentMethod() string {
	return o.paymentMethod
}

// Requirements returns the buyer's requirement text.
func (o *Order) Requirements() string {
	return o.requirements
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// RevisionCount returns how many revisions the buyer has requested so far.
func (o *Order) RevisionCount() int {
	return o.revisionCount
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ExpectedDeliveryAt returns the delivery deadline derived from the package's
// delivery window.
func (o *Order) ExpectedDeliveryAt() time.Time {
	return o.expectedDeliveryAt
}

// DeliveredAt returns when the seller last delivered, or nil before the first delivery.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// CompletedAt returns when the buyer approved the delivery, or nil.
func (o *Order) CompletedAt() *time.Time {
	return o.completedAt
}

// LastRevisionAt returns when the buyer last requested a revision, or nil.
func (o *Order) LastRevisionAt() *time.Time {
	return o.lastRevisionAt
}

// LastRevisionMessage returns the buyer's most recent revision request text.
func (o *Order) LastRevisionMessage() string {
	return o.lastRevisionMessage
}

// DeliveryFiles returns the uploaded deliverables in upload order.
func (o *Order) DeliveryFiles() []Artifact {
	return o.deliveryFiles
}

// DeliveryLinks returns the shared links in the order they were added.
func (o *Order) DeliveryLinks() []string {
	return o.deliveryLinks
}

// DeliveryNote returns the seller's optional note accompanying the delivery.
func (o *Order) DeliveryNote() string {
	return o.deliveryNote
}

// ConversationID returns the identifier of the message thread for this order.
func (o *Order) ConversationID() string {
	return o.conversationID
}

// IsBuyer reports whether the caller is the order's buyer.
func (o *Order) IsBuyer(callerID kernel.UUID) bool {
	return o.buyer.ID().IsEqual(callerID)
}

// IsSeller reports whether the caller is the order's seller.
func (o *Order) IsSeller(callerID kernel.UUID) bool {
	return o.seller.ID().IsEqual(callerID)
}

// Accept moves the order from Pending to InProgress. Only the seller may accept.
func (o *Order) Accept(callerID kernel.UUID) error {
	if !o.IsSeller(callerID) {
		return ErrActorNotPermitted
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// AddDeliveryFile appends an uploaded deliverable to the delivery record.
// Only the seller may attach deliverables, and only while the order is being
// worked on (InProgress or RevisionRequested). The append itself causes no
// status change.
func (o *Order) AddDeliveryFile(callerID kernel.UUID, artifact Artifact) error {
	if err := o.authorizeAttach(callerID); err != nil {
		return err
	}

	o.deliveryFiles = append(o.deliveryFiles, artifact)
	return nil
}

// AddDeliveryLink appends a shared link to the delivery record.
// The link must be a well-formed absolute URL. Same authorization rules as
// AddDeliveryFile.
func (o *Order) AddDeliveryLink(callerID kernel.UUID, rawURL string) error {
	if err := o.authorizeAttach(callerID); err != nil {
		return err
	}
	if err := validateAbsoluteURL(rawURL); err != nil {
		return err
	}

	o.deliveryLinks = append(o.deliveryLinks, rawURL)
	return nil
}

// SetDeliveryNote replaces the delivery note. Last write wins; only the seller
// ever writes it.
func (o *Order) SetDeliveryNote(callerID kernel.UUID, note string) error {
	if err := o.authorizeAttach(callerID); err != nil {
		return err
	}

	o.deliveryNote = note
	return nil
}

// CanDeliver reports whether the delivery record holds at least one
// deliverable (file or link).
func (o *Order) CanDeliver() bool {
	return len(o.deliveryFiles) > 0 || len(o.deliveryLinks) > 0
}

// Deliver moves the order to Delivered. Only the seller may deliver, only from
// InProgress or RevisionRequested, and only with at least one deliverable
// attached (ErrNothingDelivered otherwise). The delivery timestamp is
// refreshed on redelivery.
func (o *Order) Deliver(callerID kernel.UUID, now time.Time) error {
	if !o.IsSeller(callerID) {
		return ErrActorNotPermitted
	}
	if !o.CanDeliver() {
		return ErrNothingDelivered
	}

	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.deliveredAt = &now
	return nil
}

// Complete moves the order from Delivered to Completed on the buyer's
// approval. Settlement (crediting the seller) is the caller's responsibility
// and must commit atomically with this transition.
func (o *Order) Complete(callerID kernel.UUID, now time.Time) error {
	if !o.IsBuyer(callerID) {
		return ErrActorNotPermitted
	}

	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.completedAt = &now
	return nil
}

// RequestRevision sends a delivered order back to the seller for rework.
// Only the buyer may request a revision, the message must not be empty, and
// the package's revision quota must not be exhausted. The revision counter is
// monotonically non-decreasing and never exceeds MaxRevisions.
func (o *Order) RequestRevision(callerID kernel.UUID, message string, now time.Time) error {
	if !o.IsBuyer(callerID) {
		return ErrActorNotPermitted
	}
	if message == "" {
		return errs.NewValueIsRequiredError("revision message")
	}

	newStatus, err := o.status.RequestRevision()
	if err != nil {
		return err
	}

	if o.revisionCount >= o.pkg.MaxRevisions() {
		return ErrRevisionQuotaExhausted
	}

	o.status = newStatus
	o.revisionCount++
	o.lastRevisionMessage = message
	o.lastRevisionAt = &now
	return nil
}

// Cancel moves a Pending or InProgress order to Cancelled. Either party may
// cancel; since no funds were released there is no balance movement, only the
// terminal status write. Cancelling a delivered or settled order is rejected.
func (o *Order) Cancel(callerID kernel.UUID) error {
	if !o.IsBuyer(callerID) && !o.IsSeller(callerID) {
		return ErrActorNotPermitted
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) authorizeAttach(callerID kernel.UUID) error {
	if !o.IsSeller(callerID) {
		return ErrActorNotPermitted
	}
	if o.status != InProgress && o.status != RevisionRequested {
		return fmt.Errorf("%w: cannot attach deliverables while %s", ErrInvalidStatusTransition, o.status)
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setParties(buyer, seller Party) error {
	if err := buyer.Validate(); err != nil {
		return fmt.Errorf("buyer: %w", err)
	}
	if err := seller.Validate(); err != nil {
		return fmt.Errorf("seller: %w", err)
	}
	if buyer.ID().IsEqual(seller.ID()) {
		return errs.NewValueIsInvalidErrorWithCause(
			"parties", errors.New("buyer and seller must be different users"))
	}
	o.buyer = buyer
	o.seller = seller
	return nil
}

func (o *Order) setGig(gigID kernel.UUID, gigTitle string) error {
	if err := gigID.Validate(); err != nil {
		return err
	}
	if gigTitle == "" {
		return errs.NewValueIsRequiredError("gigTitle")
	}
	o.gigID = gigID
	o.gigTitle = gigTitle
	return nil
}

func (o *Order) setPackage(pkg Package) error {
	if err := pkg.Validate(); err != nil {
		return err
	}
	o.pkg = pkg
	return nil
}

func (o *Order) setPaymentMethod(paymentMethod string) error {
	if paymentMethod == "" {
		return errs.NewValueIsRequiredError("paymentMethod")
	}
	o.paymentMethod = paymentMethod
	return nil
}
