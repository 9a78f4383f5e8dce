package order

import (
	"errors"
	"fmt"
)

// ErrInvalidStatusTransition indicates that the order's current status does not
// permit the requested transition. Wrapped errors carry the concrete from/to pair.
var ErrInvalidStatusTransition = errors.New("status transition is not allowed")

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions so that orders follow
// the commissioning workflow: a buyer places an order, the seller accepts and
// delivers it, the buyer approves (releasing payment) or sends it back for
// revision within the quota.
//
// State transitions:
//
//	Pending ──> InProgress ──> Delivered ──> Completed
//	   │             │          │   ▲
//	   │             │          ▼   │
//	   │             │      RevisionRequested
//	   │             │
//	   └──────┬──────┘
//	          ▼
//	      Cancelled
//
// Completed and Cancelled are terminal. Status is a value object that validates
// state transitions and provides string representations for persistence.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status after the buyer places the order.
	// Funds are already held; the seller has not yet accepted the work.
	Pending

	// InProgress indicates the seller accepted the order and is working on it.
	InProgress

	// Delivered indicates the seller submitted at least one deliverable.
	// The buyer may approve (completing the order) or request a revision.
	Delivered

	// RevisionRequested indicates the buyer sent a delivered order back for
	// rework. The seller redelivers, returning the order to Delivered.
	RevisionRequested

	// Completed indicates the buyer approved the delivery and payment was
	// released to the seller. Terminal.
	Completed

	// Cancelled indicates the order was called off before delivery was
	// approved. No funds were released. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:           "unknown",
		Pending:           "pending",
		InProgress:        "in_progress",
		Delivered:         "delivered",
		RevisionRequested: "revision_requested",
		Completed:         "completed",
		Cancelled:         "cancelled",
	}
}

// StatusFromString parses the persisted string form of a status.
// Returns Unknown with an error for unrecognized values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, fmt.Errorf("%w: %q is not a known status", ErrInvalidStatusTransition, s)
}

// Validate checks if the Status value is one of the defined lifecycle states.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if s < Pending || s > Cancelled {
		return fmt.Errorf("%w: %d is not a valid status", ErrInvalidStatusTransition, int(s))
	}
	return nil
}

// String returns the persisted name of the status, e.g. "revision_requested".
// Implements fmt.Stringer and is safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are allowed from the status.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// Accept transitions Pending -> InProgress when the seller takes the order on.
// Any other current status is rejected.
func (s Status) Accept() (Status, error) {
	if s != Pending {
		return Unknown, transitionError(s, InProgress)
	}
	return InProgress, nil
}

// Deliver transitions InProgress -> Delivered or RevisionRequested -> Delivered
// (redelivery after rework). Any other current status is rejected.
func (s Status) Deliver() (Status, error) {
	if s != InProgress && s != RevisionRequested {
		return Unknown, transitionError(s, Delivered)
	}
	return Delivered, nil
}

// Complete transitions Delivered -> Completed when the buyer approves the
// delivery. Completion from any other status is rejected; in particular a
// Completed order stays completed, which is what makes settlement idempotent.
func (s Status) Complete() (Status, error) {
	if s != Delivered {
		return Unknown, transitionError(s, Completed)
	}
	return Completed, nil
}

// RequestRevision transitions Delivered -> RevisionRequested.
// The revision quota is enforced by the Order aggregate, not here.
func (s Status) RequestRevision() (Status, error) {
	if s != Delivered {
		return Unknown, transitionError(s, RevisionRequested)
	}
	return RevisionRequested, nil
}

// Cancel transitions Pending -> Cancelled or InProgress -> Cancelled.
// Once a delivery exists the order can no longer be cancelled, only
// completed or revised.
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != InProgress {
		return Unknown, transitionError(s, Cancelled)
	}
	return Cancelled, nil
}

func transitionError(from, to Status) error {
	return fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, from, to)
}
