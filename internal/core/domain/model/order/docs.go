// Package order contains the Order aggregate and its supporting value objects.
//
// The Order is the single source of truth for one commissioned unit of work:
// the parties, the commercial terms fixed at creation, the delivery record,
// and the lifecycle state machine with its revision quota. Buyer and seller
// hold only references to the order; every mutation is a validated aggregate
// method so invariants cannot be bypassed.
package order
