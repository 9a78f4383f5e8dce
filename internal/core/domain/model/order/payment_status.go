package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// PaymentStatus describes the state of the buyer's payment for an order.
// The actual card/bank processing happens in an external gateway; the order
// only records the outcome tag.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// PaymentPaid means the buyer's funds are held and awaiting release.
	PaymentPaid

	// PaymentPending means the gateway has not yet confirmed the charge.
	PaymentPending

	// PaymentFailed means the charge did not go through.
	PaymentFailed

	// PaymentRefunded means held funds were returned to the buyer.
	PaymentRefunded
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown:  "unknown",
		PaymentPaid:     "paid",
		PaymentPending:  "pending",
		PaymentFailed:   "failed",
		PaymentRefunded: "refunded",
	}
}

// PaymentStatusFromString parses the persisted string form of a payment status.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, str := range getPaymentStatusStrings() {
		if str == s && status != PaymentUnknown {
			return status, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause(
		"paymentStatus", fmt.Errorf("%q is not a known payment status", s))
}

// Validate checks if the PaymentStatus value is one of the defined states.
func (p PaymentStatus) Validate() error {
	if p < PaymentPaid || p > PaymentRefunded {
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentStatus", fmt.Errorf("%d is not a valid payment status", int(p)))
	}
	return nil
}

// String returns the persisted name of the payment status, e.g. "paid".
func (p PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[p]; ok {
		return str
	}
	return "unknown"
}
