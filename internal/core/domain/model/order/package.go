package order

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// ErrPackageIsNotConstructed is returned when a Package was not created via NewPackage.
var ErrPackageIsNotConstructed = errors.New("Package must be created via NewPackage")

// Package holds the commercial scope terms of an order, fixed at creation:
// which tier was bought, for how much, the delivery window, the feature list,
// and the revision allowance. Package is immutable for the life of the order.
type Package struct {
	kind         string
	title        string
	price        kernel.Money
	deliveryDays int
	maxRevisions int
	features     []string

	isConstructed bool
}

// NewPackage creates validated package terms.
// The price must be positive, the delivery window at least one day, and the
// revision allowance non-negative. Features keep their listed order.
func NewPackage(
	kind, title string,
	price kernel.Money,
	deliveryDays, maxRevisions int,
	features []string,
) (Package, error) {
	if kind == "" {
		return Package{}, errs.NewValueIsRequiredError("package kind")
	}
	if title == "" {
		return Package{}, errs.NewValueIsRequiredError("package title")
	}
	if price.IsZero() {
		return Package{}, errs.NewValueIsInvalidErrorWithCause(
			"package price", errors.New("price must be positive"))
	}
	if deliveryDays <= 0 {
		return Package{}, errs.NewValueIsInvalidErrorWithCause(
			"package deliveryDays", fmt.Errorf("%d is not greater than 0", deliveryDays))
	}
	if maxRevisions < 0 {
		return Package{}, errs.NewValueIsInvalidErrorWithCause(
			"package maxRevisions", fmt.Errorf("%d is negative", maxRevisions))
	}

	return Package{
		kind:          kind,
		title:         title,
		price:         price,
		deliveryDays:  deliveryDays,
		maxRevisions:  maxRevisions,
		features:      features,
		isConstructed: true,
	}, nil
}

// Validate ensures the Package was created through NewPackage.
func (p Package) Validate() error {
	if !p.isConstructed {
		return ErrPackageIsNotConstructed
	}
	return nil
}

// Kind returns the package tier tag (e.g. "basic", "premium").
func (p Package) Kind() string {
	return p.kind
}

// Title returns the package's display title.
func (p Package) Title() string {
	return p.title
}

// Price returns the package price.
func (p Package) Price() kernel.Money {
	return p.price
}

// DeliveryDays returns the promised delivery window in days.
func (p Package) DeliveryDays() int {
	return p.deliveryDays
}

// MaxRevisions returns the revision allowance fixed at creation.
func (p Package) MaxRevisions() int {
	return p.maxRevisions
}

// Features returns the ordered feature list of the package.
func (p Package) Features() []string {
	return p.features
}
