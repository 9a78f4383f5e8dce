package services

import (
	"marketplace/internal/core/domain/model/kernel"
)

// serviceFeeBasisPoints is the platform's checkout fee: 5% of the package price.
const serviceFeeBasisPoints = 500

// PricingPolicy is a domain service that computes the platform's charges on
// top of a package price. The fee is platform revenue: it is collected from
// the buyer at checkout and never credited to the seller on settlement.
//
// Example:
//
//	policy := services.NewPricingPolicy()
//	price, _ := kernel.NewMoneyFromCents(10000)
//	fee := policy.ServiceFee(price)         // 500 cents
//	total := policy.TotalAmount(price)      // 10500 cents
type PricingPolicy struct{}

// NewPricingPolicy creates a PricingPolicy with the platform's fee schedule.
func NewPricingPolicy() PricingPolicy {
	return PricingPolicy{}
}

// ServiceFee returns the platform fee for the given package price,
// rounded to the nearest cent.
func (PricingPolicy) ServiceFee(price kernel.Money) kernel.Money {
	return price.Percent(serviceFeeBasisPoints)
}

// TotalAmount returns the amount the buyer is charged: price plus service fee.
func (p PricingPolicy) TotalAmount(price kernel.Money) kernel.Money {
	return price.Add(p.ServiceFee(price))
}
