// Package services provides domain services that implement business policy
// spanning more than one aggregate in the marketplace.
//
// The package includes:
//   - PricingPolicy: the platform's service-fee schedule applied at checkout
//
// Domain services hold logic that does not naturally belong to a single
// aggregate root, following Domain-Driven Design principles.
package services
