package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"

	"github.com/stretchr/testify/require"
)

// recordingPublisher captures transition events for assertions.
type recordingPublisher struct {
	mu     sync.Mutex
	events []ports.TransitionEvent
}

func (p *recordingPublisher) Publish(_ context.Context, event ports.TransitionEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordingPublisher) Events() []ports.TransitionEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]ports.TransitionEvent(nil), p.events...)
}

type orderFixture struct {
	Order    *order.Order
	BuyerID  kernel.UUID
	SellerID kernel.UUID
}

// newOrderFixture builds a fresh pending order: 100.00 price, 5.00 fee,
// two revisions included.
func newOrderFixture(t *testing.T) orderFixture {
	t.Helper()

	buyerID := kernel.NewUUID()
	sellerID := kernel.NewUUID()

	buyer, err := order.NewParty(buyerID, "Ada Buyer", "ada@example.com")
	require.NoError(t, err)
	seller, err := order.NewParty(sellerID, "Sam Seller", "sam@example.com")
	require.NoError(t, err)

	price, err := kernel.NewMoneyFromCents(10000)
	require.NoError(t, err)
	fee, err := kernel.NewMoneyFromCents(500)
	require.NoError(t, err)

	pkg, err := order.NewPackage("standard", "Standard", price, 3, 2, []string{"source files"})
	require.NoError(t, err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		"ORD-1700000000000",
		buyer,
		seller,
		kernel.NewUUID(),
		"Logo design",
		pkg,
		"Two concepts please",
		"card",
		fee,
		time.Now().UTC(),
	)
	require.NoError(t, err)

	return orderFixture{Order: aggregate, BuyerID: buyerID, SellerID: sellerID}
}

// inProgressOrderFixture builds an order the seller has accepted.
func inProgressOrderFixture(t *testing.T) orderFixture {
	t.Helper()

	f := newOrderFixture(t)
	require.NoError(t, f.Order.Accept(f.SellerID))
	return f
}

// deliveredOrderFixture builds an order with one delivered link.
func deliveredOrderFixture(t *testing.T) orderFixture {
	t.Helper()

	f := inProgressOrderFixture(t)
	require.NoError(t, f.Order.AddDeliveryLink(f.SellerID, "https://files.example.com/final"))
	require.NoError(t, f.Order.Deliver(f.SellerID, time.Now().UTC()))
	return f
}

// completedOrderFixture builds an order the buyer has completed.
func completedOrderFixture(t *testing.T) orderFixture {
	t.Helper()

	f := deliveredOrderFixture(t)
	require.NoError(t, f.Order.Complete(f.BuyerID, time.Now().UTC()))
	return f
}
