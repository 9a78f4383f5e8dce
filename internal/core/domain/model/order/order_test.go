package order_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testOrder struct {
	*order.Order
	BuyerID  kernel.UUID
	SellerID kernel.UUID
	PlacedAt time.Time
}

func newTestOrder(t *testing.T) testOrder {
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

	placedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		"ORD-1001",
		buyer,
		seller,
		kernel.NewUUID(),
		"Logo design",
		pkg,
		"Two concepts please",
		"card",
		fee,
		placedAt,
	)
	require.NoError(t, err)

	return testOrder{Order: aggregate, BuyerID: buyerID, SellerID: sellerID, PlacedAt: placedAt}
}

func deliverTestOrder(t *testing.T, o testOrder) {
	t.Helper()
	require.NoError(t, o.Accept(o.SellerID))
	require.NoError(t, o.AddDeliveryLink(o.SellerID, "https://files.example.com/final"))
	require.NoError(t, o.Deliver(o.SellerID, o.PlacedAt.Add(24*time.Hour)))
}

func TestNewOrder(t *testing.T) {
	o := newTestOrder(t)

	assert.Equal(t, order.Pending, o.Status())
	assert.Equal(t, order.PaymentPaid, o.PaymentStatus())
	assert.Equal(t, 0, o.RevisionCount())

	t.Run("total is price plus fee", func(t *testing.T) {
		assert.Equal(t, int64(10000), o.Price().Cents())
		assert.Equal(t, int64(500), o.ServiceFee().Cents())
		assert.Equal(t, int64(10500), o.TotalAmount().Cents())
		assert.Equal(t, "105.00", o.TotalAmount().String())
	})

	t.Run("expected delivery follows the package window", func(t *testing.T) {
		assert.Equal(t, o.PlacedAt.AddDate(0, 0, 3), o.ExpectedDeliveryAt())
	})

	t.Run("conversation is minted at placement", func(t *testing.T) {
		assert.NotEmpty(t, o.ConversationID())
		assert.Contains(t, o.ConversationID(), o.BuyerID.String())
	})
}

func TestNewOrder_Validation(t *testing.T) {
	valid := newTestOrder(t)
	price, _ := kernel.NewMoneyFromCents(10000)
	fee, _ := kernel.NewMoneyFromCents(500)
	pkg, _ := order.NewPackage("standard", "Standard", price, 3, 2, nil)

	samePerson, err := order.NewParty(valid.BuyerID, "Ada Buyer", "ada@example.com")
	require.NoError(t, err)
	buyer, err := order.NewParty(valid.BuyerID, "Ada Buyer", "ada@example.com")
	require.NoError(t, err)

	t.Run("buyer and seller must differ", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), "ORD-1002", buyer, samePerson,
			kernel.NewUUID(), "Logo design", pkg, "", "card", fee, time.Now())
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	seller, err := order.NewParty(kernel.NewUUID(), "Sam Seller", "")
	require.NoError(t, err)

	t.Run("gig title is required", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), "ORD-1002", buyer, seller,
			kernel.NewUUID(), "", pkg, "", "card", fee, time.Now())
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("payment method is required", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), "ORD-1002", buyer, seller,
			kernel.NewUUID(), "Logo design", pkg, "", "", fee, time.Now())
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("order number is required", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), "", buyer, seller,
			kernel.NewUUID(), "Logo design", pkg, "", "card", fee, time.Now())
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrder_Accept(t *testing.T) {
	t.Run("seller accepts a pending order", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Accept(o.SellerID))
		assert.Equal(t, order.InProgress, o.Status())
	})

	t.Run("buyer cannot accept", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.Accept(o.BuyerID)
		require.ErrorIs(t, err, order.ErrActorNotPermitted)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("accepting twice is rejected", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Accept(o.SellerID))

		err := o.Accept(o.SellerID)
		require.ErrorIs(t, err, order.ErrInvalidStatusTransition)
	})
}

func TestOrder_DeliveryRecord(t *testing.T) {
	t.Run("seller attaches while in progress", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Accept(o.SellerID))

		artifact, err := order.NewArtifact(
			"logo.zip", "https://cdn.example.com/logo.zip", 2048, "application/zip", time.Now())
		require.NoError(t, err)

		require.NoError(t, o.AddDeliveryFile(o.SellerID, artifact))
		require.NoError(t, o.AddDeliveryLink(o.SellerID, "https://drive.example.com/batch-1"))
		require.NoError(t, o.SetDeliveryNote(o.SellerID, "first draft"))

		assert.Len(t, o.DeliveryFiles(), 1)
		assert.Equal(t, []string{"https://drive.example.com/batch-1"}, o.DeliveryLinks())
		assert.Equal(t, "first draft", o.DeliveryNote())
		assert.Equal(t, order.InProgress, o.Status(), "attaching causes no status change")
	})

	t.Run("buyer cannot attach", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Accept(o.SellerID))

		err := o.AddDeliveryLink(o.BuyerID, "https://drive.example.com/batch-1")
		require.ErrorIs(t, err, order.ErrActorNotPermitted)
	})

	t.Run("attaching to a pending order is rejected", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.AddDeliveryLink(o.SellerID, "https://drive.example.com/batch-1")
		require.ErrorIs(t, err, order.ErrInvalidStatusTransition)
	})

	t.Run("relative link is rejected", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Accept(o.SellerID))

		err := o.AddDeliveryLink(o.SellerID, "/files/batch-1")
		require.ErrorIs(t, err, order.ErrURLIsNotAbsolute)
		assert.Empty(t, o.DeliveryLinks())
	})
}

func TestOrder_Deliver(t *testing.T) {
	t.Run("delivery with a deliverable attached", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Accept(o.SellerID))
		require.NoError(t, o.AddDeliveryLink(o.SellerID, "https://files.example.com/final"))

		deliveredAt := o.PlacedAt.Add(24 * time.Hour)
		require.NoError(t, o.Deliver(o.SellerID, deliveredAt))

		assert.Equal(t, order.Delivered, o.Status())
		require.NotNil(t, o.DeliveredAt())
		assert.Equal(t, deliveredAt, *o.DeliveredAt())
	})

	t.Run("empty delivery record blocks delivery", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Accept(o.SellerID))

		err := o.Deliver(o.SellerID, time.Now())
		require.ErrorIs(t, err, order.ErrNothingDelivered)
		assert.Equal(t, order.InProgress, o.Status())
	})

	t.Run("buyer cannot deliver", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Accept(o.SellerID))

		err := o.Deliver(o.BuyerID, time.Now())
		require.ErrorIs(t, err, order.ErrActorNotPermitted)
	})
}

func TestOrder_RequestRevision(t *testing.T) {
	t.Run("buyer sends a delivery back", func(t *testing.T) {
		o := newTestOrder(t)
		deliverTestOrder(t, o)

		revisedAt := o.PlacedAt.Add(48 * time.Hour)
		require.NoError(t, o.RequestRevision(o.BuyerID, "Make the logo bigger", revisedAt))

		assert.Equal(t, order.RevisionRequested, o.Status())
		assert.Equal(t, 1, o.RevisionCount())
		assert.Equal(t, "Make the logo bigger", o.LastRevisionMessage())
		require.NotNil(t, o.LastRevisionAt())
		assert.Equal(t, revisedAt, *o.LastRevisionAt())
	})

	t.Run("message is required", func(t *testing.T) {
		o := newTestOrder(t)
		deliverTestOrder(t, o)

		err := o.RequestRevision(o.BuyerID, "", time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("seller cannot request a revision", func(t *testing.T) {
		o := newTestOrder(t)
		deliverTestOrder(t, o)

		err := o.RequestRevision(o.SellerID, "looks wrong", time.Now())
		require.ErrorIs(t, err, order.ErrActorNotPermitted)
	})

	t.Run("quota caps the revision count", func(t *testing.T) {
		o := newTestOrder(t)
		deliverTestOrder(t, o)

		// The package allows two revisions.
		require.NoError(t, o.RequestRevision(o.BuyerID, "round one", time.Now()))
		require.NoError(t, o.Deliver(o.SellerID, time.Now()))
		require.NoError(t, o.RequestRevision(o.BuyerID, "round two", time.Now()))
		require.NoError(t, o.Deliver(o.SellerID, time.Now()))

		err := o.RequestRevision(o.BuyerID, "round three", time.Now())
		require.ErrorIs(t, err, order.ErrRevisionQuotaExhausted)
		assert.Equal(t, 2, o.RevisionCount())
		assert.Equal(t, order.Delivered, o.Status())
	})
}

func TestOrder_Complete(t *testing.T) {
	t.Run("buyer approves a delivery", func(t *testing.T) {
		o := newTestOrder(t)
		deliverTestOrder(t, o)

		completedAt := o.PlacedAt.Add(72 * time.Hour)
		require.NoError(t, o.Complete(o.BuyerID, completedAt))

		assert.Equal(t, order.Completed, o.Status())
		require.NotNil(t, o.CompletedAt())
		assert.Equal(t, completedAt, *o.CompletedAt())
	})

	t.Run("seller cannot approve their own work", func(t *testing.T) {
		o := newTestOrder(t)
		deliverTestOrder(t, o)

		err := o.Complete(o.SellerID, time.Now())
		require.ErrorIs(t, err, order.ErrActorNotPermitted)
	})

	t.Run("completion is terminal", func(t *testing.T) {
		o := newTestOrder(t)
		deliverTestOrder(t, o)
		require.NoError(t, o.Complete(o.BuyerID, time.Now()))

		err := o.Complete(o.BuyerID, time.Now())
		require.ErrorIs(t, err, order.ErrInvalidStatusTransition)
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("buyer cancels a pending order", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Cancel(o.BuyerID))
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("seller cancels an in-progress order", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Accept(o.SellerID))

		require.NoError(t, o.Cancel(o.SellerID))
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("delivered orders cannot be cancelled", func(t *testing.T) {
		o := newTestOrder(t)
		deliverTestOrder(t, o)

		err := o.Cancel(o.BuyerID)
		require.ErrorIs(t, err, order.ErrInvalidStatusTransition)
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("strangers cannot cancel", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.Cancel(kernel.NewUUID())
		require.ErrorIs(t, err, order.ErrActorNotPermitted)
	})
}

func TestRestoreOrder(t *testing.T) {
	o := newTestOrder(t)
	deliverTestOrder(t, o)
	require.NoError(t, o.RequestRevision(o.BuyerID, "Make the logo bigger", o.PlacedAt.Add(48*time.Hour)))

	restored, err := order.RestoreOrder(
		o.ID(), o.OrderNumber(), o.Buyer(), o.Seller(),
		o.GigID(), o.GigTitle(), o.Package(),
		o.Requirements(), o.PaymentMethod(), o.ServiceFee(),
		o.PaymentStatus(), o.Status(), o.RevisionCount(),
		o.CreatedAt(), o.ExpectedDeliveryAt(), o.DeliveredAt(), o.CompletedAt(),
		o.LastRevisionAt(), o.LastRevisionMessage(),
		o.DeliveryFiles(), o.DeliveryLinks(), o.DeliveryNote(),
		o.ConversationID(),
	)
	require.NoError(t, err)

	assert.True(t, restored.IsEqual(o.Order))
	assert.Equal(t, order.RevisionRequested, restored.Status())
	assert.Equal(t, 1, restored.RevisionCount())
	assert.Equal(t, o.DeliveryLinks(), restored.DeliveryLinks())
	assert.Equal(t, o.TotalAmount(), restored.TotalAmount())

	t.Run("revision count above the quota is rejected", func(t *testing.T) {
		_, err := order.RestoreOrder(
			o.ID(), o.OrderNumber(), o.Buyer(), o.Seller(),
			o.GigID(), o.GigTitle(), o.Package(),
			o.Requirements(), o.PaymentMethod(), o.ServiceFee(),
			o.PaymentStatus(), o.Status(), 3,
			o.CreatedAt(), o.ExpectedDeliveryAt(), o.DeliveredAt(), o.CompletedAt(),
			o.LastRevisionAt(), o.LastRevisionMessage(),
			o.DeliveryFiles(), o.DeliveryLinks(), o.DeliveryNote(),
			o.ConversationID(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}
