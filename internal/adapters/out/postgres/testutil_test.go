package postgres_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/adapters/out/postgres/reviewrepo"
	"marketplace/internal/adapters/out/postgres/sellerrepo"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker satisfies the repositories' tracker dependency when a
// repository is exercised outside a unit of work.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

// startPostgres runs a disposable Postgres container with the full schema.
func startPostgres(ctx context.Context, t require.TestingT) (*postgres.PostgresContainer, *gorm.DB) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.DeliveryFileDTO{},
		&orderrepo.DeliveryLinkDTO{},
		&sellerrepo.SellerDTO{},
		&reviewrepo.ReviewDTO{},
	)
	require.NoError(t, err)

	return container, db
}

type testParties struct {
	BuyerID  kernel.UUID
	SellerID kernel.UUID
	Buyer    order.Party
	Seller   order.Party
}

func makeParties(t *testing.T) testParties {
	t.Helper()

	buyerID := kernel.NewUUID()
	sellerID := kernel.NewUUID()

	buyer, err := order.NewParty(buyerID, "Ada Buyer", "ada@example.com")
	require.NoError(t, err)
	seller, err := order.NewParty(sellerID, "Sam Seller", "sam@example.com")
	require.NoError(t, err)

	return testParties{BuyerID: buyerID, SellerID: sellerID, Buyer: buyer, Seller: seller}
}

// makeOrder builds a pending order for the given parties: 100.00 price,
// 5.00 fee, three-day delivery window, two revisions.
func makeOrder(t *testing.T, p testParties) *order.Order {
	t.Helper()

	price, err := kernel.NewMoneyFromCents(10000)
	require.NoError(t, err)
	fee, err := kernel.NewMoneyFromCents(500)
	require.NoError(t, err)

	pkg, err := order.NewPackage("standard", "Standard", price, 3, 2, []string{"source files"})
	require.NoError(t, err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		"ORD-"+kernel.NewUUID().String()[:8],
		p.Buyer,
		p.Seller,
		kernel.NewUUID(),
		"Logo design",
		pkg,
		"Two concepts please",
		"card",
		fee,
		time.Now().UTC(),
	)
	require.NoError(t, err)

	return aggregate
}
