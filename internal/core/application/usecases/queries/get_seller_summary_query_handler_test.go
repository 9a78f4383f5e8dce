package queries_test

import (
	"context"
	"testing"

	"marketplace/internal/adapters/out/postgres/sellerrepo"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/seller"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type GetSellerSummaryQueryHandlerTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	handler    queries.GetSellerSummaryQueryHandler
	sellerRepo *sellerrepo.GormSellerRepository
}

func (s *GetSellerSummaryQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()
	s.container, s.db = startPostgres(ctx, s.T())
	s.handler = queries.NewGetSellerSummaryQueryHandler(s.db)
	s.sellerRepo = sellerrepo.NewGormSellerRepository(s.db, &mockAggregateTracker{})
}

func (s *GetSellerSummaryQueryHandlerTestSuite) TearDownSuite() {
	if s.container != nil {
		s.Require().NoError(s.container.Terminate(context.Background()))
	}
}

func (s *GetSellerSummaryQueryHandlerTestSuite) SetupTest() {
	s.Require().NoError(s.db.Exec("TRUNCATE TABLE sellers").Error)
}

func (s *GetSellerSummaryQueryHandlerTestSuite) seedSeller(name string) kernel.UUID {
	account, err := seller.NewAccount(kernel.NewUUID(), name)
	s.Require().NoError(err)
	s.Require().NoError(s.sellerRepo.Add(context.Background(), account))
	return account.ID()
}

func (s *GetSellerSummaryQueryHandlerTestSuite) TestHandle_FreshSellerHasZeroSummary() {
	sellerID := s.seedSeller("Sam Seller")

	query, err := queries.NewGetSellerSummaryQuery(sellerID)
	s.Require().NoError(err)

	resp, err := s.handler.Handle(context.Background(), query)
	s.Require().NoError(err)

	s.Equal(sellerID, resp.SellerID)
	s.Equal("Sam Seller", resp.DisplayName)
	s.Equal(int64(0), resp.AvailableBalanceCents)
	s.Equal(int64(0), resp.TotalEarningsCents)
	s.Equal(int64(0), resp.ReviewCount)
	s.Zero(resp.AverageRating)
}

func (s *GetSellerSummaryQueryHandlerTestSuite) TestHandle_AverageDerivedFromSumAndCount() {
	ctx := context.Background()
	sellerID := s.seedSeller("Sam Seller")
	s.Require().NoError(s.sellerRepo.AddRating(ctx, sellerID, 5))
	s.Require().NoError(s.sellerRepo.AddRating(ctx, sellerID, 4))

	query, err := queries.NewGetSellerSummaryQuery(sellerID)
	s.Require().NoError(err)

	resp, err := s.handler.Handle(ctx, query)
	s.Require().NoError(err)

	s.Equal(int64(2), resp.ReviewCount)
	s.InDelta(4.5, resp.AverageRating, 0.0001)
}

func (s *GetSellerSummaryQueryHandlerTestSuite) TestHandle_EarningsReflectCredits() {
	ctx := context.Background()
	sellerID := s.seedSeller("Sam Seller")

	price, err := kernel.NewMoneyFromCents(10000)
	s.Require().NoError(err)
	s.Require().NoError(s.sellerRepo.CreditEarnings(ctx, sellerID, price))
	s.Require().NoError(s.sellerRepo.CreditEarnings(ctx, sellerID, price))

	query, err := queries.NewGetSellerSummaryQuery(sellerID)
	s.Require().NoError(err)

	resp, err := s.handler.Handle(ctx, query)
	s.Require().NoError(err)

	s.Equal(int64(20000), resp.AvailableBalanceCents)
	s.Equal(int64(20000), resp.TotalEarningsCents)
}

func (s *GetSellerSummaryQueryHandlerTestSuite) TestHandle_UnknownSeller() {
	query, err := queries.NewGetSellerSummaryQuery(kernel.NewUUID())
	s.Require().NoError(err)

	resp, err := s.handler.Handle(context.Background(), query)
	s.Require().Error(err)
	s.ErrorIs(err, errs.ErrObjectNotFound)
	s.Nil(resp)
}

func (s *GetSellerSummaryQueryHandlerTestSuite) TestHandle_InvalidQuery() {
	resp, err := s.handler.Handle(context.Background(), queries.GetSellerSummaryQuery{})
	s.Require().Error(err)
	s.Nil(resp)
}

func TestGetSellerSummaryQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetSellerSummaryQueryHandlerTestSuite))
}
