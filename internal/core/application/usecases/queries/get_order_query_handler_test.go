package queries_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type GetOrderQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (s *GetOrderQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()
	s.container, s.db = startPostgres(ctx, s.T())
	s.handler = queries.NewGetOrderQueryHandler(s.db)
	s.orderRepo = orderrepo.NewGormOrderRepository(s.db, &mockAggregateTracker{})
}

func (s *GetOrderQueryHandlerTestSuite) TearDownSuite() {
	if s.container != nil {
		s.Require().NoError(s.container.Terminate(context.Background()))
	}
}

func (s *GetOrderQueryHandlerTestSuite) SetupTest() {
	s.Require().NoError(s.db.Exec("TRUNCATE TABLE orders CASCADE").Error)
	s.Require().NoError(s.db.Exec("TRUNCATE TABLE order_delivery_files").Error)
	s.Require().NoError(s.db.Exec("TRUNCATE TABLE order_delivery_links").Error)
}

func (s *GetOrderQueryHandlerTestSuite) TestHandle_BuyerReadsFullProjection() {
	ctx := context.Background()
	p := makeParties(s.T())
	placed := time.Now().UTC().Truncate(time.Second)
	o := makeOrder(s.T(), p, placed)
	s.Require().NoError(s.orderRepo.Add(ctx, o))

	query, err := queries.NewGetOrderQuery(o.ID(), p.BuyerID)
	s.Require().NoError(err)

	resp, err := s.handler.Handle(ctx, query)
	s.Require().NoError(err)

	s.Equal(o.ID(), resp.ID)
	s.Equal(o.OrderNumber(), resp.OrderNumber)
	s.Equal(p.BuyerID, resp.BuyerID)
	s.Equal(p.SellerID, resp.SellerID)
	s.Equal("pending", resp.Status)
	s.Equal("paid", resp.PaymentStatus)
	s.Equal(int64(10000), resp.PriceCents)
	s.Equal(int64(500), resp.ServiceFeeCents)
	s.Equal(int64(10500), resp.TotalCents)
	s.Equal(o.ConversationID(), resp.ConversationID)
	s.Empty(resp.DeliveryFiles)
	s.Empty(resp.DeliveryLinks)
}

func (s *GetOrderQueryHandlerTestSuite) TestHandle_DeliveryRecordIncluded() {
	ctx := context.Background()
	p := makeParties(s.T())
	o := makeOrder(s.T(), p, time.Now().UTC())
	s.Require().NoError(o.Accept(p.SellerID))
	s.Require().NoError(s.orderRepo.Add(ctx, o))

	uploadedAt := time.Now().UTC().Truncate(time.Second)
	artifact, err := order.NewArtifact(
		"logo.zip", "https://cdn.example.com/logo.zip", 2048, "application/zip", uploadedAt)
	s.Require().NoError(err)
	s.Require().NoError(s.orderRepo.AppendDeliveryFile(ctx, o.ID(), artifact))
	s.Require().NoError(s.orderRepo.AppendDeliveryLink(ctx, o.ID(), "https://drive.example.com/batch-1"))
	s.Require().NoError(s.orderRepo.SetDeliveryNote(ctx, o.ID(), "first draft"))

	query, err := queries.NewGetOrderQuery(o.ID(), p.SellerID)
	s.Require().NoError(err)

	resp, err := s.handler.Handle(ctx, query)
	s.Require().NoError(err)

	s.Require().Len(resp.DeliveryFiles, 1)
	s.Equal("logo.zip", resp.DeliveryFiles[0].Name)
	s.Equal(int64(2048), resp.DeliveryFiles[0].ByteSize)
	s.Equal([]string{"https://drive.example.com/batch-1"}, resp.DeliveryLinks)
	s.Equal("first draft", resp.DeliveryNote)
}

func (s *GetOrderQueryHandlerTestSuite) TestHandle_StrangerDenied() {
	ctx := context.Background()
	p := makeParties(s.T())
	o := makeOrder(s.T(), p, time.Now().UTC())
	s.Require().NoError(s.orderRepo.Add(ctx, o))

	query, err := queries.NewGetOrderQuery(o.ID(), kernel.NewUUID())
	s.Require().NoError(err)

	resp, err := s.handler.Handle(ctx, query)
	s.Require().Error(err)
	s.ErrorIs(err, order.ErrActorNotPermitted)
	s.Nil(resp)
}

func (s *GetOrderQueryHandlerTestSuite) TestHandle_UnknownOrder() {
	query, err := queries.NewGetOrderQuery(kernel.NewUUID(), kernel.NewUUID())
	s.Require().NoError(err)

	resp, err := s.handler.Handle(context.Background(), query)
	s.Require().Error(err)
	s.ErrorIs(err, errs.ErrObjectNotFound)
	s.Nil(resp)
}

func (s *GetOrderQueryHandlerTestSuite) TestHandle_InvalidQuery() {
	invalidQuery := queries.GetOrderQuery{}

	resp, err := s.handler.Handle(context.Background(), invalidQuery)
	s.Require().Error(err)
	s.Nil(resp)
	s.Contains(err.Error(), "must be created via NewGetOrderQuery constructor")
}

func TestGetOrderQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderQueryHandlerTestSuite))
}
