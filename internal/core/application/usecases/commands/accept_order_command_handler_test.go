package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAcceptOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	f := newOrderFixture(t)
	cmd, err := commands.NewAcceptOrderCommand(f.Order.ID(), f.SellerID)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, f.Order.ID()).Return(f.Order, nil).Once(),
		repo.On("UpdateWithExpectedStatus", mock.Anything, f.Order, order.Pending).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(recordingPublisher)
	h := commands.NewAcceptOrderCommandHandler(factory, publisher)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.InProgress, f.Order.Status())
	events := publisher.Events()
	require.Len(t, events, 1)
	assert.Equal(t, ports.TransitionOrderAccepted, events[0].Kind)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAcceptOrderCommandHandler_Handle_BuyerCannotAccept(t *testing.T) {
	ctx := t.Context()
	f := newOrderFixture(t)
	cmd, err := commands.NewAcceptOrderCommand(f.Order.ID(), f.BuyerID)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, f.Order.ID()).Return(f.Order, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptOrderCommandHandler(factory, new(recordingPublisher))
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrActorNotPermitted)
	assert.Equal(t, order.Pending, f.Order.Status())
}

func TestAcceptOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	f := newOrderFixture(t)
	cmd, err := commands.NewAcceptOrderCommand(f.Order.ID(), f.SellerID)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, f.Order.ID()).
			Return(nil, errs.NewObjectNotFoundError("orderId", f.Order.ID())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptOrderCommandHandler(factory, new(recordingPublisher))
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestAcceptOrderCommandHandler_Handle_ConcurrencyConflict(t *testing.T) {
	ctx := t.Context()
	f := newOrderFixture(t)
	cmd, err := commands.NewAcceptOrderCommand(f.Order.ID(), f.SellerID)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, f.Order.ID()).Return(f.Order, nil).Once(),
		repo.On("UpdateWithExpectedStatus", mock.Anything, f.Order, order.Pending).
			Return(errs.NewConcurrencyConflictError("orderId", f.Order.ID())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(recordingPublisher)
	h := commands.NewAcceptOrderCommandHandler(factory, publisher)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConcurrencyConflict)
	assert.Empty(t, publisher.Events())
}
