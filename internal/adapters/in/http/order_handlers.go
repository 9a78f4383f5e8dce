package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// PlaceOrder handles POST /api/v1/orders. The caller is the buyer.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	buyerID, err := callerID(ctx)
	if err != nil {
		return err
	}

	var req PlaceOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	buyer, err := order.NewParty(buyerID, req.BuyerName, req.BuyerEmail)
	if err != nil {
		return badRequest(ctx, "Invalid buyer data: "+err.Error())
	}

	sellerID, err := kernel.UUIDFromString(req.SellerID)
	if err != nil {
		return badRequest(ctx, "Invalid seller id")
	}
	seller, err := order.NewParty(sellerID, req.SellerName, req.SellerEmail)
	if err != nil {
		return badRequest(ctx, "Invalid seller data: "+err.Error())
	}

	gigID, err := kernel.UUIDFromString(req.GigID)
	if err != nil {
		return badRequest(ctx, "Invalid gig id")
	}

	price, err := kernel.NewMoneyFromCents(req.Package.PriceCents)
	if err != nil {
		return badRequest(ctx, "Invalid package price: "+err.Error())
	}
	pkg, err := order.NewPackage(
		req.Package.Kind,
		req.Package.Title,
		price,
		req.Package.DeliveryDays,
		req.Package.MaxRevisions,
		req.Package.Features,
	)
	if err != nil {
		return badRequest(ctx, "Invalid package data: "+err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(
		orderID, buyer, seller, gigID, req.GigTitle, pkg, req.Requirements, req.PaymentMethod)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, PlaceOrderResponse{OrderID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:orderId.
func (s *Server) GetOrder(ctx echo.Context) error {
	caller, err := callerID(ctx)
	if err != nil {
		return err
	}
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(orderID, caller)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromResponse(resp))
}

// AcceptOrder handles POST /api/v1/orders/:orderId/accept.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	return s.transition(ctx, func(orderID, caller kernel.UUID) error {
		cmd, err := commands.NewAcceptOrderCommand(orderID, caller)
		if err != nil {
			return err
		}
		return s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// AttachDeliverable handles POST /api/v1/orders/:orderId/attachments.
func (s *Server) AttachDeliverable(ctx echo.Context) error {
	caller, err := callerID(ctx)
	if err != nil {
		return err
	}
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return err
	}

	var req AttachDeliverableRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var cmd commands.AttachDeliverableCommand
	switch {
	case req.File != nil:
		cmd, err = commands.NewAttachFileCommand(
			orderID, caller, req.File.Name, req.File.URL, req.File.ByteSize, req.File.MediaType)
	case req.Link != "":
		cmd, err = commands.NewAttachLinkCommand(orderID, caller, req.Link)
	case req.Note != "":
		cmd, err = commands.NewAttachNoteCommand(orderID, caller, req.Note)
	default:
		return badRequest(ctx, "One of file, link, or note is required")
	}
	if err != nil {
		return badRequest(ctx, "Invalid attachment data: "+err.Error())
	}

	if handleErr := s.attachDeliverableHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeliverOrder handles POST /api/v1/orders/:orderId/deliver.
func (s *Server) DeliverOrder(ctx echo.Context) error {
	caller, err := callerID(ctx)
	if err != nil {
		return err
	}
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return err
	}

	var req DeliverOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	files := make([]commands.DeliverableFile, len(req.Files))
	for i, f := range req.Files {
		files[i] = commands.DeliverableFile{
			Name:      f.Name,
			URL:       f.URL,
			ByteSize:  f.ByteSize,
			MediaType: f.MediaType,
		}
	}

	cmd, err := commands.NewDeliverOrderCommand(orderID, caller, files, req.Links, req.Note)
	if err != nil {
		return badRequest(ctx, "Invalid delivery data: "+err.Error())
	}

	if handleErr := s.deliverOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RequestRevision handles POST /api/v1/orders/:orderId/revision.
func (s *Server) RequestRevision(ctx echo.Context) error {
	caller, err := callerID(ctx)
	if err != nil {
		return err
	}
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return err
	}

	var req RequestRevisionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRequestRevisionCommand(orderID, caller, req.Message)
	if err != nil {
		return badRequest(ctx, "Invalid revision data: "+err.Error())
	}

	if handleErr := s.requestRevisionHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReleasePayment handles POST /api/v1/orders/:orderId/release.
func (s *Server) ReleasePayment(ctx echo.Context) error {
	return s.transition(ctx, func(orderID, caller kernel.UUID) error {
		cmd, err := commands.NewReleasePaymentCommand(orderID, caller)
		if err != nil {
			return err
		}
		return s.releasePaymentHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// CancelOrder handles POST /api/v1/orders/:orderId/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	return s.transition(ctx, func(orderID, caller kernel.UUID) error {
		cmd, err := commands.NewCancelOrderCommand(orderID, caller)
		if err != nil {
			return err
		}
		return s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// transition runs a body-less lifecycle action identified by the path and caller.
func (s *Server) transition(ctx echo.Context, run func(orderID, caller kernel.UUID) error) error {
	caller, err := callerID(ctx)
	if err != nil {
		return err
	}
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return err
	}

	if err = run(orderID, caller); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
