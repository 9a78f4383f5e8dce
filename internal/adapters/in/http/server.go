// Package http exposes the order engine over a JSON API.
//
// Authentication happens upstream: the gateway verifies the session and
// forwards the authenticated user in the X-User-Id header. Handlers treat
// that header as the caller identity and leave authorization decisions to
// the domain, which knows which party may perform which transition.
package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// HeaderUserID carries the authenticated caller's identifier.
const HeaderUserID = "X-User-Id"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler        commands.PlaceOrderCommandHandler
	acceptOrderHandler       commands.AcceptOrderCommandHandler
	attachDeliverableHandler commands.AttachDeliverableCommandHandler
	deliverOrderHandler      commands.DeliverOrderCommandHandler
	requestRevisionHandler   commands.RequestRevisionCommandHandler
	releasePaymentHandler    commands.ReleasePaymentCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler
	submitReviewHandler      commands.SubmitReviewCommandHandler

	// Query handlers
	getOrderHandler         queries.GetOrderQueryHandler
	getSellerSummaryHandler queries.GetSellerSummaryQueryHandler
	getSellerReviewsHandler queries.GetSellerReviewsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	attachDeliverableHandler commands.AttachDeliverableCommandHandler,
	deliverOrderHandler commands.DeliverOrderCommandHandler,
	requestRevisionHandler commands.RequestRevisionCommandHandler,
	releasePaymentHandler commands.ReleasePaymentCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	submitReviewHandler commands.SubmitReviewCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getSellerSummaryHandler queries.GetSellerSummaryQueryHandler,
	getSellerReviewsHandler queries.GetSellerReviewsQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:        placeOrderHandler,
		acceptOrderHandler:       acceptOrderHandler,
		attachDeliverableHandler: attachDeliverableHandler,
		deliverOrderHandler:      deliverOrderHandler,
		requestRevisionHandler:   requestRevisionHandler,
		releasePaymentHandler:    releasePaymentHandler,
		cancelOrderHandler:       cancelOrderHandler,
		submitReviewHandler:      submitReviewHandler,
		getOrderHandler:          getOrderHandler,
		getSellerSummaryHandler:  getSellerSummaryHandler,
		getSellerReviewsHandler:  getSellerReviewsHandler,
	}
}

// RegisterRoutes mounts all endpoints under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.POST("/orders", s.PlaceOrder)
	v1.GET("/orders/:orderId", s.GetOrder)
	v1.POST("/orders/:orderId/accept", s.AcceptOrder)
	v1.POST("/orders/:orderId/attachments", s.AttachDeliverable)
	v1.POST("/orders/:orderId/deliver", s.DeliverOrder)
	v1.POST("/orders/:orderId/revision", s.RequestRevision)
	v1.POST("/orders/:orderId/release", s.ReleasePayment)
	v1.POST("/orders/:orderId/cancel", s.CancelOrder)
	v1.POST("/orders/:orderId/review", s.SubmitReview)

	v1.GET("/sellers/:sellerId/summary", s.GetSellerSummary)
	v1.GET("/sellers/:sellerId/reviews", s.GetSellerReviews)
}

// callerID extracts the authenticated user from the X-User-Id header.
func callerID(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(HeaderUserID)
	if raw == "" {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusUnauthorized, "missing "+HeaderUserID+" header")
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusUnauthorized, "invalid "+HeaderUserID+" header")
	}

	return id, nil
}

// pathUUID parses a UUID path parameter.
func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param(name))
	if err != nil {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}

	return id, nil
}
