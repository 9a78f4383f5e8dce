package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// SubmitReview handles POST /api/v1/orders/:orderId/review. The caller is
// the buyer of the completed order.
func (s *Server) SubmitReview(ctx echo.Context) error {
	caller, err := callerID(ctx)
	if err != nil {
		return err
	}
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return err
	}

	var req SubmitReviewRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	reviewID := kernel.NewUUID()
	cmd, err := commands.NewSubmitReviewCommand(reviewID, orderID, caller, req.Rating, req.Body)
	if err != nil {
		return badRequest(ctx, "Invalid review data: "+err.Error())
	}

	if handleErr := s.submitReviewHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, SubmitReviewResponse{ReviewID: reviewID.String()})
}

// GetSellerSummary handles GET /api/v1/sellers/:sellerId/summary.
func (s *Server) GetSellerSummary(ctx echo.Context) error {
	sellerID, err := pathUUID(ctx, "sellerId")
	if err != nil {
		return err
	}

	query, err := queries.NewGetSellerSummaryQuery(sellerID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	resp, err := s.getSellerSummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, SellerSummary{
		SellerID:              resp.SellerID.String(),
		DisplayName:           resp.DisplayName,
		AvailableBalanceCents: resp.AvailableBalanceCents,
		TotalEarningsCents:    resp.TotalEarningsCents,
		ReviewCount:           resp.ReviewCount,
		AverageRating:         resp.AverageRating,
	})
}

// GetSellerReviews handles GET /api/v1/sellers/:sellerId/reviews.
func (s *Server) GetSellerReviews(ctx echo.Context) error {
	sellerID, err := pathUUID(ctx, "sellerId")
	if err != nil {
		return err
	}

	query, err := queries.NewGetSellerReviewsQuery(sellerID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	reviews, err := s.getSellerReviewsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]Review, len(reviews))
	for i, r := range reviews {
		response[i] = Review{
			ID:          r.ID.String(),
			OrderID:     r.OrderID.String(),
			OrderNumber: r.OrderNumber,
			BuyerName:   r.BuyerName,
			GigTitle:    r.GigTitle,
			PackageKind: r.PackageKind,
			Rating:      r.Rating,
			Body:        r.Body,
			CreatedAt:   r.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
