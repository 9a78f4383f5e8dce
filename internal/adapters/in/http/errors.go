package http

import (
	"errors"
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/review"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// badRequest reports a malformed body or a rejected command constructor.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps an application error onto an HTTP status.
//
//	404 unknown order or seller
//	403 caller is the wrong party for the operation
//	409 lost race, illegal transition, or duplicate review
//	422 well-formed request the order's state cannot satisfy
func domainError(ctx echo.Context, err error) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, order.ErrActorNotPermitted):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrConcurrencyConflict),
		errors.Is(err, order.ErrInvalidStatusTransition),
		errors.Is(err, review.ErrAlreadyReviewed):
		code = http.StatusConflict
	case errors.Is(err, order.ErrRevisionQuotaExhausted),
		errors.Is(err, order.ErrNothingDelivered),
		errors.Is(err, commands.ErrOrderIsNotCompleted):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	message := err.Error()
	if code == http.StatusInternalServerError {
		// Do not leak storage details to clients.
		message = "internal error"
	}

	return ctx.JSON(code, Error{Code: code, Message: message})
}
