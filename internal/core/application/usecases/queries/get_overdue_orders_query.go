package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetOverdueOrdersQueryIsNotConstructed = errors.New(
	"GetOverdueOrdersQuery must be created via NewGetOverdueOrdersQuery constructor",
)

// GetOverdueOrdersQuery finds in-progress orders past their expected delivery
// date. The background job runs it on a schedule to nudge sellers.
type GetOverdueOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOverdueOrdersQuery creates a query for overdue orders.
// This is a parameterless query; "overdue" is measured against the database
// clock when the query runs.
func NewGetOverdueOrdersQuery() GetOverdueOrdersQuery {
	return GetOverdueOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOverdueOrdersQueryIsNotConstructed if validation fails.
func (q GetOverdueOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueOrdersQueryIsNotConstructed)
}

// GetOverdueOrdersQueryResponse identifies one overdue order and its parties.
type GetOverdueOrdersQueryResponse struct {
	ID                 kernel.UUID
	OrderNumber        string
	BuyerID            kernel.UUID
	SellerID           kernel.UUID
	ExpectedDeliveryAt time.Time
}
