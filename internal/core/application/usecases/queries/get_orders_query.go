package queries

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/pricing"
	"ordering/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves all stored orders with their computed totals.
type GetOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query to retrieve all orders.
func NewGetOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// GetOrdersQueryItem represents one order line in the read model.
// Value and IncludedVAT are gross amounts in the smallest unit of the
// order's currency.
type GetOrdersQueryItem struct {
	Description string
	Quantity    int64
	UnitPrice   int64
	Value       int64
	IncludedVAT int64
	TaxRate     pricing.TaxRate
}

// GetOrdersQueryResponse represents one order in the read model with its
// computed compound totals.
type GetOrdersQueryResponse struct {
	ID           kernel.OrderID
	CustomerName string
	Currency     pricing.Currency
	Items        []GetOrdersQueryItem
	Value        int64
	IncludedVAT  int64
}
