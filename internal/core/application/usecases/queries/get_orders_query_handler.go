package queries

import (
	"context"

	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

// GetOrdersQueryHandler retrieves order read models with values and
// included tax computed through the calculator.
type GetOrdersQueryHandler struct {
	orders     ports.OrderRepository
	calculator services.Calculator
}

// NewGetOrdersQueryHandler creates a handler for order retrieval queries.
func NewGetOrdersQueryHandler(orders ports.OrderRepository) (GetOrdersQueryHandler, error) {
	if orders == nil {
		return GetOrdersQueryHandler{}, errs.NewValueIsRequiredError("orders")
	}
	return GetOrdersQueryHandler{
		orders:     orders,
		calculator: services.NewCalculator(),
	}, nil
}

// Handle executes the query. Returns one row per order in insertion
// order, each carrying its lines and compound totals.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	all, err := h.orders.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]GetOrdersQueryResponse, 0, len(all))
	for _, o := range all {
		table := o.Pricing()
		row := GetOrdersQueryResponse{
			ID:           o.ID(),
			CustomerName: o.Customer().Name().Full(),
			Currency:     table.Currency(),
			Items:        make([]GetOrdersQueryItem, 0, o.ItemsCount()),
		}

		for _, item := range o.Items() {
			value, itemErr := h.calculator.OrderItemValue(item, table)
			if itemErr != nil {
				return nil, itemErr
			}
			vat, itemErr := h.calculator.OrderItemVAT(item, table)
			if itemErr != nil {
				return nil, itemErr
			}
			row.Items = append(row.Items, GetOrdersQueryItem{
				Description: item.Article().Description(),
				Quantity:    item.Quantity(),
				UnitPrice:   table.UnitPrice(item.Article()),
				Value:       value,
				IncludedVAT: vat,
				TaxRate:     table.TaxRateOf(item.Article()),
			})
			row.Value += value
			row.IncludedVAT += vat
		}

		rows = append(rows, row)
	}
	return rows, nil
}
