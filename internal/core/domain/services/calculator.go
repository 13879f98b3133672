package services

import (
	"math"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/pricing"
	"ordering/internal/pkg/errs"
)

// Calculator derives VAT-inclusive amounts and aggregates item and order
// totals from a pricing table. All amounts are integer minor currency
// units.
//
// Passing nil aggregates to the order-level functions is a caller bug and
// surfaces as a hard error, unlike absent-article lookups which quietly
// yield zero.
type Calculator struct{}

// NewCalculator creates a Calculator.
func NewCalculator() Calculator {
	return Calculator{}
}

// IncludedVAT computes the VAT contained within a gross amount (not added
// on top): round(gross - gross / (1 + rate/100)). Non-positive gross values
// yield 0.
//
// Example: IncludedVAT(11900, 19.0) == 1900, the 19% VAT contained in a
// 119.00 gross value on a 100.00 net value.
func (Calculator) IncludedVAT(grossValue int64, taxRatePercent float64) int64 {
	if grossValue <= 0 {
		return 0
	}
	divisor := 1 + taxRatePercent/100
	return int64(math.Round(float64(grossValue) - float64(grossValue)/divisor))
}

// OrderItemValue computes the value of a line item as unit price times
// quantity, looking the unit price up in the given pricing table.
func (c Calculator) OrderItemValue(item order.Item, table *pricing.Pricing) (int64, error) {
	if item.Article() == nil {
		return 0, errs.NewValueIsRequiredError("item")
	}
	if table == nil {
		return 0, errs.NewValueIsRequiredError("pricing")
	}
	return table.UnitPrice(item.Article()) * item.Quantity(), nil
}

// OrderItemVAT computes the VAT included in a line item's value using the
// tax percentage the pricing table configures for the article's tax class.
func (c Calculator) OrderItemVAT(item order.Item, table *pricing.Pricing) (int64, error) {
	value, err := c.OrderItemValue(item, table)
	if err != nil {
		return 0, err
	}
	return c.IncludedVAT(value, table.TaxRateAsPercent(item.Article())), nil
}

// OrderValue computes the total value of an order by summing its item
// values under the order's bound pricing table.
func (c Calculator) OrderValue(o *order.Order) (int64, error) {
	if err := o.Validate(); err != nil {
		return 0, err
	}

	var total int64
	for _, item := range o.Items() {
		value, err := c.OrderItemValue(item, o.Pricing())
		if err != nil {
			return 0, err
		}
		total += value
	}
	return total, nil
}

// OrderVAT computes the total VAT of an order by summing per-item VAT
// amounts under the order's bound pricing table.
func (c Calculator) OrderVAT(o *order.Order) (int64, error) {
	if err := o.Validate(); err != nil {
		return 0, err
	}

	var total int64
	for _, item := range o.Items() {
		vat, err := c.OrderItemVAT(item, o.Pricing())
		if err != nil {
			return 0, err
		}
		total += vat
	}
	return total, nil
}
