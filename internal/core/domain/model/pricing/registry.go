package pricing

import (
	"math"

	"ordering/internal/core/domain/model/article"
	"ordering/internal/pkg/errs"
)

// Registry owns the pricing table of every category. It is constructed
// explicitly and passed to collaborators instead of living as ambient global
// state, so isolated test fixtures get their own tables.
type Registry struct {
	tables map[Category]*Pricing
}

// NewRegistry creates one empty table per known category.
func NewRegistry() *Registry {
	tables := make(map[Category]*Pricing, len(Categories()))
	for _, category := range Categories() {
		tables[category] = newPricing(category)
	}
	return &Registry{tables: tables}
}

// Table returns the pricing table of a category, or nil for an unknown
// category.
func (r *Registry) Table(category Category) *Pricing {
	return r.tables[category]
}

// Put registers an article's unit price and tax class in a category's table.
//
// Registration into the base category additionally derives and stores
// adjusted prices in every other category, applying the category's factor
// (discount or currency conversion) and the trailing-digit normalization of
// AdjustPrice. The tax class carries over unchanged. Registration into a
// non-base category writes only that category's table.
func (r *Registry) Put(category Category, a *article.Article, unitPrice int64, taxRate TaxRate) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if err := category.Validate(); err != nil {
		return err
	}
	if err := taxRate.Validate(); err != nil {
		return err
	}
	if unitPrice < 0 {
		return errs.NewValueIsOutOfRangeError("unitPrice", unitPrice, 0, int64(math.MaxInt64))
	}

	if category != BasePricing {
		r.tables[category].put(a.ID(), unitPrice, taxRate)
		return nil
	}

	for derived, cfg := range categoryConfigs() {
		price := unitPrice
		if derived != BasePricing {
			price = AdjustPrice(unitPrice, cfg.adjustFactor)
		}
		r.tables[derived].put(a.ID(), price, taxRate)
	}
	return nil
}

// AdjustPrice applies a multiplicative factor (discount or currency
// exchange rate) to a price in minor units and normalizes the result to a
// trailing 5 or 9: the factored price is truncated, rounded down to the
// nearest multiple of ten, and 5 is appended when the truncated price ended
// in a digit <= 5 and was at least 20 minor units, otherwise 9. Prices below
// 20 therefore always end in 9.
//
// Example: 2497 * 1.0 -> 2499; 649 * 0.8 -> 519.
func AdjustPrice(price int64, factor float64) int64 {
	adjusted := int64(float64(price) * factor)
	base := (adjusted / 10) * 10
	digit := int64(9)
	if adjusted%10 <= 5 && adjusted >= 20 {
		digit = 5
	}
	return base + digit
}
