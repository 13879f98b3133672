package cmd

import (
	"strings"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/pricing"
	"ordering/internal/pkg/errs"
)

// Config carries the runtime settings of the application.
type Config struct {
	PricingCategory  string
	IDReassignPolicy string
	LogLevel         string
}

// ParsePricingCategory maps the configured category name to a pricing
// category. An empty value selects base pricing.
func ParsePricingCategory(raw string) (pricing.Category, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "base":
		return pricing.BasePricing, nil
	case "blackfriday", "black_friday":
		return pricing.BlackFridayPricing, nil
	case "swiss":
		return pricing.SwissPricing, nil
	case "uk":
		return pricing.UKPricing, nil
	default:
		return pricing.BasePricing, errs.NewValueIsInvalidError("pricing category: " + raw)
	}
}

// ParseIDReassignPolicy maps the configured policy name to a customer id
// reassignment policy. An empty value selects the rejecting policy.
func ParseIDReassignPolicy(raw string) (customer.IDReassignPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "reject":
		return customer.IDReassignReject, nil
	case "ignore":
		return customer.IDReassignIgnore, nil
	default:
		return customer.IDReassignReject, errs.NewValueIsInvalidError("id reassign policy: " + raw)
	}
}
