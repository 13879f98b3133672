package pricing

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// Currency identifies the currency in which a pricing table quotes unit
// prices, with its three-letter code and unicode symbol.
type Currency int

const (
	// CurrencyUnknown is the zero value of an uninitialized currency.
	CurrencyUnknown Currency = iota

	// CurrencyEuro is the Euro (EUR).
	CurrencyEuro

	// CurrencySwissFranc is the Swiss franc (CHF).
	CurrencySwissFranc

	// CurrencyPoundSterling is the pound sterling (GBP).
	CurrencyPoundSterling
)

// Code returns the three-letter currency code, e.g. "EUR".
func (c Currency) Code() string {
	switch c {
	case CurrencyEuro:
		return "EUR"
	case CurrencySwissFranc:
		return "CHF"
	case CurrencyPoundSterling:
		return "GBP"
	default:
		return "???"
	}
}

// Symbol returns the unicode currency symbol, e.g. "€".
func (c Currency) Symbol() string {
	switch c {
	case CurrencyEuro:
		return "€"
	case CurrencySwissFranc:
		return "₣"
	case CurrencyPoundSterling:
		return "£"
	default:
		return "?"
	}
}

// String implements fmt.Stringer.
func (c Currency) String() string {
	return c.Code()
}

// Country identifies the country whose VAT schedule and currency a pricing
// table uses.
type Country int

const (
	// CountryUnknown is the zero value of an uninitialized country.
	CountryUnknown Country = iota

	// Germany prices in Euro.
	Germany

	// Switzerland prices in Swiss francs.
	Switzerland

	// UnitedKingdom prices in pound sterling.
	UnitedKingdom
)

// Currency returns the currency used in the country.
func (c Country) Currency() Currency {
	switch c {
	case Germany:
		return CurrencyEuro
	case Switzerland:
		return CurrencySwissFranc
	case UnitedKingdom:
		return CurrencyPoundSterling
	default:
		return CurrencyUnknown
	}
}

// String implements fmt.Stringer.
func (c Country) String() string {
	switch c {
	case Germany:
		return "Germany"
	case Switzerland:
		return "Switzerland"
	case UnitedKingdom:
		return "United Kingdom"
	default:
		return "Unknown"
	}
}

// TaxRate is the VAT treatment class attached to an article within a pricing
// category. The percentage behind a class differs per category; see
// Pricing.TaxRateAsPercent.
type TaxRate int

const (
	// TaxRegular is the regular VAT rate, e.g. 19% in Germany.
	TaxRegular TaxRate = iota

	// TaxReduced is the reduced VAT rate, e.g. 7% in Germany for books.
	TaxReduced

	// TaxSpecial is a country-specific third rate, e.g. the Swiss
	// accommodation rate.
	TaxSpecial

	// TaxExempt marks tax-free articles.
	TaxExempt
)

// taxRateCount is the size of a category's tax schedule.
const taxRateCount = 4

// ParseTaxRate parses a tax rate class from its lower-case name.
func ParseTaxRate(s string) (TaxRate, error) {
	switch s {
	case "regular":
		return TaxRegular, nil
	case "reduced":
		return TaxReduced, nil
	case "special":
		return TaxSpecial, nil
	case "exempt":
		return TaxExempt, nil
	default:
		return TaxRegular, errs.NewValueIsInvalidErrorWithCause("taxRate",
			fmt.Errorf("%q is not a tax rate class", s))
	}
}

// Validate checks that the TaxRate is one of the four known classes.
func (r TaxRate) Validate() error {
	if r < TaxRegular || r > TaxExempt {
		return errs.NewValueIsInvalidErrorWithCause("taxRate",
			fmt.Errorf("%d is not a valid tax rate class", r))
	}
	return nil
}

// String implements fmt.Stringer.
func (r TaxRate) String() string {
	switch r {
	case TaxRegular:
		return "regular"
	case TaxReduced:
		return "reduced"
	case TaxSpecial:
		return "special"
	case TaxExempt:
		return "exempt"
	default:
		return "unknown"
	}
}

// Category names a pricing configuration: a country, its currency, a VAT
// schedule, and one table of article prices. BasePricing is the canonical
// category from which the other tables derive their prices.
type Category int

const (
	// BasePricing holds the regular prices in Germany.
	BasePricing Category = iota

	// BlackFridayPricing holds discounted promotional prices in Germany.
	BlackFridayPricing

	// SwissPricing holds prices converted to Swiss francs.
	SwissPricing

	// UKPricing holds prices converted to pound sterling.
	UKPricing
)

// categoryConfig carries the per-category constants: the country, the VAT
// percentages for the four tax classes, and the multiplicative factor
// applied to base prices when deriving this category's table.
type categoryConfig struct {
	country      Country
	taxSchedule  [taxRateCount]float64
	adjustFactor float64
}

func categoryConfigs() map[Category]categoryConfig {
	return map[Category]categoryConfig{
		BasePricing:        {country: Germany, taxSchedule: [taxRateCount]float64{19, 7, 0, 0}, adjustFactor: 1.0},
		BlackFridayPricing: {country: Germany, taxSchedule: [taxRateCount]float64{19, 7, 0, 0}, adjustFactor: 0.8},
		SwissPricing:       {country: Switzerland, taxSchedule: [taxRateCount]float64{8.1, 2.6, 3.8, 0}, adjustFactor: 1.8},
		UKPricing:          {country: UnitedKingdom, taxSchedule: [taxRateCount]float64{20, 5, 0, 0}, adjustFactor: 1.15},
	}
}

// Validate checks that the Category is one of the known configurations.
func (c Category) Validate() error {
	if _, ok := categoryConfigs()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("pricingCategory",
			fmt.Errorf("%d is not a valid pricing category", c))
	}
	return nil
}

// Country returns the country configured for the category.
func (c Category) Country() Country {
	return categoryConfigs()[c].country
}

// String implements fmt.Stringer.
func (c Category) String() string {
	switch c {
	case BasePricing:
		return "BasePricing"
	case BlackFridayPricing:
		return "BlackFridayPricing"
	case SwissPricing:
		return "SwissPricing"
	case UKPricing:
		return "UKPricing"
	default:
		return "Unknown"
	}
}

// Categories returns all known categories in a stable order.
func Categories() []Category {
	return []Category{BasePricing, BlackFridayPricing, SwissPricing, UKPricing}
}
