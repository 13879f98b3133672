// Package pricing implements per-category price tables and the price
// derivation rules of the ordering domain.
//
// One Pricing table exists per Category. Articles registered into the
// canonical base category automatically receive derived entries in every
// other category, adjusted by a per-category factor and normalized to a
// trailing 5 or 9 ("psychological pricing"). Unit prices are integer minor
// currency units (cents) throughout.
package pricing

import (
	"sync"

	"ordering/internal/core/domain/model/article"
	"ordering/internal/core/domain/model/kernel"
)

// priceRecord is the table entry stored per article.
type priceRecord struct {
	unitPrice int64
	taxRate   TaxRate
}

// Pricing maps articles to unit prices and tax classes for one category.
//
// Tables are read-mostly: writes occur only during article registration.
// Registration and lookups are guarded by a mutex so tables may be shared
// once built.
type Pricing struct {
	category Category
	country  Country
	currency Currency

	// taxSchedule holds the VAT percentages for the regular, reduced,
	// special and exempt classes in this category.
	taxSchedule [taxRateCount]float64

	mu     sync.RWMutex
	prices map[kernel.ArticleID]priceRecord
}

// newPricing creates the empty table for a category. Only the Registry
// creates tables so every category exists exactly once per registry.
func newPricing(category Category) *Pricing {
	cfg := categoryConfigs()[category]
	return &Pricing{
		category:    category,
		country:     cfg.country,
		currency:    cfg.country.Currency(),
		taxSchedule: cfg.taxSchedule,
		prices:      make(map[kernel.ArticleID]priceRecord),
	}
}

// Category returns the category this table belongs to.
func (p *Pricing) Category() Category {
	return p.category
}

// Country returns the country configured for this table.
func (p *Pricing) Country() Country {
	return p.country
}

// Currency returns the currency unit prices are quoted in.
func (p *Pricing) Currency() Currency {
	return p.currency
}

// UnitPrice returns the unit price of an article in minor currency units,
// or 0 when the article is absent from the table. Lookups never fail.
func (p *Pricing) UnitPrice(a *article.Article) int64 {
	if a == nil {
		return 0
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.prices[a.ID()].unitPrice
}

// TaxRateOf returns the tax class of an article, or TaxRegular when the
// article is absent from the table. Lookups never fail.
func (p *Pricing) TaxRateOf(a *article.Article) TaxRate {
	if a == nil {
		return TaxRegular
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	if record, ok := p.prices[a.ID()]; ok {
		return record.taxRate
	}
	return TaxRegular
}

// TaxRateAsPercent maps an article's tax class through this category's VAT
// schedule, e.g. 19.0 for the regular class under BasePricing and 8.1 for
// the same class under SwissPricing.
func (p *Pricing) TaxRateAsPercent(a *article.Article) float64 {
	rate := p.TaxRateOf(a)
	if rate < TaxRegular || rate > TaxExempt {
		return 0
	}
	return p.taxSchedule[rate]
}

// ArticlesCount returns the number of registered articles.
func (p *Pricing) ArticlesCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return len(p.prices)
}

// put stores or updates the entry for one article in this table only.
func (p *Pricing) put(id kernel.ArticleID, unitPrice int64, taxRate TaxRate) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.prices[id] = priceRecord{unitPrice: unitPrice, taxRate: taxRate}
}
