package queries

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/pricing"
	"ordering/internal/pkg/guard"
)

var ErrGetArticlesQueryIsNotConstructed = errors.New(
	"GetArticlesQuery must be created via NewGetArticlesQuery constructor",
)

// GetArticlesQuery retrieves all registered articles priced under one
// pricing category.
type GetArticlesQuery struct { //nolint:recvcheck //using for validation
	category pricing.Category

	guard guard.ConstructorGuard
}

// NewGetArticlesQuery creates a query to retrieve all articles with their
// prices in the given category.
func NewGetArticlesQuery(category pricing.Category) (GetArticlesQuery, error) {
	if err := category.Validate(); err != nil {
		return GetArticlesQuery{}, err
	}
	return GetArticlesQuery{
		category: category,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetArticlesQuery) Validate() error {
	return q.guard.Validate(ErrGetArticlesQueryIsNotConstructed)
}

// Category returns the pricing category prices are read from.
func (q GetArticlesQuery) Category() pricing.Category {
	return q.category
}

// GetArticlesQueryResponse represents one article in the read model.
// UnitPrice is in the smallest unit of Currency; a zero price means the
// article carries no price in the queried category.
type GetArticlesQueryResponse struct {
	ID          kernel.ArticleID
	Description string
	UnitPrice   int64
	Currency    pricing.Currency
	TaxRate     pricing.TaxRate
}
