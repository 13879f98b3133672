package queries

import (
	"context"

	"ordering/internal/core/domain/model/pricing"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

// GetArticlesQueryHandler retrieves article read models, joining each
// article with its price and tax class from the pricing registry.
type GetArticlesQueryHandler struct {
	articles ports.ArticleRepository
	registry *pricing.Registry
}

// NewGetArticlesQueryHandler creates a handler for article retrieval
// queries.
func NewGetArticlesQueryHandler(
	articles ports.ArticleRepository,
	registry *pricing.Registry,
) (GetArticlesQueryHandler, error) {
	if articles == nil {
		return GetArticlesQueryHandler{}, errs.NewValueIsRequiredError("articles")
	}
	if registry == nil {
		return GetArticlesQueryHandler{}, errs.NewValueIsRequiredError("registry")
	}
	return GetArticlesQueryHandler{
		articles: articles,
		registry: registry,
	}, nil
}

// Handle executes the query. Returns one row per article in insertion
// order, priced under the queried category.
func (h GetArticlesQueryHandler) Handle(
	ctx context.Context,
	query GetArticlesQuery,
) ([]GetArticlesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	all, err := h.articles.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	table := h.registry.Table(query.Category())
	rows := make([]GetArticlesQueryResponse, 0, len(all))
	for _, a := range all {
		rows = append(rows, GetArticlesQueryResponse{
			ID:          a.ID(),
			Description: a.Description(),
			UnitPrice:   table.UnitPrice(a),
			Currency:    table.Currency(),
			TaxRate:     table.TaxRateOf(a),
		})
	}
	return rows, nil
}
