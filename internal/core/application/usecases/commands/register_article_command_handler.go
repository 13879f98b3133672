package commands

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

// RegisterArticleCommandHandler handles the business logic for article
// registration. Allocates an id, records the price in the pricing registry
// and persists the new aggregate.
type RegisterArticleCommandHandler struct {
	factory  *services.DataFactory
	articles ports.ArticleRepository
}

// NewRegisterArticleCommandHandler creates a handler for article
// registration operations.
func NewRegisterArticleCommandHandler(
	factory *services.DataFactory,
	articles ports.ArticleRepository,
) (RegisterArticleCommandHandler, error) {
	if factory == nil {
		return RegisterArticleCommandHandler{}, errs.NewValueIsRequiredError("factory")
	}
	if articles == nil {
		return RegisterArticleCommandHandler{}, errs.NewValueIsRequiredError("articles")
	}

	return RegisterArticleCommandHandler{
		factory:  factory,
		articles: articles,
	}, nil
}

// Handle processes the article registration command.
// Returns the id assigned to the new article.
func (h RegisterArticleCommandHandler) Handle(
	ctx context.Context,
	cmd RegisterArticleCommand,
) (kernel.ArticleID, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	a, err := h.factory.CreateArticle(cmd.Description(), cmd.UnitPrice(), cmd.Category(), cmd.TaxRate())
	if err != nil {
		return "", err
	}

	if err = h.articles.Add(ctx, a); err != nil {
		return "", err
	}

	return a.ID(), nil
}
