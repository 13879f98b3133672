package ports

import (
	"context"

	"ordering/internal/core/domain/model/article"
	"ordering/internal/core/domain/model/kernel"
)

// ArticleRepository defines the storage contract for article aggregates.
type ArticleRepository interface {
	// Add stores a new article aggregate.
	// The article must be valid and carry an id not already in the store.
	Add(ctx context.Context, aggregate *article.Article) error

	// Get retrieves an article aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.ArticleID) (*article.Article, error)

	// GetAll retrieves all stored articles in insertion order.
	GetAll(ctx context.Context) ([]*article.Article, error)

	// FindBySpec resolves an article specification to a single article.
	// An exact id match wins; otherwise the spec matches as a substring
	// of the description, first match in insertion order.
	FindBySpec(ctx context.Context, spec string) (*article.Article, error)
}
