// Package article implements the Article aggregate: a priced catalog item
// identified by a stock-keeping code. Prices are not stored on the article;
// they live in the pricing tables, one entry per pricing category.
package article

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// ErrArticleIsNotConstructed is returned when an Article instance was not
// created through the NewArticle factory method.
var ErrArticleIsNotConstructed = errors.New("Article must be created via NewArticle constructor")

// Article represents a catalog item. It is immutable after creation; the
// identifier is a formatted stock-keeping code allocated by the data
// factory.
type Article struct {
	// id is the stock-keeping code, e.g. "SKU-458362"
	id kernel.ArticleID

	// description is a brief, non-empty article description, e.g. "Tasse"
	description string

	// isConstructed ensures the article was created via NewArticle
	isConstructed bool
}

// NewArticle creates an Article from a validated identifier and a non-empty
// description.
func NewArticle(id kernel.ArticleID, description string) (*Article, error) {
	a := &Article{
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setDescription(description),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// Validate ensures the Article instance was properly constructed through
// NewArticle.
func (a *Article) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrArticleIsNotConstructed
	}
	return nil
}

// ID returns the article's stock-keeping code.
func (a *Article) ID() kernel.ArticleID {
	return a.id
}

// Description returns the article description.
func (a *Article) Description() string {
	return a.description
}

// IsEqual compares two articles by their identifiers.
func (a *Article) IsEqual(other *Article) bool {
	return other != nil && a.id == other.id
}

func (a *Article) setID(id kernel.ArticleID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Article) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	a.description = description
	return nil
}
