// Package articlerepo provides an in-memory ArticleRepository.
package articlerepo

import (
	"context"
	"strings"
	"sync"

	"ordering/internal/core/domain/model/article"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// Repository implements ports.ArticleRepository backed by process memory.
type Repository struct {
	mu    sync.RWMutex
	byID  map[kernel.ArticleID]*article.Article
	order []kernel.ArticleID
}

// NewRepository creates an empty article repository.
func NewRepository() *Repository {
	return &Repository{
		byID: make(map[kernel.ArticleID]*article.Article),
	}
}

// Add stores a new article. The aggregate must validate and its id must
// not already be present.
func (r *Repository) Add(_ context.Context, aggregate *article.Article) error {
	if aggregate == nil {
		return errs.NewValueIsRequiredError("article")
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[aggregate.ID()]; exists {
		return errs.NewValueIsInvalidError("article id: " + aggregate.ID().String())
	}

	r.byID[aggregate.ID()] = aggregate
	r.order = append(r.order, aggregate.ID())
	return nil
}

// Get retrieves an article by id.
func (r *Repository) Get(_ context.Context, id kernel.ArticleID) (*article.Article, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("article", id.String())
	}
	return a, nil
}

// GetAll retrieves all articles in insertion order.
func (r *Repository) GetAll(_ context.Context) ([]*article.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*article.Article, 0, len(r.order))
	for _, id := range r.order {
		all = append(all, r.byID[id])
	}
	return all, nil
}

// FindBySpec resolves a specification to a single article. An exact id
// match wins; otherwise the spec matches as a substring of the
// description, first insertion wins.
func (r *Repository) FindBySpec(_ context.Context, spec string) (*article.Article, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, errs.NewValueIsRequiredError("article spec")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if a, ok := r.byID[kernel.ArticleID(spec)]; ok {
		return a, nil
	}
	for _, id := range r.order {
		if strings.Contains(r.byID[id].Description(), spec) {
			return r.byID[id], nil
		}
	}
	return nil, errs.NewObjectNotFoundError("article", spec)
}
