// Package orderrepo provides an in-memory OrderRepository.
package orderrepo

import (
	"context"
	"sync"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
)

// Repository implements ports.OrderRepository backed by process memory.
type Repository struct {
	mu    sync.RWMutex
	byID  map[kernel.OrderID]*order.Order
	order []kernel.OrderID
}

// NewRepository creates an empty order repository.
func NewRepository() *Repository {
	return &Repository{
		byID: make(map[kernel.OrderID]*order.Order),
	}
}

// Add stores a new order. The aggregate must validate and its id must
// not already be present.
func (r *Repository) Add(_ context.Context, aggregate *order.Order) error {
	if aggregate == nil {
		return errs.NewValueIsRequiredError("order")
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[aggregate.ID()]; exists {
		return errs.NewValueIsInvalidError("order id: " + aggregate.ID().String())
	}

	r.byID[aggregate.ID()] = aggregate
	r.order = append(r.order, aggregate.ID())
	return nil
}

// Get retrieves an order by id.
func (r *Repository) Get(_ context.Context, id kernel.OrderID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.byID[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return o, nil
}

// GetAll retrieves all orders in insertion order.
func (r *Repository) GetAll(_ context.Context) ([]*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*order.Order, 0, len(r.order))
	for _, id := range r.order {
		all = append(all, r.byID[id])
	}
	return all, nil
}
