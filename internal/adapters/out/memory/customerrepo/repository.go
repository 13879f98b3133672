// Package customerrepo provides an in-memory CustomerRepository.
// Aggregates are held in insertion order and guarded by a mutex, so the
// repository is safe for concurrent use.
package customerrepo

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// Repository implements ports.CustomerRepository backed by process memory.
type Repository struct {
	mu    sync.RWMutex
	byID  map[kernel.CustomerID]*customer.Customer
	order []kernel.CustomerID
}

// NewRepository creates an empty customer repository.
func NewRepository() *Repository {
	return &Repository{
		byID: make(map[kernel.CustomerID]*customer.Customer),
	}
}

// Add stores a new customer. The aggregate must validate and its id must
// not already be present.
func (r *Repository) Add(_ context.Context, aggregate *customer.Customer) error {
	if aggregate == nil {
		return errs.NewValueIsRequiredError("customer")
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := aggregate.ID().Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[aggregate.ID()]; exists {
		return errs.NewValueIsInvalidError("customer id: " + aggregate.ID().String())
	}

	r.byID[aggregate.ID()] = aggregate
	r.order = append(r.order, aggregate.ID())
	return nil
}

// Get retrieves a customer by id.
func (r *Repository) Get(_ context.Context, id kernel.CustomerID) (*customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("customer", id.String())
	}
	return c, nil
}

// GetAll retrieves all customers in insertion order.
func (r *Repository) GetAll(_ context.Context) ([]*customer.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*customer.Customer, 0, len(r.order))
	for _, id := range r.order {
		all = append(all, r.byID[id])
	}
	return all, nil
}

// FindBySpec resolves a specification to a single customer. A numeric spec
// matches by id. A textual spec matches as a substring of the last name,
// then of the first name, first insertion wins.
func (r *Repository) FindBySpec(_ context.Context, spec string) (*customer.Customer, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, errs.NewValueIsRequiredError("customer spec")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if id, err := strconv.ParseUint(spec, 10, 64); err == nil {
		if c, ok := r.byID[kernel.CustomerID(id)]; ok {
			return c, nil
		}
		return nil, errs.NewObjectNotFoundError("customer", spec)
	}

	for _, id := range r.order {
		if strings.Contains(r.byID[id].Name().Last(), spec) {
			return r.byID[id], nil
		}
	}
	for _, id := range r.order {
		if strings.Contains(r.byID[id].Name().First(), spec) {
			return r.byID[id], nil
		}
	}
	return nil, errs.NewObjectNotFoundError("customer", spec)
}
