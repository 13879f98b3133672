package ports

import (
	"context"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
)

// CustomerRepository defines the storage contract for customer aggregates.
// Lookups by specification support the order building workflow, where a
// customer is addressed by id or by a name fragment.
type CustomerRepository interface {
	// Add stores a new customer aggregate.
	// The customer must be valid and carry an id not already in the store.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.CustomerID) (*customer.Customer, error)

	// GetAll retrieves all stored customers in insertion order.
	GetAll(ctx context.Context) ([]*customer.Customer, error)

	// FindBySpec resolves a customer specification to a single customer.
	// A spec that parses as a number matches by id; otherwise the spec
	// matches as a substring of the last name, then of the first name.
	// The first match in insertion order wins.
	FindBySpec(ctx context.Context, spec string) (*customer.Customer, error)
}
