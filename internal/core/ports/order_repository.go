package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderRepository defines the storage contract for order aggregates.
type OrderRepository interface {
	// Add stores a new order aggregate.
	// The order must be valid and carry an id not already in the store.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// GetAll retrieves all stored orders in insertion order.
	GetAll(ctx context.Context) ([]*order.Order, error)
}
