// Package queries contains read operations for retrieving system state.
// Queries return read models shaped for display, decoupled from the
// domain aggregates.
package queries

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrGetCustomersQueryIsNotConstructed = errors.New(
	"GetCustomersQuery must be created via NewGetCustomersQuery constructor",
)

// GetCustomersQuery retrieves all registered customers.
//
// Example:
//
//	query := NewGetCustomersQuery()
//	rows, err := handler.Handle(ctx, query)
//	for _, row := range rows {
//	    fmt.Printf("%d %s\n", row.ID, row.Name)
//	}
type GetCustomersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCustomersQuery creates a query to retrieve all customers.
func NewGetCustomersQuery() GetCustomersQuery {
	return GetCustomersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCustomersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomersQueryIsNotConstructed)
}

// GetCustomersQueryResponse represents one customer in the read model.
type GetCustomersQueryResponse struct {
	ID       kernel.CustomerID
	Name     string
	Contacts []string
}
