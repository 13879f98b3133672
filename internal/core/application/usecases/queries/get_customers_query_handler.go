package queries

import (
	"context"

	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

// GetCustomersQueryHandler retrieves customer read models from the
// repository.
type GetCustomersQueryHandler struct {
	customers ports.CustomerRepository
}

// NewGetCustomersQueryHandler creates a handler for customer retrieval
// queries.
func NewGetCustomersQueryHandler(customers ports.CustomerRepository) (GetCustomersQueryHandler, error) {
	if customers == nil {
		return GetCustomersQueryHandler{}, errs.NewValueIsRequiredError("customers")
	}
	return GetCustomersQueryHandler{customers: customers}, nil
}

// Handle executes the query. Returns one row per customer in insertion
// order, with contacts flattened to their raw values.
func (h GetCustomersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomersQuery,
) ([]GetCustomersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	all, err := h.customers.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]GetCustomersQueryResponse, 0, len(all))
	for _, c := range all {
		contacts := make([]string, 0, c.ContactsCount())
		for _, contact := range c.Contacts() {
			contacts = append(contacts, contact.Value())
		}
		rows = append(rows, GetCustomersQueryResponse{
			ID:       c.ID(),
			Name:     c.Name().Full(),
			Contacts: contacts,
		})
	}
	return rows, nil
}
