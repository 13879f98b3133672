package commands

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

// RegisterCustomerCommandHandler handles the business logic for customer
// registration. Parses the name, allocates an id through the data factory
// and persists the new aggregate.
type RegisterCustomerCommandHandler struct {
	factory   *services.DataFactory
	customers ports.CustomerRepository
}

// NewRegisterCustomerCommandHandler creates a handler for customer
// registration operations.
func NewRegisterCustomerCommandHandler(
	factory *services.DataFactory,
	customers ports.CustomerRepository,
) (RegisterCustomerCommandHandler, error) {
	if factory == nil {
		return RegisterCustomerCommandHandler{}, errs.NewValueIsRequiredError("factory")
	}
	if customers == nil {
		return RegisterCustomerCommandHandler{}, errs.NewValueIsRequiredError("customers")
	}

	return RegisterCustomerCommandHandler{
		factory:   factory,
		customers: customers,
	}, nil
}

// Handle processes the customer registration command.
// Returns the id assigned to the new customer.
func (h RegisterCustomerCommandHandler) Handle(
	ctx context.Context,
	cmd RegisterCustomerCommand,
) (kernel.CustomerID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	c, err := h.factory.CreateCustomer(cmd.Name(), cmd.Contact())
	if err != nil {
		return 0, err
	}

	if err = h.customers.Add(ctx, c); err != nil {
		return 0, err
	}

	return c.ID(), nil
}
