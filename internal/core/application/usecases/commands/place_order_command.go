package commands

import (
	"errors"
	"strings"

	"ordering/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrCustomerSpecIsRequired = errors.New("customer spec is required")
	ErrItemsAreRequired       = errors.New("at least one item is required")
)

// OrderItemSpec names one requested order line: a quantity and an article
// specification. Both are resolved when the order is built; a line that
// does not resolve or has a non-positive quantity is skipped there.
type OrderItemSpec struct {
	Quantity    int64
	ArticleSpec string
}

// PlaceOrderCommand represents a request to build and store an order for a
// customer addressed by specification.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand("Meyer", []OrderItemSpec{
//	    {Quantity: 4, ArticleSpec: "Teller"},
//	    {Quantity: 1, ArticleSpec: "Buch 'Java'"},
//	})
//	if err != nil {
//	    return err
//	}
//	id, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	customerSpec string
	items        []OrderItemSpec

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order.
// Requires a non-blank customer specification and at least one item line.
func NewPlaceOrderCommand(customerSpec string, items []OrderItemSpec) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerSpec(customerSpec),
		cmd.setItems(items),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// CustomerSpec returns the customer specification, an id or a name fragment.
func (c PlaceOrderCommand) CustomerSpec() string {
	return c.customerSpec
}

// Items returns the requested item lines.
func (c PlaceOrderCommand) Items() []OrderItemSpec {
	items := make([]OrderItemSpec, len(c.items))
	copy(items, c.items)
	return items
}

func (c *PlaceOrderCommand) setCustomerSpec(customerSpec string) error {
	if strings.TrimSpace(customerSpec) == "" {
		return ErrCustomerSpecIsRequired
	}

	c.customerSpec = customerSpec
	return nil
}

func (c *PlaceOrderCommand) setItems(items []OrderItemSpec) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	c.items = make([]OrderItemSpec, len(items))
	copy(c.items, items)
	return nil
}
