package order

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"ordering/internal/core/domain/model/article"
	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/pricing"
	"ordering/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root tying a customer to a list of ordered items
// under one pricing table.
//
// Order follows these invariants:
//   - Identity, owning customer, pricing table and creation time are set
//     once at construction and immutable thereafter
//   - Items keep insertion order; the same article may appear in several
//     items (no merging)
//   - Item quantities are positive
//   - Can only be created through the NewOrder constructor
type Order struct {
	// id is the unique identifier allocated by the data factory
	id kernel.OrderID

	// customer owns the order (foreign-key relation)
	customer *customer.Customer

	// pricing is the table in effect for this order
	pricing *pricing.Pricing

	// createdAt is the order creation timestamp
	createdAt time.Time

	// items is the ordered list of line items
	items []Item

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// Item is a line item: an article reference plus the quantity ordered.
// Items are immutable values once added to an order.
type Item struct {
	article  *article.Article
	quantity int64
}

// Article returns the ordered article.
func (i Item) Article() *article.Article {
	return i.article
}

// Quantity returns the number of units ordered, always positive.
func (i Item) Quantity() int64 {
	return i.quantity
}

// NewOrder creates an Order bound to a customer and a pricing table at a
// creation timestamp. All parameters are validated; the caller normally is
// the data factory, which allocates the identifier and supplies the clock
// reading.
func NewOrder(id kernel.OrderID, owner *customer.Customer, table *pricing.Pricing, createdAt time.Time) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(owner),
		o.setPricing(table),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// Customer returns the owning customer.
func (o *Order) Customer() *customer.Customer {
	return o.customer
}

// Pricing returns the pricing table in effect for this order.
func (o *Order) Pricing() *pricing.Pricing {
	return o.pricing
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ItemsCount returns the number of line items.
func (o *Order) ItemsCount() int {
	return len(o.items)
}

// Items returns the line items in insertion order. The returned slice is a
// copy; mutating it does not affect the order.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// AddItem appends a line item for an article and a positive quantity.
// Adding the same article twice keeps both items.
func (o *Order) AddItem(a *article.Article, quantity int64) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	o.items = append(o.items, Item{article: a, quantity: quantity})
	return nil
}

// DeleteItem removes the i-th line item. Indices outside the valid range
// have no effect.
func (o *Order) DeleteItem(i int) {
	if i < 0 || i >= len(o.items) {
		return
	}
	o.items = append(o.items[:i], o.items[i+1:]...)
}

// DeleteItems removes the line items at the given indices. Indices are
// applied highest-first so earlier removals do not shift later ones; out of
// range indices are skipped.
func (o *Order) DeleteItems(indices []int) {
	sorted := make([]int, len(indices))
	copy(sorted, indices)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	for _, idx := range sorted {
		o.DeleteItem(idx)
	}
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(owner *customer.Customer) error {
	if err := owner.Validate(); err != nil {
		return err
	}
	o.customer = owner
	return nil
}

func (o *Order) setPricing(table *pricing.Pricing) error {
	if table == nil {
		return errs.NewValueIsRequiredError("pricing")
	}
	o.pricing = table
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if err := ValidateCreationDate(createdAt); err != nil {
		return err
	}
	o.createdAt = createdAt
	return nil
}
