package services

import (
	"fmt"
	"math/rand/v2"

	"ordering/internal/core/domain/model/article"
	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/pricing"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/idpool"

	"github.com/zoobzio/clockz"
)

// Seed identifiers served before the pools fall back to random generation.
// Fixed seeds keep demo data and test fixtures reproducible across runs.
func customerIDSeed() []kernel.CustomerID {
	return []kernel.CustomerID{892474, 643270, 286516, 412396, 456454, 651286}
}

func articleIDSeed() []kernel.ArticleID {
	return []kernel.ArticleID{
		"SKU-458362", "SKU-693856", "SKU-518957", "SKU-638035", "SKU-278530",
		"SKU-425378", "SKU-300926", "SKU-663942", "SKU-583978",
	}
}

func orderIDSeed() []kernel.OrderID {
	return []kernel.OrderID{
		8592356245, 3563561357, 5234968294, 6135735635, 6173043537,
		7372561535, 4450305661,
	}
}

// DataFactory constructs validated Customer, Article and Order aggregates.
// It owns the identifier pools of all three entity kinds and the pricing
// registry that article prices are registered into.
//
// The factory is constructed explicitly and passed to collaborators; there
// is no ambient singleton. It is not safe for concurrent use.
type DataFactory struct {
	registry *pricing.Registry
	clock    clockz.Clock
	idPolicy customer.IDReassignPolicy

	customerIDs *idpool.Pool[kernel.CustomerID]
	articleIDs  *idpool.Pool[kernel.ArticleID]
	orderIDs    *idpool.Pool[kernel.OrderID]
}

// FactoryOption configures a DataFactory during construction.
type FactoryOption func(*DataFactory)

// WithClock injects the clock used for order creation timestamps. Without
// this option the real clock applies; tests pass a fake clock.
func WithClock(clock clockz.Clock) FactoryOption {
	return func(f *DataFactory) {
		f.clock = clock
	}
}

// WithIDReassignPolicy selects the customer identifier reassignment policy
// applied to every customer the factory creates.
func WithIDReassignPolicy(policy customer.IDReassignPolicy) FactoryOption {
	return func(f *DataFactory) {
		f.idPolicy = policy
	}
}

// NewDataFactory creates a factory bound to a pricing registry.
func NewDataFactory(registry *pricing.Registry, opts ...FactoryOption) (*DataFactory, error) {
	if registry == nil {
		return nil, errs.NewValueIsRequiredError("registry")
	}

	f := &DataFactory{
		registry: registry,
		clock:    clockz.RealClock,
		customerIDs: idpool.New(func() kernel.CustomerID {
			return kernel.CustomerID(100000 + rand.Uint64N(900000)) //nolint:gosec // ids are not secrets
		}, customerIDSeed()),
		articleIDs: idpool.New(func() kernel.ArticleID {
			return kernel.ArticleID(fmt.Sprintf("SKU-%06d", 100000+rand.IntN(900000))) //nolint:gosec // ids are not secrets
		}, articleIDSeed()),
		orderIDs: idpool.New(func() kernel.OrderID {
			return kernel.OrderID(1000000000 + rand.Uint64N(9000000000)) //nolint:gosec // ids are not secrets
		}, orderIDSeed()),
	}
	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

// Registry returns the pricing registry the factory registers articles into.
func (f *DataFactory) Registry() *pricing.Registry {
	return f.registry
}

// CreateCustomer builds a Customer from a raw single-string name and one
// initial contact. Validation failure of either argument yields no object;
// the caller treats the error as "skip", not as a fatal condition.
//
// The customer identifier is allocated from the pool once the name has
// validated. A contact that fails validation afterwards discards the
// customer but not the identifier, matching the reproducible id sequence of
// the demo fixtures.
func (f *DataFactory) CreateCustomer(name string, contact string) (*customer.Customer, error) {
	parsed, err := kernel.ParseName(name)
	if err != nil {
		return nil, err
	}

	id := f.customerIDs.Next()

	validContact, err := kernel.NewContact(contact)
	if err != nil {
		return nil, err
	}

	c, err := customer.NewCustomer(parsed, customer.WithIDReassignPolicy(f.idPolicy))
	if err != nil {
		return nil, err
	}
	if err := c.AssignID(id); err != nil {
		return nil, err
	}
	if err := c.AddContact(validContact); err != nil {
		return nil, err
	}

	return c, nil
}

// CreateArticle builds an Article from a validated description and registers
// its unit price and tax class in the chosen category's pricing table.
// Registration into the base category derives entries in every other
// category. The tax rate defaults to the regular class when omitted.
func (f *DataFactory) CreateArticle(
	description string,
	unitPrice int64,
	category pricing.Category,
	taxRate ...pricing.TaxRate,
) (*article.Article, error) {
	rate := pricing.TaxRegular
	if len(taxRate) > 0 {
		rate = taxRate[0]
	}

	if description == "" {
		return nil, errs.NewValueIsRequiredError("description")
	}
	if err := category.Validate(); err != nil {
		return nil, err
	}
	if err := rate.Validate(); err != nil {
		return nil, err
	}
	if unitPrice < 0 {
		return nil, errs.NewValueIsOutOfRangeError("unitPrice", unitPrice, 0, "unbounded")
	}

	a, err := article.NewArticle(f.articleIDs.Next(), description)
	if err != nil {
		return nil, err
	}
	if err := f.registry.Put(category, a, unitPrice, rate); err != nil {
		return nil, err
	}

	return a, nil
}

// CreateOrder builds an order shell for a customer under a category's
// pricing table, stamped with the factory clock's current time, and invokes
// the optional populate callback to let the caller add items. An absent
// customer yields no order.
func (f *DataFactory) CreateOrder(
	category pricing.Category,
	owner *customer.Customer,
	populate func(*order.Order),
) (*order.Order, error) {
	if err := category.Validate(); err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, errs.NewValueIsRequiredError("customer")
	}

	o, err := order.NewOrder(f.orderIDs.Next(), owner, f.registry.Table(category), f.clock.Now())
	if err != nil {
		return nil, err
	}

	if populate != nil {
		populate(o)
	}

	return o, nil
}
