package services

import (
	"errors"

	"ordering/internal/core/domain/model/article"
	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/pricing"
	"ordering/internal/pkg/errs"
)

var (
	// ErrCustomerUnresolved is returned when the customer specification
	// resolves no customer and the build never leaves its initial step.
	ErrCustomerUnresolved = errors.New("customer spec resolved no customer")

	// ErrOrderShellNotCreated is returned when the order shell could not be
	// created for the resolved customer.
	ErrOrderShellNotCreated = errors.New("order shell was not created")

	// ErrNoItemsAdded is returned when the population callback added no
	// items, e.g. every article spec was unresolvable or every quantity was
	// non-positive.
	ErrNoItemsAdded = errors.New("no items were added to the order")
)

// CustomerLookup resolves a customer specification (numeric id, last-name
// substring, or first-name substring) against a caller-owned collection.
// Lookups must be deterministic and side-effect-free.
type CustomerLookup func(spec string) (*customer.Customer, bool)

// ArticleLookup resolves an article specification (exact id or description
// substring) against a caller-owned collection. Lookups must be
// deterministic and side-effect-free.
type ArticleLookup func(spec string) (*article.Article, bool)

// BuildStep is the state of an order build. Steps advance strictly in order
// and only when the step's precondition is met; a failed precondition leaves
// the step unchanged and the overall build yields no order.
type BuildStep int

const (
	// StepInitial is the state before the customer has been resolved.
	StepInitial BuildStep = iota

	// StepCustomerResolved is reached when the customer lookup succeeded.
	StepCustomerResolved

	// StepOrderCreated is reached when the order shell exists.
	StepOrderCreated

	// StepCompleted is the terminal state: the order holds at least one item.
	StepCompleted
)

// String implements fmt.Stringer.
func (s BuildStep) String() string {
	switch s {
	case StepInitial:
		return "Initial"
	case StepCustomerResolved:
		return "CustomerResolved"
	case StepOrderCreated:
		return "OrderCreated"
	case StepCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// OrderBuilder turns a customer specification and a sequence of
// (quantity, article-spec) pairs into a fully populated Order, or fails
// cleanly. The build is complete-or-nothing: a partially built order is
// never observable by the caller.
//
// Example:
//
//	builder, _ := services.NewOrderBuilder(factory, pricing.BasePricing, findCustomer, findArticle)
//	o, err := builder.BuildOrder("Meyer", func(state *services.BuildState) {
//	    state.Item(4, "Teller").Item(1, "Buch 'Java'")
//	})
type OrderBuilder struct {
	factory   *DataFactory
	category  pricing.Category
	customers CustomerLookup
	articles  ArticleLookup
}

// NewOrderBuilder creates a builder bound to a pricing category and the
// caller-supplied lookup functions.
func NewOrderBuilder(
	factory *DataFactory,
	category pricing.Category,
	customers CustomerLookup,
	articles ArticleLookup,
) (*OrderBuilder, error) {
	if factory == nil {
		return nil, errs.NewValueIsRequiredError("factory")
	}
	if err := category.Validate(); err != nil {
		return nil, err
	}
	if customers == nil {
		return nil, errs.NewValueIsRequiredError("customer lookup")
	}
	if articles == nil {
		return nil, errs.NewValueIsRequiredError("article lookup")
	}

	return &OrderBuilder{
		factory:   factory,
		category:  category,
		customers: customers,
		articles:  articles,
	}, nil
}

// Category returns the pricing category the builder creates orders under.
func (b *OrderBuilder) Category() pricing.Category {
	return b.category
}

// BuildState holds the interim state of a partially built order while the
// build steps run. It is handed to the population callback so the caller
// can add items.
type BuildState struct {
	builder  *OrderBuilder
	step     BuildStep
	customer *customer.Customer
	order    *order.Order
}

// Step returns the current build step.
func (s *BuildState) Step() BuildStep {
	return s.step
}

// Item resolves an article specification and appends a line item as part of
// the final build step. The item is appended only when the article resolves
// and the quantity is positive; otherwise the call has no effect. Returns
// the state for chaining.
func (s *BuildState) Item(quantity int64, articleSpec string) *BuildState {
	if s.step != StepOrderCreated {
		return s
	}

	a, ok := s.builder.articles(articleSpec)
	if ok && a != nil && quantity > 0 {
		_ = s.order.AddItem(a, quantity)
	}
	return s
}

// fetchCustomer is build step 1: resolve the customer specification.
func (s *BuildState) fetchCustomer(customerSpec string) {
	if s.step != StepInitial {
		return
	}

	c, ok := s.builder.customers(customerSpec)
	if ok && c != nil {
		s.customer = c
		s.step = StepCustomerResolved
	}
}

// createOrder is build step 2: create the order shell.
func (s *BuildState) createOrder() {
	if s.step != StepCustomerResolved {
		return
	}

	o, err := s.builder.factory.CreateOrder(s.builder.category, s.customer, nil)
	if err == nil {
		s.order = o
		s.step = StepOrderCreated
	}
}

// supplyItems is build step 3: let the caller add items; the build
// completes only when at least one item was appended.
func (s *BuildState) supplyItems(populate func(*BuildState)) {
	if s.step != StepOrderCreated {
		return
	}

	if populate != nil {
		populate(s)
	}
	if s.order.ItemsCount() > 0 {
		s.step = StepCompleted
	}
}

// BuildOrder runs the four-step build: resolve the customer, create the
// order shell, and populate items through the callback. It returns the
// fully built order, or an error naming the step whose precondition failed.
// An order stuck below the terminal step is discarded, never returned.
func (b *OrderBuilder) BuildOrder(customerSpec string, populate func(*BuildState)) (*order.Order, error) {
	state := &BuildState{builder: b}

	state.fetchCustomer(customerSpec)
	state.createOrder()
	state.supplyItems(populate)

	switch state.step {
	case StepCompleted:
		return state.order, nil
	case StepOrderCreated:
		return nil, ErrNoItemsAdded
	case StepCustomerResolved:
		return nil, ErrOrderShellNotCreated
	default:
		return nil, ErrCustomerUnresolved
	}
}
