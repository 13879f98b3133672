package cmd

import (
	"ordering/internal/adapters/out/memory/articlerepo"
	"ordering/internal/adapters/out/memory/customerrepo"
	"ordering/internal/adapters/out/memory/orderrepo"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/pricing"
	"ordering/internal/core/domain/services"
)

// CompositionRoot wires the domain services, repositories and use case
// handlers from the configuration.
type CompositionRoot struct {
	category  pricing.Category
	registry  *pricing.Registry
	factory   *services.DataFactory
	customers *customerrepo.Repository
	articles  *articlerepo.Repository
	orders    *orderrepo.Repository
}

// NewCompositionRoot builds the object graph for the configured pricing
// category and id reassignment policy.
func NewCompositionRoot(config Config) (*CompositionRoot, error) {
	category, err := ParsePricingCategory(config.PricingCategory)
	if err != nil {
		return nil, err
	}
	policy, err := ParseIDReassignPolicy(config.IDReassignPolicy)
	if err != nil {
		return nil, err
	}

	registry := pricing.NewRegistry()
	factory, err := services.NewDataFactory(registry, services.WithIDReassignPolicy(policy))
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		category:  category,
		registry:  registry,
		factory:   factory,
		customers: customerrepo.NewRepository(),
		articles:  articlerepo.NewRepository(),
		orders:    orderrepo.NewRepository(),
	}, nil
}

// Category returns the pricing category orders are placed under.
func (c *CompositionRoot) Category() pricing.Category {
	return c.category
}

func (c *CompositionRoot) CreateRegisterCustomerCommandHandler() (commands.RegisterCustomerCommandHandler, error) {
	return commands.NewRegisterCustomerCommandHandler(c.factory, c.customers)
}

func (c *CompositionRoot) CreateRegisterArticleCommandHandler() (commands.RegisterArticleCommandHandler, error) {
	return commands.NewRegisterArticleCommandHandler(c.factory, c.articles)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() (commands.PlaceOrderCommandHandler, error) {
	return commands.NewPlaceOrderCommandHandler(c.factory, c.category, c.customers, c.articles, c.orders)
}

func (c *CompositionRoot) CreateGetCustomersQueryHandler() (queries.GetCustomersQueryHandler, error) {
	return queries.NewGetCustomersQueryHandler(c.customers)
}

func (c *CompositionRoot) CreateGetArticlesQueryHandler() (queries.GetArticlesQueryHandler, error) {
	return queries.NewGetArticlesQueryHandler(c.articles, c.registry)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() (queries.GetOrdersQueryHandler, error) {
	return queries.NewGetOrdersQueryHandler(c.orders)
}
