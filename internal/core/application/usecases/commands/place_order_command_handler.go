package commands

import (
	"context"

	"ordering/internal/core/domain/model/article"
	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/pricing"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

// PlaceOrderCommandHandler handles the business logic for placing orders.
// Resolves the customer and articles through the repositories, builds the
// order complete-or-nothing and persists it.
type PlaceOrderCommandHandler struct {
	factory   *services.DataFactory
	category  pricing.Category
	customers ports.CustomerRepository
	articles  ports.ArticleRepository
	orders    ports.OrderRepository
}

// NewPlaceOrderCommandHandler creates a handler that places orders under
// the given pricing category.
func NewPlaceOrderCommandHandler(
	factory *services.DataFactory,
	category pricing.Category,
	customers ports.CustomerRepository,
	articles ports.ArticleRepository,
	orders ports.OrderRepository,
) (PlaceOrderCommandHandler, error) {
	if factory == nil {
		return PlaceOrderCommandHandler{}, errs.NewValueIsRequiredError("factory")
	}
	if err := category.Validate(); err != nil {
		return PlaceOrderCommandHandler{}, err
	}
	if customers == nil {
		return PlaceOrderCommandHandler{}, errs.NewValueIsRequiredError("customers")
	}
	if articles == nil {
		return PlaceOrderCommandHandler{}, errs.NewValueIsRequiredError("articles")
	}
	if orders == nil {
		return PlaceOrderCommandHandler{}, errs.NewValueIsRequiredError("orders")
	}

	return PlaceOrderCommandHandler{
		factory:   factory,
		category:  category,
		customers: customers,
		articles:  articles,
		orders:    orders,
	}, nil
}

// Handle processes the order placement command.
// A command whose customer cannot be resolved, or whose item lines all
// fail to resolve, yields an error and no stored order.
// Returns the id assigned to the new order.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (kernel.OrderID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	findCustomer := func(spec string) (*customer.Customer, bool) {
		c, err := h.customers.FindBySpec(ctx, spec)
		return c, err == nil
	}
	findArticle := func(spec string) (*article.Article, bool) {
		a, err := h.articles.FindBySpec(ctx, spec)
		return a, err == nil
	}

	builder, err := services.NewOrderBuilder(h.factory, h.category, findCustomer, findArticle)
	if err != nil {
		return 0, err
	}

	o, err := builder.BuildOrder(cmd.CustomerSpec(), func(state *services.BuildState) {
		for _, item := range cmd.Items() {
			state.Item(item.Quantity, item.ArticleSpec)
		}
	})
	if err != nil {
		return 0, err
	}

	if err = h.orders.Add(ctx, o); err != nil {
		return 0, err
	}

	return o.ID(), nil
}
