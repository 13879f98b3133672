package commands

import (
	"errors"
	"strings"

	"ordering/internal/core/domain/model/pricing"
	"ordering/internal/pkg/guard"
)

var (
	ErrRegisterArticleCommandIsNotConstructed = errors.New(
		"RegisterArticleCommand must be created via NewRegisterArticleCommand constructor",
	)
	ErrDescriptionIsRequired = errors.New("description is required")
	ErrUnitPriceIsInvalid    = errors.New("unit price must not be negative")
)

// RegisterArticleCommand represents a request to register a new article
// with a unit price in a pricing category.
//
// Example:
//
//	cmd, err := NewRegisterArticleCommand("Teller", 649, pricing.BasePricing, pricing.TaxRegular)
//	if err != nil {
//	    return err
//	}
//	id, err := handler.Handle(ctx, cmd)
type RegisterArticleCommand struct { //nolint:recvcheck //using for validation
	description string
	unitPrice   int64
	category    pricing.Category
	taxRate     pricing.TaxRate

	guard guard.ConstructorGuard
}

// NewRegisterArticleCommand creates a command to register a new article.
// The unit price is in the smallest currency unit of the category and must
// not be negative.
func NewRegisterArticleCommand(
	description string,
	unitPrice int64,
	category pricing.Category,
	taxRate pricing.TaxRate,
) (RegisterArticleCommand, error) {
	cmd := RegisterArticleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDescription(description),
		cmd.setUnitPrice(unitPrice),
		cmd.setCategory(category),
		cmd.setTaxRate(taxRate),
	); err != nil {
		return RegisterArticleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterArticleCommand) Validate() error {
	return c.guard.Validate(ErrRegisterArticleCommandIsNotConstructed)
}

// Description returns the article description.
func (c RegisterArticleCommand) Description() string {
	return c.description
}

// UnitPrice returns the unit price in the smallest currency unit.
func (c RegisterArticleCommand) UnitPrice() int64 {
	return c.unitPrice
}

// Category returns the pricing category the price is registered under.
func (c RegisterArticleCommand) Category() pricing.Category {
	return c.category
}

// TaxRate returns the tax class applied to the article.
func (c RegisterArticleCommand) TaxRate() pricing.TaxRate {
	return c.taxRate
}

func (c *RegisterArticleCommand) setDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return ErrDescriptionIsRequired
	}

	c.description = description
	return nil
}

func (c *RegisterArticleCommand) setUnitPrice(unitPrice int64) error {
	if unitPrice < 0 {
		return ErrUnitPriceIsInvalid
	}

	c.unitPrice = unitPrice
	return nil
}

func (c *RegisterArticleCommand) setCategory(category pricing.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	c.category = category
	return nil
}

func (c *RegisterArticleCommand) setTaxRate(taxRate pricing.TaxRate) error {
	if err := taxRate.Validate(); err != nil {
		return err
	}

	c.taxRate = taxRate
	return nil
}
