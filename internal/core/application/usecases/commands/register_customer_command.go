// Package commands contains business operations that modify system state.
// All commands follow a consistent pattern: constructor validation, domain
// object creation through the data factory, and repository persistence.
package commands

import (
	"errors"
	"strings"

	"ordering/internal/pkg/guard"
)

var (
	ErrRegisterCustomerCommandIsNotConstructed = errors.New(
		"RegisterCustomerCommand must be created via NewRegisterCustomerCommand constructor",
	)
	ErrNameIsRequired    = errors.New("name is required")
	ErrContactIsRequired = errors.New("contact is required")
)

// RegisterCustomerCommand represents a request to register a new customer
// from a single-string name and a contact.
//
// Example:
//
//	cmd, err := NewRegisterCustomerCommand("Meyer, Eric", "eric98@yahoo.com")
//	if err != nil {
//	    return err
//	}
//	id, err := handler.Handle(ctx, cmd)
type RegisterCustomerCommand struct { //nolint:recvcheck //using for validation
	name    string
	contact string

	guard guard.ConstructorGuard
}

// NewRegisterCustomerCommand creates a command to register a new customer.
// Requires a non-blank name and contact; the detailed name and contact
// rules are enforced by the domain layer when the command is handled.
func NewRegisterCustomerCommand(name string, contact string) (RegisterCustomerCommand, error) {
	cmd := RegisterCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setContact(contact),
	); err != nil {
		return RegisterCustomerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterCustomerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCustomerCommandIsNotConstructed)
}

// Name returns the raw single-string customer name.
func (c RegisterCustomerCommand) Name() string {
	return c.name
}

// Contact returns the raw contact, email or phone.
func (c RegisterCustomerCommand) Contact() string {
	return c.contact
}

func (c *RegisterCustomerCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *RegisterCustomerCommand) setContact(contact string) error {
	if strings.TrimSpace(contact) == "" {
		return ErrContactIsRequired
	}

	c.contact = contact
	return nil
}
