package customer

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
)

var (
	// ErrCustomerIsNotConstructed is returned when a Customer instance was not
	// created through the NewCustomer factory method.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

	// ErrIDAlreadyAssigned is returned by AssignID under the reject policy
	// when the identifier was already set. Assigning an identifier twice is a
	// caller bug, not bad external input.
	ErrIDAlreadyAssigned = errors.New("customer id was already assigned")
)

// IDReassignPolicy controls what happens when AssignID is called on a
// customer whose identifier is already set.
type IDReassignPolicy int

const (
	// IDReassignReject surfaces ErrIDAlreadyAssigned on a second assignment.
	// This is the default policy.
	IDReassignReject IDReassignPolicy = iota

	// IDReassignIgnore makes a second assignment a silent no-op.
	IDReassignIgnore
)

// Customer is an aggregate root representing a person who creates and owns
// orders.
//
// Customer follows these invariants:
//   - The identifier is assigned at most once (see IDReassignPolicy)
//   - The last name is never empty; the first name may be
//   - Contacts keep insertion order; duplicates are silently ignored
//   - Can only be created through the NewCustomer constructor
type Customer struct {
	// id is the unique identifier, zero until assigned
	id kernel.CustomerID

	// name holds the validated first/last name parts
	name kernel.Name

	// contacts is the ordered list of validated contact strings
	contacts []kernel.Contact

	// idPolicy decides how a second AssignID call is handled
	idPolicy IDReassignPolicy

	// isConstructed ensures the customer was created via NewCustomer
	isConstructed bool
}

// Option configures a Customer during construction.
type Option func(*Customer)

// WithIDReassignPolicy selects how a second identifier assignment is
// handled. Without this option the reject policy applies.
func WithIDReassignPolicy(policy IDReassignPolicy) Option {
	return func(c *Customer) {
		c.idPolicy = policy
	}
}

// NewCustomer creates a Customer with a validated name and no identifier.
// The identifier is assigned separately through AssignID, normally by the
// data factory which owns the identifier pool.
func NewCustomer(name kernel.Name, opts ...Option) (*Customer, error) {
	if err := name.Validate(); err != nil {
		return nil, err
	}

	customer := &Customer{
		name:          name,
		isConstructed: true,
	}
	for _, opt := range opts {
		opt(customer)
	}

	return customer, nil
}

// Validate ensures the Customer instance was properly constructed through
// NewCustomer.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// AssignID sets the customer's identifier exactly once. A second call is
// either a hard failure or a silent no-op depending on the configured
// IDReassignPolicy. An invalid identifier is always rejected.
func (c *Customer) AssignID(id kernel.CustomerID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if c.id != 0 {
		if c.idPolicy == IDReassignIgnore {
			return nil
		}
		return ErrIDAlreadyAssigned
	}

	c.id = id
	return nil
}

// ID returns the assigned identifier, zero when unassigned.
func (c *Customer) ID() kernel.CustomerID {
	return c.id
}

// Name returns the customer's validated name.
func (c *Customer) Name() kernel.Name {
	return c.name
}

// ContactsCount returns the number of stored contacts.
func (c *Customer) ContactsCount() int {
	return len(c.contacts)
}

// Contacts returns the contacts in insertion order. The returned slice is a
// copy; mutating it does not affect the customer.
func (c *Customer) Contacts() []kernel.Contact {
	contacts := make([]kernel.Contact, len(c.contacts))
	copy(contacts, c.contacts)
	return contacts
}

// AddContact appends a validated contact. Adding a contact that is already
// present leaves the list unchanged.
func (c *Customer) AddContact(contact kernel.Contact) error {
	if err := contact.Validate(); err != nil {
		return err
	}

	for _, existing := range c.contacts {
		if existing.IsEqual(contact) {
			return nil
		}
	}

	c.contacts = append(c.contacts, contact)
	return nil
}

// DeleteContact removes the i-th contact. Indices outside the valid range
// have no effect.
func (c *Customer) DeleteContact(i int) {
	if i < 0 || i >= len(c.contacts) {
		return
	}
	c.contacts = append(c.contacts[:i], c.contacts[i+1:]...)
}

// DeleteAllContacts removes every contact.
func (c *Customer) DeleteAllContacts() {
	c.contacts = nil
}

// IsEqual compares two customers by their identifiers.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id != 0 && c.id == other.id
}
