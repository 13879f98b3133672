package kernel

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrContactIsNotConstructed indicates that a Contact was not created through
// NewContact.
var ErrContactIsNotConstructed = errs.NewValueIsRequiredError(
	"contact must be created via NewContact constructor")

// contactMinLength is the minimum length of a contact after trimming.
const contactMinLength = 6

var (
	// emailPattern accepts "local@domain.tld" shaped addresses.
	emailPattern = regexp.MustCompile(`(?i)^[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z0-9_]+$`)

	// phonePattern accepts phone and fax numbers with an optional "phone:",
	// "fax:" or "+<digits>" prefix followed by digits, spaces, parentheses
	// and hyphens.
	phonePattern = regexp.MustCompile(`(?i)^(phone:|fax:|\+[0-9]+)?\s*[\s0-9()][\s0-9()\-]*$`)
)

// ContactKind classifies an accepted contact string.
type ContactKind int

const (
	// ContactUnknown is the zero value of an unconstructed contact.
	ContactUnknown ContactKind = iota

	// ContactEmail marks contacts accepted by the email pattern.
	ContactEmail

	// ContactPhone marks contacts accepted by the phone/fax pattern.
	ContactPhone
)

// String returns the human-readable kind name.
func (k ContactKind) String() string {
	switch k {
	case ContactEmail:
		return "email"
	case ContactPhone:
		return "phone"
	default:
		return "unknown"
	}
}

// Contact is an immutable value object holding a validated customer contact,
// either an email address or a phone/fax number.
//
// Example:
//
//	contact, err := kernel.NewContact("  'eric98@yahoo.com'  ")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(contact.Value()) // Output: eric98@yahoo.com
//	fmt.Println(contact.Kind())  // Output: email
type Contact struct { //nolint:recvcheck //using for validation
	value string
	kind  ContactKind
	guard guard.ConstructorGuard
}

// NewContact validates and normalizes a raw contact string. Surrounding
// white space, quotes, commas and semicolons are trimmed; the result must be
// at least six characters long and match either the email or the phone/fax
// pattern.
func NewContact(raw string) (Contact, error) {
	contact := Contact{
		guard: guard.NewConstructorGuard(),
	}

	if err := contact.set(raw); err != nil {
		return Contact{}, err
	}

	return contact, nil
}

// Validate checks that the Contact was created through NewContact.
func (c Contact) Validate() error {
	return c.guard.Validate(ErrContactIsNotConstructed)
}

// Value returns the normalized contact string.
func (c Contact) Value() string {
	return c.value
}

// Kind returns whether the contact is an email address or a phone number.
func (c Contact) Kind() ContactKind {
	return c.kind
}

// String implements fmt.Stringer.
func (c Contact) String() string {
	return c.value
}

// IsEqual compares two contacts by their normalized value.
func (c Contact) IsEqual(other Contact) bool {
	return c.value == other.value
}

func (c *Contact) set(raw string) error {
	trimmed := trimPunctAndSpaces(raw)
	if utf8.RuneCountInString(trimmed) < contactMinLength {
		return errs.NewValueIsInvalidErrorWithCause("contact",
			fmt.Errorf("%q is shorter than %d characters", trimmed, contactMinLength))
	}

	switch {
	case emailPattern.MatchString(trimmed):
		c.kind = ContactEmail
	case phonePattern.MatchString(trimmed):
		c.kind = ContactPhone
	default:
		return errs.NewValueIsInvalidErrorWithCause("contact",
			fmt.Errorf("%q is neither an email address nor a phone number", trimmed))
	}

	c.value = trimmed
	return nil
}
