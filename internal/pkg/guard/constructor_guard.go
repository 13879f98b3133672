// Package guard implements the constructor-guard pattern used by domain
// value objects and commands to reject zero-value instances that bypassed
// their constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been created through its
// designated constructor. Embedding a guard in a struct lets Validate
// distinguish properly constructed instances from zero values.
//
// Example:
//
//	type Contact struct {
//	    value string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewContact(raw string) (Contact, error) {
//	    // ... validation ...
//	    return Contact{value: raw, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c Contact) Validate() error {
//	    return c.guard.Validate(ErrContactIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for constructed objects. For zero-value objects it
// returns validationError, or ErrDefaultConstructorGuard when validationError
// is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
