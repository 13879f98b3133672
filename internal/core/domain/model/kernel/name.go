package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrNameIsNotConstructed indicates that a Name was not created through
// NewName or ParseName.
var ErrNameIsNotConstructed = errs.NewValueIsRequiredError(
	"name must be created via NewName or ParseName constructors")

var (
	// namePattern accepts a name part that starts with a letter, followed by
	// letters, hyphens, periods or white spaces. Valid: "E", "E.", "Eric",
	// "Ulla-Nadine", "Eric Meyer", "von-Blumenfeld". Digits and other special
	// characters are rejected.
	namePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z\-\s.]*$`)

	// nameSeparators splits a single-string name written last-name-first,
	// e.g. "Meyer, Eric".
	nameSeparators = regexp.MustCompile(`[,;]`)

	leadingTrim  = regexp.MustCompile(`^[\s"',;]+`)
	trailingTrim = regexp.MustCompile(`[\s"',;]+$`)
	innerSpaces  = regexp.MustCompile(`\s+`)
)

// Name is an immutable value object holding the first- and last-name parts
// of a person name. The last name is never empty; the first name may be.
//
// Names are normalized at construction: surrounding white space, quotes,
// commas and semicolons are trimmed, interior white-space runs collapse to
// single spaces.
type Name struct { //nolint:recvcheck //using for validation
	first string
	last  string
	guard guard.ConstructorGuard
}

// NewName creates a Name from already split first- and last-name parts.
// Both parts are normalized before validation. The last part must match the
// name pattern and must not be empty; the first part may be empty.
//
// Example:
//
//	name, err := kernel.NewName("Eric", "Meyer")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(name.Full()) // Output: Eric Meyer
func NewName(first string, last string) (Name, error) {
	name := Name{
		guard: guard.NewConstructorGuard(),
	}

	if err := name.setLast(last); err != nil {
		return Name{}, err
	}
	if err := name.setFirst(first); err != nil {
		return Name{}, err
	}

	return name, nil
}

// ParseName splits a single-string name into first- and last-name parts and
// validates both.
//
// Splitting rules:
//   - With a comma or semicolon separator the segment before the separator
//     is the last name and the segment after it is the first name:
//     "Meyer, Eric" -> first "Eric", last "Meyer".
//   - Without a separator the final white-space token is the last name and
//     all preceding tokens, rejoined with single spaces, form the first
//     name: "Tim Anton Schulz-Mueller" -> first "Tim Anton", last
//     "Schulz-Mueller".
//   - A single-token input yields an empty first name:
//     "Meyer" -> first "", last "Meyer".
//
// Any validation failure of either part propagates as an overall failure.
func ParseName(raw string) (Name, error) {
	if strings.TrimSpace(raw) == "" {
		return Name{}, errs.NewValueIsRequiredError("name")
	}

	var first, last string
	if parts := nameSeparators.Split(raw, -1); len(parts) > 1 {
		// two-part name with last name first
		last = parts[0]
		first = parts[1]
	} else {
		for _, token := range strings.Fields(raw) {
			if last != "" {
				if first != "" {
					first += " "
				}
				first += last
			}
			last = token
		}
	}

	return NewName(first, last)
}

// Validate checks that the Name was created through a constructor.
func (n Name) Validate() error {
	return n.guard.Validate(ErrNameIsNotConstructed)
}

// First returns the first-name parts, possibly "".
func (n Name) First() string {
	return n.first
}

// Last returns the last name, never "".
func (n Name) Last() string {
	return n.last
}

// Full returns "first last", or just the last name when the first name is
// empty.
func (n Name) Full() string {
	if n.first == "" {
		return n.last
	}
	return n.first + " " + n.last
}

// String implements fmt.Stringer.
func (n Name) String() string {
	return n.Full()
}

// IsEqual compares two names by their normalized parts.
func (n Name) IsEqual(other Name) bool {
	return n.first == other.first && n.last == other.last
}

func (n *Name) setFirst(first string) error {
	normalized, err := normalizeNamePart(first, true)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("firstName", err)
	}
	n.first = normalized
	return nil
}

func (n *Name) setLast(last string) error {
	normalized, err := normalizeNamePart(last, false)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("lastName", err)
	}
	n.last = normalized
	return nil
}

// normalizeNamePart trims punctuation and white space, collapses interior
// white-space runs and validates the result against the name pattern. An
// empty result is accepted only when acceptEmpty is set.
func normalizeNamePart(raw string, acceptEmpty bool) (string, error) {
	trimmed := trimPunctAndSpaces(raw)
	if trimmed == "" {
		if acceptEmpty {
			return "", nil
		}
		return "", fmt.Errorf("name part is empty")
	}
	if !namePattern.MatchString(trimmed) {
		return "", fmt.Errorf("%q does not match the name pattern", trimmed)
	}
	return trimmed, nil
}

// trimPunctAndSpaces removes surrounding white space, quotes, commas and
// semicolons and collapses interior white-space runs to single spaces.
func trimPunctAndSpaces(s string) string {
	s = leadingTrim.ReplaceAllString(s, "")
	s = trailingTrim.ReplaceAllString(s, "")
	return innerSpaces.ReplaceAllString(s, " ")
}
