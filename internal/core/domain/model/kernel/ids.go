package kernel

import (
	"fmt"
	"regexp"

	"ordering/internal/pkg/errs"
)

// articleIDPattern is the stock-keeping format of article identifiers:
// the "SKU-" prefix followed by six digits.
var articleIDPattern = regexp.MustCompile(`^SKU-[0-9]{6}$`)

// CustomerID identifies a customer. Valid identifiers are positive; the data
// factory issues 6-digit values from its pool.
type CustomerID uint64

// Validate rejects the zero value, which marks an unassigned identifier.
func (id CustomerID) Validate() error {
	if id == 0 {
		return errs.NewValueIsRequiredError("customerId")
	}
	return nil
}

// String returns the decimal representation of the identifier.
func (id CustomerID) String() string {
	return fmt.Sprintf("%d", uint64(id))
}

// ArticleID identifies an article by its stock-keeping code, e.g. "SKU-458362".
type ArticleID string

// Validate rejects identifiers that do not match the "SKU-" + 6-digit format.
func (id ArticleID) Validate() error {
	if id == "" {
		return errs.NewValueIsRequiredError("articleId")
	}
	if !articleIDPattern.MatchString(string(id)) {
		return errs.NewValueIsInvalidErrorWithCause("articleId",
			fmt.Errorf("%q does not match SKU-dddddd", string(id)))
	}
	return nil
}

// String returns the stock-keeping code.
func (id ArticleID) String() string {
	return string(id)
}

// OrderID identifies an order. Valid identifiers are positive; the data
// factory issues 10-digit values from its pool.
type OrderID uint64

// Validate rejects the zero value, which marks an unassigned identifier.
func (id OrderID) Validate() error {
	if id == 0 {
		return errs.NewValueIsRequiredError("orderId")
	}
	return nil
}

// String returns the decimal representation of the identifier.
func (id OrderID) String() string {
	return fmt.Sprintf("%d", uint64(id))
}
