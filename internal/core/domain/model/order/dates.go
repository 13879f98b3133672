package order

import (
	"time"

	"ordering/internal/pkg/errs"
)

// Bounds of valid order creation dates, both inclusive.
var (
	earliestCreationDate = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	latestCreationDate   = time.Date(2099, time.December, 31, 23, 59, 59, 0, time.UTC)
)

// ValidateCreationDate accepts creation timestamps within
// [2020-01-01T00:00:00, 2099-12-31T23:59:59] inclusive. The zero time and
// out-of-range values are rejected.
func ValidateCreationDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("creationDate")
	}
	if date.Before(earliestCreationDate) || date.After(latestCreationDate) {
		return errs.NewValueIsOutOfRangeError("creationDate", date.Format(time.RFC3339),
			earliestCreationDate.Format(time.RFC3339), latestCreationDate.Format(time.RFC3339))
	}
	return nil
}
