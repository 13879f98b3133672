// Package kernel contains the shared value objects of the ordering domain:
// person names, contact strings, and the identifier types of the three
// aggregates (customer, article, order).
//
// All value objects are immutable and validated at construction. Zero values
// are invalid and fail Validate; constructors are the only way to obtain a
// usable instance.
package kernel
