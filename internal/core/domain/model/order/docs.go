// Package order implements the Order aggregate: a customer's order composed
// of line items, bound to the pricing table of one category at creation
// time.
package order
