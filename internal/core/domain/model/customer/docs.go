// Package customer implements the Customer aggregate: a person with a
// validated name and an ordered list of contact strings, identified by a
// pool-allocated numeric id that is assigned exactly once.
package customer
