// Package services contains the domain services of the ordering engine:
// the data factory that constructs validated aggregates with pool-allocated
// identifiers, the calculator for VAT-inclusive amounts, and the multi-step
// order builder.
package services
