// Package customer contains the Customer entity.
// Customers are referenced by orders through their identifiers; this
// package owns their identity data and construction invariants.
package customer
