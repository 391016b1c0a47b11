// Package order contains the Order aggregate and its line items.
// An order is created atomically with its line items and never changes
// afterwards; prices on line items are snapshots taken at creation time.
package order
