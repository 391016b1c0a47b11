// Package product contains the Product entity and its stock rules.
// A product carries the current unit price and the available stock
// quantity; stock decrements enforce the non-negative floor.
package product
