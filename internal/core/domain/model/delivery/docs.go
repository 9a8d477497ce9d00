// Package delivery implements the Delivery aggregate and its status state
// machine: the binding of one order to one driver with a validated progress
// lifecycle.
//
// The delivery is the source of truth for the dispatch workflow. Order and
// driver statuses are denormalized views over delivery state and are
// recomputed from it inside the same transaction as every delivery mutation.
package delivery
