// Package order implements the Order aggregate: a customer delivery request
// with a priority, a derived lifecycle status, and optional district scoping.
//
// The package enforces that orders are created through their constructor,
// that only NEW orders can be assigned, and that every later status value is
// recomputed from the order's delivery rather than written directly.
package order
