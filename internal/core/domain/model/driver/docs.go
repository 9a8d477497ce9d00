// Package driver implements the Driver aggregate: a delivery agent with an
// availability status that mirrors whether the driver currently holds live
// deliveries.
package driver
