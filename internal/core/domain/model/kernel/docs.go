// Package kernel provides core domain primitives shared by the logistics
// domain model.
//
// The package currently contains UUID, a value object for unique identifiers
// with validation and comparison capabilities. Kernel primitives enforce
// their invariants at construction time, are immutable, and are safe for
// concurrent use.
package kernel
