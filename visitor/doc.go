// Package visitor offers generic visitors for structured values.
// It provides reflection-backed iteration over structs, maps, slices and arrays,
// with simple callback-based traversal in a deterministic order.
package visitor
