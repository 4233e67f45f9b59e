// Package conv provides reflection-based scalar conversions used by the container:
// numeric key normalization, position coercion, scalar-to-string rendering and
// the default ordering of scalar values.
package conv
