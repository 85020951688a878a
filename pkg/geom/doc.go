// Package geom holds the immutable value types of the triangle-soup kernel:
// vectors, colors and colored triangles. Every operation returns a new
// value; nothing in this package is ever mutated in place.
package geom
