// Package depth orders triangles for the painter's algorithm: farthest
// first, so nearer triangles overdraw farther ones without a depth buffer.
//
// The viewer looks down -Z from the +Z side (the same convention as
// geom.Triangle.IsCCW), so a more negative Z is farther away.
package depth

import (
	"cmp"
	"slices"

	"github.com/chazu/soupview/pkg/geom"
)

// Key is the depth key of a triangle: its minimum vertex Z.
func Key(t geom.Triangle) float64 {
	return t.MinZ()
}

// Compare orders a before b when a is farther from the viewer.
func Compare(a, b geom.Triangle) int {
	return cmp.Compare(Key(a), Key(b))
}

// Sort returns a new slice ordered far to near. Triangles with equal keys
// keep their input order. The input slice is not modified.
func Sort(tris []geom.Triangle) []geom.Triangle {
	out := slices.Clone(tris)
	slices.SortStableFunc(out, Compare)
	return out
}

// IsSorted reports whether tris is already in far-to-near order.
func IsSorted(tris []geom.Triangle) bool {
	return slices.IsSortedFunc(tris, Compare)
}
