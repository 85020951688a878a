package pipeline

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/chazu/soupview/pkg/geom"
)

// Transform maps one triangle to a new one. Transforms never look at other
// triangles.
type Transform func(geom.Triangle) geom.Triangle

// Identity returns t unchanged.
func Identity(t geom.Triangle) geom.Triangle { return t }

// RotateX rotates around the X axis by deg degrees.
func RotateX(deg float64) Transform {
	return func(t geom.Triangle) geom.Triangle { return t.RotateX(deg) }
}

// RotateY rotates around the Y axis by deg degrees.
func RotateY(deg float64) Transform {
	return func(t geom.Triangle) geom.Triangle { return t.RotateY(deg) }
}

// RotateZ rotates around the Z axis by deg degrees.
func RotateZ(deg float64) Transform {
	return func(t geom.Triangle) geom.Triangle { return t.RotateZ(deg) }
}

// Scale scales about the origin by k.
func Scale(k float64) Transform {
	return func(t geom.Triangle) geom.Triangle { return t.Scale(k) }
}

// Compose chains ts left to right: the first transform runs first.
// With no arguments it returns Identity.
func Compose(ts ...Transform) Transform {
	switch len(ts) {
	case 0:
		return Identity
	case 1:
		return ts[0]
	}
	chain := append([]Transform(nil), ts...)
	return func(t geom.Triangle) geom.Triangle {
		for _, f := range chain {
			t = f(t)
		}
		return t
	}
}

// parallelThreshold is the collection size above which Apply fans out.
const parallelThreshold = 4096

// Apply returns a new slice holding f applied to every triangle, in the
// same order. Large collections are split into chunks transformed
// concurrently.
func Apply(tris []geom.Triangle, f Transform) []geom.Triangle {
	out := make([]geom.Triangle, len(tris))
	if len(tris) < parallelThreshold {
		for i, t := range tris {
			out[i] = f(t)
		}
		return out
	}

	workers := runtime.GOMAXPROCS(0)
	chunk := (len(tris) + workers - 1) / workers
	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < len(tris); lo += chunk {
		hi := min(lo+chunk, len(tris))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				out[i] = f(tris[i])
			}
			return nil
		})
	}
	// Workers never fail; Wait only joins them.
	_ = g.Wait()
	return out
}
