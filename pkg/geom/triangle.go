package geom

import "fmt"

// Vertex is one (position, color) pair of a triangle.
type Vertex struct {
	Pos   Vector3
	Color Color
}

// Triangle is a triangle with a color at each vertex. Vi pairs with Ci.
// Orientation and shading are derived from the vertices on every call.
type Triangle struct {
	V0, V1, V2 Vector3
	C0, C1, C2 Color
}

// Forward is the viewing axis used by the orientation test: a triangle whose
// normal points along +Z faces the viewer.
var Forward = Vector3{0, 0, 1}

// NewTriangle builds a triangle from three vertices and their colors.
func NewTriangle(v0, v1, v2 Vector3, c0, c1, c2 Color) Triangle {
	return Triangle{V0: v0, V1: v1, V2: v2, C0: c0, C1: c1, C2: c2}
}

// Solid builds a triangle with the same color at every vertex.
func Solid(v0, v1, v2 Vector3, c Color) Triangle {
	return NewTriangle(v0, v1, v2, c, c, c)
}

// Normal returns the unnormalized face normal (v1 - v0) × (v2 - v0).
func (t Triangle) Normal() Vector3 {
	return t.V1.Sub(t.V0).Cross(t.V2.Sub(t.V0))
}

// IsCCW reports whether the triangle winds counter-clockwise as seen by the
// viewer, i.e. whether it is front-facing.
func (t Triangle) IsCCW() bool {
	return t.Normal().Dot(Forward) > 0
}

// Intensity is the Lambertian factor for a light travelling along light:
// the unit normal dotted with the incident direction -light. It may be
// negative or exceed 1 when light is not a unit vector.
func (t Triangle) Intensity(light Vector3) (float64, error) {
	n, err := t.Normal().Normalize()
	if err != nil {
		return 0, err
	}
	return n.Dot(light.Neg()), nil
}

// FlatShade returns a copy with every vertex color scaled by the face
// intensity. Colors are left unclamped.
func (t Triangle) FlatShade(light Vector3) (Triangle, error) {
	k, err := t.Intensity(light)
	if err != nil {
		return Triangle{}, fmt.Errorf("flat shade: %w", err)
	}
	return NewTriangle(t.V0, t.V1, t.V2, t.C0.Scale(k), t.C1.Scale(k), t.C2.Scale(k)), nil
}

// RotateX rotates every vertex around the X axis by deg degrees.
func (t Triangle) RotateX(deg float64) Triangle {
	return t.mapVertices(func(v Vector3) Vector3 { return v.RotateX(deg) })
}

// RotateY rotates every vertex around the Y axis by deg degrees.
func (t Triangle) RotateY(deg float64) Triangle {
	return t.mapVertices(func(v Vector3) Vector3 { return v.RotateY(deg) })
}

// RotateZ rotates every vertex around the Z axis by deg degrees.
func (t Triangle) RotateZ(deg float64) Triangle {
	return t.mapVertices(func(v Vector3) Vector3 { return v.RotateZ(deg) })
}

// Scale scales every vertex about the origin by k.
func (t Triangle) Scale(k float64) Triangle {
	return t.mapVertices(func(v Vector3) Vector3 { return v.Scale(k) })
}

// Translate moves every vertex by d.
func (t Triangle) Translate(d Vector3) Triangle {
	return t.mapVertices(func(v Vector3) Vector3 { return v.Add(d) })
}

func (t Triangle) mapVertices(f func(Vector3) Vector3) Triangle {
	return NewTriangle(f(t.V0), f(t.V1), f(t.V2), t.C0, t.C1, t.C2)
}

// Pairs returns the (vertex, color) pairs in drawing order v0, v1, v2.
func (t Triangle) Pairs() [3]Vertex {
	return [3]Vertex{{t.V0, t.C0}, {t.V1, t.C1}, {t.V2, t.C2}}
}

// MinZ returns the smallest Z among the three vertices.
func (t Triangle) MinZ() float64 {
	return min(t.V0.Z, t.V1.Z, t.V2.Z)
}

// Centroid returns the mean of the three vertices.
func (t Triangle) Centroid() Vector3 {
	return t.V0.Add(t.V1).Add(t.V2).Scale(1.0 / 3.0)
}

func (t Triangle) String() string {
	return fmt.Sprintf("<triangle v0:%s v1:%s v2:%s c0:%s c1:%s c2:%s>",
		t.V0, t.V1, t.V2, t.C0, t.C1, t.C2)
}
