package kernel

import "github.com/chazu/soupview/pkg/geom"

// Mesh is an uncolored triangle soup. Each face lists its vertices
// counter-clockwise when seen from outside the solid.
type Mesh struct {
	Faces [][3]geom.Vector3
}

// TriangleCount returns the number of faces.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Faces) == 0
}

// Paint colors every face with c.
func (m *Mesh) Paint(c geom.Color) []geom.Triangle {
	tris := make([]geom.Triangle, len(m.Faces))
	for i, f := range m.Faces {
		tris[i] = geom.Solid(f[0], f[1], f[2], c)
	}
	return tris
}
