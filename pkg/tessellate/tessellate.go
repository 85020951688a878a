// Package tessellate turns a scene into colored triangle soup using a
// geometry kernel. Each part is built, placed and meshed independently;
// the scene's view steps are then applied to the whole soup.
package tessellate

import (
	"fmt"

	"github.com/chazu/soupview/pkg/geom"
	"github.com/chazu/soupview/pkg/kernel"
	"github.com/chazu/soupview/pkg/pipeline"
	"github.com/chazu/soupview/pkg/scene"
)

// Tessellate meshes every part of sc in order and returns the combined
// soup. The scene is never mutated.
func Tessellate(sc *scene.Scene, k kernel.Kernel) ([]geom.Triangle, error) {
	if sc == nil {
		return nil, nil
	}

	var soup []geom.Triangle
	for i, p := range sc.Parts {
		tris, err := TessellatePart(p, k)
		if err != nil {
			return nil, fmt.Errorf("tessellate: part %s: %w", partLabel(p, i), err)
		}
		soup = append(soup, tris...)
	}

	if len(sc.View) > 0 {
		soup = pipeline.Apply(soup, pipeline.FromSteps(sc.View))
	}
	return soup, nil
}

// TessellatePart meshes a single part and paints it with the part color.
func TessellatePart(p scene.Part, k kernel.Kernel) ([]geom.Triangle, error) {
	solid, err := build(p.Shape, k)
	if err != nil {
		return nil, err
	}

	// Apply rotation first, then translation.
	rot := p.Rotation
	if rot != (geom.Vector3{}) {
		solid = k.Rotate(solid, rot.X, rot.Y, rot.Z)
	}
	trans := p.Translation
	if trans != (geom.Vector3{}) {
		solid = k.Translate(solid, trans.X, trans.Y, trans.Z)
	}

	mesh, err := k.ToMesh(solid)
	if err != nil {
		return nil, fmt.Errorf("ToMesh failed: %w", err)
	}
	return mesh.Paint(p.Color), nil
}

// build recursively converts a shape description into a kernel solid.
func build(s scene.Shape, k kernel.Kernel) (kernel.Solid, error) {
	if err := scene.Validate(s); err != nil {
		return nil, err
	}

	switch v := s.(type) {
	case scene.Box:
		return k.Box(v.X, v.Y, v.Z), nil
	case scene.Cylinder:
		return k.Cylinder(v.Height, v.Radius), nil
	case scene.Sphere:
		return k.Sphere(v.Radius), nil
	case scene.Boolean:
		a, err := build(v.A, k)
		if err != nil {
			return nil, err
		}
		b, err := build(v.B, k)
		if err != nil {
			return nil, err
		}
		switch v.Op {
		case scene.OpUnion:
			return k.Union(a, b), nil
		case scene.OpDifference:
			return k.Difference(a, b), nil
		case scene.OpIntersection:
			return k.Intersection(a, b), nil
		}
		return nil, fmt.Errorf("unknown boolean op %v", v.Op)
	default:
		return nil, fmt.Errorf("unsupported shape %T", s)
	}
}

func partLabel(p scene.Part, index int) string {
	if p.Name != "" {
		return fmt.Sprintf("%q", p.Name)
	}
	return fmt.Sprintf("#%d", index)
}
