// Package scene describes triangle-soup sources as data: named parts built
// from primitive shapes and boolean combinations, each with a color and a
// placement, plus the view transform applied to the whole soup. Scenes are
// produced by the script engine and consumed by the tessellator.
package scene

import (
	"fmt"

	"github.com/chazu/soupview/pkg/geom"
	"github.com/chazu/soupview/pkg/pipeline"
)

// ---------------------------------------------------------------------------
// Shapes
// ---------------------------------------------------------------------------

// Shape is the interface for solid descriptions.
type Shape interface {
	shape() // marker method restricting implementations to this package
}

// Box is an axis-aligned box centered on the origin.
type Box struct {
	X, Y, Z float64
}

func (Box) shape() {}

// Cylinder is a cylinder along Z centered on the origin.
type Cylinder struct {
	Height, Radius float64
}

func (Cylinder) shape() {}

// Sphere is a sphere centered on the origin.
type Sphere struct {
	Radius float64
}

func (Sphere) shape() {}

// BoolOp enumerates boolean combinations.
type BoolOp int

const (
	OpUnion BoolOp = iota
	OpDifference
	OpIntersection
)

func (o BoolOp) String() string {
	switch o {
	case OpUnion:
		return "union"
	case OpDifference:
		return "difference"
	case OpIntersection:
		return "intersection"
	default:
		return "unknown"
	}
}

// Boolean combines two shapes.
type Boolean struct {
	Op   BoolOp
	A, B Shape
}

func (Boolean) shape() {}

// Validate reports the first non-positive dimension in s.
func Validate(s Shape) error {
	switch v := s.(type) {
	case Box:
		if v.X <= 0 || v.Y <= 0 || v.Z <= 0 {
			return fmt.Errorf("box dimensions must be positive, got %gx%gx%g", v.X, v.Y, v.Z)
		}
	case Cylinder:
		if v.Height <= 0 || v.Radius <= 0 {
			return fmt.Errorf("cylinder height and radius must be positive, got %g, %g", v.Height, v.Radius)
		}
	case Sphere:
		if v.Radius <= 0 {
			return fmt.Errorf("sphere radius must be positive, got %g", v.Radius)
		}
	case Boolean:
		if err := Validate(v.A); err != nil {
			return err
		}
		return Validate(v.B)
	case nil:
		return fmt.Errorf("missing shape")
	default:
		return fmt.Errorf("unsupported shape %T", s)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Parts and scenes
// ---------------------------------------------------------------------------

// Part is a shape with a color and placement. Rotation is applied before
// Translation.
type Part struct {
	Name        string
	Shape       Shape
	Color       geom.Color
	Rotation    geom.Vector3 // Euler angles in degrees
	Translation geom.Vector3
}

// Scene is the output of one script evaluation.
type Scene struct {
	Parts []Part
	View  []pipeline.Step
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{}
}

// AddPart appends a part. Names must be unique when non-empty.
func (s *Scene) AddPart(p Part) error {
	if p.Name != "" {
		if _, ok := s.Lookup(p.Name); ok {
			return fmt.Errorf("duplicate part name %q", p.Name)
		}
	}
	if err := Validate(p.Shape); err != nil {
		return err
	}
	s.Parts = append(s.Parts, p)
	return nil
}

// AddStep appends a view transform step.
func (s *Scene) AddStep(step pipeline.Step) {
	s.View = append(s.View, step)
}

// Lookup returns the part with the given name.
func (s *Scene) Lookup(name string) (Part, bool) {
	for _, p := range s.Parts {
		if p.Name == name {
			return p, true
		}
	}
	return Part{}, false
}

// IsEmpty reports whether the scene has no parts.
func (s *Scene) IsEmpty() bool {
	return len(s.Parts) == 0
}
