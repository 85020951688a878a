package engine

import (
	"fmt"
	"strings"

	"github.com/chazu/soupview/pkg/geom"
	"github.com/chazu/soupview/pkg/pipeline"
	"github.com/chazu/soupview/pkg/scene"
	zygo "github.com/glycerine/zygomys/zygo"
)

// Palette colors parts that do not name a color, in definition order.
var Palette = []geom.Color{
	geom.MustColor(0.290, 0.565, 0.851),
	geom.MustColor(0.902, 0.494, 0.133),
	geom.MustColor(0.180, 0.800, 0.443),
	geom.MustColor(0.608, 0.349, 0.714),
	geom.MustColor(0.906, 0.298, 0.235),
	geom.MustColor(0.102, 0.737, 0.612),
	geom.MustColor(0.953, 0.612, 0.071),
	geom.MustColor(0.204, 0.596, 0.859),
}

// ---------------------------------------------------------------------------
// Custom Sexp types for passing Go values through the zygomys environment
// ---------------------------------------------------------------------------

type sexpColor struct {
	c geom.Color
}

func (c *sexpColor) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(rgb %g %g %g)", c.c.R, c.c.G, c.c.B)
}
func (c *sexpColor) Type() *zygo.RegisteredType { return nil }

type sexpVec3 struct {
	vec geom.Vector3
}

func (v *sexpVec3) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(vec3 %g %g %g)", v.vec.X, v.vec.Y, v.vec.Z)
}
func (v *sexpVec3) Type() *zygo.RegisteredType { return nil }

// sexpShape carries a scene.Shape from a shape builtin to a boolean or part.
type sexpShape struct {
	shape scene.Shape
}

func (s *sexpShape) SexpString(ps *zygo.PrintState) string {
	switch v := s.shape.(type) {
	case scene.Box:
		return fmt.Sprintf("(box %g %g %g)", v.X, v.Y, v.Z)
	case scene.Cylinder:
		return fmt.Sprintf("(cylinder %g %g)", v.Height, v.Radius)
	case scene.Sphere:
		return fmt.Sprintf("(sphere %g)", v.Radius)
	case scene.Boolean:
		return fmt.Sprintf("(%s ...)", v.Op)
	}
	return "(shape)"
}
func (s *sexpShape) Type() *zygo.RegisteredType { return nil }

// sexpPart is returned from part definitions so scripts can print them.
type sexpPart struct {
	name  string
	index int
}

func (p *sexpPart) SexpString(ps *zygo.PrintState) string {
	if p.name != "" {
		return fmt.Sprintf("(part %q)", p.name)
	}
	return fmt.Sprintf("(part #%d)", p.index)
}
func (p *sexpPart) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// isKW returns the keyword name of a preprocessed keyword string.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok || !strings.HasPrefix(str.S, kwPrefix) {
		return "", false
	}
	return str.S[len(kwPrefix):], true
}

type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	for i := 0; i < len(args); i++ {
		name, ok := isKW(args[i])
		if !ok {
			result.positional = append(result.positional, args[i])
			continue
		}
		if i+1 < len(args) {
			result.kw[name] = args[i+1]
			i++
		} else {
			result.kw[name] = zygo.SexpNull
		}
	}
	return result
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a SexpInt or SexpFloat.
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

func toFloats(who string, args []zygo.Sexp, names ...string) ([]float64, error) {
	if len(args) != len(names) {
		return nil, fmt.Errorf("%s requires exactly %d arguments, got %d", who, len(names), len(args))
	}
	out := make([]float64, len(args))
	for i, a := range args {
		f, err := toFloat64(a)
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", who, names[i], err)
		}
		out[i] = f
	}
	return out, nil
}

func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

func toVec3(s zygo.Sexp) (geom.Vector3, error) {
	if v, ok := s.(*sexpVec3); ok {
		return v.vec, nil
	}
	return geom.Vector3{}, fmt.Errorf("expected vec3, got %T (%s)", s, s.SexpString(nil))
}

func toColor(s zygo.Sexp) (geom.Color, error) {
	if c, ok := s.(*sexpColor); ok {
		return c.c, nil
	}
	return geom.Color{}, fmt.Errorf("expected color, got %T (%s)", s, s.SexpString(nil))
}

func toShape(s zygo.Sexp) (scene.Shape, error) {
	if sh, ok := s.(*sexpShape); ok {
		return sh.shape, nil
	}
	return nil, fmt.Errorf("expected shape, got %T (%s)", s, s.SexpString(nil))
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs the scene builtins into a zygomys environment.
// Part and view builtins append to sc as the script runs.
//
// Source must go through preprocessSource first so :keyword tokens arrive
// as recognizable string literals.
func registerBuiltins(env *zygo.Zlisp, sc *scene.Scene) {

	// (rgb 1 0.5 0)
	env.AddFunction("rgb", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		f, err := toFloats("rgb", args, "r", "g", "b")
		if err != nil {
			return zygo.SexpNull, err
		}
		c, err := geom.NewColor(f[0], f[1], f[2])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("rgb: %w", err)
		}
		return &sexpColor{c: c}, nil
	})

	// (vec3 1 2 3)
	env.AddFunction("vec3", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		f, err := toFloats("vec3", args, "x", "y", "z")
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpVec3{vec: geom.Vec3(f[0], f[1], f[2])}, nil
	})

	// -----------------------------------------------------------------------
	// Shapes: (box 100 50 20) (cylinder 80 25) (sphere 40)
	// -----------------------------------------------------------------------
	addShape := func(fn string, build func([]float64) scene.Shape, names ...string) {
		env.AddFunction(fn, func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			f, err := toFloats(fn, args, names...)
			if err != nil {
				return zygo.SexpNull, err
			}
			sh := build(f)
			if err := scene.Validate(sh); err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: %w", fn, err)
			}
			return &sexpShape{shape: sh}, nil
		})
	}
	addShape("box", func(f []float64) scene.Shape {
		return scene.Box{X: f[0], Y: f[1], Z: f[2]}
	}, "x", "y", "z")
	addShape("cylinder", func(f []float64) scene.Shape {
		return scene.Cylinder{Height: f[0], Radius: f[1]}
	}, "height", "radius")
	addShape("sphere", func(f []float64) scene.Shape {
		return scene.Sphere{Radius: f[0]}
	}, "radius")

	// -----------------------------------------------------------------------
	// Booleans: (difference (box 10 10 10) (sphere 6))
	// -----------------------------------------------------------------------
	for _, op := range []scene.BoolOp{scene.OpUnion, scene.OpDifference, scene.OpIntersection} {
		env.AddFunction(op.String(), func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			if len(args) < 2 {
				return zygo.SexpNull, fmt.Errorf("%s requires at least 2 shapes, got %d", op, len(args))
			}
			acc, err := toShape(args[0])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: shape 1: %w", op, err)
			}
			for i, a := range args[1:] {
				sh, err := toShape(a)
				if err != nil {
					return zygo.SexpNull, fmt.Errorf("%s: shape %d: %w", op, i+2, err)
				}
				acc = scene.Boolean{Op: op, A: acc, B: sh}
			}
			return &sexpShape{shape: acc}, nil
		})
	}

	// -----------------------------------------------------------------------
	// (defpart "lid" (box 100 100 5) :color (rgb 1 0 0) :at (vec3 0 0 50)
	//          :rotate (vec3 0 0 45))
	// (part (sphere 10) ...) adds an unnamed part.
	// -----------------------------------------------------------------------
	addPart := func(who, partName string, pa kwArgs, shapeArg zygo.Sexp) (zygo.Sexp, error) {
		sh, err := toShape(shapeArg)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("%s: %w", who, err)
		}
		p := scene.Part{
			Name:  partName,
			Shape: sh,
			Color: Palette[len(sc.Parts)%len(Palette)],
		}
		if v, ok := pa.kw["color"]; ok {
			if p.Color, err = toColor(v); err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: color: %w", who, err)
			}
		}
		if v, ok := pa.kw["at"]; ok {
			if p.Translation, err = toVec3(v); err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: at: %w", who, err)
			}
		}
		if v, ok := pa.kw["rotate"]; ok {
			if p.Rotation, err = toVec3(v); err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: rotate: %w", who, err)
			}
		}
		if err := sc.AddPart(p); err != nil {
			return zygo.SexpNull, fmt.Errorf("%s: %w", who, err)
		}
		return &sexpPart{name: partName, index: len(sc.Parts) - 1}, nil
	}

	env.AddFunction("defpart", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) < 2 {
			return zygo.SexpNull, fmt.Errorf("defpart requires a name and a shape")
		}
		partName, err := toString(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("defpart: name: %w", err)
		}
		if partName == "" {
			return zygo.SexpNull, fmt.Errorf("defpart: name must not be empty")
		}
		return addPart("defpart", partName, pa, pa.positional[1])
	})

	env.AddFunction("part", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) < 1 {
			return zygo.SexpNull, fmt.Errorf("part requires a shape")
		}
		return addPart("part", "", pa, pa.positional[0])
	})

	// -----------------------------------------------------------------------
	// View steps: (rotate-y 30) (rotate-x -20) (scale 1.5)
	// Registered with underscores; preprocessSource rewrites the hyphens.
	// -----------------------------------------------------------------------
	for fn, op := range map[string]pipeline.Op{
		"rotate_x": pipeline.OpRotateX,
		"rotate_y": pipeline.OpRotateY,
		"rotate_z": pipeline.OpRotateZ,
		"scale":    pipeline.OpScale,
	} {
		env.AddFunction(fn, func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			f, err := toFloats(op.String(), args, "amount")
			if err != nil {
				return zygo.SexpNull, err
			}
			if op == pipeline.OpScale && f[0] == 0 {
				return zygo.SexpNull, fmt.Errorf("scale: factor must not be zero")
			}
			sc.AddStep(pipeline.Step{Op: op, Amount: f[0]})
			return zygo.SexpNull, nil
		})
	}
}
