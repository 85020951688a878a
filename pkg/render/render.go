// Package render prepares a frame for a rasterizer: it culls back faces,
// applies flat shading, orders faces for the painter's algorithm and clamps
// colors. It does not draw anything itself; GL, ebiten, SVG and canvas
// front ends consume the returned faces.
package render

import (
	"fmt"

	"github.com/chazu/soupview/pkg/depth"
	"github.com/chazu/soupview/pkg/geom"
)

// Mode selects how a frame is prepared.
type Mode int

const (
	// ModePlain draws front faces with their stored colors in input order.
	ModePlain Mode = iota
	// ModeWireframe is ModePlain for a front end that strokes edges.
	ModeWireframe
	// ModeFlat sorts far to near and flat-shades every front face.
	ModeFlat
)

func (m Mode) String() string {
	switch m {
	case ModePlain:
		return "plain"
	case ModeWireframe:
		return "wireframe"
	case ModeFlat:
		return "flat"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode is the inverse of Mode.String.
func ParseMode(s string) (Mode, error) {
	for _, m := range []Mode{ModePlain, ModeWireframe, ModeFlat} {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("render: unknown mode %q (want plain, wireframe or flat)", s)
}

// DefaultLight shines straight into the screen, away from the viewer.
var DefaultLight = geom.Vec3(0, 0, -1)

// Options configures Prepare.
type Options struct {
	Mode  Mode
	Light geom.Vector3 // zero value means DefaultLight
}

// Face is one triangle ready to rasterize. Colors are within [0, 1] and the
// vertices are in drawing order v0, v1, v2.
type Face struct {
	Vertices [3]geom.Vertex
}

// Fill returns the mean of the three vertex colors, for front ends that can
// only fill a polygon with a single color.
func (f Face) Fill() geom.Color {
	var r, g, b float64
	for _, v := range f.Vertices {
		r += v.Color.R
		g += v.Color.G
		b += v.Color.B
	}
	return geom.Color{R: r / 3, G: g / 3, B: b / 3}
}

// Prepare turns the current triangle collection into the faces to draw, in
// drawing order. Back-facing triangles are dropped. In ModeFlat, triangles
// that cannot be shaded are dropped as well.
func Prepare(tris []geom.Triangle, opts Options) []Face {
	light := opts.Light
	if light == (geom.Vector3{}) {
		light = DefaultLight
	}
	if opts.Mode == ModeFlat {
		tris = depth.Sort(tris)
	}

	faces := make([]Face, 0, len(tris))
	for _, t := range tris {
		if !t.IsCCW() {
			continue
		}
		if opts.Mode == ModeFlat {
			shaded, err := t.FlatShade(light)
			if err != nil {
				continue
			}
			t = shaded
		}
		faces = append(faces, toFace(t))
	}
	return faces
}

func toFace(t geom.Triangle) Face {
	var f Face
	for i, p := range t.Pairs() {
		f.Vertices[i] = geom.Vertex{Pos: p.Pos, Color: p.Color.Clamp()}
	}
	return f
}

// Viewport maps kernel coordinates, whose origin is the screen center with
// +Y up, onto pixel coordinates with the origin at the top-left.
type Viewport struct {
	Width, Height int
}

// ScreenPoint returns the pixel position of v. Z is ignored.
func (vp Viewport) ScreenPoint(v geom.Vector3) (x, y float64) {
	return float64(vp.Width)/2 + v.X, float64(vp.Height)/2 - v.Y
}
