package tessellate_test

import (
	"math"
	"strings"
	"testing"

	"github.com/chazu/soupview/pkg/geom"
	"github.com/chazu/soupview/pkg/kernel"
	"github.com/chazu/soupview/pkg/kernel/sdfx"
	"github.com/chazu/soupview/pkg/pipeline"
	"github.com/chazu/soupview/pkg/scene"
	"github.com/chazu/soupview/pkg/tessellate"
)

// newKernel returns a coarse sdfx kernel for testing.
func newKernel() kernel.Kernel {
	return sdfx.NewWithCells(20)
}

var (
	red  = geom.MustColor(1, 0, 0)
	blue = geom.MustColor(0, 0, 1)
)

// bounds returns the min and max corner of a soup.
func bounds(tris []geom.Triangle) (lo, hi geom.Vector3) {
	lo = geom.Vec3(math.Inf(1), math.Inf(1), math.Inf(1))
	hi = geom.Vec3(math.Inf(-1), math.Inf(-1), math.Inf(-1))
	for _, t := range tris {
		for _, p := range t.Pairs() {
			lo = geom.Vec3(min(lo.X, p.Pos.X), min(lo.Y, p.Pos.Y), min(lo.Z, p.Pos.Z))
			hi = geom.Vec3(max(hi.X, p.Pos.X), max(hi.Y, p.Pos.Y), max(hi.Z, p.Pos.Z))
		}
	}
	return lo, hi
}

func TestNilScene(t *testing.T) {
	tris, err := tessellate.Tessellate(nil, newKernel())
	if err != nil || tris != nil {
		t.Errorf("Tessellate(nil) = %v, %v", tris, err)
	}
}

func TestSingleBox(t *testing.T) {
	sc := scene.New()
	if err := sc.AddPart(scene.Part{Name: "crate", Shape: scene.Box{X: 100, Y: 60, Z: 40}, Color: red}); err != nil {
		t.Fatal(err)
	}

	tris, err := tessellate.Tessellate(sc, newKernel())
	if err != nil {
		t.Fatalf("Tessellate failed: %v", err)
	}
	if len(tris) == 0 {
		t.Fatal("expected triangles")
	}
	for i, tri := range tris {
		if tri.C0 != red || tri.C1 != red || tri.C2 != red {
			t.Fatalf("triangle %d not painted red: %v", i, tri)
		}
	}
	lo, hi := bounds(tris)
	if math.Abs(hi.X-lo.X-100) > 10 || math.Abs(hi.Y-lo.Y-60) > 10 {
		t.Errorf("soup extent = %v..%v, want ~100x60", lo, hi)
	}
}

func TestTwoPartsKeepOrderAndColors(t *testing.T) {
	sc := scene.New()
	_ = sc.AddPart(scene.Part{Name: "a", Shape: scene.Sphere{Radius: 20}, Color: red})
	_ = sc.AddPart(scene.Part{Name: "b", Shape: scene.Sphere{Radius: 20}, Color: blue,
		Translation: geom.Vec3(100, 0, 0)})

	tris, err := tessellate.Tessellate(sc, newKernel())
	if err != nil {
		t.Fatalf("Tessellate failed: %v", err)
	}
	if tris[0].C0 != red || tris[len(tris)-1].C0 != blue {
		t.Error("parts should be emitted in scene order")
	}
	for _, tri := range tris {
		if tri.C0 == blue && tri.Centroid().X < 50 {
			t.Fatalf("blue part not translated: %v", tri)
		}
	}
}

func TestRotationBeforeTranslation(t *testing.T) {
	sc := scene.New()
	_ = sc.AddPart(scene.Part{
		Shape:       scene.Box{X: 100, Y: 10, Z: 10},
		Color:       red,
		Rotation:    geom.Vec3(0, 0, 90),
		Translation: geom.Vec3(200, 0, 0),
	})
	tris, err := tessellate.Tessellate(sc, newKernel())
	if err != nil {
		t.Fatal(err)
	}
	lo, hi := bounds(tris)
	if hi.Y-lo.Y < 80 || hi.X-lo.X > 30 {
		t.Errorf("extent = %v..%v, want long along Y", lo, hi)
	}
	if c := (lo.X + hi.X) / 2; math.Abs(c-200) > 5 {
		t.Errorf("center X = %v, want ~200", c)
	}
}

func TestViewStepsApplied(t *testing.T) {
	sc := scene.New()
	_ = sc.AddPart(scene.Part{Shape: scene.Box{X: 10, Y: 10, Z: 10}, Color: red})
	plain, err := tessellate.Tessellate(sc, newKernel())
	if err != nil {
		t.Fatal(err)
	}

	sc.AddStep(pipeline.Step{Op: pipeline.OpScale, Amount: 3})
	scaled, err := tessellate.Tessellate(sc, newKernel())
	if err != nil {
		t.Fatal(err)
	}
	if len(plain) != len(scaled) {
		t.Fatalf("view steps changed face count: %d vs %d", len(plain), len(scaled))
	}
	plo, phi := bounds(plain)
	slo, shi := bounds(scaled)
	if got, want := shi.X-slo.X, 3*(phi.X-plo.X); math.Abs(got-want) > 1e-6 {
		t.Errorf("scaled extent = %v, want %v", got, want)
	}
}

func TestBooleanParts(t *testing.T) {
	for _, op := range []scene.BoolOp{scene.OpUnion, scene.OpDifference, scene.OpIntersection} {
		t.Run(op.String(), func(t *testing.T) {
			sc := scene.New()
			_ = sc.AddPart(scene.Part{
				Shape: scene.Boolean{Op: op, A: scene.Box{X: 60, Y: 60, Z: 60}, B: scene.Sphere{Radius: 40}},
				Color: blue,
			})
			tris, err := tessellate.Tessellate(sc, newKernel())
			if err != nil {
				t.Fatalf("Tessellate failed: %v", err)
			}
			if len(tris) == 0 {
				t.Error("expected triangles")
			}
		})
	}
}

func TestInvalidShapeNamesPart(t *testing.T) {
	sc := &scene.Scene{Parts: []scene.Part{{Name: "ghost", Shape: scene.Sphere{Radius: 0}}}}
	_, err := tessellate.Tessellate(sc, newKernel())
	if err == nil {
		t.Fatal("expected error for zero radius")
	}
	if !strings.Contains(err.Error(), `"ghost"`) || !strings.Contains(err.Error(), "radius") {
		t.Errorf("error = %v", err)
	}

	sc = &scene.Scene{Parts: []scene.Part{{Shape: nil}}}
	if _, err := tessellate.Tessellate(sc, newKernel()); err == nil || !strings.Contains(err.Error(), "#0") {
		t.Errorf("error = %v, want part #0", err)
	}
}
