package geom

import (
	"errors"
	"math"
	"testing"
)

var (
	blue  = MustColor(0, 0, 1)
	red   = MustColor(1, 0, 0)
	green = MustColor(0, 1, 0)
)

func unitTriangle() Triangle {
	return NewTriangle(Vec3(0, 0, 0), Vec3(1, 0, 0), Vec3(0, 1, 0), red, green, blue)
}

func TestIsCCW(t *testing.T) {
	a, b, c := Vec3(0, 0, 0), Vec3(1, 0, 0), Vec3(0, 1, 0)
	if !Solid(a, b, c, blue).IsCCW() {
		t.Error("IsCCW() = false for (a, b, c), want true")
	}
	if Solid(a, c, b, blue).IsCCW() {
		t.Error("IsCCW() = true for (a, c, b), want false")
	}
	if Solid(a, a, b, blue).IsCCW() {
		t.Error("IsCCW() = true for degenerate triangle")
	}
}

func TestNormal(t *testing.T) {
	if got := unitTriangle().Normal(); got != Vec3(0, 0, 1) {
		t.Errorf("Normal() = %v, want (0,0,1)", got)
	}
}

func TestFlatShadeFacingLight(t *testing.T) {
	tri := unitTriangle()
	k, err := tri.Intensity(Vec3(0, 0, -1))
	if err != nil {
		t.Fatal(err)
	}
	if k != 1.0 {
		t.Errorf("Intensity() = %v, want exactly 1", k)
	}
	shaded, err := tri.FlatShade(Vec3(0, 0, -1))
	if err != nil {
		t.Fatal(err)
	}
	if shaded != tri {
		t.Errorf("FlatShade() = %v, want unchanged %v", shaded, tri)
	}
}

func TestFlatShadeOblique(t *testing.T) {
	// Face normal (0,0,1); light at 60° from the normal gives cos 60° = 0.5.
	light := Vec3(0, math.Sin(math.Pi/3), -math.Cos(math.Pi/3))
	shaded, err := unitTriangle().FlatShade(light)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(shaded.C0.R-0.5) > eps || shaded.C0.G != 0 {
		t.Errorf("C0 = %v, want red at 0.5", shaded.C0)
	}
	if math.Abs(shaded.C2.B-0.5) > eps {
		t.Errorf("C2 = %v, want blue at 0.5", shaded.C2)
	}
	if shaded.V0 != unitTriangle().V0 || shaded.V2 != unitTriangle().V2 {
		t.Error("FlatShade() changed geometry")
	}
}

func TestFlatShadeAwayFromLight(t *testing.T) {
	k, err := unitTriangle().Intensity(Vec3(0, 0, 1))
	if err != nil {
		t.Fatal(err)
	}
	if k != -1 {
		t.Errorf("Intensity() = %v, want -1", k)
	}
}

func TestFlatShadeDegenerate(t *testing.T) {
	tri := Solid(Vec3(0, 0, 0), Vec3(1, 1, 1), Vec3(2, 2, 2), blue)
	_, err := tri.FlatShade(Vec3(0, 0, -1))
	if !errors.Is(err, ErrDegenerate) {
		t.Errorf("FlatShade() error = %v, want ErrDegenerate", err)
	}
}

func TestTriangleTransformsKeepColors(t *testing.T) {
	tri := unitTriangle()
	tests := []struct {
		name string
		got  Triangle
		v1   Vector3
	}{
		{"rotate x", tri.RotateX(90), Vec3(1, 0, 0)},
		{"rotate y", tri.RotateY(90), Vec3(0, 0, -1)},
		{"rotate z", tri.RotateZ(90), Vec3(0, 1, 0)},
		{"scale", tri.Scale(2), Vec3(2, 0, 0)},
		{"translate", tri.Translate(Vec3(0, 0, 5)), Vec3(1, 0, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !approxVec(tt.got.V1, tt.v1) {
				t.Errorf("V1 = %v, want %v", tt.got.V1, tt.v1)
			}
			if tt.got.C0 != red || tt.got.C1 != green || tt.got.C2 != blue {
				t.Errorf("colors changed: %v", tt.got)
			}
		})
	}
	if tri != unitTriangle() {
		t.Error("receiver was mutated")
	}
}

func TestPairs(t *testing.T) {
	p := unitTriangle().Pairs()
	want := [3]Vertex{
		{Vec3(0, 0, 0), red},
		{Vec3(1, 0, 0), green},
		{Vec3(0, 1, 0), blue},
	}
	if p != want {
		t.Errorf("Pairs() = %v, want %v", p, want)
	}
}

func TestMinZAndCentroid(t *testing.T) {
	tri := Solid(Vec3(0, 0, 5), Vec3(3, 0, -3), Vec3(0, 3, 1), blue)
	if got := tri.MinZ(); got != -3 {
		t.Errorf("MinZ() = %v, want -3", got)
	}
	if got := tri.Centroid(); !approxVec(got, Vec3(1, 1, 1)) {
		t.Errorf("Centroid() = %v, want (1,1,1)", got)
	}
}
