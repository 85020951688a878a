package depth

import (
	"testing"

	"github.com/chazu/soupview/pkg/geom"
)

var white = geom.MustColor(1, 1, 1)

// triAt builds a triangle whose minimum Z is z and tags it through its
// X offset so equal-key triangles stay distinguishable.
func triAt(z, tag float64) geom.Triangle {
	return geom.Solid(
		geom.Vec3(tag, 0, z),
		geom.Vec3(tag+1, 0, z+2),
		geom.Vec3(tag, 1, z+1),
		white,
	)
}

func TestKey(t *testing.T) {
	if got := Key(triAt(-3, 0)); got != -3 {
		t.Errorf("Key() = %v, want -3", got)
	}
}

func TestSortFarToNear(t *testing.T) {
	in := []geom.Triangle{triAt(5, 0), triAt(-3, 1), triAt(0, 2)}
	got := Sort(in)

	wantKeys := []float64{-3, 0, 5}
	for i, tri := range got {
		if Key(tri) != wantKeys[i] {
			t.Errorf("position %d key = %v, want %v", i, Key(tri), wantKeys[i])
		}
	}
	if !IsSorted(got) {
		t.Error("IsSorted() = false for sorted output")
	}
	if Key(in[0]) != 5 {
		t.Error("Sort() modified its input")
	}
}

func TestSortIdempotent(t *testing.T) {
	in := []geom.Triangle{triAt(5, 0), triAt(-3, 1), triAt(0, 2), triAt(0, 3)}
	once := Sort(in)
	twice := Sort(once)
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("re-sort moved position %d: %v -> %v", i, once[i], twice[i])
		}
	}
}

func TestSortStableForTies(t *testing.T) {
	in := []geom.Triangle{
		triAt(1, 10),
		triAt(0, 20),
		triAt(1, 30),
		triAt(0, 40),
		triAt(1, 50),
	}
	got := Sort(in)
	wantTags := []float64{20, 40, 10, 30, 50}
	for i, tri := range got {
		if tri.V0.X != wantTags[i] {
			t.Errorf("position %d tag = %v, want %v", i, tri.V0.X, wantTags[i])
		}
	}
}

func TestSortEmpty(t *testing.T) {
	if got := Sort(nil); len(got) != 0 {
		t.Errorf("Sort(nil) = %v", got)
	}
}
