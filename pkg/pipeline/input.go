package pipeline

import "github.com/chazu/soupview/pkg/geom"

// Per-tick step sizes.
const (
	RotationStep = 3.0 // degrees
	GrowFactor   = 1.1
	ShrinkFactor = 0.9
)

// Input is the snapshot of active user intents for one tick. Opposite
// directions on the same axis are expected to be exclusive; when both are
// set, Left, Up and Plus win.
type Input struct {
	Left, Right bool // rotate around Y
	Up, Down    bool // rotate around X
	Plus, Minus bool // scale
}

// Idle reports whether no intent is active.
func (in Input) Idle() bool {
	return in == Input{}
}

// Select returns the transforms requested by in, in the order rotate-Y,
// rotate-X, scale.
func Select(in Input) []Transform {
	var ts []Transform
	switch {
	case in.Left:
		ts = append(ts, RotateY(-RotationStep))
	case in.Right:
		ts = append(ts, RotateY(RotationStep))
	}
	switch {
	case in.Up:
		ts = append(ts, RotateX(-RotationStep))
	case in.Down:
		ts = append(ts, RotateX(RotationStep))
	}
	switch {
	case in.Plus:
		ts = append(ts, Scale(GrowFactor))
	case in.Minus:
		ts = append(ts, Scale(ShrinkFactor))
	}
	return ts
}

// Tick applies the transforms selected by in to every triangle and returns
// the new collection. An idle tick returns tris itself.
func Tick(tris []geom.Triangle, in Input) []geom.Triangle {
	if in.Idle() {
		return tris
	}
	return Apply(tris, Compose(Select(in)...))
}
