package pipeline

import (
	"fmt"
	"math"
)

// Op names an atomic transform that can be stored as data.
type Op int

const (
	OpRotateX Op = iota
	OpRotateY
	OpRotateZ
	OpScale
)

func (o Op) String() string {
	switch o {
	case OpRotateX:
		return "rotate-x"
	case OpRotateY:
		return "rotate-y"
	case OpRotateZ:
		return "rotate-z"
	case OpScale:
		return "scale"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// Step is a serializable transform: an operation and its degrees or factor.
type Step struct {
	Op     Op      `json:"op"`
	Amount float64 `json:"amount"`
}

// Transform returns the transform the step describes.
func (s Step) Transform() Transform {
	switch s.Op {
	case OpRotateX:
		return RotateX(s.Amount)
	case OpRotateY:
		return RotateY(s.Amount)
	case OpRotateZ:
		return RotateZ(s.Amount)
	case OpScale:
		return Scale(s.Amount)
	default:
		return Identity
	}
}

// FromSteps composes steps in order.
func FromSteps(steps []Step) Transform {
	ts := make([]Transform, len(steps))
	for i, s := range steps {
		ts[i] = s.Transform()
	}
	return Compose(ts...)
}

// Spin is an animation accumulator: a rotation about one axis that advances
// at Rate degrees per second. The update loop owns the value and replaces
// it every frame.
type Spin struct {
	Axis  Op // OpRotateX, OpRotateY or OpRotateZ
	Rate  float64
	Angle float64 // degrees in [0, 360)
}

// Advance returns the spin moved forward by dt seconds.
func (s Spin) Advance(dt float64) Spin {
	s.Angle = math.Mod(s.Angle+s.Rate*dt, 360)
	if s.Angle < 0 {
		s.Angle += 360
	}
	if s.Angle >= 360 {
		s.Angle = 0
	}
	return s
}

// Transform rotates by the accumulated angle.
func (s Spin) Transform() Transform {
	return Step{Op: s.Axis, Amount: s.Angle}.Transform()
}
