package geom

import "fmt"

// Color is an RGB triple. Colors built with NewColor have every channel in
// [0, 1]; Scale may move them outside that range, Clamp brings them back.
type Color struct {
	R, G, B float64
}

// NewColor validates each channel and returns an *InvalidColorError naming
// the first channel outside [0, 1].
func NewColor(r, g, b float64) (Color, error) {
	channels := [...]struct {
		name  string
		value float64
	}{{"red", r}, {"green", g}, {"blue", b}}
	for _, ch := range channels {
		// The negated form also rejects NaN.
		if !(ch.value >= 0 && ch.value <= 1) {
			return Color{}, &InvalidColorError{Channel: ch.name, Value: ch.value}
		}
	}
	return Color{R: r, G: g, B: b}, nil
}

// MustColor is NewColor for literals known to be valid. It panics otherwise.
func MustColor(r, g, b float64) Color {
	c, err := NewColor(r, g, b)
	if err != nil {
		panic(err)
	}
	return c
}

// Scale multiplies every channel by k. The result is not range checked.
func (c Color) Scale(k float64) Color {
	return Color{c.R * k, c.G * k, c.B * k}
}

// Clamp limits every channel to [0, 1].
func (c Color) Clamp() Color {
	return Color{clamp01(c.R), clamp01(c.G), clamp01(c.B)}
}

// InRange reports whether every channel is within [0, 1].
func (c Color) InRange() bool {
	return c == c.Clamp()
}

// Hex formats the clamped color as #rrggbb.
func (c Color) Hex() string {
	c = c.Clamp()
	return fmt.Sprintf("#%02x%02x%02x", channel8(c.R), channel8(c.G), channel8(c.B))
}

func channel8(x float64) uint8 {
	return uint8(x*255 + 0.5)
}

func (c Color) String() string {
	return fmt.Sprintf("<color r:%g g:%g b:%g>", c.R, c.G, c.B)
}

func clamp01(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}
