package geom

import (
	"errors"
	"fmt"
)

// ErrDegenerate is returned when a direction is required from a zero-length
// vector, such as the normal of a triangle whose vertices are collinear.
var ErrDegenerate = errors.New("geom: undefined normal for zero-length vector")

// ErrInvalidColor matches every *InvalidColorError via errors.Is.
var ErrInvalidColor = errors.New("geom: invalid color")

// InvalidColorError reports a color channel outside [0, 1].
type InvalidColorError struct {
	Channel string // "red", "green" or "blue"
	Value   float64
}

func (e *InvalidColorError) Error() string {
	return fmt.Sprintf("%s value %v not between 0 and 1", e.Channel, e.Value)
}

// Is lets errors.Is(err, ErrInvalidColor) succeed.
func (e *InvalidColorError) Is(target error) bool {
	return target == ErrInvalidColor
}
