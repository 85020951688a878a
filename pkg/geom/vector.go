package geom

import (
	"fmt"
	"math"
)

// Vector3 is a point or direction in 3D space. A 2D point is a Vector3 with
// Z == 0.
type Vector3 struct {
	X, Y, Z float64
}

// Vec3 is shorthand for Vector3{X: x, Y: y, Z: z}.
func Vec3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Length returns the Euclidean norm.
func (v Vector3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns the unit vector pointing the same way as v.
// It returns ErrDegenerate for the zero vector.
func (v Vector3) Normalize() (Vector3, error) {
	l := v.Length()
	if l == 0 {
		return Vector3{}, ErrDegenerate
	}
	return Vector3{v.X / l, v.Y / l, v.Z / l}, nil
}

// Cross returns v × u.
func (v Vector3) Cross(u Vector3) Vector3 {
	return Vector3{
		X: v.Y*u.Z - v.Z*u.Y,
		Y: v.Z*u.X - v.X*u.Z,
		Z: v.X*u.Y - v.Y*u.X,
	}
}

// Dot returns v · u.
func (v Vector3) Dot(u Vector3) float64 {
	return v.X*u.X + v.Y*u.Y + v.Z*u.Z
}

// Scale multiplies every component by k.
func (v Vector3) Scale(k float64) Vector3 {
	return Vector3{v.X * k, v.Y * k, v.Z * k}
}

// Add returns v + u.
func (v Vector3) Add(u Vector3) Vector3 {
	return Vector3{v.X + u.X, v.Y + u.Y, v.Z + u.Z}
}

// Sub returns v - u, computed as v + (-1 * u).
func (v Vector3) Sub(u Vector3) Vector3 {
	return v.Add(u.Scale(-1))
}

// Neg returns -v.
func (v Vector3) Neg() Vector3 {
	return v.Scale(-1)
}

// RotateX rotates v around the X axis by deg degrees (right-handed).
func (v Vector3) RotateX(deg float64) Vector3 {
	sin, cos := math.Sincos(radians(deg))
	return Vector3{
		X: v.X,
		Y: v.Y*cos - v.Z*sin,
		Z: v.Y*sin + v.Z*cos,
	}
}

// RotateY rotates v around the Y axis by deg degrees (right-handed).
func (v Vector3) RotateY(deg float64) Vector3 {
	sin, cos := math.Sincos(radians(deg))
	return Vector3{
		X: v.X*cos + v.Z*sin,
		Y: v.Y,
		Z: v.Z*cos - v.X*sin,
	}
}

// RotateZ rotates v around the Z axis by deg degrees (right-handed).
func (v Vector3) RotateZ(deg float64) Vector3 {
	sin, cos := math.Sincos(radians(deg))
	return Vector3{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
		Z: v.Z,
	}
}

func (v Vector3) String() string {
	return fmt.Sprintf("<vector x:%.4f y:%.4f z:%.4f>", v.X, v.Y, v.Z)
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
