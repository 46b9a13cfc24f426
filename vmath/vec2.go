package vmath

import "math"

// Vec2 is a float64 2D vector for world-space positions and velocities
// Bit-determinism across hardware is not required, only frame-to-frame
// consistency, so plain float64 is used instead of fixed point
type Vec2 struct {
	X, Y float64
}

func Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func Dot(a, b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

func MagSq(v Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

func Mag(v Vec2) float64 {
	return math.Sqrt(MagSq(v))
}

// Normalize returns the unit vector, zero-safe
func Normalize(v Vec2) Vec2 {
	mag := Mag(v)
	if mag == 0 {
		return Vec2{}
	}
	inv := 1.0 / mag
	return Vec2{v.X * inv, v.Y * inv}
}

func DistSq(a, b Vec2) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

func Dist(a, b Vec2) float64 {
	return math.Sqrt(DistSq(a, b))
}

// ClampMag limits the vector to maxMag while preserving direction
func ClampMag(v Vec2, maxMag float64) Vec2 {
	magSq := MagSq(v)
	if magSq <= maxMag*maxMag || magSq == 0 {
		return v
	}
	return Scale(v, maxMag/math.Sqrt(magSq))
}

// Rotate rotates the vector by angle radians counter-clockwise
func Rotate(v Vec2, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// Angle returns the vector heading in radians
func Angle(v Vec2) float64 {
	return math.Atan2(v.Y, v.X)
}

// FromAngle returns the unit vector with the given heading
func FromAngle(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{cos, sin}
}

// Clamp limits v to the [lo, hi] range component-wise
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
