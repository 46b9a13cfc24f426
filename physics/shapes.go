package physics

import "github.com/lixenwraith/horde/vmath"

// ShapeKind selects the narrow-phase test
// The set is closed: circle and axis-aligned box only
type ShapeKind uint8

const (
	ShapeCircle ShapeKind = iota
	ShapeAABB
)

// Shape is a collider shape in local space
// Circle uses Radius; AABB uses HalfW/HalfH half-extents
type Shape struct {
	Kind   ShapeKind
	Radius float64
	HalfW  float64
	HalfH  float64
}

// Circle returns a circle shape with the given radius
func Circle(radius float64) Shape {
	return Shape{Kind: ShapeCircle, Radius: radius}
}

// Box returns an AABB shape with the given half-extents
func Box(halfW, halfH float64) Shape {
	return Shape{Kind: ShapeAABB, HalfW: halfW, HalfH: halfH}
}

// CircleCircle reports overlap when center distance <= sum of radii
func CircleCircle(a vmath.Vec2, ra float64, b vmath.Vec2, rb float64) bool {
	r := ra + rb
	return vmath.DistSq(a, b) <= r*r
}

// CircleAABB reports overlap using the clamped closest point on the box
func CircleAABB(c vmath.Vec2, r float64, center vmath.Vec2, hw, hh float64) bool {
	closest := vmath.Vec2{
		X: vmath.Clamp(c.X, center.X-hw, center.X+hw),
		Y: vmath.Clamp(c.Y, center.Y-hh, center.Y+hh),
	}
	return vmath.DistSq(c, closest) <= r*r
}

// AABBAABB reports overlap when intervals overlap on both axes
func AABBAABB(a vmath.Vec2, ahw, ahh float64, b vmath.Vec2, bhw, bhh float64) bool {
	if a.X-ahw > b.X+bhw || b.X-bhw > a.X+ahw {
		return false
	}
	if a.Y-ahh > b.Y+bhh || b.Y-bhh > a.Y+ahh {
		return false
	}
	return true
}

// Overlap dispatches the exact test for a shape pair at world positions
// The combination set is exhaustive; an unknown kind falls through to false
func Overlap(sa Shape, pa vmath.Vec2, sb Shape, pb vmath.Vec2) bool {
	switch {
	case sa.Kind == ShapeCircle && sb.Kind == ShapeCircle:
		return CircleCircle(pa, sa.Radius, pb, sb.Radius)
	case sa.Kind == ShapeCircle && sb.Kind == ShapeAABB:
		return CircleAABB(pa, sa.Radius, pb, sb.HalfW, sb.HalfH)
	case sa.Kind == ShapeAABB && sb.Kind == ShapeCircle:
		return CircleAABB(pb, sb.Radius, pa, sa.HalfW, sa.HalfH)
	case sa.Kind == ShapeAABB && sb.Kind == ShapeAABB:
		return AABBAABB(pa, sa.HalfW, sa.HalfH, pb, sb.HalfW, sb.HalfH)
	}
	return false
}

// Bounds returns the world-space AABB of a shape at position p
// Used by the broad phase to find overlapped grid cells
func Bounds(s Shape, p vmath.Vec2) (min, max vmath.Vec2) {
	switch s.Kind {
	case ShapeCircle:
		return vmath.Vec2{X: p.X - s.Radius, Y: p.Y - s.Radius},
			vmath.Vec2{X: p.X + s.Radius, Y: p.Y + s.Radius}
	default:
		return vmath.Vec2{X: p.X - s.HalfW, Y: p.Y - s.HalfH},
			vmath.Vec2{X: p.X + s.HalfW, Y: p.Y + s.HalfH}
	}
}
