package physics

import (
	"testing"

	"github.com/lixenwraith/horde/vmath"
)

func TestCircleCircle(t *testing.T) {
	tests := []struct {
		name   string
		a, b   vmath.Vec2
		ra, rb float64
		want   bool
	}{
		{"Overlapping", vmath.Vec2{}, vmath.Vec2{X: 5}, 3, 3, true},
		{"Exactly touching", vmath.Vec2{}, vmath.Vec2{X: 6}, 3, 3, true},
		{"Separated", vmath.Vec2{}, vmath.Vec2{X: 10}, 3, 3, false},
		{"Concentric", vmath.Vec2{X: 1, Y: 1}, vmath.Vec2{X: 1, Y: 1}, 2, 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CircleCircle(tt.a, tt.ra, tt.b, tt.rb); got != tt.want {
				t.Errorf("CircleCircle = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCircleAABB(t *testing.T) {
	box := vmath.Vec2{X: 10, Y: 10}

	tests := []struct {
		name   string
		center vmath.Vec2
		radius float64
		want   bool
	}{
		{"Circle center inside box", vmath.Vec2{X: 10, Y: 10}, 1, true},
		{"Touching edge", vmath.Vec2{X: 17, Y: 10}, 2, true},
		{"Near corner inside reach", vmath.Vec2{X: 16, Y: 16}, 2, true},
		{"Near corner out of reach", vmath.Vec2{X: 18, Y: 18}, 2, false},
		{"Far away", vmath.Vec2{X: 50, Y: 50}, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CircleAABB(tt.center, tt.radius, box, 5, 5); got != tt.want {
				t.Errorf("CircleAABB = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAABBAABB(t *testing.T) {
	tests := []struct {
		name string
		a, b vmath.Vec2
		want bool
	}{
		{"Overlapping", vmath.Vec2{}, vmath.Vec2{X: 3, Y: 3}, true},
		{"Touching edges", vmath.Vec2{}, vmath.Vec2{X: 10}, true},
		{"Separated on X", vmath.Vec2{}, vmath.Vec2{X: 20}, false},
		{"Separated on Y only", vmath.Vec2{}, vmath.Vec2{X: 2, Y: 20}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AABBAABB(tt.a, 5, 5, tt.b, 5, 5); got != tt.want {
				t.Errorf("AABBAABB = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOverlapDispatch(t *testing.T) {
	circle := Circle(3)
	box := Box(5, 5)

	// Mixed pair is symmetric regardless of argument order
	cPos := vmath.Vec2{X: 7, Y: 0}
	bPos := vmath.Vec2{}
	if !Overlap(circle, cPos, box, bPos) {
		t.Error("circle-box overlap not detected")
	}
	if !Overlap(box, bPos, circle, cPos) {
		t.Error("box-circle overlap not detected")
	}

	if Overlap(circle, vmath.Vec2{X: 100}, box, bPos) {
		t.Error("distant circle-box reported overlapping")
	}
}

func TestBounds(t *testing.T) {
	min, max := Bounds(Circle(4), vmath.Vec2{X: 10, Y: 20})
	if min.X != 6 || min.Y != 16 || max.X != 14 || max.Y != 24 {
		t.Errorf("circle bounds = %v..%v", min, max)
	}

	min, max = Bounds(Box(2, 3), vmath.Vec2{X: 0, Y: 0})
	if min.X != -2 || min.Y != -3 || max.X != 2 || max.Y != 3 {
		t.Errorf("box bounds = %v..%v", min, max)
	}
}
