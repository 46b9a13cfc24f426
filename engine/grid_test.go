package engine

import (
	"testing"

	"github.com/lixenwraith/horde/core"
	"github.com/lixenwraith/horde/physics"
	"github.com/lixenwraith/horde/vmath"
)

func TestPackCellNegativeCoords(t *testing.T) {
	// Distinct signed coordinates must pack to distinct keys
	keys := map[uint64]struct{}{}
	coords := []struct{ x, y int32 }{
		{0, 0}, {-1, 0}, {0, -1}, {-1, -1}, {1, 1}, {-1, 1}, {1, -1},
	}
	for _, c := range coords {
		key := PackCell(c.x, c.y)
		if _, dup := keys[key]; dup {
			t.Errorf("duplicate key for (%d,%d)", c.x, c.y)
		}
		keys[key] = struct{}{}
	}
}

func TestGridInsertAndQuery(t *testing.T) {
	g := NewSpatialGrid(64)

	a := core.Entity(1)
	b := core.Entity(2)
	far := core.Entity(3)

	g.Insert(a, physics.Circle(10), vmath.Vec2{X: 30, Y: 30})
	g.Insert(b, physics.Circle(10), vmath.Vec2{X: 50, Y: 50})
	g.Insert(far, physics.Circle(10), vmath.Vec2{X: 1000, Y: 1000})

	got := g.QueryRect(vmath.Vec2{X: 0, Y: 0}, vmath.Vec2{X: 63, Y: 63})
	if len(got) != 2 {
		t.Fatalf("query returned %d entities, want 2", len(got))
	}
	for _, e := range got {
		if e == far {
			t.Error("distant entity returned by local query")
		}
	}
}

func TestGridMultiCellInsertDeduplicated(t *testing.T) {
	g := NewSpatialGrid(64)

	// Straddles the boundary between four cells
	e := core.Entity(7)
	g.Insert(e, physics.Circle(20), vmath.Vec2{X: 64, Y: 64})

	got := g.QueryRect(vmath.Vec2{X: 0, Y: 0}, vmath.Vec2{X: 128, Y: 128})
	count := 0
	for _, found := range got {
		if found == e {
			count++
		}
	}
	if count != 1 {
		t.Errorf("entity returned %d times, want 1", count)
	}
}

func TestGridNegativeSpace(t *testing.T) {
	g := NewSpatialGrid(64)

	e := core.Entity(4)
	g.Insert(e, physics.Circle(5), vmath.Vec2{X: -100, Y: -100})

	got := g.QueryRect(vmath.Vec2{X: -120, Y: -120}, vmath.Vec2{X: -80, Y: -80})
	if len(got) != 1 || got[0] != e {
		t.Errorf("negative-space query = %v", got)
	}

	// A query on the positive side must not alias onto it
	got = g.QueryRect(vmath.Vec2{X: 80, Y: 80}, vmath.Vec2{X: 120, Y: 120})
	if len(got) != 0 {
		t.Errorf("positive-space query aliased: %v", got)
	}
}

func TestGridClearKeepsNothingVisible(t *testing.T) {
	g := NewSpatialGrid(64)
	g.Insert(core.Entity(1), physics.Circle(5), vmath.Vec2{X: 10, Y: 10})

	g.Clear()

	if got := g.QueryRect(vmath.Vec2{X: 0, Y: 0}, vmath.Vec2{X: 63, Y: 63}); len(got) != 0 {
		t.Errorf("entities visible after Clear: %v", got)
	}
	g.ForEachCell(func(entities []core.Entity) {
		t.Errorf("non-empty cell after Clear: %v", entities)
	})
}
