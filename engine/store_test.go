package engine

import (
	"testing"

	"github.com/lixenwraith/horde/component"
	"github.com/lixenwraith/horde/core"
	"github.com/lixenwraith/horde/vmath"
)

func TestStoreSetGetRemove(t *testing.T) {
	s := NewStore[component.TransformComponent]()

	e := core.Entity(1)
	s.Set(e, component.TransformComponent{Pos: vmath.Vec2{X: 3, Y: 4}})

	got, ok := s.Get(e)
	if !ok {
		t.Fatal("component not found after Set")
	}
	if got.Pos.X != 3 || got.Pos.Y != 4 {
		t.Errorf("got pos %v", got.Pos)
	}

	// Set on an existing entity updates in place, no duplicate
	s.Set(e, component.TransformComponent{Pos: vmath.Vec2{X: 9}})
	if s.Count() != 1 {
		t.Errorf("count after update = %d, want 1", s.Count())
	}

	s.Remove(e)
	if s.Has(e) {
		t.Error("component still present after Remove")
	}
	if s.Count() != 0 {
		t.Errorf("count after remove = %d", s.Count())
	}

	// Removing a missing entity is a no-op
	s.Remove(core.Entity(42))
}

func TestStoreDenseIterationStaysPacked(t *testing.T) {
	s := NewStore[component.VelocityComponent]()
	for i := 1; i <= 5; i++ {
		s.Set(core.Entity(i), component.VelocityComponent{})
	}

	s.Remove(core.Entity(3))

	entities := s.Entities()
	if len(entities) != 4 {
		t.Fatalf("len = %d, want 4", len(entities))
	}
	for _, e := range entities {
		if e == 3 {
			t.Error("removed entity still in dense slice")
		}
		if !s.Has(e) {
			t.Errorf("dense slice references missing entity %d", e)
		}
	}
}

func TestStoreRemoveBatch(t *testing.T) {
	s := NewStore[component.HealthComponent]()
	for i := 1; i <= 10; i++ {
		s.Set(core.Entity(i), component.HealthComponent{Current: i})
	}

	s.RemoveBatch([]core.Entity{2, 4, 6, 99})

	if s.Count() != 7 {
		t.Fatalf("count = %d, want 7", s.Count())
	}
	for _, e := range []core.Entity{2, 4, 6} {
		if s.Has(e) {
			t.Errorf("entity %d survived batch removal", e)
		}
	}
	for _, e := range []core.Entity{1, 3, 5, 7, 8, 9, 10} {
		if !s.Has(e) {
			t.Errorf("entity %d lost in batch removal", e)
		}
	}
}

func TestWorldDeactivateExactlyOnce(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()

	if !w.IsActive(e) {
		t.Fatal("entity not active after creation")
	}
	if !w.Deactivate(e) {
		t.Fatal("first Deactivate did not report the flip")
	}
	if w.Deactivate(e) {
		t.Error("second Deactivate reported the flip again")
	}
	if w.IsActive(e) {
		t.Error("entity active after Deactivate")
	}
}

func TestWorldDestroyBatchStripsAllStores(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	w.Transforms.Set(e, component.TransformComponent{})
	w.Healths.Set(e, component.HealthComponent{Current: 10})
	w.Colliders.Set(e, component.ColliderComponent{})

	w.DestroyBatch([]core.Entity{e})

	if w.Transforms.Has(e) || w.Healths.Has(e) || w.Colliders.Has(e) {
		t.Error("components survived DestroyBatch")
	}
	if w.IsActive(e) {
		t.Error("entity active after DestroyBatch")
	}
}
