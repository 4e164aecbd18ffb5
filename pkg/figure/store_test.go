package figure

import (
	"fmt"
	"testing"
)

func sequentialIDs() StoreOption {
	n := 0
	return WithIDGenerator(func() PointID {
		n++
		return PointID(fmt.Sprintf("p%d", n))
	})
}

func TestAddPointCreatesNamedPoints(t *testing.T) {
	store := NewStore()

	a, created := store.AddPoint(10, 20, 10)
	if !created {
		t.Fatalf("AddPoint failed: expected a new point")
	}
	b, _ := store.AddPoint(100, 20, 10)

	if a == b {
		t.Errorf("AddPoint failed: ids are not unique (%v)", a)
	}

	pa, ok := store.ResolvePoint(a)
	if !ok || pa.Name != "A" || pa.X != 10 || pa.Y != 20 {
		t.Errorf("ResolvePoint failed: got %+v (ok=%v)", pa, ok)
	}
	pb, _ := store.ResolvePoint(b)
	if pb.Name != "B" {
		t.Errorf("Second point name failed: expected B, got %q", pb.Name)
	}
}

func TestAddPointReusesWithinRadius(t *testing.T) {
	store := NewStore()
	a, _ := store.AddPoint(50, 50, 10)

	id, created := store.AddPoint(56, 58, 10) // distance exactly 10
	if created || id != a {
		t.Errorf("Reuse failed: expected %v without creation, got %v (created=%v)", a, id, created)
	}
	if store.PointCount() != 1 {
		t.Errorf("Reuse failed: expected 1 point, got %d", store.PointCount())
	}

	_, created = store.AddPoint(60.5, 50, 10)
	if !created {
		t.Errorf("AddPoint failed: point outside radius should be created")
	}
	if store.PointCount() != 2 {
		t.Errorf("AddPoint failed: expected 2 points, got %d", store.PointCount())
	}
}

func TestAddPointPicksNearestCandidate(t *testing.T) {
	store := NewStore()
	store.AddPoint(0, 0, 1)
	near, _ := store.AddPoint(8, 0, 1)

	id, created := store.AddPoint(6, 0, 10)
	if created || id != near {
		t.Errorf("Nearest reuse failed: expected %v, got %v (created=%v)", near, id, created)
	}
}

func TestPointCountBoundedByClicks(t *testing.T) {
	store := NewStore()
	clicks := [][2]float64{{0, 0}, {3, 3}, {100, 0}, {100, 5}, {200, 200}, {0, 0}}

	for i, c := range clicks {
		before := store.PointCount()
		store.AddPoint(c[0], c[1], 10)
		after := store.PointCount()
		if after < before || after > before+1 {
			t.Errorf("Click %d changed point count from %d to %d", i, before, after)
		}
		if after > i+1 {
			t.Errorf("Click %d: %d points exceed %d clicks", i, after, i+1)
		}
	}

	if store.PointCount() != 3 {
		t.Errorf("Expected 3 points, got %d", store.PointCount())
	}
}

func TestRenamePoint(t *testing.T) {
	store := NewStore()
	id, _ := store.AddPoint(0, 0, 10)

	if store.RenamePoint(id, "   ") {
		t.Errorf("RenamePoint failed: blank name should be rejected")
	}
	if p, _ := store.ResolvePoint(id); p.Name != "A" {
		t.Errorf("RenamePoint failed: blank name changed name to %q", p.Name)
	}

	if !store.RenamePoint(id, "  O' ") {
		t.Errorf("RenamePoint failed: expected success")
	}
	if p, _ := store.ResolvePoint(id); p.Name != "O'" {
		t.Errorf("RenamePoint failed: expected %q, got %q", "O'", p.Name)
	}

	if store.RenamePoint("missing", "X") {
		t.Errorf("RenamePoint failed: unknown id should be ignored")
	}
}

func TestResolvePointMissing(t *testing.T) {
	store := NewStore()
	if _, ok := store.ResolvePoint("nope"); ok {
		t.Errorf("ResolvePoint failed: expected not found")
	}
}

func TestResolveAllSkipsDangling(t *testing.T) {
	store := NewStore(sequentialIDs())
	a, _ := store.AddPoint(0, 0, 10)
	b, _ := store.AddPoint(50, 0, 10)

	if pts, ok := ResolveAll(store, Segment{A: a, B: b}); !ok || len(pts) != 2 {
		t.Errorf("ResolveAll failed: expected 2 points, got %v (ok=%v)", pts, ok)
	}
	if _, ok := ResolveAll(store, Angle{A: a, B: b, C: "ghost"}); ok {
		t.Errorf("ResolveAll failed: dangling reference should not resolve")
	}
}

func TestClear(t *testing.T) {
	store := NewStore()
	a, _ := store.AddPoint(0, 0, 10)
	b, _ := store.AddPoint(50, 0, 10)
	store.AddShape(Segment{A: a, B: b})

	store.Clear()

	if store.PointCount() != 0 || store.ShapeCount() != 0 {
		t.Errorf("Clear failed: %d points, %d shapes remain", store.PointCount(), store.ShapeCount())
	}
	if _, ok := store.ResolvePoint(a); ok {
		t.Errorf("Clear failed: old point still resolves")
	}

	id, _ := store.AddPoint(0, 0, 10)
	if p, _ := store.ResolvePoint(id); p.Name != "A" {
		t.Errorf("Clear failed: naming should restart, got %q", p.Name)
	}
}

func TestCloneDoesNotAlias(t *testing.T) {
	store := NewStore(sequentialIDs())
	a, _ := store.AddPoint(0, 0, 10)
	b, _ := store.AddPoint(50, 0, 10)
	c, _ := store.AddPoint(50, 50, 10)
	store.AddShape(Polygon{Points: []PointID{a, b, c}})

	clone := store.Clone()

	store.RenamePoint(a, "Q")
	store.AddPoint(200, 200, 10)
	store.AddShape(Segment{A: a, B: b})

	if clone.PointCount() != 3 || clone.ShapeCount() != 1 {
		t.Errorf("Clone failed: expected 3 points and 1 shape, got %d and %d", clone.PointCount(), clone.ShapeCount())
	}
	if p, _ := clone.ResolvePoint(a); p.Name != "A" {
		t.Errorf("Clone failed: rename leaked into clone (%q)", p.Name)
	}

	shapes := clone.Shapes()
	poly := shapes[0].(Polygon)
	poly.Points[0] = "mutated"
	if clone.Shapes()[0].PointIDs()[0] != a {
		t.Errorf("Shapes failed: returned polygon aliases store contents")
	}
}

func TestAddShapeCopiesPolygonIDs(t *testing.T) {
	store := NewStore()
	ids := []PointID{"a", "b", "c"}
	store.AddShape(Polygon{Points: ids})

	ids[0] = "z"
	if got := store.Shapes()[0].PointIDs()[0]; got != "a" {
		t.Errorf("AddShape failed: expected %q, got %q", "a", got)
	}
}
