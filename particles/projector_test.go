package particles

import (
	"math"
	"testing"
)

func TestProjectOriginToCenter(t *testing.T) {
	f := NewDrift(DriftOptions{Count: 2, Seed: 1})
	buf := f.Positions()
	copy(buf, []float32{0, 0, 0, 0, 0, 20})

	pts := DefaultProjector().Project(f, 800, 600, nil)
	if len(pts) != 1 {
		t.Fatalf("Expected the point behind the camera to be culled, got %d points", len(pts))
	}
	if math.Abs(pts[0].X()-400) > 1e-6 || math.Abs(pts[0].Y()-300) > 1e-6 {
		t.Errorf("Expected origin at (400, 300), got %v", pts[0])
	}
}

func TestProjectUpIsUp(t *testing.T) {
	f := NewDrift(DriftOptions{Count: 1, Seed: 1})
	copy(f.Positions(), []float32{0, 2, 0})
	pts := DefaultProjector().Project(f, 800, 600, nil)
	if len(pts) != 1 || pts[0].Y() >= 300 {
		t.Errorf("Expected positive y above centre, got %v", pts)
	}
}

func TestProjectZeroSurface(t *testing.T) {
	e := NewExplosion(ExplosionOptions{Count: 10})
	if pts := DefaultProjector().Project(e, 0, 0, nil); len(pts) != 0 {
		t.Errorf("Expected no points on empty surface, got %d", len(pts))
	}
}
