package canvas

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func near(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func nearVec(a, b mgl64.Vec2) bool {
	return near(a.X(), b.X()) && near(a.Y(), b.Y())
}

func measured(w, h float64) *Viewport {
	v := NewViewport(DefaultOptions())
	v.Measure(w, h)
	return v
}

func TestMeasureCentersOrigin(t *testing.T) {
	v := NewViewport(DefaultOptions())
	if v.Offset() != (mgl64.Vec2{}) {
		t.Errorf("Expected provisional zero offset, got %v", v.Offset())
	}

	v.Measure(1000, 800)
	if want := (mgl64.Vec2{-1000, -600}); !nearVec(v.Offset(), want) {
		t.Errorf("Expected offset %v, got %v", want, v.Offset())
	}
	if v.Scale() != 1 {
		t.Errorf("Expected scale 1, got %v", v.Scale())
	}

	// Only the first measurement recenters.
	v.ContinuePan(mgl64.Vec2{0, 0})
	v.BeginPan(mgl64.Vec2{0, 0}, true)
	v.ContinuePan(mgl64.Vec2{40, 40})
	v.EndPan()
	v.Measure(1200, 900)
	if want := (mgl64.Vec2{-960, -560}); !nearVec(v.Offset(), want) {
		t.Errorf("Expected resize to keep offset %v, got %v", want, v.Offset())
	}
}

func TestWheelZoomExample(t *testing.T) {
	v := measured(1000, 800)
	v.ZoomAtPoint(mgl64.Vec2{500, 400}, -1)

	if !near(v.Scale(), 1.03) {
		t.Errorf("Expected scale 1.03, got %v", v.Scale())
	}
	if want := (mgl64.Vec2{-1045, -630}); !nearVec(v.Offset(), want) {
		t.Errorf("Expected offset %v, got %v", want, v.Offset())
	}
	if v.Percent() != 103 {
		t.Errorf("Expected 103%%, got %d%%", v.Percent())
	}
}

func TestZoomKeepsPointUnderCursor(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	v := measured(1280, 720)

	for i := 0; i < 500; i++ {
		p := mgl64.Vec2{rng.Float64()*1280 - 100, rng.Float64()*720 - 100}
		sign := []float64{-3, 0, 2}[rng.IntN(3)]

		before := v.ScreenToWorld(p)
		v.ZoomAtPoint(p, sign)
		after := v.ScreenToWorld(p)

		if math.Abs(before.X()-after.X()) > 1e-6 || math.Abs(before.Y()-after.Y()) > 1e-6 {
			t.Fatalf("step %d: world point under cursor moved from %v to %v", i, before, after)
		}
	}
}

func TestScaleStaysInBounds(t *testing.T) {
	v := measured(800, 600)
	for i := 0; i < 200; i++ {
		v.ZoomAtPoint(mgl64.Vec2{10, 10}, -1)
		v.ZoomStep(1)
	}
	if v.Scale() != DefaultMaxScale {
		t.Errorf("Expected scale clamped to %v, got %v", DefaultMaxScale, v.Scale())
	}
	for i := 0; i < 200; i++ {
		v.ZoomAtPoint(mgl64.Vec2{700, 20}, 1)
		v.ZoomStep(-1)
		if v.Scale() < DefaultMinScale || v.Scale() > DefaultMaxScale {
			t.Fatalf("Scale left bounds: %v", v.Scale())
		}
	}
	if v.Scale() != DefaultMinScale {
		t.Errorf("Expected scale clamped to %v, got %v", DefaultMinScale, v.Scale())
	}
}

func TestZeroWheelDeltaKeepsState(t *testing.T) {
	v := measured(1000, 800)
	v.ZoomAtPoint(mgl64.Vec2{300, 200}, -1)
	offset, scale := v.Offset(), v.Scale()

	v.ZoomAtPoint(mgl64.Vec2{123, 456}, 0)
	v.ZoomAtPoint(mgl64.Vec2{123, 456}, 0)
	if v.Scale() != scale || !nearVec(v.Offset(), offset) {
		t.Errorf("Zero delta changed state: %v/%v -> %v/%v", offset, scale, v.Offset(), v.Scale())
	}
}

func TestContinuePanWithoutBeginIsNoop(t *testing.T) {
	v := measured(1000, 800)
	offset := v.Offset()
	if v.ContinuePan(mgl64.Vec2{900, 10}) {
		t.Errorf("Expected ContinuePan to report no change")
	}
	if v.Offset() != offset {
		t.Errorf("Expected offset %v, got %v", offset, v.Offset())
	}
}

func TestPanFollowsPointer(t *testing.T) {
	v := measured(1000, 800)
	start := v.Offset()

	if !v.BeginPan(mgl64.Vec2{100, 100}, true) {
		t.Fatalf("Expected drag to start")
	}
	v.ContinuePan(mgl64.Vec2{100, 100})
	if !nearVec(v.Offset(), start) {
		t.Errorf("Zero-move drag changed offset: %v -> %v", start, v.Offset())
	}

	v.ContinuePan(mgl64.Vec2{130, 80})
	if want := start.Add(mgl64.Vec2{30, -20}); !nearVec(v.Offset(), want) {
		t.Errorf("Expected offset %v, got %v", want, v.Offset())
	}

	v.EndPan()
	v.EndPan()
	if v.Dragging() {
		t.Errorf("Expected drag to end")
	}
	moved := v.Offset()
	v.ContinuePan(mgl64.Vec2{500, 500})
	if v.Offset() != moved {
		t.Errorf("Offset changed after EndPan")
	}
}

func TestBeginPanIgnoresSecondaryAndRepeat(t *testing.T) {
	v := measured(1000, 800)
	if v.BeginPan(mgl64.Vec2{10, 10}, false) {
		t.Errorf("Secondary button must not start a drag")
	}
	v.BeginPan(mgl64.Vec2{10, 10}, true)
	if v.BeginPan(mgl64.Vec2{90, 90}, true) {
		t.Errorf("Second BeginPan must be a no-op")
	}
	v.ContinuePan(mgl64.Vec2{20, 10})
	if want := (mgl64.Vec2{-990, -600}); !nearVec(v.Offset(), want) {
		t.Errorf("Expected anchor from first press, offset %v, got %v", want, v.Offset())
	}
}

func TestZoomDuringDragIsContinuous(t *testing.T) {
	v := measured(1000, 800)
	v.BeginPan(mgl64.Vec2{200, 200}, true)
	v.ZoomAtPoint(mgl64.Vec2{200, 200}, -1)
	zoomed := v.Offset()
	v.ContinuePan(mgl64.Vec2{200, 200})
	if !nearVec(v.Offset(), zoomed) {
		t.Errorf("Expected drag to continue from %v, got %v", zoomed, v.Offset())
	}
}

func TestResetDuringDragSticks(t *testing.T) {
	v := measured(1000, 800)
	v.BeginPan(mgl64.Vec2{100, 100}, true)
	v.ContinuePan(mgl64.Vec2{400, 300})
	v.ZoomAtPoint(mgl64.Vec2{400, 300}, -1)

	v.Reset()
	want := mgl64.Vec2{-1000, -600}
	if !nearVec(v.Offset(), want) || v.Scale() != 1 {
		t.Fatalf("Expected reset to %v at scale 1, got %v/%v", want, v.Offset(), v.Scale())
	}

	// The next tick at the same pointer position must not undo the reset.
	v.ContinuePan(mgl64.Vec2{400, 300})
	if !nearVec(v.Offset(), want) {
		t.Errorf("Drag undid reset: offset %v, expected %v", v.Offset(), want)
	}
	v.ContinuePan(mgl64.Vec2{410, 290})
	if w := want.Add(mgl64.Vec2{10, -10}); !nearVec(v.Offset(), w) {
		t.Errorf("Expected drag to continue from reset, offset %v, expected %v", v.Offset(), w)
	}
}

func TestResetIsDeterministic(t *testing.T) {
	v := measured(1000, 800)
	v.Reset()
	offset, scale := v.Offset(), v.Scale()

	v.ZoomAtPoint(mgl64.Vec2{1, 2}, -1)
	v.ZoomStep(1)
	v.BeginPan(mgl64.Vec2{0, 0}, true)
	v.ContinuePan(mgl64.Vec2{333, -77})
	v.EndPan()
	v.Reset()

	if v.Offset() != offset || v.Scale() != scale {
		t.Errorf("Reset gave %v/%v, expected %v/%v", v.Offset(), v.Scale(), offset, scale)
	}
}

func TestZoomStepKeepsCenter(t *testing.T) {
	v := measured(1000, 800)
	center := v.ScreenToWorld(v.Center())
	for i := 0; i < 3; i++ {
		v.ZoomStep(1)
	}
	v.ZoomStep(-1)
	if got := v.ScreenToWorld(v.Center()); !nearVec(got, center) {
		t.Errorf("Visual centre drifted from %v to %v", center, got)
	}
	if !near(v.Scale(), 1.2*1.2*1.2*0.8) {
		t.Errorf("Unexpected scale %v", v.Scale())
	}
	v.ZoomStep(0)
	if !near(v.Scale(), 1.2*1.2*1.2*0.8) {
		t.Errorf("ZoomStep(0) changed scale to %v", v.Scale())
	}
}

func TestTransformString(t *testing.T) {
	v := measured(1000, 800)
	if got, want := v.Transform().String(), "translate(-1000px, -600px) scale(1)"; got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestWorldScreenRoundTrip(t *testing.T) {
	v := measured(640, 480)
	v.ZoomAtPoint(mgl64.Vec2{50, 70}, -1)
	w := mgl64.Vec2{1500, 1000}
	if got := v.ScreenToWorld(v.WorldToScreen(w)); !nearVec(got, w) {
		t.Errorf("Round trip gave %v, expected %v", got, w)
	}
}

func TestOptionsSanitized(t *testing.T) {
	v := NewViewport(Options{Origin: mgl64.Vec2{0, 0}, MinScale: 3, MaxScale: 1})
	for i := 0; i < 100; i++ {
		v.ZoomAtPoint(mgl64.Vec2{}, 1)
	}
	if v.Scale() != DefaultMinScale {
		t.Errorf("Expected fallback bounds, got scale %v", v.Scale())
	}
}

func TestGridLines(t *testing.T) {
	v := measured(200, 100)
	// offset is (-1400, -950); 50px steps
	xs, ys := v.GridLines(GridSpacing)
	if len(xs) != 5 || xs[0] != 0 {
		t.Errorf("Unexpected vertical lines %v", xs)
	}
	if len(ys) != 3 || ys[0] != 0 || ys[2] != 100 {
		t.Errorf("Unexpected horizontal lines %v", ys)
	}

	v.BeginPan(mgl64.Vec2{}, true)
	v.ContinuePan(mgl64.Vec2{-10, 0})
	xs, _ = v.GridLines(GridSpacing)
	if xs[0] != 40 {
		t.Errorf("Expected first line at 40, got %v", xs[0])
	}
}
