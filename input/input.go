package input

import (
	"github.com/go-gl/mathgl/mgl64"
)

// ClickSlop is how far the pointer may travel between press and release
// for the gesture to still count as a click.
const ClickSlop = 5.0

// Snapshot is the pointer state sampled once per tick.
type Snapshot struct {
	X, Y    float64
	Primary bool    // primary button held
	Inside  bool    // pointer over the interactive surface
	OverUI  bool    // pointer over a screen-space widget
	WheelY  float64 // positive scrolls up
}

func (s Snapshot) Pos() mgl64.Vec2 { return mgl64.Vec2{s.X, s.Y} }

// Pannable is the surface the router drives.
type Pannable interface {
	BeginPan(p mgl64.Vec2, primary bool) bool
	ContinuePan(p mgl64.Vec2) bool
	EndPan()
	ZoomAtPoint(p mgl64.Vec2, deltaY float64)
}

// Click is a press and release on the surface without a drag in between.
type Click struct {
	Pos mgl64.Vec2
}

// Router turns per-tick snapshots into pan, zoom and click events.
type Router struct {
	target Pannable
	prev   Snapshot

	pressed bool // press started on the surface
	pressAt mgl64.Vec2
	travel  float64
}

func NewRouter(target Pannable) *Router {
	return &Router{target: target}
}

// Update feeds one snapshot. It returns a click when a press on the
// surface is released in place.
func (r *Router) Update(s Snapshot) (Click, bool) {
	defer func() { r.prev = s }()
	p := s.Pos()

	// Leaving the surface always ends the drag, even with the button held.
	if !s.Inside {
		r.cancel()
		return Click{}, false
	}

	if s.Primary && !r.prev.Primary && !s.OverUI {
		r.target.BeginPan(p, true)
		r.pressed = true
		r.pressAt = p
		r.travel = 0
	}

	r.target.ContinuePan(p)
	if r.pressed {
		if d := p.Sub(r.pressAt).Len(); d > r.travel {
			r.travel = d
		}
	}

	var click Click
	clicked := false
	if !s.Primary && r.prev.Primary {
		r.target.EndPan()
		if r.pressed && r.travel <= ClickSlop {
			click, clicked = Click{Pos: p}, true
		}
		r.pressed = false
	}

	if s.WheelY != 0 && !s.OverUI {
		// Screen wheel up is a negative DOM deltaY.
		r.target.ZoomAtPoint(p, -s.WheelY)
	}
	return click, clicked
}

// Cancel drops any drag in progress, e.g. when the view is torn down.
func (r *Router) Cancel() {
	r.cancel()
	r.prev = Snapshot{}
}

func (r *Router) cancel() {
	r.target.EndPan()
	r.pressed = false
}
