package canvas

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	DefaultMinScale = 0.3
	DefaultMaxScale = 2.0

	// Wheel factors are applied once per wheel event, only the sign of the delta matters.
	WheelZoomIn  = 1.03
	WheelZoomOut = 0.97

	// Step factors back the toolbar and keyboard zoom.
	StepZoomIn  = 1.2
	StepZoomOut = 0.8
)

// DefaultOrigin is the logical point of the map that is centred on mount.
var DefaultOrigin = mgl64.Vec2{1500, 1000}

// Options configures a Viewport. Zero fields fall back to the defaults.
type Options struct {
	Origin   mgl64.Vec2
	MinScale float64
	MaxScale float64
	WheelIn  float64
	WheelOut float64
	StepIn   float64
	StepOut  float64
}

func DefaultOptions() Options {
	return Options{
		Origin:   DefaultOrigin,
		MinScale: DefaultMinScale,
		MaxScale: DefaultMaxScale,
		WheelIn:  WheelZoomIn,
		WheelOut: WheelZoomOut,
		StepIn:   StepZoomIn,
		StepOut:  StepZoomOut,
	}
}

func (o Options) sanitized() Options {
	d := DefaultOptions()
	if o.MinScale <= 0 || o.MaxScale <= 0 || o.MinScale > o.MaxScale {
		o.MinScale, o.MaxScale = d.MinScale, d.MaxScale
	}
	if o.WheelIn <= 1 {
		o.WheelIn = d.WheelIn
	}
	if o.WheelOut <= 0 || o.WheelOut >= 1 {
		o.WheelOut = d.WheelOut
	}
	if o.StepIn <= 1 {
		o.StepIn = d.StepIn
	}
	if o.StepOut <= 0 || o.StepOut >= 1 {
		o.StepOut = d.StepOut
	}
	return o
}

// Viewport holds the pan offset and zoom scale of a 2D canvas.
// Screen = World*scale + offset.
type Viewport struct {
	opts Options

	offset mgl64.Vec2
	scale  float64

	width, height float64
	measured      bool

	// Drag state
	dragging bool
	anchor   mgl64.Vec2 // pointer minus offset at drag start
}

// NewViewport returns a viewport at scale 1 with a provisional zero offset.
// The offset is corrected by the first call to Measure.
func NewViewport(opts Options) *Viewport {
	opts = opts.sanitized()
	return &Viewport{
		opts:  opts,
		scale: mgl64.Clamp(1, opts.MinScale, opts.MaxScale),
	}
}

// Measure records the size of the visible surface. The first call centres
// the logical origin; later calls only update the size used by Reset and ZoomStep.
func (v *Viewport) Measure(width, height float64) {
	v.width, v.height = width, height
	if v.measured {
		return
	}
	v.measured = true
	v.offset = v.centered()
}

func (v *Viewport) centered() mgl64.Vec2 {
	return mgl64.Vec2{v.width / 2, v.height / 2}.Sub(v.opts.Origin)
}

// BeginPan starts a drag at p. Only the primary button pans, and a drag
// already in progress keeps its anchor.
func (v *Viewport) BeginPan(p mgl64.Vec2, primary bool) bool {
	if !primary || v.dragging {
		return false
	}
	v.dragging = true
	v.anchor = p.Sub(v.offset)
	return true
}

// ContinuePan moves the offset so the anchor stays under p. Safe to call on
// every pointer move.
func (v *Viewport) ContinuePan(p mgl64.Vec2) bool {
	if !v.dragging {
		return false
	}
	v.offset = p.Sub(v.anchor)
	return true
}

func (v *Viewport) EndPan() {
	v.dragging = false
}

// ZoomAtPoint applies one wheel step at pointer p. deltaY follows the DOM
// convention: positive zooms out, negative zooms in, zero keeps the scale.
func (v *Viewport) ZoomAtPoint(p mgl64.Vec2, deltaY float64) {
	factor := 1.0
	switch {
	case deltaY > 0:
		factor = v.opts.WheelOut
	case deltaY < 0:
		factor = v.opts.WheelIn
	}
	v.zoomAt(p, factor)
}

// ZoomStep zooms by the step factor around the centre of the measured
// surface, so repeated steps keep the visible centre in place.
func (v *Viewport) ZoomStep(dir int) {
	switch {
	case dir > 0:
		v.zoomAt(v.Center(), v.opts.StepIn)
	case dir < 0:
		v.zoomAt(v.Center(), v.opts.StepOut)
	}
}

func (v *Viewport) zoomAt(p mgl64.Vec2, factor float64) {
	old := v.scale
	next := mgl64.Clamp(old*factor, v.opts.MinScale, v.opts.MaxScale)

	world := p.Sub(v.offset).Mul(1 / old)
	prev := v.offset
	v.offset = p.Sub(world.Mul(next))
	v.scale = next

	// Keep an active drag continuous across the zoom.
	if v.dragging {
		v.anchor = v.anchor.Sub(v.offset.Sub(prev))
	}
}

// Reset restores the mount-time centering and scale 1.
// An active drag continues from the reset position.
func (v *Viewport) Reset() {
	prev := v.offset
	v.offset = v.centered()
	v.scale = mgl64.Clamp(1, v.opts.MinScale, v.opts.MaxScale)
	if v.dragging {
		v.anchor = v.anchor.Sub(v.offset.Sub(prev))
	}
}

func (v *Viewport) Offset() mgl64.Vec2 { return v.offset }
func (v *Viewport) Scale() float64     { return v.scale }
func (v *Viewport) Dragging() bool     { return v.dragging }
func (v *Viewport) Measured() bool     { return v.measured }
func (v *Viewport) Origin() mgl64.Vec2 { return v.opts.Origin }

// Center is the middle of the measured surface in screen coordinates.
func (v *Viewport) Center() mgl64.Vec2 {
	return mgl64.Vec2{v.width / 2, v.height / 2}
}

// Percent is the zoom level shown in the toolbar.
func (v *Viewport) Percent() int {
	return int(math.Round(v.scale * 100))
}

func (v *Viewport) WorldToScreen(w mgl64.Vec2) mgl64.Vec2 {
	return w.Mul(v.scale).Add(v.offset)
}

func (v *Viewport) ScreenToWorld(s mgl64.Vec2) mgl64.Vec2 {
	return s.Sub(v.offset).Mul(1 / v.scale)
}

// Transform describes the content layer placement with a top-left origin.
type Transform struct {
	X, Y  float64
	Scale float64
}

func (v *Viewport) Transform() Transform {
	return Transform{X: v.offset.X(), Y: v.offset.Y(), Scale: v.scale}
}

func (t Transform) String() string {
	return fmt.Sprintf("translate(%gpx, %gpx) scale(%g)", t.X, t.Y, t.Scale)
}
