package particles

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

// State of an explosion field.
type State int

const (
	Idle State = iota
	Exploding
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Exploding:
		return "exploding"
	}
	return "unknown"
}

type ExplosionOptions struct {
	Count     int
	MinRadius float64
	MaxRadius float64
	Speed     float64 // outward units per second
	// Rotation periods: the field turns by -dt/PeriodX about X and -dt/PeriodY about Y.
	PeriodX float64
	PeriodY float64
	Seed    uint64
}

func DefaultExplosionOptions() ExplosionOptions {
	return ExplosionOptions{
		Count:     5000,
		MinRadius: 1.5,
		MaxRadius: 3.0,
		Speed:     5.0,
		PeriodX:   15,
		PeriodY:   20,
	}
}

// Explosion is a rotating shell of points that can be blown outwards once.
// Going back to Idle requires Reset, which discards the whole buffer.
type Explosion struct {
	opts ExplosionOptions
	rng  *rand.Rand

	buf        []float32
	state      State
	rotX, rotY float64
}

func NewExplosion(opts ExplosionOptions) *Explosion {
	d := DefaultExplosionOptions()
	if opts.Count <= 0 {
		opts.Count = d.Count
	}
	if opts.MinRadius <= 0 || opts.MaxRadius < opts.MinRadius {
		opts.MinRadius, opts.MaxRadius = d.MinRadius, d.MaxRadius
	}
	if opts.Speed <= 0 {
		opts.Speed = d.Speed
	}
	if opts.PeriodX <= 0 {
		opts.PeriodX = d.PeriodX
	}
	if opts.PeriodY <= 0 {
		opts.PeriodY = d.PeriodY
	}
	e := &Explosion{
		opts: opts,
		rng:  rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15)),
	}
	e.Reset()
	return e
}

// Reset recreates the shell and returns to Idle.
func (e *Explosion) Reset() {
	buf := make([]float32, e.opts.Count*3)
	for i := 0; i < e.opts.Count; i++ {
		r := e.opts.MinRadius + e.rng.Float64()*(e.opts.MaxRadius-e.opts.MinRadius)
		theta := (e.rng.Float64()*2 - 1) * math.Pi
		phi := (e.rng.Float64()*2 - 1) * math.Pi
		setPoint(buf, i, mgl64.SphericalToCartesian(r, theta, phi))
	}
	e.buf = buf
	e.state = Idle
	e.rotX, e.rotY = 0, 0
}

// Trigger starts the explosion. It reports false if one is already running.
func (e *Explosion) Trigger() bool {
	if e.state == Exploding {
		return false
	}
	e.state = Exploding
	return true
}

func (e *Explosion) Advance(dt float64) {
	if !validDelta(dt) {
		return
	}
	e.rotX -= dt / e.opts.PeriodX
	e.rotY -= dt / e.opts.PeriodY

	if e.state != Exploding {
		return
	}
	step := e.opts.Speed * dt
	for i := 0; i < e.opts.Count; i++ {
		p := point(e.buf, i)
		l := p.Len()
		if l == 0 {
			continue
		}
		setPoint(e.buf, i, p.Add(p.Mul(step/l)))
	}
}

func (e *Explosion) State() State             { return e.state }
func (e *Explosion) Positions() []float32     { return e.buf }
func (e *Explosion) Len() int                 { return e.opts.Count }
func (e *Explosion) Rotation() (x, y float64) { return e.rotX, e.rotY }

// Model is the rigid rotation applied to the whole buffer when drawing.
func (e *Explosion) Model() mgl64.Mat4 {
	return mgl64.HomogRotate3DX(e.rotX).Mul4(mgl64.HomogRotate3DY(e.rotY))
}
