package particles

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

type DriftOptions struct {
	Count    int
	SpreadX  float64 // x in [-SpreadX/2, SpreadX/2]
	SpreadZ  float64
	SpawnMin float64 // initial height range
	SpawnMax float64
	MinSpeed float64 // units per reference tick
	MaxSpeed float64
	Floor    float64
	Ceiling  float64
	// Respawn re-randomizes x and z when a point wraps to the ceiling.
	Respawn bool
	Seed    uint64
}

func DefaultDriftOptions() DriftOptions {
	return DriftOptions{
		Count:    100,
		SpreadX:  20,
		SpreadZ:  5,
		SpawnMin: 5,
		SpawnMax: 15,
		MinSpeed: 0.05,
		MaxSpeed: 0.15,
		Floor:    -10,
		Ceiling:  10,
	}
}

// Drift is a field of falling points that wrap from the floor back to the
// ceiling for as long as it is active.
type Drift struct {
	opts   DriftOptions
	rng    *rand.Rand
	buf    []float32
	speeds []float64
	active bool
}

func NewDrift(opts DriftOptions) *Drift {
	d := DefaultDriftOptions()
	if opts.Count <= 0 {
		opts.Count = d.Count
	}
	if opts.Ceiling <= opts.Floor {
		opts.Floor, opts.Ceiling = d.Floor, d.Ceiling
	}
	if opts.MinSpeed <= 0 || opts.MaxSpeed < opts.MinSpeed {
		opts.MinSpeed, opts.MaxSpeed = d.MinSpeed, d.MaxSpeed
	}
	if opts.SpawnMax < opts.SpawnMin {
		opts.SpawnMin, opts.SpawnMax = opts.SpawnMax, opts.SpawnMin
	}

	f := &Drift{
		opts:   opts,
		rng:    rand.New(rand.NewPCG(opts.Seed, opts.Seed^0xda942042e4dd58b5)),
		buf:    make([]float32, opts.Count*3),
		speeds: make([]float64, opts.Count),
		active: true,
	}
	for i := 0; i < opts.Count; i++ {
		y := opts.SpawnMin + f.rng.Float64()*(opts.SpawnMax-opts.SpawnMin)
		setPoint(f.buf, i, mgl64.Vec3{f.spread(opts.SpreadX), y, f.spread(opts.SpreadZ)})
		f.speeds[i] = opts.MinSpeed + f.rng.Float64()*(opts.MaxSpeed-opts.MinSpeed)
	}
	return f
}

func (f *Drift) spread(width float64) float64 {
	return (f.rng.Float64() - 0.5) * width
}

func (f *Drift) SetActive(active bool) { f.active = active }
func (f *Drift) Active() bool          { return f.active }

func (f *Drift) Advance(dt float64) {
	if !f.active || !validDelta(dt) {
		return
	}
	ticks := dt * ReferenceTPS
	for i := range f.speeds {
		i3 := i * 3
		y := float64(f.buf[i3+1]) - f.speeds[i]*ticks
		if y < f.opts.Floor {
			y = f.opts.Ceiling
			if f.opts.Respawn {
				f.buf[i3] = float32(f.spread(f.opts.SpreadX))
				f.buf[i3+2] = float32(f.spread(f.opts.SpreadZ))
			}
		}
		f.buf[i3+1] = float32(y)
	}
}

func (f *Drift) Positions() []float32 { return f.buf }
func (f *Drift) Len() int             { return f.opts.Count }
func (f *Drift) Speed(i int) float64  { return f.speeds[i] }
func (f *Drift) Model() mgl64.Mat4    { return mgl64.Ident4() }
