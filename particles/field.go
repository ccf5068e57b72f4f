// Package particles advances decorative point fields once per tick.
// Fields own a flat xyz buffer; renderers read it through Positions and
// must not write to it.
package particles

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ReferenceTPS is the tick rate that per-tick speeds are expressed in.
const ReferenceTPS = 60.0

// Simulator is a point field advanced by elapsed seconds.
type Simulator interface {
	Advance(dt float64)
	Positions() []float32
	Len() int
	Model() mgl64.Mat4
}

func validDelta(dt float64) bool {
	return dt > 0 && !math.IsInf(dt, 0) && !math.IsNaN(dt)
}

func point(buf []float32, i int) mgl64.Vec3 {
	i3 := i * 3
	return mgl64.Vec3{float64(buf[i3]), float64(buf[i3+1]), float64(buf[i3+2])}
}

func setPoint(buf []float32, i int, p mgl64.Vec3) {
	i3 := i * 3
	buf[i3] = float32(p.X())
	buf[i3+1] = float32(p.Y())
	buf[i3+2] = float32(p.Z())
}
