package particles

import "github.com/go-gl/mathgl/mgl64"

// Projector is a perspective camera looking at the origin.
type Projector struct {
	Eye  mgl64.Vec3
	FovY float64 // degrees
	Near float64
	Far  float64
}

func DefaultProjector() Projector {
	return Projector{Eye: mgl64.Vec3{0, 0, 10}, FovY: 75, Near: 0.1, Far: 1000}
}

// Project appends the screen positions of the visible points of s to out.
// Screen y grows downwards.
func (p Projector) Project(s Simulator, width, height int, out []mgl64.Vec2) []mgl64.Vec2 {
	if width <= 0 || height <= 0 {
		return out
	}
	proj := mgl64.Perspective(mgl64.DegToRad(p.FovY), float64(width)/float64(height), p.Near, p.Far)
	view := mgl64.LookAtV(p.Eye, mgl64.Vec3{}, mgl64.Vec3{0, 1, 0})
	mv := view.Mul4(s.Model())

	buf := s.Positions()
	for i := 0; i < s.Len(); i++ {
		obj := point(buf, i)
		if eye := mv.Mul4x1(obj.Vec4(1)); -eye.Z() < p.Near || -eye.Z() > p.Far {
			continue
		}
		win := mgl64.Project(obj, mv, proj, 0, 0, width, height)
		out = append(out, mgl64.Vec2{win.X(), float64(height) - win.Y()})
	}
	return out
}
