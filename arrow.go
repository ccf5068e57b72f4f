package main

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"portfolio/canvas"
	"portfolio/graph"
)

// dashSegments splits the line from (x1, y1) to (x2, y2) into dashes of
// length dash separated by gaps of the same length.
func dashSegments(x1, y1, x2, y2, dash float64) [][4]float64 {
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if length == 0 || dash <= 0 {
		return nil
	}
	ux, uy := dx/length, dy/length

	var segs [][4]float64
	for t := 0.0; t < length; t += 2 * dash {
		end := math.Min(t+dash, length)
		segs = append(segs, [4]float64{x1 + ux*t, y1 + uy*t, x1 + ux*end, y1 + uy*end})
	}
	return segs
}

func drawDashedLine(screen *ebiten.Image, x1, y1, x2, y2, dash float64, thickness float32, clr color.Color) {
	for _, s := range dashSegments(x1, y1, x2, y2, dash) {
		vector.StrokeLine(screen, float32(s[0]), float32(s[1]), float32(s[2]), float32(s[3]), thickness, clr, true)
	}
}

// drawEdge draws a connection line of the map. Dashes keep their world
// length so they zoom with the cards.
func drawEdge(screen *ebiten.Image, v *canvas.Viewport, e graph.Edge, clr color.Color) {
	from := v.WorldToScreen(mgl64.Vec2{e.X1, e.Y1})
	to := v.WorldToScreen(mgl64.Vec2{e.X2, e.Y2})

	thickness := float32(v.Scale())
	if thickness < 1 {
		thickness = 1
	}
	drawDashedLine(screen, from.X(), from.Y(), to.X(), to.Y(), DashLength*v.Scale(), thickness, clr)
}
