package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"portfolio/canvas"
)

// drawBackgroundGrid renders the map grid. It pans and scales with the
// content layer so the map reads as one continuous surface.
func drawBackgroundGrid(screen *ebiten.Image, v *canvas.Viewport, width, height int) {
	xs, ys := v.GridLines(canvas.GridSpacing)
	for _, x := range xs {
		vector.StrokeLine(screen, float32(x), 0, float32(x), float32(height), 1, ColorGrid, false)
	}
	for _, y := range ys {
		vector.StrokeLine(screen, 0, float32(y), float32(width), float32(y), 1, ColorGrid, false)
	}
}
