package canvas

import "math"

// GridSpacing is the world distance between background grid lines.
const GridSpacing = 50.0

// GridLines returns the screen positions of the vertical (xs) and
// horizontal (ys) grid lines covering the measured surface. The grid is
// anchored at the offset so it pans and scales with the content layer.
func (v *Viewport) GridLines(spacing float64) (xs, ys []float64) {
	step := spacing * v.scale
	if step <= 0 || v.width <= 0 || v.height <= 0 {
		return nil, nil
	}
	xs = gridAxis(v.offset.X(), step, v.width)
	ys = gridAxis(v.offset.Y(), step, v.height)
	return xs, ys
}

func gridAxis(offset, step, extent float64) []float64 {
	start := math.Mod(offset, step)
	if start < 0 {
		start += step
	}
	lines := make([]float64, 0, int(extent/step)+1)
	for s := start; s <= extent; s += step {
		lines = append(lines, s)
	}
	return lines
}
