package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"portfolio/input"
)

// pollPointer samples the mouse for the input router. The pointer counts
// as outside the surface when it is off-window or the window lost focus.
func pollPointer(width, height int, overUI bool) input.Snapshot {
	mx, my := ebiten.CursorPosition()
	_, dy := ebiten.Wheel()
	inside := ebiten.IsFocused() && mx >= 0 && my >= 0 && mx < width && my < height
	return input.Snapshot{
		X:       float64(mx),
		Y:       float64(my),
		Primary: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Inside:  inside,
		OverUI:  overUI,
		WheelY:  dy,
	}
}

func anyKeyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
