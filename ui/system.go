package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
)

// UISystem owns the toolbars and the single modal of a view.
type UISystem struct {
	Toolbars []*Toolbar
	Modal    *Modal

	getFontFace   func() font.Face
	getScreenSize func() (int, int)
	drawText      DrawTextFunc
}

func NewUISystem(getFontFace func() font.Face, getScreenSize func() (int, int), drawText DrawTextFunc, toolbars ...*Toolbar) *UISystem {
	ui := &UISystem{
		Toolbars:      toolbars,
		Modal:         &Modal{},
		getFontFace:   getFontFace,
		getScreenSize: getScreenSize,
		drawText:      drawText,
	}
	ui.updateLayout()
	return ui
}

func (ui *UISystem) updateLayout() {
	w, h := ui.getScreenSize()
	for _, t := range ui.Toolbars {
		t.Layout(w, h)
	}
	ui.Modal.Layout(w, h)
}

// IsMouseOver reports whether (mx, my) is taken by a widget, including
// anywhere on screen while the modal is open.
func (ui *UISystem) IsMouseOver(mx, my int) bool {
	if ui.Modal.IsOpen() {
		return true
	}
	ui.updateLayout()
	for _, t := range ui.Toolbars {
		if t.ButtonAt(mx, my) != nil {
			return true
		}
	}
	return false
}

// HandleClick routes a primary press at (mx, my). It reports whether a
// widget consumed it. A press outside the open modal closes it.
func (ui *UISystem) HandleClick(mx, my int) bool {
	ui.updateLayout()
	if ui.Modal.IsOpen() {
		if !ui.Modal.Contains(mx, my) {
			ui.Modal.Close()
		}
		return true
	}
	for _, t := range ui.Toolbars {
		if b := t.ButtonAt(mx, my); b != nil {
			b.Click()
			return true
		}
	}
	return false
}

func (ui *UISystem) Update() {
	if ui.Modal.IsOpen() && inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		ui.Modal.Close()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		ui.HandleClick(mx, my)
	}
}

func (ui *UISystem) Draw(screen *ebiten.Image) {
	ui.updateLayout()
	mx, my := ebiten.CursorPosition()
	face := ui.getFontFace()
	for _, t := range ui.Toolbars {
		for _, b := range t.Buttons {
			b.Draw(screen, !ui.Modal.IsOpen() && b.IsMouseOver(mx, my), face, ui.drawText)
		}
	}
	ui.Modal.Draw(screen, face, ui.drawText)
}
