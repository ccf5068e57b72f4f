package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

var (
	ColorButton         = color.NRGBA{255, 255, 255, 13}
	ColorButtonHover    = color.NRGBA{255, 255, 255, 26}
	ColorButtonBorder   = color.NRGBA{255, 255, 255, 26}
	ColorButtonDisabled = color.NRGBA{255, 255, 255, 6}
	ColorTextDisabled   = color.NRGBA{255, 255, 255, 90}
)

// DrawTextFunc draws s with its top-left corner at (x, y).
type DrawTextFunc func(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color)

// Button is a screen-space control. A button without OnClick is a label.
type Button struct {
	Label     string
	LabelFunc func() string // overrides Label when set
	X, Y      float32
	W, H      float32
	Disabled  bool
	OnClick   func()
}

func (b *Button) Text() string {
	if b.LabelFunc != nil {
		return b.LabelFunc()
	}
	return b.Label
}

func (b *Button) IsMouseOver(mx, my int) bool {
	return float32(mx) >= b.X && float32(mx) <= b.X+b.W &&
		float32(my) >= b.Y && float32(my) <= b.Y+b.H
}

// Click runs OnClick unless the button is disabled or display-only.
func (b *Button) Click() bool {
	if b.Disabled || b.OnClick == nil {
		return false
	}
	b.OnClick()
	return true
}

func (b *Button) Draw(screen *ebiten.Image, hovered bool, face font.Face, drawText DrawTextFunc) {
	bg := ColorButton
	switch {
	case b.Disabled:
		bg = ColorButtonDisabled
	case hovered && b.OnClick != nil:
		bg = ColorButtonHover
	}
	vector.DrawFilledRect(screen, b.X, b.Y, b.W, b.H, bg, false)
	vector.StrokeRect(screen, b.X, b.Y, b.W, b.H, 1, ColorButtonBorder, false)
	if face == nil || drawText == nil {
		return
	}
	var clr color.Color = color.White
	if b.Disabled {
		clr = ColorTextDisabled
	}
	s := b.Text()
	tw := font.MeasureString(face, s).Ceil()
	th := face.Metrics().Height.Ceil()
	drawText(screen, face, s, int(b.X+b.W/2)-tw/2, int(b.Y+b.H/2)-th/2, clr)
}
