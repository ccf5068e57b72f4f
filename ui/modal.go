package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

var (
	ColorBackdrop   = color.RGBA{0, 0, 0, 153}
	ColorModal      = color.RGBA{10, 10, 14, 235}
	ColorModalEdge  = color.NRGBA{255, 255, 255, 51}
	ColorModalTitle = color.RGBA{255, 255, 255, 255}
	ColorModalText  = color.RGBA{200, 200, 205, 255}
)

const (
	ModalMaxWidth = 640
	ModalPadding  = 24
)

// Modal is a centred detail panel. Opening it again replaces its content.
type Modal struct {
	Title string
	Lines []string
	open  bool

	X, Y, W, H float32
}

func (m *Modal) Open(title string, lines ...string) {
	m.Title = title
	m.Lines = lines
	m.open = true
}

func (m *Modal) Close()       { m.open = false }
func (m *Modal) IsOpen() bool { return m != nil && m.open }

// Layout sizes the panel to the screen: at most ModalMaxWidth wide and
// 80% of the screen tall.
func (m *Modal) Layout(screenW, screenH int) {
	m.W = float32(screenW) - 2*ModalPadding
	if m.W > ModalMaxWidth {
		m.W = ModalMaxWidth
	}
	m.H = float32(screenH) * 0.8
	m.X = float32(screenW)/2 - m.W/2
	m.Y = float32(screenH)/2 - m.H/2
}

func (m *Modal) Contains(mx, my int) bool {
	return float32(mx) >= m.X && float32(mx) <= m.X+m.W &&
		float32(my) >= m.Y && float32(my) <= m.Y+m.H
}

func (m *Modal) Draw(screen *ebiten.Image, face font.Face, drawText DrawTextFunc) {
	if !m.IsOpen() {
		return
	}
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), ColorBackdrop, false)
	vector.DrawFilledRect(screen, m.X, m.Y, m.W, m.H, ColorModal, false)
	vector.StrokeRect(screen, m.X, m.Y, m.W, m.H, 1, ColorModalEdge, false)
	if face == nil || drawText == nil {
		return
	}

	lineH := face.Metrics().Height.Ceil() + 4
	x := int(m.X) + ModalPadding
	y := int(m.Y) + ModalPadding
	bottom := int(m.Y+m.H) - ModalPadding
	maxW := int(m.W) - 2*ModalPadding

	drawText(screen, face, m.Title, x, y, ColorModalTitle)
	y += 2 * lineH
	for _, line := range m.Lines {
		for _, wrapped := range Wrap(face, line, maxW) {
			if y+lineH > bottom {
				return
			}
			drawText(screen, face, wrapped, x, y, ColorModalText)
			y += lineH
		}
	}
}

// Wrap breaks s into lines no wider than maxW pixels. Words wider than
// maxW get a line of their own. An empty string yields one empty line.
func Wrap(face font.Face, s string, maxW int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	cur := words[0]
	for _, w := range words[1:] {
		next := cur + " " + w
		if font.MeasureString(face, next).Ceil() > maxW {
			lines = append(lines, cur)
			cur = w
			continue
		}
		cur = next
	}
	return append(lines, cur)
}
