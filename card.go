package main

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"portfolio/canvas"
	"portfolio/content"
	"portfolio/graph"
	"portfolio/ui"
)

// Card is a project placed on the map. X and Y are the world position of
// its top-left corner.
type Card struct {
	Project content.Project
	X, Y    float64
	Width   float64
	Height  float64
}

func (c *Card) Contains(w mgl64.Vec2) bool {
	return w.X() >= c.X && w.X() <= c.X+c.Width &&
		w.Y() >= c.Y && w.Y() <= c.Y+c.Height
}

func (c *Card) Center() mgl64.Vec2 {
	return mgl64.Vec2{c.X + c.Width/2, c.Y + c.Height/2}
}

func (c *Card) node() graph.Node {
	ctr := c.Center()
	return graph.Node{ID: c.Project.Title, X: ctr.X(), Y: ctr.Y(), Tags: c.Project.Technologies}
}

// projectLines is what the project modal shows.
func projectLines(p content.Project) []string {
	lines := []string{p.Dates}
	if p.Active {
		lines[0] += " · active"
	}
	lines = append(lines, "", p.Description, "")
	if len(p.Technologies) > 0 {
		lines = append(lines, "Technologies: "+strings.Join(p.Technologies, ", "))
	}
	for _, l := range p.Links {
		lines = append(lines, fmt.Sprintf("%s: %s", l.Type, l.Href))
	}
	if p.Href != "" {
		lines = append(lines, p.Href)
	}
	return lines
}

// getCardAt returns the topmost card under the world point w.
func getCardAt(cards []*Card, w mgl64.Vec2) *Card {
	for i := len(cards) - 1; i >= 0; i-- {
		if cards[i].Contains(w) {
			return cards[i]
		}
	}
	return nil
}

func (c *Card) Draw(screen *ebiten.Image, v *canvas.Viewport, face font.Face, hovered bool) {
	scale := v.Scale()
	if hovered {
		scale *= HoverScale
	}
	// Hover grows the card about its centre.
	ctr := v.WorldToScreen(c.Center())
	sw, sh := c.Width*scale, c.Height*scale
	sx, sy := ctr.X()-sw/2, ctr.Y()-sh/2

	c.drawBody(screen, sx, sy, sw, sh, scale, hovered)
	c.drawContent(screen, face, sx, sy, sw, sh, scale)
}

func (c *Card) drawBody(screen *ebiten.Image, sx, sy, sw, sh, scale float64, hovered bool) {
	// Shadow
	shadow := 4 * scale
	vector.DrawFilledRect(screen, float32(sx+shadow), float32(sy+shadow), float32(sw), float32(sh), ColorShadow, false)

	body, edge := ColorCard, ColorCardBorder
	if hovered {
		body, edge = ColorCardHover, ColorCardEdgeHot
	}
	vector.DrawFilledRect(screen, float32(sx), float32(sy), float32(sw), float32(sh), body, false)
	vector.StrokeRect(screen, float32(sx), float32(sy), float32(sw), float32(sh), 1, edge, false)
}

func (c *Card) drawContent(screen *ebiten.Image, face font.Face, sx, sy, sw, sh, scale float64) {
	if face == nil {
		return
	}
	pad := CardPadding * scale
	lineH := float64(face.Metrics().Height.Ceil())
	x := int(sx + pad)
	y := sy + pad
	maxW := int(sw - 2*pad)
	bottom := sy + sh - pad

	// Text keeps its screen size, so skip it once the card is too small to hold it.
	if maxW < 40 || y+lineH > bottom {
		return
	}

	DrawTextLines(screen, face, c.Project.Title, x, int(y), ColorTitle)
	y += lineH * 1.5

	lines := ui.Wrap(face, c.Project.Description, maxW)
	if len(lines) > CardDescLines {
		lines = lines[:CardDescLines]
		lines[CardDescLines-1] += "…"
	}
	for _, line := range lines {
		if y+lineH > bottom-lineH*2 {
			break
		}
		DrawTextLines(screen, face, line, x, int(y), ColorMuted)
		y += lineH
	}

	// Badges and dates share the bottom row.
	by := bottom - lineH
	bx := float64(x)
	for _, b := range c.Project.Badges(CardBadges) {
		bw := float64(font.MeasureString(face, b).Ceil()) + 12
		if bx+bw > sx+sw-pad {
			break
		}
		vector.DrawFilledRect(screen, float32(bx), float32(by-2), float32(bw), float32(lineH+4), ColorBadge, false)
		DrawTextLines(screen, face, b, int(bx+6), int(by), ColorTitle)
		bx += bw + 6
	}
	if c.Project.Dates != "" {
		dw := float64(font.MeasureString(face, c.Project.Dates).Ceil())
		if dx := sx + sw - pad - dw; dx > float64(x) {
			DrawTextLines(screen, face, c.Project.Dates, int(dx), int(by-lineH-4), ColorMuted)
		}
	}
}
