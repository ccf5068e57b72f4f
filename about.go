package main

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"portfolio/config"
	"portfolio/content"
	"portfolio/ui"
)

type aboutStyle int

const (
	styleHeading aboutStyle = iota
	styleTitle
	styleBody
	styleMuted
	styleGap
)

func (s aboutStyle) color() color.Color {
	switch s {
	case styleTitle:
		return ColorTitle
	case styleBody:
		return ColorBody
	default:
		return ColorMuted
	}
}

type aboutLine struct {
	Text  string
	Style aboutStyle
}

// aboutLines lays out the home page: profile, experience timeline,
// research and contact links.
func aboutLines(p *content.Portfolio) []aboutLine {
	var out []aboutLine
	add := func(style aboutStyle, text string) {
		if style == styleGap || text != "" {
			out = append(out, aboutLine{Text: text, Style: style})
		}
	}

	add(styleTitle, p.Name)
	add(styleMuted, p.Description)
	labels := make([]string, 0, len(p.Navbar))
	for _, n := range p.Navbar {
		labels = append(labels, n.Label)
	}
	add(styleMuted, strings.Join(labels, " · "))

	if len(p.Experience) > 0 {
		add(styleGap, "")
		add(styleHeading, "experience")
		for _, e := range p.Experience {
			add(styleTitle, e.Company+" · "+e.Title)
			when := e.Period()
			if e.Location != "" {
				when += " · " + e.Location
			}
			add(styleMuted, when)
			if e.TLDR != "" {
				add(styleBody, e.TLDR)
			} else {
				for _, b := range e.Bullets {
					add(styleBody, "- "+b)
				}
			}
			add(styleGap, "")
		}
	}

	r := p.Research
	if len(r.Published)+len(r.InProgress) > 0 {
		add(styleGap, "")
		add(styleHeading, "research")
		for _, paper := range r.Published {
			add(styleTitle, paper.Title)
			add(styleMuted, joinNonEmpty(" · ", paper.Venue, paper.Year))
			add(styleBody, paper.Abstract)
			add(styleMuted, paper.Link)
			add(styleGap, "")
		}
		for _, paper := range r.InProgress {
			add(styleTitle, paper.Title)
			add(styleMuted, joinNonEmpty(" · ", paper.Venue, paper.Status, "in progress"))
			add(styleGap, "")
		}
	}
	if len(r.Interests) > 0 {
		add(styleBody, "interests: "+strings.Join(r.Interests, ", "))
	}
	if len(r.Aspirations) > 0 {
		add(styleBody, "aspirations: "+strings.Join(r.Aspirations, ", "))
	}

	add(styleGap, "")
	add(styleHeading, "contact")
	if p.Contact.Email != "" {
		add(styleBody, "email: "+p.Contact.Email)
	}
	for _, s := range p.Contact.Social {
		add(styleBody, fmt.Sprintf("%s: %s", s.Name, s.URL))
	}
	return out
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

type aboutRow struct {
	Text  string
	Style aboutStyle
	Y     float64
}

// AboutScene is the scrollable home page.
type AboutScene struct {
	game  *Game
	lines []aboutLine

	rows          []aboutRow
	contentHeight float64
	lineHeight    float64
	scroll        float64

	width, height int
}

func NewAboutScene(g *Game) *AboutScene {
	return &AboutScene{game: g, lines: aboutLines(g.portfolio)}
}

func (s *AboutScene) Name() string { return config.SceneAbout }

// Layout wraps the text to the column width of the new surface size.
func (s *AboutScene) Layout(width, height int) {
	if width == s.width && height == s.height && s.rows != nil {
		return
	}
	s.width, s.height = width, height
	face := faceOrDefault(s.game.fontFace())
	s.lineHeight = float64(face.Metrics().Height.Ceil() + 4)
	s.rows, s.contentHeight = wrapAbout(face, s.lines, s.columnWidth(), s.lineHeight)
	s.scrollBy(0)
}

func (s *AboutScene) columnWidth() int {
	return int(math.Min(AboutWidth, float64(s.width)-2*AboutMargin))
}

func wrapAbout(face font.Face, lines []aboutLine, maxW int, lineH float64) ([]aboutRow, float64) {
	var rows []aboutRow
	y := 0.0
	for _, l := range lines {
		if l.Style == styleGap {
			y += lineH / 2
			continue
		}
		text := l.Text
		if l.Style == styleHeading {
			text = strings.ToUpper(text)
		}
		for _, w := range ui.Wrap(face, text, maxW) {
			rows = append(rows, aboutRow{Text: w, Style: l.Style, Y: y})
			y += lineH
		}
	}
	return rows, y
}

// scrollBy moves the page by dy pixels, keeping the last row reachable.
func (s *AboutScene) scrollBy(dy float64) {
	limit := math.Max(0, s.contentHeight-(float64(s.height)-2*AboutMargin))
	s.scroll = mgl64.Clamp(s.scroll+dy, 0, limit)
}

func (s *AboutScene) Update(dt float64) error {
	_, wy := ebiten.Wheel()
	if wy != 0 {
		s.scrollBy(-wy * AboutScrollBy * s.lineHeight)
	}
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyDown):
		s.scrollBy(s.lineHeight / 2)
	case ebiten.IsKeyPressed(ebiten.KeyUp):
		s.scrollBy(-s.lineHeight / 2)
	case anyKeyJustPressed(ebiten.KeyHome):
		s.scroll = 0
	}
	return nil
}

func (s *AboutScene) Draw(screen *ebiten.Image) {
	face := faceOrDefault(s.game.fontFace())
	x := int(float64(s.width)/2 - float64(s.columnWidth())/2)
	top := AboutMargin - s.scroll
	for _, r := range s.rows {
		y := top + r.Y
		if y+s.lineHeight < 0 || y > float64(s.height) {
			continue
		}
		DrawTextLines(screen, face, r.Text, x, int(y), r.Style.color())
	}
}

func (s *AboutScene) Close() {}
