package main

import (
	"image/color"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// LoadUIFont attempts to load the TrueType font at path. If it fails, returns basicfont.Face7x13.
func LoadUIFont(path string, size float64) font.Face {
	if path == "" {
		return basicfont.Face7x13
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("LoadUIFont: %s not found, using basic font: %v", path, err)
		return basicfont.Face7x13
	}
	f, err := opentype.Parse(data)
	if err != nil {
		log.Println("LoadUIFont: parse error, using basic font:", err)
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		log.Println("LoadUIFont: new face error, using basic font:", err)
		return basicfont.Face7x13
	}
	return face
}

// faceOrDefault returns face, or the basic font when none is loaded.
func faceOrDefault(face font.Face) font.Face {
	if face == nil {
		return basicfont.Face7x13
	}
	return face
}

// DrawTextLines draws multiline text with the provided font.Face and color starting at (x,y).
func DrawTextLines(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color) {
	if face == nil {
		face = basicfont.Face7x13
	}
	lines := splitLines(s)
	// compute line height and baseline offset from metrics
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	lineHeight := metrics.Height.Ceil()
	if lineHeight <= 0 {
		lineHeight = 16
		ascent = 12
	}
	// Treat provided y as the top of the first line. text.Draw expects baseline y,
	// so shift by ascent.
	baseY := y + ascent
	for i, line := range lines {
		text.Draw(screen, line, face, x, baseY+(i*lineHeight), clr)
	}
}

// DrawTextCentered draws a single line centred horizontally on cx.
func DrawTextCentered(screen *ebiten.Image, face font.Face, s string, cx, y int, clr color.Color) {
	if face == nil {
		face = basicfont.Face7x13
	}
	w := font.MeasureString(face, s).Ceil()
	DrawTextLines(screen, face, s, cx-w/2, y, clr)
}

func splitLines(s string) []string {
	var out []string
	cur := ""
	for _, r := range s {
		if r == '\n' {
			out = append(out, cur)
			cur = ""
			continue
		}
		cur += string(r)
	}
	out = append(out, cur)
	return out
}
