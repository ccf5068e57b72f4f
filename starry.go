package main

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"portfolio/config"
	"portfolio/particles"
)

const starryTitle = "starry night"

// StarryScene is a field of falling stars over a slowly turning aurora.
type StarryScene struct {
	game *Game

	field     *particles.Drift
	projector particles.Projector
	points    []mgl64.Vec2
	elapsed   float64

	width, height int
}

func NewStarryScene(g *Game) *StarryScene {
	opts := particles.DefaultDriftOptions()
	opts.Count = g.cfg.Starry.Count
	opts.Respawn = g.cfg.Starry.Respawn
	opts.Seed = g.seed()

	return &StarryScene{
		game:      g,
		field:     particles.NewDrift(opts),
		projector: particles.DefaultProjector(),
	}
}

func (s *StarryScene) Name() string { return config.SceneStarry }

func (s *StarryScene) Layout(width, height int) {
	s.width, s.height = width, height
}

func (s *StarryScene) Update(dt float64) error {
	if anyKeyJustPressed(ebiten.KeyT) {
		s.field.SetActive(!s.field.Active())
	}
	if s.field.Active() {
		s.elapsed += dt
	}
	s.field.Advance(dt)
	return nil
}

// auroraCenters returns the two tint centres, opposite each other on a
// circle around the screen centre.
func (s *StarryScene) auroraCenters() (a, b mgl64.Vec2) {
	angle := s.elapsed / AuroraPeriod * 2 * math.Pi
	r := math.Min(float64(s.width), float64(s.height)) / 4
	c := mgl64.Vec2{float64(s.width) / 2, float64(s.height) / 2}
	d := mgl64.Vec2{math.Cos(angle), math.Sin(angle)}.Mul(r)
	return c.Add(d), c.Sub(d)
}

func (s *StarryScene) Draw(screen *ebiten.Image) {
	screen.Fill(ColorNightSky)

	a, b := s.auroraCenters()
	radius := float32(math.Max(float64(s.width), float64(s.height)) / 2)
	drawGlow(screen, a, radius, ColorAuroraCyan)
	drawGlow(screen, b, radius, ColorAuroraPink)

	s.points = s.projector.Project(s.field, s.width, s.height, s.points[:0])
	for _, p := range s.points {
		vector.DrawFilledCircle(screen, float32(p.X()), float32(p.Y()), StarSize/2, ColorStar, true)
	}

	state := "falling"
	if !s.field.Active() {
		state = "paused"
	}
	ebitenutil.DebugPrintAt(screen, starryTitle+"  ·  [T] "+state, 10, 10)
}

// drawGlow approximates a radial gradient with stacked translucent circles.
func drawGlow(screen *ebiten.Image, c mgl64.Vec2, radius float32, clr color.RGBA) {
	const rings = 8
	for i := rings; i > 0; i-- {
		r := radius * float32(i) / rings
		tint := color.NRGBA{clr.R, clr.G, clr.B, 6}
		vector.DrawFilledCircle(screen, float32(c.X()), float32(c.Y()), r, tint, true)
	}
}

func (s *StarryScene) Close() {
	s.field.SetActive(false)
}
