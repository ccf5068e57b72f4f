package main

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"portfolio/config"
	"portfolio/particles"
	"portfolio/ui"
)

// SupernovaScene is a rotating shell of points that explodes on demand.
type SupernovaScene struct {
	game *Game

	field     *particles.Explosion
	projector particles.Projector
	points    []mgl64.Vec2

	ui      *ui.UISystem
	trigger *ui.Button

	width, height int
}

func NewSupernovaScene(g *Game) *SupernovaScene {
	opts := particles.DefaultExplosionOptions()
	opts.Count = g.cfg.Supernova.Count
	opts.Speed = g.cfg.Supernova.Speed
	opts.Seed = g.seed()

	s := &SupernovaScene{
		game:      g,
		field:     particles.NewExplosion(opts),
		projector: particles.DefaultProjector(),
	}
	s.trigger = &ui.Button{Label: "Trigger Explosion", W: ActionWidth, H: ActionHeight, OnClick: s.explode}
	reset := &ui.Button{Label: "Reset", W: ActionWidth / 2, H: ActionHeight, OnClick: s.reset}
	s.ui = ui.NewUISystem(g.fontFace, g.screenSize, DrawTextLines, ui.NewToolbar(ui.BottomCenter, s.trigger, reset))
	return s
}

func (s *SupernovaScene) Name() string { return config.SceneSupernova }

func (s *SupernovaScene) Layout(width, height int) {
	s.width, s.height = width, height
}

func (s *SupernovaScene) explode() { s.field.Trigger() }
func (s *SupernovaScene) reset()   { s.field.Reset() }

func (s *SupernovaScene) Update(dt float64) error {
	s.ui.Update()
	switch {
	case anyKeyJustPressed(ebiten.KeySpace):
		s.explode()
	case anyKeyJustPressed(ebiten.KeyR):
		s.reset()
	}
	s.step(dt)
	return nil
}

func (s *SupernovaScene) step(dt float64) {
	s.field.Advance(dt)
	s.trigger.Disabled = s.field.State() == particles.Exploding
}

func (s *SupernovaScene) Draw(screen *ebiten.Image) {
	s.points = s.projector.Project(s.field, s.width, s.height, s.points[:0])
	for _, p := range s.points {
		vector.DrawFilledRect(screen, float32(p.X()), float32(p.Y()), SupernovaSize, SupernovaSize, ColorSupernova, false)
	}
	ebitenutil.DebugPrintAt(screen, "[Space] explode  [R] reset  ·  "+s.field.State().String(), 10, 10)
	s.ui.Draw(screen)
}

func (s *SupernovaScene) Close() {}
