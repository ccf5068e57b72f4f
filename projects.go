package main

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"portfolio/canvas"
	"portfolio/config"
	"portfolio/graph"
	"portfolio/input"
	"portfolio/ui"
)

// ProjectMapScene is the pannable, zoomable map of project cards.
type ProjectMapScene struct {
	game *Game

	viewport *canvas.Viewport
	router   *input.Router
	ui       *ui.UISystem

	cards     []*Card
	spokes    []graph.Edge
	links     []graph.Edge
	showLinks bool
	hovered   *Card

	width, height int
}

func NewProjectMapScene(g *Game) (*ProjectMapScene, error) {
	vc := g.cfg.Viewport
	opts := canvas.DefaultOptions()
	opts.Origin = mgl64.Vec2{vc.OriginX, vc.OriginY}
	opts.MinScale, opts.MaxScale = vc.MinScale, vc.MaxScale

	s := &ProjectMapScene{
		game:     g,
		viewport: canvas.NewViewport(opts),
	}
	s.router = input.NewRouter(s.viewport)

	projects := g.portfolio.Projects
	places, err := g.layout.Place(len(projects), opts.Origin.X(), opts.Origin.Y())
	if err != nil {
		return nil, fmt.Errorf("project map: %w", err)
	}
	nodes := make([]graph.Node, len(projects))
	for i, p := range projects {
		c := &Card{Project: p, X: places[i].X, Y: places[i].Y, Width: CardWidth, Height: CardHeight}
		s.cards = append(s.cards, c)
		nodes[i] = c.node()
	}
	o := s.viewport.Origin()
	s.spokes = graph.Spokes(o.X(), o.Y(), nodes)
	s.links = graph.SharedLinks(nodes)

	zoomOut := &ui.Button{Label: "-", W: ButtonWidth, H: ButtonHeight, OnClick: func() { s.viewport.ZoomStep(-1) }}
	percent := &ui.Button{
		LabelFunc: func() string { return fmt.Sprintf("%d%%", s.viewport.Percent()) },
		W:         ButtonWidth + LabelPadding,
		H:         ButtonHeight,
	}
	zoomIn := &ui.Button{Label: "+", W: ButtonWidth, H: ButtonHeight, OnClick: func() { s.viewport.ZoomStep(1) }}
	reset := &ui.Button{Label: "reset", W: ButtonWidth + LabelPadding, H: ButtonHeight, OnClick: s.viewport.Reset}

	s.ui = ui.NewUISystem(g.fontFace, g.screenSize, DrawTextLines,
		ui.NewToolbar(ui.TopRight, zoomOut, percent, zoomIn, reset))
	return s, nil
}

func (s *ProjectMapScene) Name() string { return config.SceneProjects }

func (s *ProjectMapScene) Layout(width, height int) {
	s.width, s.height = width, height
	s.viewport.Measure(float64(width), float64(height))
}

func (s *ProjectMapScene) Update(dt float64) error {
	if !s.viewport.Measured() {
		return nil
	}
	mx, my := ebiten.CursorPosition()
	overUI := s.ui.IsMouseOver(mx, my)
	s.ui.Update()
	s.handleKeys()

	if click, ok := s.router.Update(pollPointer(s.width, s.height, overUI)); ok {
		s.openCardAt(click.Pos)
	}

	s.hovered = nil
	if !overUI && !s.viewport.Dragging() {
		s.hovered = s.cardAt(mgl64.Vec2{float64(mx), float64(my)})
	}
	return nil
}

func (s *ProjectMapScene) handleKeys() {
	if s.ui.Modal.IsOpen() {
		return
	}
	switch {
	case anyKeyJustPressed(ebiten.KeyEqual, ebiten.KeyKPAdd):
		s.viewport.ZoomStep(1)
	case anyKeyJustPressed(ebiten.KeyMinus, ebiten.KeyKPSubtract):
		s.viewport.ZoomStep(-1)
	case anyKeyJustPressed(ebiten.Key0, ebiten.KeyKP0):
		s.viewport.Reset()
	case anyKeyJustPressed(ebiten.KeyL):
		s.showLinks = !s.showLinks
	}
}

// cardAt returns the card under the screen point p.
func (s *ProjectMapScene) cardAt(p mgl64.Vec2) *Card {
	return getCardAt(s.cards, s.viewport.ScreenToWorld(p))
}

// openCardAt opens the project modal for the card under the screen point
// p, replacing any modal already open.
func (s *ProjectMapScene) openCardAt(p mgl64.Vec2) bool {
	c := s.cardAt(p)
	if c == nil {
		return false
	}
	return s.openProject(c.Project.Title)
}

// openProject opens the modal for the project with the given title.
func (s *ProjectMapScene) openProject(title string) bool {
	p, ok := s.game.portfolio.Project(title)
	if !ok {
		return false
	}
	s.ui.Modal.Open(p.Title, projectLines(p)...)
	return true
}

func (s *ProjectMapScene) Draw(screen *ebiten.Image) {
	if !s.viewport.Measured() {
		return
	}
	drawBackgroundGrid(screen, s.viewport, s.width, s.height)

	for _, e := range s.spokes {
		drawEdge(screen, s.viewport, e, ColorSpoke)
	}
	if s.showLinks {
		for _, e := range s.links {
			drawEdge(screen, s.viewport, e, ColorSharedLink)
		}
	}

	face := s.game.fontFace()
	s.drawCenterLabel(screen)
	for _, c := range s.cards {
		if c != s.hovered {
			c.Draw(screen, s.viewport, face, false)
		}
	}
	if s.hovered != nil {
		s.hovered.Draw(screen, s.viewport, face, true)
	}

	ebitenutil.DebugPrintAt(screen,
		"drag to pan · scroll to zoom · click a card for details · [=/-] zoom [0] reset [L] links",
		10, s.height-54)
	s.ui.Draw(screen)
}

func (s *ProjectMapScene) drawCenterLabel(screen *ebiten.Image) {
	c := s.viewport.WorldToScreen(s.viewport.Origin())
	face := s.game.fontFace()
	lineH := 20
	if face != nil {
		lineH = face.Metrics().Height.Ceil() + 4
	}
	DrawTextCentered(screen, face, "projects", int(c.X()), int(c.Y())-lineH, ColorTitle)
	DrawTextCentered(screen, face, "building my digital footprint", int(c.X()), int(c.Y()), ColorMuted)
}

func (s *ProjectMapScene) Close() {
	s.router.Cancel()
	s.ui.Modal.Close()
}
