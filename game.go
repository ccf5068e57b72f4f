package main

import (
	"fmt"
	"image/png"
	"log"
	"math/rand/v2"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"

	"portfolio/config"
	"portfolio/content"
	"portfolio/layout"
)

// Scene is one interactive view. A scene is created on mount and closed
// when another one replaces it; a closed scene is never updated again.
type Scene interface {
	Name() string
	Update(dt float64) error
	Draw(screen *ebiten.Image)
	Layout(width, height int)
	Close()
}

var sceneOrder = []string{config.SceneProjects, config.SceneSupernova, config.SceneStarry, config.SceneAbout}

var sceneKeys = map[ebiten.Key]string{
	ebiten.Key1: config.SceneProjects,
	ebiten.Key2: config.SceneSupernova,
	ebiten.Key3: config.SceneStarry,
	ebiten.Key4: config.SceneAbout,
}

type Game struct {
	cfg       config.Config
	portfolio *content.Portfolio
	layout    *layout.Engine
	face      font.Face

	scene        Scene
	screenWidth  int
	screenHeight int
	measured     bool // the surface size came from ebiten, not the config

	screenshotRequested bool
}

func NewGame(cfg config.Config, portfolio *content.Portfolio, layoutScript string) (*Game, error) {
	g := &Game{
		cfg:          cfg,
		portfolio:    portfolio,
		layout:       layout.NewEngine(cfg.LayoutScript, layoutScript),
		face:         LoadUIFont(cfg.FontFile, 16),
		screenWidth:  cfg.Window.Width,
		screenHeight: cfg.Window.Height,
	}
	if err := g.switchScene(cfg.Scene); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) fontFace() font.Face { return g.face }

func (g *Game) screenSize() (int, int) { return g.screenWidth, g.screenHeight }

// seed returns the configured particle seed, or a fresh one when unset.
func (g *Game) seed() uint64 {
	if g.cfg.Seed != 0 {
		return g.cfg.Seed
	}
	return rand.Uint64()
}

func (g *Game) newScene(name string) (Scene, error) {
	switch name {
	case config.SceneProjects:
		return NewProjectMapScene(g)
	case config.SceneSupernova:
		return NewSupernovaScene(g), nil
	case config.SceneStarry:
		return NewStarryScene(g), nil
	case config.SceneAbout:
		return NewAboutScene(g), nil
	}
	return nil, fmt.Errorf("unknown scene %q", name)
}

// switchScene tears the current scene down and mounts a fresh one.
func (g *Game) switchScene(name string) error {
	next, err := g.newScene(name)
	if err != nil {
		return err
	}
	if g.scene != nil {
		g.scene.Close()
	}
	g.scene = next
	if g.measured {
		g.scene.Layout(g.screenWidth, g.screenHeight)
	}
	log.Printf("scene: %s", name)
	return nil
}

func (g *Game) nextScene() string {
	for i, name := range sceneOrder {
		if name == g.scene.Name() {
			return sceneOrder[(i+1)%len(sceneOrder)]
		}
	}
	return sceneOrder[0]
}

func (g *Game) Update() error {
	if err := g.handleControlKeys(); err != nil {
		return err
	}
	dt := 1.0 / float64(ebiten.TPS())
	return g.scene.Update(dt)
}

func (g *Game) handleControlKeys() error {
	// --- Screenshot ---
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.screenshotRequested = true
	}

	// --- Scene switching ---
	for key, name := range sceneKeys {
		if inpututil.IsKeyJustPressed(key) && name != g.scene.Name() {
			return g.switchScene(name)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		return g.switchScene(g.nextScene())
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ColorBackground)
	g.scene.Draw(screen)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
		"%s · %s\n[1] projects  [2] supernova  [3] starry night  [4] about  [Tab] next  [F12] screenshot",
		g.portfolio.Name, g.scene.Name(),
	), 10, g.screenHeight-36)

	// --- Save Screenshot ---
	if g.screenshotRequested {
		g.screenshotRequested = false
		if err := saveScreenshot(screen, "screenshot.png"); err != nil {
			log.Println("screenshot error:", err)
		} else {
			log.Println("Screenshot saved as screenshot.png")
		}
	}
}

func saveScreenshot(screen *ebiten.Image, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.screenWidth = outsideWidth
	g.screenHeight = outsideHeight
	g.measured = true
	g.scene.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
