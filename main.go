package main

import (
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"portfolio/config"
	"portfolio/content"
)

func loadConfig() (config.Config, error) {
	lookup, err := config.DotEnvLookup(".env")
	if err != nil {
		return config.Config{}, err
	}
	path := "config.yaml"
	if v, ok := lookup(config.EnvPrefix + "CONFIG"); ok && v != "" {
		path = v
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnv(lookup); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadPortfolio(cfg config.Config) (*content.Portfolio, error) {
	if cfg.ContentFile == "" {
		return content.Load()
	}
	return content.LoadFile(cfg.ContentFile)
}

func loadLayoutScript(cfg config.Config) (string, error) {
	if cfg.LayoutScript == "" {
		return "", nil
	}
	data, err := os.ReadFile(cfg.LayoutScript)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func main() {
	log.SetPrefix("portfolio: ")

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}
	portfolio, err := loadPortfolio(cfg)
	if err != nil {
		log.Fatal(err)
	}
	script, err := loadLayoutScript(cfg)
	if err != nil {
		log.Fatal(err)
	}

	g, err := NewGame(cfg, portfolio, script)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
