// Package config resolves runtime settings: built-in defaults, then an
// optional YAML file, then .env and process environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	SceneProjects  = "projects"
	SceneSupernova = "supernova"
	SceneStarry    = "starry"
	SceneAbout     = "about"
)

// EnvPrefix prefixes every environment override, e.g. PORTFOLIO_SCENE.
const EnvPrefix = "PORTFOLIO_"

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type ViewportConfig struct {
	OriginX  float64 `yaml:"origin_x"`
	OriginY  float64 `yaml:"origin_y"`
	MinScale float64 `yaml:"min_scale"`
	MaxScale float64 `yaml:"max_scale"`
}

type SupernovaConfig struct {
	Count int     `yaml:"count"`
	Speed float64 `yaml:"speed"`
}

type StarryConfig struct {
	Count   int  `yaml:"count"`
	Respawn bool `yaml:"respawn"`
}

type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Scene     string          `yaml:"scene"`
	Seed      uint64          `yaml:"seed"`
	Viewport  ViewportConfig  `yaml:"viewport"`
	Supernova SupernovaConfig `yaml:"supernova"`
	Starry    StarryConfig    `yaml:"starry"`

	LayoutScript string `yaml:"layout_script"` // path to a Starlark layout, empty for the built-in one
	ContentFile  string `yaml:"content_file"`  // path to a portfolio YAML, empty for the embedded one
	FontFile     string `yaml:"font_file"`
}

func Default() Config {
	return Config{
		Window:    WindowConfig{Width: 1024, Height: 768, Title: "portfolio"},
		Scene:     SceneProjects,
		Viewport:  ViewportConfig{OriginX: 1500, OriginY: 1000, MinScale: 0.3, MaxScale: 2.0},
		Supernova: SupernovaConfig{Count: 5000, Speed: 5.0},
		Starry:    StarryConfig{Count: 100},
		FontFile:  "fonts/Roboto-Regular.ttf",
	}
}

// Load reads filename over the defaults. A missing file is not an error.
func Load(filename string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", filename, err)
	}
	return cfg, cfg.Validate()
}

// DotEnvLookup returns a lookup over the process environment that falls
// back to the given .env files. Missing files are skipped.
func DotEnvLookup(files ...string) (func(string) (string, bool), error) {
	merged := map[string]string{}
	for _, f := range files {
		vals, err := godotenv.Read(f)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f, err)
		}
		for k, v := range vals {
			if _, ok := merged[k]; !ok {
				merged[k] = v
			}
		}
	}
	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := merged[key]
		return v, ok
	}, nil
}

// ApplyEnv overrides fields from PORTFOLIO_* variables.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = v
		}
	}
	var errs []error
	num := func(name string, set func(string) error) {
		if v, ok := lookup(EnvPrefix + name); ok {
			if err := set(strings.TrimSpace(v)); err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
			}
		}
	}

	str("SCENE", &c.Scene)
	str("TITLE", &c.Window.Title)
	str("LAYOUT", &c.LayoutScript)
	str("CONTENT", &c.ContentFile)
	str("FONT", &c.FontFile)
	num("WIDTH", func(s string) (err error) { c.Window.Width, err = strconv.Atoi(s); return })
	num("HEIGHT", func(s string) (err error) { c.Window.Height, err = strconv.Atoi(s); return })
	num("SEED", func(s string) (err error) { c.Seed, err = strconv.ParseUint(s, 10, 64); return })
	num("PARTICLES", func(s string) (err error) { c.Supernova.Count, err = strconv.Atoi(s); return })
	num("RESPAWN", func(s string) (err error) { c.Starry.Respawn, err = strconv.ParseBool(s); return })

	if err := errors.Join(errs...); err != nil {
		return err
	}
	return c.Validate()
}

func (c *Config) Validate() error {
	switch c.Scene {
	case SceneProjects, SceneSupernova, SceneStarry, SceneAbout:
	default:
		return fmt.Errorf("unknown scene %q", c.Scene)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Viewport.MinScale <= 0 || c.Viewport.MaxScale < c.Viewport.MinScale {
		return fmt.Errorf("invalid scale bounds [%v, %v]", c.Viewport.MinScale, c.Viewport.MaxScale)
	}
	if c.Supernova.Count < 0 || c.Starry.Count < 0 {
		return fmt.Errorf("particle counts must not be negative")
	}
	return nil
}
