// Package layout places project cards on the map with a Starlark script.
package layout

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"

	starlarkmath "go.starlark.net/lib/math"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// DefaultScript spreads cards over two alternating rings around the centre.
// Returned positions are card top-left corners for 320x200 cards.
const DefaultScript = `
def place(index, count, cx, cy):
    angle = index / count * 2 * math.pi
    radius = 300 + (index % 2) * 200
    return (cx + math.cos(angle) * radius - 160, cy + math.sin(angle) * radius - 100)
`

// PlaceFunc is the function every layout script must define.
const PlaceFunc = "place"

type Point struct {
	X, Y float64
}

// Engine runs a layout script and caches its results per input.
type Engine struct {
	name   string
	script string
	cache  map[string][]Point
}

func NewEngine(name, script string) *Engine {
	if script == "" {
		script = DefaultScript
	}
	if name == "" {
		name = "layout.star"
	}
	return &Engine{
		name:   name,
		script: script,
		cache:  make(map[string][]Point),
	}
}

// ComputeInputHash creates the cache key for a layout run.
func ComputeInputHash(script string, inputs map[string]interface{}) string {
	data := map[string]interface{}{
		"script": script,
		"inputs": inputs,
	}
	jsonData, _ := json.Marshal(data)
	hash := sha256.Sum256(jsonData)
	return fmt.Sprintf("%x", hash)
}

// Place returns the position of each of count cards around (cx, cy).
func (e *Engine) Place(count int, cx, cy float64) ([]Point, error) {
	if count <= 0 {
		return nil, nil
	}
	key := ComputeInputHash(e.script, map[string]interface{}{"count": count, "cx": cx, "cy": cy})
	if cached, ok := e.cache[key]; ok {
		return append([]Point(nil), cached...), nil
	}

	points, err := e.run(count, cx, cy)
	if err != nil {
		return nil, err
	}
	e.cache[key] = points
	return append([]Point(nil), points...), nil
}

// Cached reports how many distinct inputs have been evaluated.
func (e *Engine) Cached() int { return len(e.cache) }

func (e *Engine) run(count int, cx, cy float64) ([]Point, error) {
	thread := &starlark.Thread{Name: e.name, Print: func(_ *starlark.Thread, msg string) { fmt.Println(msg) }}
	predeclared := starlark.StringDict{"math": starlarkmath.Module}

	globals, err := starlark.ExecFileOptions(&syntax.FileOptions{}, thread, e.name, e.script, predeclared)
	if err != nil {
		return nil, fmt.Errorf("layout script: %w", err)
	}
	fn, ok := globals[PlaceFunc].(starlark.Callable)
	if !ok {
		return nil, fmt.Errorf("layout script: %s is not defined", PlaceFunc)
	}

	points := make([]Point, 0, count)
	for i := 0; i < count; i++ {
		args := starlark.Tuple{starlark.MakeInt(i), starlark.MakeInt(count), starlark.Float(cx), starlark.Float(cy)}
		v, err := starlark.Call(thread, fn, args, nil)
		if err != nil {
			return nil, fmt.Errorf("layout script: card %d: %w", i, err)
		}
		p, err := toPoint(v)
		if err != nil {
			return nil, fmt.Errorf("layout script: card %d: %w", i, err)
		}
		points = append(points, p)
	}
	return points, nil
}

func toPoint(v starlark.Value) (Point, error) {
	seq, ok := v.(starlark.Indexable)
	if !ok || seq.Len() != 2 {
		return Point{}, fmt.Errorf("%s returned %s, want (x, y)", PlaceFunc, v.Type())
	}
	x, okX := starlark.AsFloat(seq.Index(0))
	y, okY := starlark.AsFloat(seq.Index(1))
	if !okX || !okY {
		return Point{}, fmt.Errorf("%s returned non-numeric coordinates %s", PlaceFunc, v)
	}
	return Point{X: x, Y: y}, nil
}
