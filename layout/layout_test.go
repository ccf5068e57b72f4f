package layout

import (
	"math"
	"strings"
	"testing"
)

func TestDefaultScriptRings(t *testing.T) {
	e := NewEngine("", "")
	points, err := e.Place(4, 1500, 1000)
	if err != nil {
		t.Fatalf("Place failed: %v", err)
	}
	want := []Point{
		{1500 + 300 - 160, 1000 - 100},
		{1500 - 160, 1000 + 500 - 100},
		{1500 - 300 - 160, 1000 - 100},
		{1500 - 160, 1000 - 500 - 100},
	}
	for i, p := range points {
		if math.Abs(p.X-want[i].X) > 1e-9 || math.Abs(p.Y-want[i].Y) > 1e-9 {
			t.Errorf("card %d: expected %v, got %v", i, want[i], p)
		}
	}
}

func TestPlaceCaches(t *testing.T) {
	e := NewEngine("", "")
	a, err := e.Place(5, 1500, 1000)
	if err != nil {
		t.Fatal(err)
	}
	a[0].X = -1 // callers get a copy
	b, _ := e.Place(5, 1500, 1000)
	if e.Cached() != 1 {
		t.Errorf("Expected one cache entry, got %d", e.Cached())
	}
	if b[0].X == -1 {
		t.Errorf("Cached result was modified through a returned slice")
	}
	if _, err := e.Place(6, 1500, 1000); err != nil {
		t.Fatal(err)
	}
	if e.Cached() != 2 {
		t.Errorf("Expected two cache entries, got %d", e.Cached())
	}
}

func TestCustomScript(t *testing.T) {
	e := NewEngine("grid.star", `
def place(index, count, cx, cy):
    return [cx + index * 10, cy]
`)
	points, err := e.Place(3, 0, 5)
	if err != nil {
		t.Fatalf("Place failed: %v", err)
	}
	if points[2] != (Point{20, 5}) {
		t.Errorf("Unexpected point %v", points[2])
	}
}

func TestScriptErrors(t *testing.T) {
	cases := map[string]string{
		"syntax":     "def place(:\n",
		"undefined":  "x = 1\n",
		"bad return": "def place(i, n, cx, cy):\n    return 1\n",
		"bad coords": "def place(i, n, cx, cy):\n    return ('a', 'b')\n",
		"runtime":    "def place(i, n, cx, cy):\n    return (1 / 0, 0)\n",
	}
	for name, script := range cases {
		_, err := NewEngine(name, script).Place(2, 0, 0)
		if err == nil {
			t.Errorf("%s: expected an error", name)
			continue
		}
		if !strings.HasPrefix(err.Error(), "layout script") {
			t.Errorf("%s: unexpected error %v", name, err)
		}
	}
}

func TestPlaceEmpty(t *testing.T) {
	points, err := NewEngine("", "").Place(0, 0, 0)
	if err != nil || points != nil {
		t.Errorf("Expected nothing for zero cards, got %v, %v", points, err)
	}
}

func TestComputeInputHashStable(t *testing.T) {
	a := ComputeInputHash("s", map[string]interface{}{"count": 1})
	b := ComputeInputHash("s", map[string]interface{}{"count": 1})
	c := ComputeInputHash("s", map[string]interface{}{"count": 2})
	if a != b || a == c || len(a) != 64 {
		t.Errorf("Unexpected hashes %s %s %s", a, b, c)
	}
}
