package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadEmbedded(t *testing.T) {
	p, err := Load()
	if err != nil {
		t.Fatalf("Failed to load portfolio: %v", err)
	}
	if p.Name != "aarshia verma" {
		t.Errorf("Unexpected name %q", p.Name)
	}
	if len(p.Projects) != 5 {
		t.Fatalf("Expected 5 projects, got %d", len(p.Projects))
	}
	if len(p.Research.Published) != 2 || p.Research.Published[0].Year != "2024" {
		t.Errorf("Unexpected research section: %+v", p.Research.Published)
	}
	if got := p.Experience[0].Period(); got != "May 2025 - August 2025" {
		t.Errorf("Unexpected period %q", got)
	}

	pr, ok := p.Project("skinly")
	if !ok {
		t.Fatalf("Expected to find skinly")
	}
	if len(pr.Links) != 1 || pr.Links[0].Type != "Source" {
		t.Errorf("Unexpected links %+v", pr.Links)
	}
}

func TestBadges(t *testing.T) {
	p := Project{Technologies: []string{"go", "ebiten", "yaml", "starlark", "mathgl"}}
	got := strings.Join(p.Badges(3), ",")
	if got != "go,ebiten,yaml,+2" {
		t.Errorf("Unexpected badges %q", got)
	}
	if got := len(p.Badges(10)); got != 5 {
		t.Errorf("Expected all 5 badges, got %d", got)
	}
	short := Project{Technologies: []string{"go"}}
	if got := short.Badges(3); len(got) != 1 || got[0] != "go" {
		t.Errorf("Unexpected badges %v", got)
	}
}

func TestParseRejectsBadProjects(t *testing.T) {
	cases := map[string]string{
		"missing title": "projects:\n  - description: nope\n",
		"duplicate":     "projects:\n  - title: a\n  - title: a\n",
		"bad yaml":      "projects: [",
	}
	for name, doc := range cases {
		if _, err := Parse([]byte(doc)); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
}

func TestLoadFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "portfolio.yaml")
	doc := "name: test\nprojects:\n  - title: one\n    technologies: [go]\n"
	if err := os.WriteFile(filename, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	p, err := LoadFile(filename)
	if err != nil {
		t.Fatalf("Failed to load file: %v", err)
	}
	if p.Name != "test" || len(p.Projects) != 1 {
		t.Errorf("Unexpected portfolio %+v", p)
	}
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("Expected an error for a missing file")
	}
}
