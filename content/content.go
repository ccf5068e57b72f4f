// Package content holds the portfolio data shown by the views.
package content

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed portfolio.yaml
var embedded []byte

type Link struct {
	Type string `yaml:"type"`
	Href string `yaml:"href"`
}

type NavItem struct {
	Href  string `yaml:"href"`
	Label string `yaml:"label"`
}

type Social struct {
	Name   string `yaml:"name"`
	URL    string `yaml:"url"`
	Navbar bool   `yaml:"navbar"`
}

type Contact struct {
	Email  string   `yaml:"email"`
	Social []Social `yaml:"social"`
}

type Experience struct {
	Company  string   `yaml:"company"`
	Location string   `yaml:"location"`
	Title    string   `yaml:"title"`
	Start    string   `yaml:"start"`
	End      string   `yaml:"end"`
	Bullets  []string `yaml:"bullets"`
	TLDR     string   `yaml:"tldr"`
}

// Period is the date range shown on the timeline.
func (e Experience) Period() string {
	end := e.End
	if end == "" {
		end = "Present"
	}
	return e.Start + " - " + end
}

type Project struct {
	Title        string   `yaml:"title"`
	Href         string   `yaml:"href"`
	Dates        string   `yaml:"dates"`
	Active       bool     `yaml:"active"`
	Description  string   `yaml:"description"`
	Technologies []string `yaml:"technologies"`
	Links        []Link   `yaml:"links"`
}

// Badges returns the first n technologies, followed by a "+k" badge when
// some are left out.
func (p Project) Badges(n int) []string {
	if n < 0 {
		n = 0
	}
	if len(p.Technologies) <= n {
		return append([]string(nil), p.Technologies...)
	}
	out := append([]string(nil), p.Technologies[:n]...)
	return append(out, fmt.Sprintf("+%d", len(p.Technologies)-n))
}

type Paper struct {
	Title    string `yaml:"title"`
	Venue    string `yaml:"venue"`
	Year     string `yaml:"year"`
	Link     string `yaml:"link"`
	Abstract string `yaml:"abstract"`
	Status   string `yaml:"status"`
}

type Research struct {
	Published   []Paper  `yaml:"published"`
	InProgress  []Paper  `yaml:"in_progress"`
	Interests   []string `yaml:"interests"`
	Aspirations []string `yaml:"aspirations"`
}

type Portfolio struct {
	Name        string       `yaml:"name"`
	Initials    string       `yaml:"initials"`
	URL         string       `yaml:"url"`
	Description string       `yaml:"description"`
	Navbar      []NavItem    `yaml:"navbar"`
	Contact     Contact      `yaml:"contact"`
	Experience  []Experience `yaml:"experience"`
	Projects    []Project    `yaml:"projects"`
	Research    Research     `yaml:"research"`
}

// Load decodes the portfolio bundled with the binary.
func Load() (*Portfolio, error) {
	return Parse(embedded)
}

// LoadFile decodes a portfolio from disk, for local overrides.
func LoadFile(filename string) (*Portfolio, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Portfolio, error) {
	var p Portfolio
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode portfolio: %w", err)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *Portfolio) validate() error {
	seen := make(map[string]bool)
	for i, pr := range p.Projects {
		title := strings.TrimSpace(pr.Title)
		if title == "" {
			return fmt.Errorf("project %d: missing title", i)
		}
		if seen[title] {
			return fmt.Errorf("project %q: duplicate title", title)
		}
		seen[title] = true
	}
	return nil
}

// Project looks a project up by title.
func (p *Portfolio) Project(title string) (Project, bool) {
	for _, pr := range p.Projects {
		if pr.Title == title {
			return pr, true
		}
	}
	return Project{}, false
}
