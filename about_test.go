package main

import (
	"strings"
	"testing"

	"portfolio/config"
	"portfolio/content"
)

func aboutText(lines []aboutLine) string {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l.Text)
		b.WriteString("\n")
	}
	return b.String()
}

func TestAboutLinesShowTimelineResearchAndContact(t *testing.T) {
	p, err := content.Load()
	if err != nil {
		t.Fatalf("Failed to load content: %v", err)
	}
	text := aboutText(aboutLines(p))

	for _, want := range []string{
		p.Name,
		"home · projects · blog",
		"The Linux Foundation · Intern",
		"May 2025 - August 2025 · Bangalore, India",
		p.Research.Published[0].Title,
		"IAC 2024 · 2024",
		"EarthRAG",
		"SPAICE 2026 · building · in progress",
		"interests: AI/ML for Scientific Discovery",
		"email: " + p.Contact.Email,
		"github: https://github.com/aarsh1a",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected about page to contain %q", want)
		}
	}
}

func TestAboutTimelineUsesPresentForOpenRoles(t *testing.T) {
	p := &content.Portfolio{
		Name: "someone",
		Experience: []content.Experience{
			{Company: "Lab", Title: "Researcher", Start: "Jan 2026", Bullets: []string{"first", "second"}},
		},
	}
	lines := aboutLines(p)
	text := aboutText(lines)
	if !strings.Contains(text, "Jan 2026 - Present") {
		t.Errorf("Expected open role to end in Present, got:\n%s", text)
	}
	if !strings.Contains(text, "- first\n- second") {
		t.Errorf("Expected bullets without a tldr, got:\n%s", text)
	}
	if strings.Contains(text, "RESEARCH") || strings.Contains(text, "research\n") {
		t.Errorf("Empty research section must be left out")
	}
}

func TestAboutSceneScrollStaysInRange(t *testing.T) {
	g := newTestGame(t, config.SceneAbout)
	s := g.scene.(*AboutScene)
	if len(s.rows) == 0 {
		t.Fatalf("Expected wrapped rows")
	}

	s.scrollBy(-100)
	if s.scroll != 0 {
		t.Errorf("Expected scroll clamped at 0, got %v", s.scroll)
	}
	s.scrollBy(1e9)
	limit := s.contentHeight - (800 - 2*AboutMargin)
	if limit < 0 {
		limit = 0
	}
	if s.scroll != limit {
		t.Errorf("Expected scroll clamped at %v, got %v", limit, s.scroll)
	}

	// Rows are ordered top to bottom and fit the column.
	for i := 1; i < len(s.rows); i++ {
		if s.rows[i].Y <= s.rows[i-1].Y {
			t.Fatalf("Row %d at %v is not below row %d at %v", i, s.rows[i].Y, i-1, s.rows[i-1].Y)
		}
	}
}
