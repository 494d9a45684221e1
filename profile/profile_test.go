package profile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseYAML(t *testing.T) {
	data := []byte(`
name: "  Jane   Doe "
title: Engineer
contacts:
  - type: email
    value: jane@x.com
  - type: github
    label: Code
    value: https://github.com/jane/
experiences:
  - company: Acme
    position: Developer
    startDate: 2020-01
    isCurrent: true
    achievements: [Shipped things]
    technologies: [Go, SQL]
technicalSkills:
  - name: Go
`)

	p, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if p.Name != "  Jane   Doe " {
		t.Errorf("Name = %q, want raw value preserved", p.Name)
	}
	if len(p.Contacts) != 2 {
		t.Fatalf("len(Contacts) = %d, want 2", len(p.Contacts))
	}
	if p.Contacts[1].Type != ContactGitHub || p.Contacts[1].Label != "Code" {
		t.Errorf("Contacts[1] = %+v", p.Contacts[1])
	}
	if len(p.Experiences) != 1 || !p.Experiences[0].IsCurrent {
		t.Fatalf("Experiences = %+v", p.Experiences)
	}
	if p.Experiences[0].StartDate != "2020-01" {
		t.Errorf("StartDate = %q, want 2020-01", p.Experiences[0].StartDate)
	}
	if got := p.Experiences[0].Technologies; len(got) != 2 || got[1] != "SQL" {
		t.Errorf("Technologies = %v", got)
	}
	if len(p.TechnicalSkills) != 1 || p.TechnicalSkills[0].Name != "Go" {
		t.Errorf("TechnicalSkills = %v", p.TechnicalSkills)
	}
}

func TestParseJSON(t *testing.T) {
	data := []byte(`{"name":"Jane","bio":"Engineer.","languages":[{"name":"English","proficiency":"Native"}]}`)

	p, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if p.Name != "Jane" || p.Bio != "Engineer." {
		t.Errorf("Parse() = %+v", p)
	}
	if len(p.Languages) != 1 || p.Languages[0].Proficiency != "Native" {
		t.Errorf("Languages = %v", p.Languages)
	}
}

func TestParseInvalid(t *testing.T) {
	if _, err := Parse([]byte("name: [unterminated")); err == nil {
		t.Error("Parse() expected error for malformed input")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "p.yaml")
	if err := os.WriteFile(path, []byte("name: Jane\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if p.Name != "Jane" {
		t.Errorf("Name = %q, want Jane", p.Name)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() expected error for missing file")
	}
}

func TestClone(t *testing.T) {
	p := Profile{
		Name:        "Jane",
		Experiences: []Experience{{Company: "Acme", Achievements: []string{"a"}}},
		Projects:    []Project{{Title: "X", Technologies: []string{"Go"}}},
	}

	c := p.Clone()
	c.Experiences[0].Achievements[0] = "changed"
	c.Projects[0].Technologies[0] = "Rust"
	c.Name = "Other"

	if p.Experiences[0].Achievements[0] != "a" {
		t.Error("Clone() shares experience achievements with original")
	}
	if p.Projects[0].Technologies[0] != "Go" {
		t.Error("Clone() shares project technologies with original")
	}
	if p.Name != "Jane" {
		t.Error("Clone() modified original name")
	}
}
