package layout

import (
	"errors"
	"fmt"
	"math/rand"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/tsawler/vita/canon"
	"github.com/tsawler/vita/model"
	"github.com/tsawler/vita/profile"
)

func sampleProfile() profile.Profile {
	return profile.Profile{
		Name:     "Jane Doe",
		Title:    "Staff Engineer",
		Location: "Berlin",
		Bio:      "Engineer with a decade of distributed systems work.",
		Contacts: []profile.Contact{
			{Type: profile.ContactLinkedIn, Value: "janedoe"},
			{Type: profile.ContactEmail, Value: "jane@x.com"},
		},
		Experiences: []profile.Experience{{
			Company:      "Acme",
			Position:     "Engineer",
			Location:     "Berlin",
			StartDate:    "2019-03",
			IsCurrent:    true,
			Description:  "Built the billing platform.",
			Achievements: []string{"Cut invoice latency by 40%", "Led a team of five"},
			Technologies: []string{"Go", "PostgreSQL"},
		}},
		Academics: []profile.Academic{{
			Institution: "TU Berlin",
			Degree:      "MSc",
			Field:       "Computer Science",
			StartDate:   "2012-10",
			EndDate:     "2014-09",
		}},
		TechnicalSkills: []profile.Skill{{Name: "Go"}, {Name: "Kubernetes"}},
		Languages:       []profile.Language{{Name: "English", Proficiency: "Native"}},
	}
}

// longProfile repeats experience entries until the document needs several pages
func longProfile(n int) profile.Profile {
	p := sampleProfile()
	base := p.Experiences[0]
	for i := 0; i < n; i++ {
		e := base
		e.Company = fmt.Sprintf("Company %d", i)
		e.Achievements = []string{
			strings.Repeat("Shipped a feature that mattered to customers. ", 4),
			"Mentored engineers",
			strings.Repeat("Reduced costs across the fleet. ", 3),
		}
		p.Experiences = append(p.Experiences, e)
	}
	return p
}

// randomSection returns a populated section with a random mix of entry shapes
func randomSection(r *rand.Rand) canon.Section {
	s := canon.Section{
		Kind:  canon.SectionKind(r.Intn(9)),
		Title: "Section " + randomText(r, 2, 8),
	}
	n := 1 + r.Intn(4)
	for i := 0; i < n; i++ {
		e := canon.Entry{Title: "entry" + randomText(r, 1, 10)}
		if r.Intn(2) == 0 {
			e.Subtitle = randomText(r, 4, 10)
		}
		if r.Intn(2) == 0 {
			e.Meta = "Jan 2020" + canon.RangeSeparator + canon.Present
		}
		if r.Intn(2) == 0 {
			e.Body = canon.TrimText(randomText(r, 80, 12))
		}
		for j := r.Intn(4); j > 0; j-- {
			if b := canon.TrimText(randomText(r, 60, 12)); b != "" {
				e.Bullets = append(e.Bullets, b)
			}
		}
		if r.Intn(3) == 0 {
			e.Technologies = []string{"Go", "SQL"}
		}
		s.Entries = append(s.Entries, e)
	}
	return s
}

func TestRender(t *testing.T) {
	plan := canon.BuildPlan(sampleProfile())
	doc, err := NewEngine().Render(plan)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if doc.PageCount() != 1 {
		t.Errorf("PageCount() = %d, want 1", doc.PageCount())
	}
	if doc.Metadata.Title != "Jane Doe" || doc.Metadata.Subject != "Resume" {
		t.Errorf("Metadata = %+v", doc.Metadata)
	}

	want := []string{"PROFESSIONAL SUMMARY", "EXPERIENCE", "EDUCATION", "SKILLS", "LANGUAGES"}
	if got := doc.Headings(); !reflect.DeepEqual(got, want) {
		t.Errorf("Headings() = %v, want %v", got, want)
	}

	page := doc.Pages[0]
	name := page.Elements[0].(*model.TextRun)
	if name.Text != "Jane Doe" || name.Role != model.RoleName || !name.Style.Bold {
		t.Errorf("first run = %+v, want bold name", name)
	}

	text := doc.ExtractText()
	for _, s := range []string{
		"Staff Engineer · Berlin",
		"Email: jane@x.com | LinkedIn: linkedin.com/in/janedoe",
		"Engineer | Acme, Berlin",
		"Mar 2019 – Present",
		"Cut invoice latency by 40%",
		"Technologies: Go, PostgreSQL",
		"MSc in Computer Science | TU Berlin",
		"Technical Skills: Go, Kubernetes",
		"English (Native)",
	} {
		if !strings.Contains(text, s) {
			t.Errorf("rendered text missing %q", s)
		}
	}
}

func TestRenderMetaRightAligned(t *testing.T) {
	plan := canon.BuildPlan(sampleProfile())
	engine := NewEngine()
	doc, err := engine.Render(plan)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	cfg := engine.Config()
	for _, elem := range doc.Pages[0].Elements {
		run, ok := elem.(*model.TextRun)
		if !ok || run.Text != "Mar 2019 – Present" {
			continue
		}
		if right := run.X + run.Width; right < cfg.Width-cfg.Margin-eps || right > cfg.Width-cfg.Margin+eps {
			t.Errorf("dates end at %v, want right margin %v", right, cfg.Width-cfg.Margin)
		}
		return
	}
	t.Error("date run not found")
}

func TestRenderEmptyProfile(t *testing.T) {
	doc, err := NewEngine().Render(canon.BuildPlan(profile.Profile{}))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if doc.PageCount() != 1 {
		t.Errorf("PageCount() = %d, want a single blank page", doc.PageCount())
	}
	if len(doc.Headings()) != 0 {
		t.Errorf("Headings() = %v, want none", doc.Headings())
	}
}

func TestRenderInvalidGeometry(t *testing.T) {
	cfg := A4()
	cfg.Margin = cfg.Width

	doc, err := NewEngineWithConfig(cfg).Render(canon.BuildPlan(sampleProfile()))
	if !errors.Is(err, ErrInvalidGeometry) {
		t.Fatalf("Render() error = %v, want ErrInvalidGeometry", err)
	}
	if doc != nil {
		t.Error("Render() returned a partial document")
	}
}

func TestRenderPaginates(t *testing.T) {
	engine := NewEngineWithConfig(Letter())
	doc, err := engine.Render(canon.BuildPlan(longProfile(12)))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if doc.PageCount() < 2 {
		t.Fatalf("PageCount() = %d, want several pages", doc.PageCount())
	}
	for i, page := range doc.Pages {
		if page.Number != i+1 || page.Width != 612 || page.Height != 792 {
			t.Errorf("page %d has number %d size %gx%g", i, page.Number, page.Width, page.Height)
		}
	}
	checkInsideMargins(t, doc, engine.Config())
}

func TestRenderDeterministic(t *testing.T) {
	plan := canon.BuildPlan(longProfile(5))
	engine := NewEngine()

	first, err := engine.Render(plan)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	second, err := engine.Render(plan)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("two renders of the same plan differ")
	}
}

func TestRenderConcurrent(t *testing.T) {
	plan := canon.BuildPlan(longProfile(4))
	engine := NewEngine()
	want, err := engine.Render(plan)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	var wg sync.WaitGroup
	results := make([]*model.Document, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = engine.Render(plan)
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		if !reflect.DeepEqual(got, want) {
			t.Errorf("concurrent render %d differs", i)
		}
	}
}

func TestRenderCustomMeasure(t *testing.T) {
	cfg := A4()
	cfg.Measure = fixedWidth
	cfg.MeasureBold = fixedWidth

	doc, err := NewEngineWithConfig(cfg).Render(canon.BuildPlan(sampleProfile()))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	run := doc.Pages[0].Elements[0].(*model.TextRun)
	if run.Width != fixedWidth("Jane Doe", cfg.NameSize) {
		t.Errorf("name width = %v, want the injected measure", run.Width)
	}
}
