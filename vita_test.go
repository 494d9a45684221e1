package vita

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	lpdf "github.com/ledongthuc/pdf"

	"github.com/tsawler/vita/layout"
	"github.com/tsawler/vita/model"
	"github.com/tsawler/vita/profile"
)

func sampleProfile() profile.Profile {
	return profile.Profile{
		Name:     "Jane O'Doe",
		Title:    "Backend Engineer",
		Location: "Toronto",
		Bio:      "Ten years building payment systems.",
		Contacts: []profile.Contact{
			{Type: profile.ContactEmail, Value: "jane@example.com"},
			{Type: profile.ContactPhone, Value: "+1 555 0100"},
		},
		Experiences: []profile.Experience{{
			Company:      "Acme",
			Position:     "Senior Engineer",
			StartDate:    "2020-03",
			IsCurrent:    true,
			Achievements: []string{"Cut settlement latency by 40%", "Led a team of five"},
			Technologies: []string{"Go", "PostgreSQL"},
		}},
		Academics: []profile.Academic{{
			Institution: "University of Toronto",
			Degree:      "BSc",
			Field:       "Computer Science",
			StartDate:   "2010-09",
			EndDate:     "2014-06",
		}},
		TechnicalSkills: []profile.Skill{{Name: "Go"}, {Name: "SQL"}},
	}
}

func TestLoadMissing(t *testing.T) {
	b := Load("nonexistent.yaml")
	if b.Err() == nil {
		t.Fatal("expected error for non-existent file")
	}
	if _, err := b.PDF(); err == nil {
		t.Error("PDF() should report the load error")
	}
	if _, err := b.Score(); err == nil {
		t.Error("Score() should report the load error")
	}
}

func TestLoadAndRender(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jane.yaml")
	data := "name: Jane Doe\ncontacts:\n  - type: email\n    value: jane@x.com\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	b := Load(path)
	if err := b.Err(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := b.FileName(".pdf"); got != "Jane_Doe.pdf" {
		t.Errorf("FileName() = %q", got)
	}
	if _, err := b.PDF(); err != nil {
		t.Errorf("PDF() error = %v", err)
	}
}

func TestChainImmutability(t *testing.T) {
	base := New(sampleProfile())
	letter := base.PageSize("letter")
	narrow := letter.Margin(30)

	if base.options.config.Width != layout.A4().Width {
		t.Error("base builder should keep A4")
	}
	if letter.options.config.Width != 612 {
		t.Error("letter builder should have a Letter page")
	}
	if letter.options.config.Margin != 50 || narrow.options.config.Margin != 30 {
		t.Error("Margin() changed the builder it was called on")
	}
	if base.options.compress || !base.Compress().options.compress {
		t.Error("Compress() should only affect the new builder")
	}
}

func TestNewCopiesProfile(t *testing.T) {
	p := sampleProfile()
	b := New(p)
	p.Name = "Someone Else"
	p.Experiences[0].Achievements[0] = "changed"

	if got := b.FileName(".pdf"); got != "Jane_ODoe.pdf" {
		t.Errorf("FileName() = %q, want Jane_ODoe.pdf", got)
	}
	if got := b.Profile().Experiences[0].Achievements[0]; got == "changed" {
		t.Error("builder shares achievement slices with the caller")
	}
}

func TestPageSizeUnknown(t *testing.T) {
	b := New(sampleProfile()).PageSize("a5").Compress()
	if b.Err() == nil {
		t.Fatal("expected error for unknown page size")
	}
	if doc, err := b.Layout(); err == nil || doc != nil {
		t.Errorf("Layout() = %v, %v; want nil document and an error", doc, err)
	}
}

func TestInvalidGeometry(t *testing.T) {
	doc, err := New(sampleProfile()).Margin(400).Layout()
	if !errors.Is(err, layout.ErrInvalidGeometry) {
		t.Errorf("Layout() error = %v, want ErrInvalidGeometry", err)
	}
	if doc != nil {
		t.Error("no document should be returned alongside an error")
	}
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	if err := os.WriteFile(path, []byte("preset: letter\nmargin: 40\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	doc, err := New(sampleProfile()).ConfigFile(path).Layout()
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	if w := doc.Pages[0].Width; w != 612 {
		t.Errorf("page width = %v, want 612", w)
	}

	if _, err := New(sampleProfile()).ConfigFile("missing.yaml").Layout(); err == nil {
		t.Error("expected error for a missing config file")
	}
}

func TestScoreMatchesLayout(t *testing.T) {
	b := New(sampleProfile())

	report, err := b.Score()
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	doc, err := b.Layout()
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}

	if !reflect.DeepEqual(report.Sections, doc.Headings()) {
		t.Errorf("scored sections %v, rendered headings %v", report.Sections, doc.Headings())
	}
	if report.Score != 100 || !report.ATSReadable {
		t.Errorf("Score = %d, readable = %v; want 100, true", report.Score, report.ATSReadable)
	}

	transcript, err := b.Transcript()
	if err != nil {
		t.Fatalf("Transcript() error = %v", err)
	}
	if transcript != report.Transcript {
		t.Error("Transcript() differs from the report transcript")
	}
}

func TestText(t *testing.T) {
	b := New(sampleProfile())
	res, err := b.Text()
	if err != nil {
		t.Fatalf("Text() error = %v", err)
	}
	plan := Must(b.Plan())
	if !reflect.DeepEqual(res.Headings, plan.Headings()) {
		t.Errorf("read-back headings %v, want %v", res.Headings, plan.Headings())
	}
}

func TestPDF(t *testing.T) {
	b := New(sampleProfile()).Compress()
	data, err := b.PDF()
	if err != nil {
		t.Fatalf("PDF() error = %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-1.4")) {
		t.Fatal("missing PDF header")
	}

	r, err := lpdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("failed to read pdf: %v", err)
	}
	doc := Must(b.Layout())
	if r.NumPage() != doc.PageCount() {
		t.Errorf("NumPage() = %d, want %d", r.NumPage(), doc.PageCount())
	}
	text, err := r.Page(1).GetPlainText(nil)
	if err != nil {
		t.Fatalf("GetPlainText() error = %v", err)
	}
	if !strings.Contains(text, "jane@example.com") {
		t.Error("read-back text missing the email address")
	}
}

func TestHTML(t *testing.T) {
	data, err := New(sampleProfile()).HTML()
	if err != nil {
		t.Fatalf("HTML() error = %v", err)
	}
	s := string(data)
	for _, want := range []string{`class="page"`, ">EXPERIENCE</h2>", "Jane O&#39;Doe"} {
		if !strings.Contains(s, want) {
			t.Errorf("HTML missing %q", want)
		}
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := New(sampleProfile()).WriteText(&buf); err != nil {
		t.Fatalf("WriteText() error = %v", err)
	}
	got := buf.String()
	if !strings.HasPrefix(got, "Jane O'Doe\n") {
		t.Errorf("text should start with the name, got %q", got[:min(len(got), 40)])
	}
	for _, want := range []string{"\nEXPERIENCE\n", "\nEDUCATION\n", "Cut settlement latency by 40%"} {
		if !strings.Contains(got, want) {
			t.Errorf("text missing %q", want)
		}
	}

	if err := Load("nonexistent.yaml").WriteText(&buf); err == nil {
		t.Error("expected error for non-existent file")
	}
}

func TestMeasurer(t *testing.T) {
	calls := 0
	measure := func(s string, size float64) float64 {
		calls++
		return float64(len(s)) * size * 0.5
	}

	if _, err := New(sampleProfile()).Measurer(measure, nil).Layout(); err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	if calls == 0 {
		t.Error("injected measurer was never called")
	}
}

func TestGoFont(t *testing.T) {
	widths := func(doc *model.Document) float64 {
		var sum float64
		for _, page := range doc.Pages {
			for _, el := range page.Elements {
				if run, ok := el.(*model.TextRun); ok {
					sum += run.Width
				}
			}
		}
		return sum
	}

	standard := Must(New(sampleProfile()).Layout())
	gofont := Must(New(sampleProfile()).GoFont().Layout())
	if widths(standard) == widths(gofont) {
		t.Error("Go font measurements match the Standard 14 metrics exactly")
	}
}

func TestMust(t *testing.T) {
	result := Must("hello", nil)
	if result != "hello" {
		t.Errorf("expected 'hello', got %q", result)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected Must to panic on error")
		}
	}()
	Must("", os.ErrNotExist)
}
