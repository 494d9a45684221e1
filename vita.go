// Package vita provides a fluent API for turning a resume profile into a
// paginated document and scoring how well an automated screener can read it.
//
// Basic usage:
//
//	data, err := vita.New(p).PDF()
//	if err != nil {
//	    // handle error
//	}
//	os.WriteFile(vita.New(p).FileName(".pdf"), data, 0o644)
//
// With options:
//
//	report, err := vita.Load("profile.yaml").
//	    PageSize("letter").
//	    GoFont().
//	    Score()
//
// Every configuration method returns a new Builder, so a Builder may be
// shared between goroutines and branched. The lower-level canon, layout,
// ats, pdf and htmldoc packages are also available.
package vita

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"

	"github.com/tsawler/vita/ats"
	"github.com/tsawler/vita/canon"
	"github.com/tsawler/vita/font"
	"github.com/tsawler/vita/htmldoc"
	"github.com/tsawler/vita/layout"
	"github.com/tsawler/vita/model"
	"github.com/tsawler/vita/pdf"
	"github.com/tsawler/vita/profile"
	"github.com/tsawler/vita/text"
)

// Builder carries a profile and the options used to render and score it.
type Builder struct {
	profile profile.Profile
	options Options

	// Accumulated error (fail-fast)
	err error
}

// New returns a Builder for p. The profile is copied, so later changes to
// p do not affect the Builder.
//
// Example:
//
//	doc, err := vita.New(p).Layout()
func New(p profile.Profile) *Builder {
	return &Builder{
		profile: p.Clone(),
		options: defaultOptions(),
	}
}

// Load reads a YAML profile. A read or decode error is reported by the
// first terminal operation.
//
// Example:
//
//	data, err := vita.Load("jane.yaml").PDF()
func Load(path string) *Builder {
	p, err := profile.Load(path)
	b := New(p)
	b.err = err
	return b
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	data := vita.Must(vita.New(p).PDF())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// clone creates a copy of the Builder with its own options.
func (b *Builder) clone() *Builder {
	return &Builder{
		profile: b.profile,
		options: b.options.clone(),
		err:     b.err,
	}
}

// fail records the first error seen in a chain.
func (b *Builder) fail(err error) *Builder {
	if b.err == nil {
		b.err = err
	}
	return b
}

// ============================================================================
// Configuration Methods (return new Builder instance)
// ============================================================================

// PageSize selects a page preset: "a4" (the default) or "letter".
// Typography set by earlier calls is replaced by the preset's.
func (b *Builder) PageSize(name string) *Builder {
	nb := b.clone()
	cfg, err := layout.Preset(name)
	if err != nil {
		return nb.fail(err)
	}
	nb.options.config = cfg
	return nb
}

// Margin sets the margin applied on all four sides, in points.
func (b *Builder) Margin(points float64) *Builder {
	nb := b.clone()
	nb.options.config.Margin = points
	return nb
}

// Config replaces the whole layout configuration.
func (b *Builder) Config(cfg layout.Config) *Builder {
	nb := b.clone()
	nb.options.config = cfg
	return nb
}

// ConfigFile loads the layout configuration from a YAML file.
func (b *Builder) ConfigFile(path string) *Builder {
	nb := b.clone()
	cfg, err := layout.LoadConfig(path)
	if err != nil {
		return nb.fail(err)
	}
	nb.options.config = cfg
	return nb
}

// Measurer injects the text measurement capability for regular and bold
// text. A nil bold measurer reuses the regular one.
func (b *Builder) Measurer(regular, bold font.MeasureFunc) *Builder {
	nb := b.clone()
	if bold == nil {
		bold = regular
	}
	nb.options.measure = regular
	nb.options.measureBold = bold
	return nb
}

// GoFont measures text with the Go TrueType fonts instead of the Standard
// 14 metrics. An explicit Measurer takes precedence.
func (b *Builder) GoFont() *Builder {
	nb := b.clone()
	nb.options.goFont = true
	return nb
}

// Compress applies Flate compression to PDF content streams.
func (b *Builder) Compress() *Builder {
	nb := b.clone()
	nb.options.compress = true
	return nb
}

// Logger sets the logger handed to the layout engine, scorer and PDF
// writer. A nil logger discards output.
func (b *Builder) Logger(logger *slog.Logger) *Builder {
	nb := b.clone()
	nb.options.logger = logger
	return nb
}

// ============================================================================
// Terminal Methods
// ============================================================================

// Err returns the first error recorded while configuring the Builder.
func (b *Builder) Err() error {
	return b.err
}

// Profile returns a copy of the profile the Builder works on.
func (b *Builder) Profile() profile.Profile {
	return b.profile.Clone()
}

// Plan returns the canonical section plan shared by layout and scoring.
func (b *Builder) Plan() (canon.Plan, error) {
	if b.err != nil {
		return canon.Plan{}, b.err
	}
	return canon.BuildPlan(b.profile), nil
}

// Layout paginates the profile. On error no document is returned.
func (b *Builder) Layout() (*model.Document, error) {
	plan, err := b.Plan()
	if err != nil {
		return nil, err
	}
	return b.layout(plan)
}

func (b *Builder) layout(plan canon.Plan) (*model.Document, error) {
	cfg, closeFonts, err := b.layoutConfig()
	if err != nil {
		return nil, err
	}
	defer closeFonts()

	engine := layout.NewEngineWithConfig(cfg)
	engine.SetLogger(b.options.logger)

	doc, err := engine.Render(plan)
	if err != nil {
		return nil, fmt.Errorf("laying out %q: %w", plan.Header.Name, err)
	}
	return doc, nil
}

// layoutConfig resolves the measurement options into the layout
// configuration. The returned func releases any fonts opened for it.
func (b *Builder) layoutConfig() (layout.Config, func(), error) {
	cfg := b.options.config
	nop := func() {}

	switch {
	case b.options.measure != nil:
		cfg.Measure = b.options.measure
		cfg.MeasureBold = b.options.measureBold
		return cfg, nop, nil

	case b.options.goFont:
		regular, err := font.NewGoFont(false)
		if err != nil {
			return cfg, nop, err
		}
		bold, err := font.NewGoFont(true)
		if err != nil {
			regular.Close()
			return cfg, nop, err
		}
		cfg.Measure = regular.Measure()
		cfg.MeasureBold = bold.Measure()
		return cfg, func() {
			regular.Close()
			bold.Close()
		}, nil
	}
	return cfg, nop, nil
}

// Score evaluates the profile against the compatibility checklist, using
// the same plan the layout engine would render.
//
// Example:
//
//	report, err := vita.New(p).Score()
//	fmt.Println(report.Score, report.Summary)
func (b *Builder) Score() (ats.Report, error) {
	plan, err := b.Plan()
	if err != nil {
		return ats.Report{}, err
	}
	scorer := ats.NewScorer()
	scorer.SetLogger(b.options.logger)
	return scorer.ScorePlan(b.profile, plan), nil
}

// Transcript returns the linear text a screener extracts from the document.
func (b *Builder) Transcript() (string, error) {
	plan, err := b.Plan()
	if err != nil {
		return "", err
	}
	return ats.BuildTranscript(plan), nil
}

// Text lays the profile out and reads the pages back the way a naive text
// extractor would.
func (b *Builder) Text() (text.Result, error) {
	doc, err := b.Layout()
	if err != nil {
		return text.Result{}, err
	}
	return text.Extract(doc), nil
}

// PDF lays the profile out and serialises it as a PDF file.
func (b *Builder) PDF() ([]byte, error) {
	var buf bytes.Buffer
	if err := b.WritePDF(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WritePDF lays the profile out and writes it to w as a PDF file.
func (b *Builder) WritePDF(w io.Writer) error {
	doc, err := b.Layout()
	if err != nil {
		return err
	}
	if err := pdf.Write(w, doc, pdf.Options{
		Compress: b.options.compress,
		Logger:   b.options.logger,
	}); err != nil {
		return fmt.Errorf("writing PDF: %w", err)
	}
	return nil
}

// HTML lays the profile out and renders it as a standalone HTML page.
func (b *Builder) HTML() ([]byte, error) {
	var buf bytes.Buffer
	if err := b.WriteHTML(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteHTML lays the profile out and writes it to w as HTML.
func (b *Builder) WriteHTML(w io.Writer) error {
	doc, err := b.Layout()
	if err != nil {
		return err
	}
	if err := htmldoc.Render(w, doc); err != nil {
		return fmt.Errorf("writing HTML: %w", err)
	}
	return nil
}

// WriteText lays the profile out and writes the drawn text to w, one line
// per text element in drawing order, pages separated by a blank line.
func (b *Builder) WriteText(w io.Writer) error {
	doc, err := b.Layout()
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, doc.ExtractText()); err != nil {
		return fmt.Errorf("writing text: %w", err)
	}
	return nil
}

// FileName returns a download-safe file name for the profile with ext
// appended, e.g. "Jane_Doe.pdf".
func (b *Builder) FileName(ext string) string {
	return canon.FileName(b.profile.Name) + ext
}
