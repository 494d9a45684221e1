package layout

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/vita/font"
	"github.com/tsawler/vita/model"
)

// ErrInvalidGeometry reports a layout configuration that cannot produce a
// document. It indicates a build-time defect, not bad profile data.
var ErrInvalidGeometry = errors.New("invalid page geometry")

// Config holds the page geometry, typography and measurement capability
// used by the layout engine. All lengths are in points.
type Config struct {
	// Page dimensions and the margin applied on all four sides
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Margin float64 `yaml:"margin"`

	// LineHeight converts a font size to vertical advance (advance = size * LineHeight)
	LineHeight float64 `yaml:"lineHeight"`

	// Font sizes
	NameSize    float64 `yaml:"nameSize"`
	TitleSize   float64 `yaml:"titleSize"`
	HeadingSize float64 `yaml:"headingSize"`
	BodySize    float64 `yaml:"bodySize"`
	SmallSize   float64 `yaml:"smallSize"`

	// HeadingAllowance is the vertical space a section heading and its rule consume
	HeadingAllowance float64 `yaml:"headingAllowance"`

	// BulletIndent is the left indent of bullet item text
	BulletIndent float64 `yaml:"bulletIndent"`

	// SectionGap and EntryGap are the blank space after a section and between entries
	SectionGap float64 `yaml:"sectionGap"`
	EntryGap   float64 `yaml:"entryGap"`

	// RuleWidth is the stroke width of the rule under each heading
	RuleWidth float64 `yaml:"ruleWidth"`

	// Font names recorded on text runs
	FontName     string `yaml:"fontName"`
	BoldFontName string `yaml:"boldFontName"`

	// Measure and MeasureBold report rendered text widths. When nil the
	// Standard 14 metrics of FontName and BoldFontName are used.
	Measure     font.MeasureFunc `yaml:"-"`
	MeasureBold font.MeasureFunc `yaml:"-"`
}

// A4 returns the default configuration for an A4 page
func A4() Config {
	return Config{
		Width:            595.28,
		Height:           841.89,
		Margin:           50,
		LineHeight:       1.35,
		NameSize:         22,
		TitleSize:        12,
		HeadingSize:      12,
		BodySize:         10,
		SmallSize:        9,
		HeadingAllowance: 22,
		BulletIndent:     12,
		SectionGap:       8,
		EntryGap:         6,
		RuleWidth:        0.75,
		FontName:         font.Helvetica,
		BoldFontName:     font.HelveticaBold,
	}
}

// Letter returns the default configuration for a US Letter page
func Letter() Config {
	c := A4()
	c.Width = 612
	c.Height = 792
	return c
}

// Preset returns the named page preset ("a4" or "letter")
func Preset(name string) (Config, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "a4":
		return A4(), nil
	case "letter":
		return Letter(), nil
	}
	return Config{}, fmt.Errorf("unknown page size %q", name)
}

// LoadConfig reads a YAML layout configuration. The optional "preset" key
// selects the base configuration the remaining keys override.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading layout config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes a YAML layout configuration and validates it
func ParseConfig(data []byte) (Config, error) {
	var head struct {
		Preset string `yaml:"preset"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return Config{}, fmt.Errorf("decoding layout config: %w", err)
	}

	cfg, err := Preset(head.Preset)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decoding layout config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ContentWidth returns the usable width between the side margins
func (c Config) ContentWidth() float64 {
	return c.Width - 2*c.Margin
}

// ContentHeight returns the usable height between the top and bottom margins
func (c Config) ContentHeight() float64 {
	return c.Height - 2*c.Margin
}

// Advance returns the vertical advance of one line at fontSize
func (c Config) Advance(fontSize float64) float64 {
	return fontSize * c.LineHeight
}

// Validate checks that the geometry can hold at least one line of every
// kind the engine emits.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 || c.Margin < 0 {
		return fmt.Errorf("%w: page %gx%g with margin %g", ErrInvalidGeometry, c.Width, c.Height, c.Margin)
	}
	if c.ContentWidth() <= c.BulletIndent || c.ContentWidth() <= 0 {
		return fmt.Errorf("%w: content width %g", ErrInvalidGeometry, c.ContentWidth())
	}
	if c.LineHeight < 1 {
		return fmt.Errorf("%w: line height factor %g is below 1", ErrInvalidGeometry, c.LineHeight)
	}
	sizes := []struct {
		name string
		size float64
	}{
		{"name", c.NameSize}, {"title", c.TitleSize}, {"heading", c.HeadingSize},
		{"body", c.BodySize}, {"small", c.SmallSize},
	}
	for _, s := range sizes {
		if s.size <= 0 {
			return fmt.Errorf("%w: %s font size %g", ErrInvalidGeometry, s.name, s.size)
		}
	}
	if c.RuleWidth < 0 || c.HeadingAllowance < c.HeadingSize+ruleOffset+c.RuleWidth {
		return fmt.Errorf("%w: heading allowance %g cannot hold a %gpt heading and its rule",
			ErrInvalidGeometry, c.HeadingAllowance, c.HeadingSize)
	}
	if c.SectionGap < 0 || c.EntryGap < 0 || c.BulletIndent < 0 {
		return fmt.Errorf("%w: negative spacing", ErrInvalidGeometry)
	}

	tallest := c.HeadingAllowance + c.Advance(c.BodySize)
	for _, size := range []float64{c.NameSize, c.TitleSize, c.BodySize, c.SmallSize} {
		if a := c.Advance(size); a > tallest {
			tallest = a
		}
	}
	if tallest > c.ContentHeight() {
		return fmt.Errorf("%w: content height %g cannot hold a %g block", ErrInvalidGeometry, c.ContentHeight(), tallest)
	}
	return nil
}

// withDefaults fills in the measurement functions and font names
func (c Config) withDefaults() Config {
	if c.FontName == "" {
		c.FontName = font.Helvetica
	}
	if c.BoldFontName == "" {
		c.BoldFontName = font.HelveticaBold
	}
	if c.Measure == nil {
		c.Measure = font.Standard(c.FontName).Measure()
	}
	if c.MeasureBold == nil {
		c.MeasureBold = font.Standard(c.BoldFontName).Measure()
	}
	return c
}

// measure returns the measurement function for the given style
func (c Config) measure(style model.TextStyle) font.MeasureFunc {
	if style.Bold {
		return c.MeasureBold
	}
	return c.Measure
}

// fontName returns the font name for the given style
func (c Config) fontName(style model.TextStyle) string {
	if style.Bold {
		return c.BoldFontName
	}
	return c.FontName
}
