package text

import (
	"sort"
	"strings"
	"unicode"

	"github.com/tsawler/vita/model"
)

// Fragment is one positioned run of text as an extractor sees it
type Fragment struct {
	Text     string
	X        float64 // left edge
	Y        float64 // baseline, top-left origin
	Width    float64
	FontSize float64
	Bold     bool
}

// Right returns the fragment's right edge
func (f Fragment) Right() float64 {
	return f.X + f.Width
}

// Line is a group of fragments sharing a baseline
type Line struct {
	Page      int
	Text      string
	Baseline  float64
	BBox      model.BBox
	FontSize  float64 // largest fragment size
	Bold      bool    // every fragment is bold
	Heading   bool
	Fragments []Fragment
}

// Result holds the lines of a document in reading order
type Result struct {
	Lines    []Line
	Headings []string
}

// Text returns the lines joined with newlines, pages separated by a blank line
func (r Result) Text() string {
	var b strings.Builder
	page := 0
	for i, line := range r.Lines {
		if i > 0 {
			b.WriteByte('\n')
			if line.Page != page {
				b.WriteByte('\n')
			}
		}
		page = line.Page
		b.WriteString(line.Text)
	}
	return b.String()
}

// Config holds extractor tolerances
type Config struct {
	// LineTolerance is the baseline distance, as a fraction of font size,
	// within which fragments belong to the same line (default: 0.5)
	LineTolerance float64

	// SpaceThreshold is the horizontal gap, as a fraction of font size,
	// above which a space is inserted between fragments (default: 0.1)
	SpaceThreshold float64

	// RuleDistance is how far below a baseline, as a fraction of font size,
	// a rule may lie and still underline the line (default: 1.0)
	RuleDistance float64
}

// DefaultConfig returns sensible default configuration
func DefaultConfig() Config {
	return Config{
		LineTolerance:  0.5,
		SpaceThreshold: 0.1,
		RuleDistance:   1.0,
	}
}

// Extractor linearises documents
type Extractor struct {
	config Config
}

// NewExtractor creates an extractor with default configuration
func NewExtractor() *Extractor {
	return &Extractor{config: DefaultConfig()}
}

// NewExtractorWithConfig creates an extractor with custom configuration
func NewExtractorWithConfig(config Config) *Extractor {
	return &Extractor{config: config}
}

// Extract reads every page of doc with a default extractor
func Extract(doc *model.Document) Result {
	return NewExtractor().Extract(doc)
}

// Extract reads every page of doc
func (e *Extractor) Extract(doc *model.Document) Result {
	var res Result
	if doc == nil {
		return res
	}

	for _, page := range doc.Pages {
		lines := e.ExtractPage(page)
		for _, line := range lines {
			if line.Heading {
				res.Headings = append(res.Headings, line.Text)
			}
		}
		res.Lines = append(res.Lines, lines...)
	}
	return res
}

// ExtractPage reads the lines of one page in reading order
func (e *Extractor) ExtractPage(page *model.Page) []Line {
	var fragments []Fragment
	var rules []*model.Rule

	for _, elem := range page.Elements {
		switch el := elem.(type) {
		case *model.TextRun:
			fragments = append(fragments, Fragment{
				Text: el.Text, X: el.X, Y: el.Baseline, Width: el.Width,
				FontSize: el.FontSize, Bold: el.Style.Bold,
			})
		case *model.Heading:
			fragments = append(fragments, Fragment{
				Text: el.Text, X: el.X, Y: el.Baseline, Width: el.Width,
				FontSize: el.FontSize, Bold: true,
			})
		case *model.Rule:
			rules = append(rules, el)
		}
	}

	groups := e.groupIntoLines(fragments)
	lines := make([]Line, 0, len(groups))
	for _, group := range groups {
		line := e.buildLine(group)
		line.Page = page.Number
		line.Heading = e.isHeading(line, rules)
		lines = append(lines, line)
	}
	return lines
}

// groupIntoLines groups fragments into lines by baseline, top to bottom,
// each line ordered left to right.
func (e *Extractor) groupIntoLines(fragments []Fragment) [][]Fragment {
	if len(fragments) == 0 {
		return nil
	}

	sorted := make([]Fragment, len(fragments))
	copy(sorted, fragments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Y < sorted[j].Y
	})

	var lines [][]Fragment
	var current []Fragment

	flush := func() {
		sort.SliceStable(current, func(i, j int) bool {
			return current[i].X < current[j].X
		})
		lines = append(lines, current)
	}

	for _, frag := range sorted {
		if len(current) == 0 {
			current = append(current, frag)
			continue
		}

		// Compare against the line's average baseline
		tolerance := frag.FontSize * e.config.LineTolerance
		if abs(frag.Y-averageY(current)) <= tolerance {
			current = append(current, frag)
			continue
		}

		flush()
		current = []Fragment{frag}
	}
	if len(current) > 0 {
		flush()
	}

	return lines
}

// buildLine assembles the text and geometry of one line
func (e *Extractor) buildLine(fragments []Fragment) Line {
	line := Line{
		Fragments: fragments,
		Baseline:  fragments[0].Y,
		Bold:      true,
	}

	var sb strings.Builder
	for i, f := range fragments {
		box := model.NewBBox(f.X, f.Y-f.FontSize*model.Ascent, f.Width, f.FontSize)
		if i == 0 {
			line.BBox = box
		} else {
			line.BBox = line.BBox.Union(box)
			// Add a space if there's a significant gap
			if f.X-fragments[i-1].Right() > f.FontSize*e.config.SpaceThreshold {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString(f.Text)

		if f.FontSize > line.FontSize {
			line.FontSize = f.FontSize
		}
		if f.Y > line.Baseline {
			line.Baseline = f.Y
		}
		if !f.Bold {
			line.Bold = false
		}
	}
	line.Text = sb.String()

	return line
}

// isHeading reports whether a line is bold upper-case text underlined by a
// rule at least as wide as the text.
func (e *Extractor) isHeading(line Line, rules []*model.Rule) bool {
	if !line.Bold || !isUpper(line.Text) {
		return false
	}

	for _, r := range rules {
		box := r.BoundingBox()
		below := box.Top() - line.Baseline
		if below < 0 || below > line.FontSize*e.config.RuleDistance {
			continue
		}
		if box.Left() <= line.BBox.Left() && box.Right() >= line.BBox.Right() {
			return true
		}
	}
	return false
}

// isUpper reports whether s has letters and none of them are lower case
func isUpper(s string) bool {
	letters := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			letters = true
			if unicode.IsLower(r) {
				return false
			}
		}
	}
	return letters
}

func averageY(fragments []Fragment) float64 {
	total := 0.0
	for _, f := range fragments {
		total += f.Y
	}
	return total / float64(len(fragments))
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
