package model

import "strings"

// Page represents a single page of a laid-out document
type Page struct {
	Number   int       // 1-indexed page number
	Width    float64   // Page width in points
	Height   float64   // Page height in points
	Elements []Element // Elements in drawing order
}

// NewPage creates a new page with given dimensions
func NewPage(width, height float64) *Page {
	return &Page{
		Width:    width,
		Height:   height,
		Elements: make([]Element, 0),
	}
}

// AddElement adds an element to the page
func (p *Page) AddElement(elem Element) {
	p.Elements = append(p.Elements, elem)
}

// ExtractText joins the text elements in drawing order, one per line
func (p *Page) ExtractText() string {
	var b strings.Builder
	for _, elem := range p.Elements {
		if te, ok := elem.(TextElement); ok {
			b.WriteString(te.GetText())
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Headings returns the heading elements on the page in drawing order
func (p *Page) Headings() []*Heading {
	var headings []*Heading
	for _, elem := range p.Elements {
		if h, ok := elem.(*Heading); ok {
			headings = append(headings, h)
		}
	}
	return headings
}
