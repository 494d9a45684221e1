package model

import (
	"strings"
	"time"
)

// Document represents a complete laid-out document
type Document struct {
	Metadata Metadata
	Pages    []*Page
}

// Metadata contains document-level information
type Metadata struct {
	Title        string
	Author       string
	Subject      string
	Keywords     []string
	Creator      string
	Producer     string
	CreationDate time.Time
}

// NewDocument creates a new empty document
func NewDocument() *Document {
	return &Document{
		Pages: make([]*Page, 0),
	}
}

// AddPage adds a page to the document
func (d *Document) AddPage(page *Page) {
	page.Number = len(d.Pages) + 1
	d.Pages = append(d.Pages, page)
}

// PageCount returns the total number of pages
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// ExtractText returns all text content, pages separated by a blank line
func (d *Document) ExtractText() string {
	parts := make([]string, 0, len(d.Pages))
	for _, page := range d.Pages {
		parts = append(parts, page.ExtractText())
	}
	return strings.Join(parts, "\n")
}

// Headings returns the text of every heading across all pages, in order
func (d *Document) Headings() []string {
	var headings []string
	for _, page := range d.Pages {
		for _, h := range page.Headings() {
			headings = append(headings, h.Text)
		}
	}
	return headings
}
