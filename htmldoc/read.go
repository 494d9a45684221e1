package htmldoc

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Page is the text of one rendered page, element by element
type Page struct {
	Number int
	Lines  []string
}

// Result is what a reader sees in a rendered document
type Result struct {
	Title    string
	Pages    []Page
	Headings []string
}

// Read parses HTML produced by Render and returns its pages in order
func Read(r io.Reader) (*Result, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	res := &Result{}
	if title := findElement(doc, "title"); title != nil {
		res.Title = getTextContent(title)
	}
	if body := findElement(doc, "body"); body != nil {
		res.collectPages(body)
	}
	return res, nil
}

func (res *Result) collectPages(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if c.Data != "section" || !hasClass(c, "page") {
			res.collectPages(c)
			continue
		}

		page := Page{Number: len(res.Pages) + 1}
		for el := c.FirstChild; el != nil; el = el.NextSibling {
			if el.Type != html.ElementNode || el.Data == "hr" {
				continue
			}
			text := getTextContent(el)
			if text == "" {
				continue
			}
			page.Lines = append(page.Lines, text)
			if el.Data == "h2" {
				res.Headings = append(res.Headings, text)
			}
		}
		res.Pages = append(res.Pages, page)
	}
}

// Text returns every line, pages separated by a blank line
func (res *Result) Text() string {
	parts := make([]string, 0, len(res.Pages))
	for _, p := range res.Pages {
		parts = append(parts, strings.Join(p.Lines, "\n"))
	}
	return strings.Join(parts, "\n\n")
}

func hasClass(n *html.Node, class string) bool {
	for _, a := range n.Attr {
		if a.Key == "class" {
			for _, c := range strings.Fields(a.Val) {
				if c == class {
					return true
				}
			}
		}
	}
	return false
}

// findElement finds the first element with the given tag name.
func findElement(n *html.Node, tagName string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tagName {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if result := findElement(c, tagName); result != nil {
			return result
		}
	}
	return nil
}

// getTextContent extracts all text content from a node and its descendants.
func getTextContent(n *html.Node) string {
	var result strings.Builder
	getTextContentRecursive(n, &result)
	return strings.TrimSpace(result.String())
}

func getTextContentRecursive(n *html.Node, result *strings.Builder) {
	if n.Type == html.TextNode {
		result.WriteString(n.Data)
	}
	if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		getTextContentRecursive(c, result)
	}
}
