// Package htmldoc renders a laid-out document as a printable HTML page and
// reads such pages back.
//
// Each page becomes an absolutely positioned <section class="page">; text
// runs keep the coordinates the layout engine gave them, so the browser
// prints the same pagination as the PDF writer.
package htmldoc

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/vita/model"
)

// ErrEmptyDocument is returned when there is nothing to render
var ErrEmptyDocument = errors.New("document has no pages")

// stylesheet positions every element from its top-left corner. line-height
// of 1 makes an element's box start at the top of its glyph box.
const stylesheet = `
body { margin: 0; background: #eee; font-family: Helvetica, Arial, sans-serif; }
.page { position: relative; margin: 12pt auto; background: #fff; overflow: hidden; page-break-after: always; }
.page > * { position: absolute; margin: 0; padding: 0; line-height: 1; white-space: pre; color: #000; }
.page > h2 { font-weight: bold; }
.page > hr { border: 0; border-top-style: solid; border-top-color: #000; height: 0; }
.bold { font-weight: bold; }
@media print { body { background: none; } .page { margin: 0; } }
`

// Render writes doc as a standalone HTML document
func Render(w io.Writer, doc *model.Document) error {
	if doc == nil || doc.PageCount() == 0 {
		return ErrEmptyDocument
	}

	root := &html.Node{Type: html.DocumentNode}
	root.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	htmlEl := element(atom.Html, "lang", "en")
	root.AppendChild(htmlEl)

	head := element(atom.Head)
	head.AppendChild(element(atom.Meta, "charset", "utf-8"))
	title := element(atom.Title)
	title.AppendChild(textNode(doc.Metadata.Title))
	head.AppendChild(title)
	if doc.Metadata.Author != "" {
		head.AppendChild(element(atom.Meta, "name", "author", "content", doc.Metadata.Author))
	}
	if doc.Metadata.Creator != "" {
		head.AppendChild(element(atom.Meta, "name", "generator", "content", doc.Metadata.Creator))
	}
	style := element(atom.Style)
	style.AppendChild(textNode(stylesheet))
	head.AppendChild(style)
	htmlEl.AppendChild(head)

	body := element(atom.Body)
	for _, page := range doc.Pages {
		body.AppendChild(renderPage(page))
	}
	htmlEl.AppendChild(body)

	if err := html.Render(w, root); err != nil {
		return fmt.Errorf("rendering HTML: %w", err)
	}
	return nil
}

func renderPage(page *model.Page) *html.Node {
	section := element(atom.Section,
		"class", "page",
		"data-page", strconv.Itoa(page.Number),
		"style", css("width", pt(page.Width), "height", pt(page.Height)))

	for _, elem := range page.Elements {
		switch el := elem.(type) {
		case *model.TextRun:
			class := "role-" + el.Role.String()
			if el.Style.Bold {
				class += " bold"
			}
			p := element(atom.P,
				"class", class,
				"style", textStyle(el.X, el.Baseline, el.FontSize))
			p.AppendChild(textNode(el.Text))
			section.AppendChild(p)

		case *model.Heading:
			h := element(atom.H2, "style", textStyle(el.X, el.Baseline, el.FontSize))
			h.AppendChild(textNode(el.Text))
			section.AppendChild(h)

		case *model.Rule:
			box := el.BoundingBox()
			section.AppendChild(element(atom.Hr, "style", css(
				"left", pt(box.X),
				"top", pt(box.Y),
				"width", pt(box.Width),
				"border-top-width", pt(el.Width))))
		}
	}
	return section
}

// textStyle places a line so its glyph box starts at baseline - ascent
func textStyle(x, baseline, size float64) string {
	return css(
		"left", pt(x),
		"top", pt(baseline-size*model.Ascent),
		"font-size", pt(size))
}

func element(a atom.Atom, attrs ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// css joins property/value pairs into an inline style
func css(pairs ...string) string {
	var b strings.Builder
	for i := 0; i+1 < len(pairs); i += 2 {
		if b.Len() > 0 {
			b.WriteByte(';')
		}
		b.WriteString(pairs[i])
		b.WriteByte(':')
		b.WriteString(pairs[i+1])
	}
	return b.String()
}

func pt(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	if s == "" || s == "-0" {
		s = "0"
	}
	return s + "pt"
}
