package pdf

import (
	"bytes"
	"fmt"

	"github.com/tsawler/vita/model"
)

// fontTable maps base font names to page resource names in first-use order
type fontTable struct {
	order    []string
	resource map[string]string
}

// collectFonts walks every text element and assigns /F1, /F2, ... to the
// base fonts in the order they are first used.
func collectFonts(doc *model.Document) fontTable {
	t := fontTable{resource: make(map[string]string)}
	add := func(name string, bold bool) {
		f := baseFont(name, bold)
		if _, ok := t.resource[f]; ok {
			return
		}
		t.order = append(t.order, f)
		t.resource[f] = fmt.Sprintf("F%d", len(t.order))
	}

	for _, page := range doc.Pages {
		for _, elem := range page.Elements {
			switch el := elem.(type) {
			case *model.TextRun:
				add(el.FontName, el.Style.Bold)
			case *model.Heading:
				add(el.FontName, true)
			}
		}
	}

	// Resources must name at least one font
	if len(t.order) == 0 {
		add("", false)
	}
	return t
}

func (t fontTable) lookup(name string, bold bool) string {
	return t.resource[baseFont(name, bold)]
}

// pageContent renders the drawing operators for one page. Model coordinates
// have a top-left origin; PDF user space has a bottom-left one.
func pageContent(page *model.Page, fonts fontTable) []byte {
	var b bytes.Buffer
	flip := func(y float64) string {
		return formatNumber(page.Height - y)
	}

	text := func(s string, x, baseline, size float64, res string) {
		if s == "" {
			return
		}
		fmt.Fprintf(&b, "BT\n/%s %s Tf\n1 0 0 1 %s %s Tm\n%s Tj\nET\n",
			res, formatNumber(size),
			formatNumber(x), flip(baseline),
			String(EncodeWinAnsi(s)).String())
	}

	for _, elem := range page.Elements {
		switch el := elem.(type) {
		case *model.TextRun:
			text(el.Text, el.X, el.Baseline, el.FontSize, fonts.lookup(el.FontName, el.Style.Bold))
		case *model.Heading:
			text(el.Text, el.X, el.Baseline, el.FontSize, fonts.lookup(el.FontName, true))
		case *model.Rule:
			fmt.Fprintf(&b, "%s w\n0 G\n%s %s m\n%s %s l\nS\n",
				formatNumber(el.Width),
				formatNumber(el.Start.X), flip(el.Start.Y),
				formatNumber(el.End.X), flip(el.End.Y))
		}
	}
	return b.Bytes()
}
