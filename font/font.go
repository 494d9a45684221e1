package font

import (
	"golang.org/x/text/unicode/norm"
)

// MeasureFunc returns the rendered width of text at fontSize, in points
type MeasureFunc func(text string, fontSize float64) float64

// Standard 14 font names supported by the metrics tables
const (
	Helvetica            = "Helvetica"
	HelveticaBold        = "Helvetica-Bold"
	HelveticaOblique     = "Helvetica-Oblique"
	HelveticaBoldOblique = "Helvetica-BoldOblique"
	Courier              = "Courier"
	CourierBold          = "Courier-Bold"
)

// defaultWidth is used for runes with no known advance (in 1000ths of em)
const defaultWidth = 556.0

// Metrics holds per-rune advance widths of one font, in 1000ths of em
type Metrics struct {
	Name   string
	widths map[rune]float64
}

// Standard returns the metrics of a Standard 14 font. Unknown names fall
// back to Helvetica metrics under the requested name.
func Standard(name string) *Metrics {
	m := &Metrics{Name: name, widths: make(map[rune]float64, 110)}

	var ascii *[95]float64
	switch name {
	case HelveticaBold, HelveticaBoldOblique:
		ascii = &helveticaBoldASCII
	case Courier, CourierBold:
		ascii = nil
	default:
		ascii = &helveticaASCII
	}

	for i := 0; i < 95; i++ {
		r := rune(32 + i)
		if ascii == nil {
			m.widths[r] = 600
		} else {
			m.widths[r] = ascii[i]
		}
	}
	for r, w := range punctuationWidths {
		if ascii == nil {
			w = 600
		}
		m.widths[r] = w
	}

	return m
}

// Width returns the advance width of r in 1000ths of em. Accented letters
// without their own entry take the width of their base letter.
func (m *Metrics) Width(r rune) float64 {
	if w, ok := m.widths[r]; ok {
		return w
	}
	if d := norm.NFD.String(string(r)); d != string(r) {
		for _, base := range d {
			if w, ok := m.widths[base]; ok {
				return w
			}
			break
		}
	}
	return defaultWidth
}

// StringWidth returns the width of s at fontSize, in points
func (m *Metrics) StringWidth(s string, fontSize float64) float64 {
	total := 0.0
	for _, r := range s {
		total += m.Width(r)
	}
	return total * fontSize / 1000
}

// Measure adapts the metrics to a [MeasureFunc]
func (m *Metrics) Measure() MeasureFunc {
	return m.StringWidth
}

// punctuationWidths covers the non-ASCII WinAnsi characters the document
// uses as separators. The values are identical in regular and bold faces.
var punctuationWidths = map[rune]float64{
	'\u00a0': 278, // no-break space
	'·': 278,  // middle dot
	'•': 350,  // bullet
	'–': 556,  // en dash
	'—': 1000, // em dash
	'‘': 222,
	'’': 222,
	'“': 333,
	'”': 333,
	'…': 1000,
}

// helveticaASCII holds Helvetica widths for runes 32 (space) to 126 (~)
var helveticaASCII = [95]float64{
	278, 278, 355, 556, 556, 889, 667, 191, 333, 333, 389, 584, 278, 333, 278, 278, // space - /
	556, 556, 556, 556, 556, 556, 556, 556, 556, 556, // 0-9
	278, 278, 584, 584, 584, 556, 1015, // : ; < = > ? @
	667, 667, 722, 722, 667, 611, 778, 722, 278, 500, 667, 556, 833, // A-M
	722, 778, 667, 778, 722, 667, 611, 722, 667, 944, 667, 667, 611, // N-Z
	278, 278, 278, 469, 556, 333, // [ \ ] ^ _ `
	556, 556, 500, 556, 556, 278, 556, 556, 222, 222, 500, 222, 833, // a-m
	556, 556, 556, 556, 333, 500, 278, 556, 500, 722, 500, 500, 500, // n-z
	334, 260, 334, 584, // { | } ~
}

// helveticaBoldASCII holds Helvetica-Bold widths for runes 32 to 126
var helveticaBoldASCII = [95]float64{
	278, 333, 474, 556, 556, 889, 722, 238, 333, 333, 389, 584, 278, 333, 278, 278, // space - /
	556, 556, 556, 556, 556, 556, 556, 556, 556, 556, // 0-9
	333, 333, 584, 584, 584, 611, 975, // : ; < = > ? @
	722, 722, 722, 722, 667, 611, 778, 722, 278, 556, 722, 611, 833, // A-M
	722, 778, 667, 778, 722, 667, 611, 722, 667, 944, 667, 667, 611, // N-Z
	333, 278, 333, 584, 556, 333, // [ \ ] ^ _ `
	556, 611, 556, 611, 556, 333, 611, 611, 278, 278, 556, 278, 889, // a-m
	611, 611, 611, 611, 389, 556, 333, 611, 556, 778, 556, 556, 500, // n-z
	389, 280, 389, 584, // { | } ~
}
