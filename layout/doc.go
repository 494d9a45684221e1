// Package layout places a section plan onto fixed-size pages.
//
// The [Engine] walks a [canon.Plan] and emits positioned text runs, headings
// and rules into a [model.Document]:
//
//	engine := layout.NewEngine()
//	doc, err := engine.Render(canon.BuildPlan(p))
//
// # Pagination
//
// Coordinates have their origin at the top-left corner of the page and Y
// grows downward. A [Context] tracks the current page and the cursor; every
// line asks [Context.EnsureSpace] for its advance before it is drawn, so no
// glyph ever crosses the bottom margin. Headings reserve room for themselves
// plus the first block that follows them, and bullet items move to the next
// page as a whole unless they are taller than a page.
//
// # Measurement
//
// Text width comes from a [font.MeasureFunc] supplied in [Config]. The
// default uses the Standard 14 Helvetica metrics; [font.NewGoFont] provides a
// TrueType-backed alternative.
//
// # Configuration
//
// [A4] and [Letter] return the built-in presets. [LoadConfig] reads a YAML
// file whose optional "preset" key picks the base the other keys override:
//
//	preset: letter
//	margin: 54
//	bodySize: 10.5
//
// Geometry that cannot hold a single line is rejected with
// [ErrInvalidGeometry].
package layout
