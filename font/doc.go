// Package font provides text measurement for document layout.
//
// The layout engine never talks to a rendering backend directly; it asks an
// injected [MeasureFunc] how wide a string is at a given font size. This
// package supplies two implementations.
//
// # Standard 14 Metrics
//
// [Standard] returns the built-in AFM advance widths of the PDF Standard 14
// fonts used by the PDF writer, so measured and rendered widths match:
//
//	helv := font.Standard(font.Helvetica)
//	w := helv.StringWidth("Hello", 10) // 22.78 points
//	measure := helv.Measure()
//
// # TrueType Metrics
//
// [GoFont] measures with the Go font family parsed by golang.org/x/image.
// It is a wider, conservative estimate useful when the final rendering font
// is not known:
//
//	gf, err := font.NewGoFont(false)
//	measure := gf.Measure()
package font
