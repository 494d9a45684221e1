// Package pdf serialises a laid-out document to PDF.
//
// The writer targets PDF 1.4 and uses only the standard 14 fonts, so no
// font data is embedded. Text is encoded with WinAnsiEncoding; runes that
// Windows-1252 cannot represent are written as '?'.
//
//	doc, _ := layout.NewEngine().Render(plan)
//	f, _ := os.Create("resume.pdf")
//	defer f.Close()
//	err := pdf.Write(f, doc, pdf.Options{Compress: true})
//
// Output is deterministic: object order, dictionary key order and the file
// identifier (a SHA-1 name-based UUID of the file body) depend only on the
// document.
package pdf
