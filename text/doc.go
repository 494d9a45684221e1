// Package text reads a laid-out document back the way a naive text
// extractor would.
//
// An extractor sees no section structure, only positioned text. The
// [Extractor] collects every text element of a [model.Document], groups
// fragments that share a baseline into lines, orders lines top to bottom and
// fragments left to right, and flags heading lines: bold, upper-case text
// with a horizontal rule directly beneath it.
//
//	res := text.Extract(doc)
//	for _, line := range res.Lines {
//		fmt.Println(line.Text)
//	}
//	fmt.Println(res.Headings)
//
// Comparing [Result.Headings] with the section plan shows that what prints
// is what is read.
package text
