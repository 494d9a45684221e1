// Package model provides the intermediate representation (IR) of a laid-out
// document.
//
// The layout engine produces these types and the serialisers (pdf, htmldoc)
// and the read-back extractor (text) consume them. Nothing in this package
// knows about resumes; it only describes positioned drawing instructions.
//
// # Document Structure
//
// The [Document] type represents a complete document with metadata and pages:
//
//	doc := model.NewDocument()
//	doc.Metadata.Title = "Jane Doe"
//	doc.AddPage(model.NewPage(595.28, 841.89))
//
// Each [Page] has fixed dimensions and an ordered list of [Element] values in
// drawing order.
//
// # Elements
//
// All page content implements the [Element] interface. The concrete types are:
//
//   - [TextRun] - a single line of text at a baseline position
//   - [Heading] - a section heading line
//   - [Rule] - a straight horizontal or vertical line
//
// # Coordinates
//
// Coordinates are in points with the origin at the top-left corner of the
// page and Y growing downwards, which is how the layout cursor advances.
// Serialisers that use a bottom-left origin (PDF) flip Y themselves.
package model
