// Package canon is the single source of truth for every formatting and
// ordering decision that must agree between the rendered document and the
// ATS transcript.
//
// All functions are total: malformed or missing input degrades to an empty
// string or the unmodified input, never to an error or a panic, so one bad
// field can never abort a full document.
//
// # Text
//
// [TrimText] collapses whitespace and applies Unicode NFC normalisation.
// Every consumer canonicalises through it before comparing or laying out a
// value.
//
// # Contacts
//
// [SortContacts], [FormatContactLabel] and [FormatContactValue] order and
// format contact entries identically for layout and scoring.
//
// # Section Plan
//
// [BuildPlan] converts a profile into a [Plan]: the header block and the
// ordered list of sections with their format-neutral entries. The layout
// engine and the scorer both walk the plan, so they agree on which sections
// exist and in which order by construction:
//
//	plan := canon.BuildPlan(p)
//	for _, s := range plan.Populated() {
//	    fmt.Println(canon.HeadingText(s.Title))
//	}
package canon
