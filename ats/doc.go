// Package ats estimates how well an applicant tracking system would read a
// resume.
//
// The scorer linearises the section plan into a plain-text transcript, the
// way a naive text extractor would see the printed page, then runs a fixed
// checklist over the profile and the plan:
//
//	report := ats.Score(p)
//	fmt.Println(report.Score, report.Summary)
//	for _, r := range report.Recommendations {
//		fmt.Println("-", r)
//	}
//
// The transcript walks the same [canon.Plan] the layout engine renders, so
// both agree on which sections exist and in what order.
//
// # Checks
//
// Nine checks contribute equally to the score:
//
//   - name - the profile has a name
//   - contact - at least one contact has a value
//   - sections - every populated heading is a standard one
//   - layout - always passes; the layout is single column by construction
//   - text - always passes; the document is text based by construction
//   - experience - every experience has a position, company and start date
//   - education - every academic entry has a degree and institution
//   - skills - at least one technical or soft skill is listed
//   - summary - the profile has a bio
//
// The score is round(100 * passed / 9). A resume is considered readable
// when it scores at least 70 and passes both the name and contact checks.
package ats
