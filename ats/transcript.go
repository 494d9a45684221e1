package ats

import (
	"strings"

	"github.com/tsawler/vita/canon"
	"github.com/tsawler/vita/profile"
)

// Transcript returns the plain-text linearisation of a profile
func Transcript(p profile.Profile) string {
	return BuildTranscript(canon.BuildPlan(p))
}

// BuildTranscript linearises a plan: the name, the title and location line,
// the contact line, then for every populated section a blank line, the
// upper-cased heading and one line per entry field.
func BuildTranscript(plan canon.Plan) string {
	var lines []string

	add := func(s string) {
		if s != "" {
			lines = append(lines, s)
		}
	}

	add(plan.Header.Name)
	add(plan.Header.Subtitle())
	add(plan.Header.ContactLine())

	for _, section := range plan.Populated() {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, section.Heading())

		for _, e := range section.Entries {
			add(e.Heading())
			add(e.Meta)
			add(e.BodyText())
			for _, b := range e.Bullets {
				add(canon.Bullet + " " + b)
			}
			add(e.TechnologiesText())
		}
	}

	return strings.Join(lines, "\n")
}
