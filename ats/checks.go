package ats

import (
	"fmt"

	"github.com/tsawler/vita/canon"
	"github.com/tsawler/vita/profile"
)

// CheckID identifies one checklist item
type CheckID string

const (
	CheckName       CheckID = "name"
	CheckContact    CheckID = "contact"
	CheckSections   CheckID = "sections"
	CheckLayout     CheckID = "layout"
	CheckText       CheckID = "text"
	CheckExperience CheckID = "experience"
	CheckEducation  CheckID = "education"
	CheckSkills     CheckID = "skills"
	CheckSummary    CheckID = "summary"
)

// Check is the outcome of one checklist item
type Check struct {
	ID     CheckID `json:"id"`
	Label  string  `json:"label"`
	Passed bool    `json:"passed"`
	Detail string  `json:"detail"`
}

// StandardHeadings are the section headings ATS parsers recognise
var StandardHeadings = map[string]bool{
	"PROFESSIONAL SUMMARY":    true,
	"SUMMARY":                 true,
	"EXPERIENCE":              true,
	"WORK EXPERIENCE":         true,
	"PROFESSIONAL EXPERIENCE": true,
	"EDUCATION":               true,
	"SKILLS":                  true,
	"TECHNICAL SKILLS":        true,
	"PROJECTS":                true,
	"CERTIFICATIONS":          true,
	"HONORS":                  true,
	"HONORS & AWARDS":         true,
	"AWARDS":                  true,
	"LANGUAGES":               true,
	"KEY HIGHLIGHTS":          true,
}

// input bundles what every check reads
type input struct {
	profile profile.Profile
	plan    canon.Plan
}

type checkFunc func(in input) Check

// checklist holds the checks in report order
var checklist = []checkFunc{
	checkName,
	checkContact,
	checkSections,
	checkLayout,
	checkText,
	checkExperience,
	checkEducation,
	checkSkills,
	checkSummary,
}

func checkName(in input) Check {
	c := Check{ID: CheckName, Label: "Name"}
	if name := in.plan.Header.Name; name != "" {
		c.Passed = true
		c.Detail = "Name found: " + name
	} else {
		c.Detail = "No name found"
	}
	return c
}

func checkContact(in input) Check {
	c := Check{ID: CheckContact, Label: "Contact information"}
	contacts := in.plan.Header.Contacts
	c.Passed = len(contacts) > 0
	email, phone := contactFlags(in.plan)
	c.Detail = fmt.Sprintf("%d contact(s); email: %s, phone: %s",
		len(contacts), yesNo(email), yesNo(phone))
	return c
}

// contactFlags reports whether the plan header carries an email and a phone
func contactFlags(plan canon.Plan) (email, phone bool) {
	for _, ct := range plan.Header.Contacts {
		switch ct.Type {
		case profile.ContactEmail:
			email = true
		case profile.ContactPhone:
			phone = true
		}
	}
	return email, phone
}

func checkSections(in input) Check {
	c := Check{ID: CheckSections, Label: "Standard section headings"}
	headings := in.plan.Headings()

	standard := 0
	var unknown []string
	for _, h := range headings {
		if StandardHeadings[h] {
			standard++
		} else {
			unknown = append(unknown, h)
		}
	}

	c.Passed = standard == len(headings)
	switch {
	case len(headings) == 0:
		c.Detail = "No sections to check"
	case c.Passed:
		c.Detail = fmt.Sprintf("All %d headings are standard", len(headings))
	default:
		c.Detail = fmt.Sprintf("%d of %d headings are standard; non-standard: %v",
			standard, len(headings), unknown)
	}
	return c
}

func checkLayout(input) Check {
	return Check{
		ID:     CheckLayout,
		Label:  "Single-column layout",
		Passed: true,
		Detail: "Content flows in one column in reading order",
	}
}

func checkText(input) Check {
	return Check{
		ID:     CheckText,
		Label:  "Text-based document",
		Passed: true,
		Detail: "All content is selectable text, no images of text",
	}
}

func checkExperience(in input) Check {
	c := Check{ID: CheckExperience, Label: "Complete experience entries"}
	exps := in.profile.Experiences

	complete := 0
	for _, e := range exps {
		if canon.TrimText(e.Position) != "" &&
			canon.TrimText(e.Company) != "" &&
			canon.TrimText(e.StartDate) != "" {
			complete++
		}
	}

	c.Passed = complete == len(exps)
	if len(exps) == 0 {
		c.Detail = "No experience entries"
	} else {
		c.Detail = fmt.Sprintf("%d of %d entries have a position, company and start date", complete, len(exps))
	}
	return c
}

func checkEducation(in input) Check {
	c := Check{ID: CheckEducation, Label: "Complete education entries"}
	acs := in.profile.Academics

	complete := 0
	for _, a := range acs {
		if canon.TrimText(a.Degree) != "" && canon.TrimText(a.Institution) != "" {
			complete++
		}
	}

	c.Passed = complete == len(acs)
	if len(acs) == 0 {
		c.Detail = "No education entries"
	} else {
		c.Detail = fmt.Sprintf("%d of %d entries have a degree and institution", complete, len(acs))
	}
	return c
}

func checkSkills(in input) Check {
	c := Check{ID: CheckSkills, Label: "Skills listed"}
	technical := countSkills(in.profile.TechnicalSkills)
	soft := countSkills(in.profile.SoftSkills)

	c.Passed = technical+soft > 0
	c.Detail = fmt.Sprintf("%d technical, %d soft", technical, soft)
	return c
}

func countSkills(skills []profile.Skill) int {
	n := 0
	for _, s := range skills {
		if canon.TrimText(s.Name) != "" {
			n++
		}
	}
	return n
}

func checkSummary(in input) Check {
	c := Check{ID: CheckSummary, Label: "Professional summary"}
	if canon.TrimText(in.profile.Bio) != "" {
		c.Passed = true
		c.Detail = "Summary present"
	} else {
		c.Detail = "No summary"
	}
	return c
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
