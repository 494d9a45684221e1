package canon

import (
	"strings"

	"github.com/tsawler/vita/profile"
)

// SectionKind identifies a resume section
type SectionKind int

const (
	SectionSummary SectionKind = iota
	SectionExperience
	SectionEducation
	SectionSkills
	SectionProjects
	SectionCertifications
	SectionHonors
	SectionHighlights
	SectionLanguages
)

// sectionTitles holds the display titles in emission order
var sectionTitles = [...]string{
	SectionSummary:        "Professional Summary",
	SectionExperience:     "Experience",
	SectionEducation:      "Education",
	SectionSkills:         "Skills",
	SectionProjects:       "Projects",
	SectionCertifications: "Certifications",
	SectionHonors:         "Honors & Awards",
	SectionHighlights:     "Key Highlights",
	SectionLanguages:      "Languages",
}

// String returns the section's display title
func (k SectionKind) String() string {
	if k < 0 || int(k) >= len(sectionTitles) {
		return "Unknown"
	}
	return sectionTitles[k]
}

// Separators shared by every consumer of the plan
const (
	HeaderSeparator  = " · "
	ContactSeparator = " | "
	TitleSeparator   = " | "
	ListSeparator    = ", "
	Bullet           = "•"
)

// Entry is one format-neutral block inside a section. Every field is
// already canonicalised; empty fields are simply not emitted.
type Entry struct {
	Title        string   // primary line (position, degree, project name)
	Subtitle     string   // secondary line (company line, institution, issuer)
	Meta         string   // dates
	Label        string   // inline label preceding Body ("Technical Skills")
	Body         string   // free text paragraph
	Bullets      []string // achievements, highlights
	Technologies []string // shown as "Technologies: a, b"
}

// Heading returns Title and Subtitle joined the way the transcript and the
// rendered entry head show them.
func (e Entry) Heading() string {
	return JoinNonEmpty(TitleSeparator, e.Title, e.Subtitle)
}

// BodyText returns Body prefixed with its inline label, if any
func (e Entry) BodyText() string {
	if e.Body == "" {
		return ""
	}
	if e.Label == "" {
		return e.Body
	}
	return e.Label + ": " + e.Body
}

// TechnologiesText returns the "Technologies: ..." line or ""
func (e Entry) TechnologiesText() string {
	if len(e.Technologies) == 0 {
		return ""
	}
	return "Technologies: " + strings.Join(e.Technologies, ListSeparator)
}

// IsEmpty reports whether the entry carries no content at all
func (e Entry) IsEmpty() bool {
	return e.Title == "" && e.Subtitle == "" && e.Meta == "" &&
		e.Body == "" && len(e.Bullets) == 0 && len(e.Technologies) == 0
}

// Section is one titled block of the document
type Section struct {
	Kind    SectionKind
	Title   string
	Entries []Entry
	Empty   bool
}

// Heading returns the upper-cased heading shown in both outputs
func (s Section) Heading() string {
	return HeadingText(s.Title)
}

// ContactEntry is one formatted contact
type ContactEntry struct {
	Type  profile.ContactType
	Label string
	Value string
}

// String renders the entry as "Label: value"
func (c ContactEntry) String() string {
	if c.Label == "" {
		return c.Value
	}
	return c.Label + ": " + c.Value
}

// Header is the un-titled block at the top of the document
type Header struct {
	Name     string
	Title    string
	Location string
	Contacts []ContactEntry
}

// Subtitle joins title and location with [HeaderSeparator]
func (h Header) Subtitle() string {
	return JoinNonEmpty(HeaderSeparator, h.Title, h.Location)
}

// ContactLine joins the formatted contacts with [ContactSeparator]
func (h Header) ContactLine() string {
	parts := make([]string, 0, len(h.Contacts))
	for _, c := range h.Contacts {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, ContactSeparator)
}

// Plan is the canonical, ordered description of everything the document
// shows. It is built once per synthesis call and read by both the layout
// engine and the scorer.
type Plan struct {
	Header   Header
	Sections []Section
}

// Populated returns the non-empty sections in emission order
func (p Plan) Populated() []Section {
	var out []Section
	for _, s := range p.Sections {
		if !s.Empty {
			out = append(out, s)
		}
	}
	return out
}

// Headings returns the upper-cased headings of the populated sections
func (p Plan) Headings() []string {
	var out []string
	for _, s := range p.Populated() {
		out = append(out, s.Heading())
	}
	return out
}

// Section returns the section of the given kind
func (p Plan) Section(kind SectionKind) (Section, bool) {
	for _, s := range p.Sections {
		if s.Kind == kind {
			return s, true
		}
	}
	return Section{}, false
}

// BuildPlan canonicalises a profile into a [Plan]. Every section kind is
// present in the result, in fixed order; sections with no content after
// canonicalisation are marked Empty.
func BuildPlan(p profile.Profile) Plan {
	plan := Plan{
		Header: Header{
			Name:     TrimText(p.Name),
			Title:    TrimText(p.Title),
			Location: TrimText(p.Location),
			Contacts: contactEntries(p.Contacts),
		},
	}

	builders := [...]func(profile.Profile) []Entry{
		SectionSummary:        summaryEntries,
		SectionExperience:     experienceEntries,
		SectionEducation:      educationEntries,
		SectionSkills:         skillEntries,
		SectionProjects:       projectEntries,
		SectionCertifications: certificationEntries,
		SectionHonors:         honorEntries,
		SectionHighlights:     highlightEntries,
		SectionLanguages:      languageEntries,
	}

	for kind, build := range builders {
		var entries []Entry
		for _, e := range build(p) {
			if !e.IsEmpty() {
				entries = append(entries, e)
			}
		}
		plan.Sections = append(plan.Sections, Section{
			Kind:    SectionKind(kind),
			Title:   SectionKind(kind).String(),
			Entries: entries,
			Empty:   len(entries) == 0,
		})
	}

	return plan
}

func contactEntries(contacts []profile.Contact) []ContactEntry {
	var out []ContactEntry
	for _, c := range SortContacts(contacts) {
		v := FormatContactValue(c.Type, c.Value)
		if v == "" {
			continue
		}
		out = append(out, ContactEntry{
			Type:  normalizeType(c.Type),
			Label: FormatContactLabel(c.Type, c.Label),
			Value: v,
		})
	}
	return out
}

func summaryEntries(p profile.Profile) []Entry {
	return []Entry{{Body: TrimText(p.Bio)}}
}

func experienceEntries(p profile.Profile) []Entry {
	entries := make([]Entry, 0, len(p.Experiences))
	for _, e := range p.Experiences {
		entries = append(entries, Entry{
			Title:        TrimText(e.Position),
			Subtitle:     FormatCompanyLine(e.Company, e.Location),
			Meta:         FormatDateRange(e.StartDate, e.EndDate, e.IsCurrent),
			Body:         TrimText(e.Description),
			Bullets:      TrimAll(e.Achievements),
			Technologies: TrimAll(e.Technologies),
		})
	}
	return entries
}

func educationEntries(p profile.Profile) []Entry {
	entries := make([]Entry, 0, len(p.Academics))
	for _, a := range p.Academics {
		title := TrimText(a.Degree)
		if f := TrimText(a.Field); f != "" {
			if title == "" {
				title = f
			} else {
				title += " in " + f
			}
		}
		entries = append(entries, Entry{
			Title:    title,
			Subtitle: TrimText(a.Institution),
			Meta:     FormatDateRange(a.StartDate, a.EndDate, false),
			Body:     TrimText(a.Description),
		})
	}
	return entries
}

func skillNames(skills []profile.Skill) string {
	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.Name)
	}
	return strings.Join(TrimAll(names), ListSeparator)
}

func skillEntries(p profile.Profile) []Entry {
	return []Entry{
		{Label: "Technical Skills", Body: skillNames(p.TechnicalSkills)},
		{Label: "Soft Skills", Body: skillNames(p.SoftSkills)},
	}
}

func projectEntries(p profile.Profile) []Entry {
	entries := make([]Entry, 0, len(p.Projects))
	for _, pr := range p.Projects {
		entries = append(entries, Entry{
			Title:        TrimText(pr.Title),
			Body:         TrimText(pr.Description),
			Bullets:      TrimAll(pr.Achievements),
			Technologies: TrimAll(pr.Technologies),
		})
	}
	return entries
}

func certificationEntries(p profile.Profile) []Entry {
	entries := make([]Entry, 0, len(p.Certifications))
	for _, c := range p.Certifications {
		entries = append(entries, Entry{
			Title:    TrimText(c.Name),
			Subtitle: TrimText(c.Issuer),
			Meta:     FormatDate(c.IssueDate),
		})
	}
	return entries
}

func honorEntries(p profile.Profile) []Entry {
	entries := make([]Entry, 0, len(p.Honors))
	for _, h := range p.Honors {
		entries = append(entries, Entry{
			Title:    TrimText(h.Title),
			Subtitle: TrimText(h.Issuer),
			Meta:     FormatDate(h.Date),
		})
	}
	return entries
}

func highlightEntries(p profile.Profile) []Entry {
	var bullets []string
	for _, s := range p.Stats {
		value := JoinNonEmpty(" ", s.Value, s.Unit)
		if line := JoinNonEmpty(": ", s.Label, value); line != "" {
			bullets = append(bullets, line)
		}
	}
	return []Entry{{Bullets: bullets}}
}

func languageEntries(p profile.Profile) []Entry {
	var parts []string
	for _, l := range p.Languages {
		name := TrimText(l.Name)
		if name == "" {
			continue
		}
		if prof := TrimText(l.Proficiency); prof != "" {
			name += " (" + prof + ")"
		}
		parts = append(parts, name)
	}
	return []Entry{{Body: strings.Join(parts, ListSeparator)}}
}
