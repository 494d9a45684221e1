package canon

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tsawler/vita/profile"
)

// contactPriority orders contact types on the rendered contact line
var contactPriority = map[profile.ContactType]int{
	profile.ContactEmail:    0,
	profile.ContactPhone:    1,
	profile.ContactLinkedIn: 2,
	profile.ContactGitHub:   3,
	profile.ContactWebsite:  4,
	profile.ContactOther:    5,
}

// unknownPriority places unrecognised contact types after every known one
const unknownPriority = 6

var contactLabels = map[profile.ContactType]string{
	profile.ContactEmail:    "Email",
	profile.ContactPhone:    "Phone",
	profile.ContactLinkedIn: "LinkedIn",
	profile.ContactGitHub:   "GitHub",
	profile.ContactWebsite:  "Website",
	profile.ContactOther:    "Other",
}

func normalizeType(t profile.ContactType) profile.ContactType {
	return profile.ContactType(strings.ToLower(TrimText(string(t))))
}

func priority(t profile.ContactType) int {
	if p, ok := contactPriority[normalizeType(t)]; ok {
		return p
	}
	return unknownPriority
}

// SortContacts returns a copy of contacts ordered by type priority
// (email, phone, linkedin, github, website, other, then unknown types).
// Contacts of equal priority keep their original relative order.
func SortContacts(contacts []profile.Contact) []profile.Contact {
	sorted := make([]profile.Contact, len(contacts))
	copy(sorted, contacts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return priority(sorted[i].Type) < priority(sorted[j].Type)
	})
	return sorted
}

// FormatContactLabel returns the trimmed label when set, otherwise the
// canonical capitalisation of the contact type.
func FormatContactLabel(t profile.ContactType, label string) string {
	if l := TrimText(label); l != "" {
		return l
	}
	nt := normalizeType(t)
	if l, ok := contactLabels[nt]; ok {
		return l
	}
	if nt == "" {
		return ""
	}
	return cases.Title(language.Und).String(string(nt))
}

// FormatContactValue strips the URL scheme and trailing slashes. LinkedIn
// and GitHub values are normalised to "linkedin.com/in/<handle>" and
// "github.com/<handle>"; a bare handle or a path that is not host-qualified
// contributes its last path segment as the handle.
func FormatContactValue(t profile.ContactType, value string) string {
	v := TrimText(value)
	if v == "" {
		return ""
	}
	v = stripURL(v)

	switch normalizeType(t) {
	case profile.ContactLinkedIn:
		return qualifyHandle(v, "linkedin.com", "linkedin.com/in/")
	case profile.ContactGitHub:
		return qualifyHandle(v, "github.com", "github.com/")
	}
	return v
}

func stripURL(v string) string {
	lower := strings.ToLower(v)
	for _, scheme := range []string{"https://", "http://"} {
		if strings.HasPrefix(lower, scheme) {
			v = v[len(scheme):]
			break
		}
	}
	return strings.TrimRight(v, "/")
}

func qualifyHandle(v, host, prefix string) string {
	bare := v
	if strings.HasPrefix(strings.ToLower(bare), "www.") {
		bare = bare[len("www."):]
	}
	if strings.HasPrefix(strings.ToLower(bare), host) {
		return bare
	}
	handle := v
	if i := strings.LastIndex(handle, "/"); i >= 0 {
		handle = handle[i+1:]
	}
	handle = strings.TrimPrefix(handle, "@")
	if handle == "" {
		return v
	}
	return prefix + handle
}
