package canon

import (
	"testing"

	"github.com/tsawler/vita/profile"
)

func contactTypes(cs []profile.Contact) []profile.ContactType {
	out := make([]profile.ContactType, len(cs))
	for i, c := range cs {
		out[i] = c.Type
	}
	return out
}

func TestSortContacts(t *testing.T) {
	input := []profile.Contact{
		{Type: profile.ContactGitHub, Value: "gh"},
		{Type: profile.ContactEmail, Value: "e"},
		{Type: profile.ContactPhone, Value: "p"},
	}

	got := contactTypes(SortContacts(input))
	want := []profile.ContactType{profile.ContactEmail, profile.ContactPhone, profile.ContactGitHub}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("SortContacts() order = %v, want %v", got, want)
		}
	}

	if input[0].Type != profile.ContactGitHub {
		t.Error("SortContacts() modified its input")
	}
}

func TestSortContactsStable(t *testing.T) {
	input := []profile.Contact{
		{Type: "fax", Value: "f1"},
		{Type: profile.ContactWebsite, Value: "w1"},
		{Type: profile.ContactEmail, Value: "e1"},
		{Type: profile.ContactWebsite, Value: "w2"},
		{Type: profile.ContactOther, Value: "o1"},
		{Type: profile.ContactEmail, Value: "e2"},
		{Type: "pager", Value: "f2"},
	}

	got := SortContacts(input)
	wantValues := []string{"e1", "e2", "w1", "w2", "o1", "f1", "f2"}
	for i, w := range wantValues {
		if got[i].Value != w {
			t.Fatalf("SortContacts()[%d] = %q, want %q (full: %+v)", i, got[i].Value, w, got)
		}
	}
}

func TestSortContactsPermutations(t *testing.T) {
	perms := [][]profile.ContactType{
		{profile.ContactGitHub, profile.ContactEmail, profile.ContactPhone},
		{profile.ContactPhone, profile.ContactGitHub, profile.ContactEmail},
		{profile.ContactEmail, profile.ContactPhone, profile.ContactGitHub},
		{profile.ContactPhone, profile.ContactEmail, profile.ContactGitHub},
	}

	for _, perm := range perms {
		var cs []profile.Contact
		for _, typ := range perm {
			cs = append(cs, profile.Contact{Type: typ})
		}
		got := contactTypes(SortContacts(cs))
		if got[0] != profile.ContactEmail || got[1] != profile.ContactPhone || got[2] != profile.ContactGitHub {
			t.Errorf("SortContacts(%v) = %v", perm, got)
		}
	}
}

func TestFormatContactLabel(t *testing.T) {
	tests := []struct {
		typ   profile.ContactType
		label string
		want  string
	}{
		{profile.ContactLinkedIn, "", "LinkedIn"},
		{profile.ContactGitHub, "", "GitHub"},
		{profile.ContactEmail, "", "Email"},
		{profile.ContactWebsite, "  ", "Website"},
		{profile.ContactGitHub, " My  Code ", "My Code"},
		{"LINKEDIN", "", "LinkedIn"},
		{"telegram", "", "Telegram"},
		{"", "", ""},
	}

	for _, tt := range tests {
		if got := FormatContactLabel(tt.typ, tt.label); got != tt.want {
			t.Errorf("FormatContactLabel(%q, %q) = %q, want %q", tt.typ, tt.label, got, tt.want)
		}
	}
}

func TestFormatContactValue(t *testing.T) {
	tests := []struct {
		name  string
		typ   profile.ContactType
		value string
		want  string
	}{
		{"email untouched", profile.ContactEmail, " jane@x.com ", "jane@x.com"},
		{"website scheme and slash", profile.ContactWebsite, "https://jane.dev/", "jane.dev"},
		{"http scheme", profile.ContactWebsite, "http://jane.dev/blog/", "jane.dev/blog"},
		{"linkedin full url", profile.ContactLinkedIn, "https://www.linkedin.com/in/jane/", "linkedin.com/in/jane"},
		{"linkedin qualified", profile.ContactLinkedIn, "linkedin.com/in/jane", "linkedin.com/in/jane"},
		{"linkedin handle", profile.ContactLinkedIn, "jane", "linkedin.com/in/jane"},
		{"linkedin path", profile.ContactLinkedIn, "/in/jane", "linkedin.com/in/jane"},
		{"github url", profile.ContactGitHub, "https://github.com/jane", "github.com/jane"},
		{"github handle", profile.ContactGitHub, "@jane", "github.com/jane"},
		{"github other host path", profile.ContactGitHub, "gitlab.example/users/jane", "github.com/jane"},
		{"empty", profile.ContactGitHub, "   ", ""},
		{"phone", profile.ContactPhone, "+61 400  000 000", "+61 400 000 000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatContactValue(tt.typ, tt.value); got != tt.want {
				t.Errorf("FormatContactValue(%q, %q) = %q, want %q", tt.typ, tt.value, got, tt.want)
			}
		})
	}
}
