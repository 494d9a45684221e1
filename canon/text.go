package canon

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// TrimText normalises s to NFC, collapses every run of whitespace to a
// single space and strips leading and trailing whitespace.
func TrimText(s string) string {
	if s == "" {
		return ""
	}
	return strings.Join(strings.FieldsFunc(norm.NFC.String(s), unicode.IsSpace), " ")
}

// TrimAll canonicalises each element and drops the ones that end up empty
func TrimAll(items []string) []string {
	var out []string
	for _, item := range items {
		if t := TrimText(item); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// JoinNonEmpty canonicalises parts and joins the non-empty ones with sep
func JoinNonEmpty(sep string, parts ...string) string {
	return strings.Join(TrimAll(parts), sep)
}

// HeadingText returns the display form of a section title: canonicalised
// and upper-cased.
func HeadingText(title string) string {
	return cases.Upper(language.Und).String(TrimText(title))
}

// FormatCompanyLine appends ", location" to company unless company already
// ends with location (compared case-insensitively).
func FormatCompanyLine(company, location string) string {
	c := TrimText(company)
	l := TrimText(location)
	if l == "" {
		return c
	}
	if c == "" {
		return l
	}
	if strings.HasSuffix(strings.ToLower(c), strings.ToLower(l)) {
		return c
	}
	return c + ", " + l
}

// FileName derives a download-safe base name from a person's name: runs of
// whitespace become one underscore and everything that is not an ASCII
// letter, digit or hyphen is dropped. Underscores typed in the name
// are dropped like other punctuation.
func FileName(name string) string {
	var b strings.Builder
	for _, r := range TrimText(name) {
		switch {
		case r == ' ':
			b.WriteByte('_')
		case r == '-':
			b.WriteByte('-')
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "resume"
	}
	return b.String()
}
