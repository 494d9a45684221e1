package canon

import "time"

// Present is shown as the end of a range that is still ongoing
const Present = "Present"

// RangeSeparator joins the two ends of a date range (en dash)
const RangeSeparator = " – "

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006-01",
	"2006/01",
	"01/2006",
}

// FormatDate renders recognised machine dates as "Jan 2006" and a bare
// year as itself. Anything else is returned canonicalised but unchanged.
func FormatDate(s string) string {
	s = TrimText(s)
	if s == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("Jan 2006")
		}
	}
	return s
}

// FormatDateRange renders "start – end", using [Present] as the end of a
// current entry. Missing ends are omitted rather than shown as blanks.
func FormatDateRange(start, end string, current bool) string {
	s := FormatDate(start)
	e := FormatDate(end)
	if current {
		e = Present
	}
	switch {
	case s == "" && e == "":
		return ""
	case s == "":
		return e
	case e == "":
		return s
	}
	return s + RangeSeparator + e
}
