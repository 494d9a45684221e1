package ats

import (
	"io"
	"log/slog"
	"math"

	"github.com/tsawler/vita/canon"
	"github.com/tsawler/vita/profile"
)

// Score thresholds
const (
	ReadableScore  = 70
	ExcellentScore = 90
	FairScore      = 50
)

// Summary messages, one per score band
const (
	SummaryExcellent = "Excellent! Your resume is highly ATS-compatible."
	SummaryGood      = "Good. Your resume should parse correctly in most ATS systems."
	SummaryFair      = "Fair. Some information may be missed by ATS systems."
	SummaryPoor      = "Needs work. ATS systems may struggle to read your resume."
)

// Recommendations, one per failure they address
const (
	RecommendEmail      = "Add an email address so recruiters and ATS systems can reach you."
	RecommendContact    = "Add contact information (email, phone, or LinkedIn) so ATS systems have a way to reach you."
	RecommendExperience = "Complete all experience entries with a position, company, and start date."
	RecommendSkills     = "Add Technical or Soft Skills to improve keyword matching."
	RecommendSummary    = "Add a Professional Summary to give ATS systems context about your profile."
)

// Report is the complete result of scoring one profile
type Report struct {
	Score           int      `json:"score"`
	ATSReadable     bool     `json:"atsReadable"`
	Checks          []Check  `json:"checks"`
	Recommendations []string `json:"recommendations"`
	Transcript      string   `json:"transcript"`
	Summary         string   `json:"summary"`

	// Sections lists the populated section headings in transcript order
	Sections []string `json:"sections"`
}

// Passed returns the number of checks that passed
func (r Report) Passed() int {
	n := 0
	for _, c := range r.Checks {
		if c.Passed {
			n++
		}
	}
	return n
}

// Check returns the check with the given ID
func (r Report) Check(id CheckID) (Check, bool) {
	for _, c := range r.Checks {
		if c.ID == id {
			return c, true
		}
	}
	return Check{}, false
}

// Scorer evaluates profiles against the checklist. The zero value is ready
// to use; a Scorer holds no per-call state and may be shared.
type Scorer struct {
	logger *slog.Logger
}

// discardLogger stands in for a nil logger
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// NewScorer creates a scorer
func NewScorer() *Scorer {
	return &Scorer{logger: discardLogger}
}

// SetLogger sets the logger used for debug output (nil discards)
func (s *Scorer) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = discardLogger
	}
	s.logger = logger
}

// Score builds the section plan for p and scores it
func (s *Scorer) Score(p profile.Profile) Report {
	return s.ScorePlan(p, canon.BuildPlan(p))
}

// ScorePlan scores p using an already built plan. The plan must come from
// canon.BuildPlan(p); sharing it lets a caller render and score from the
// same value.
func (s *Scorer) ScorePlan(p profile.Profile, plan canon.Plan) Report {
	in := input{profile: p, plan: plan}

	checks := make([]Check, 0, len(checklist))
	for _, check := range checklist {
		checks = append(checks, check(in))
	}

	r := Report{
		Checks:     checks,
		Transcript: BuildTranscript(plan),
		Sections:   plan.Headings(),
	}
	r.Score = int(math.Round(100 * float64(r.Passed()) / float64(len(checks))))

	name, _ := r.Check(CheckName)
	contact, _ := r.Check(CheckContact)
	r.ATSReadable = r.Score >= ReadableScore && name.Passed && contact.Passed
	r.Summary = summarize(r.Score, r.ATSReadable)
	r.Recommendations = recommend(r, plan)

	s.log().Debug("scored profile",
		"name", plan.Header.Name,
		"score", r.Score,
		"passed", r.Passed(),
		"readable", r.ATSReadable)

	return r
}

// log returns the configured logger. A zero Scorer has none set.
func (s *Scorer) log() *slog.Logger {
	if s == nil || s.logger == nil {
		return discardLogger
	}
	return s.logger
}

// summarize picks the narrative for a score band
func summarize(score int, readable bool) string {
	switch {
	case score >= ExcellentScore && readable:
		return SummaryExcellent
	case score >= ReadableScore && readable:
		return SummaryGood
	case score >= FairScore:
		return SummaryFair
	default:
		return SummaryPoor
	}
}

// recommend returns the fixed advice for each failing check that has one
func recommend(r Report, plan canon.Plan) []string {
	recs := []string{}
	failed := func(id CheckID) bool {
		c, ok := r.Check(id)
		return ok && !c.Passed
	}

	if failed(CheckContact) {
		recs = append(recs, RecommendContact)
	} else if email, _ := contactFlags(plan); !email {
		recs = append(recs, RecommendEmail)
	}
	if failed(CheckExperience) {
		recs = append(recs, RecommendExperience)
	}
	if failed(CheckSkills) {
		recs = append(recs, RecommendSkills)
	}
	if failed(CheckSummary) {
		recs = append(recs, RecommendSummary)
	}
	return recs
}

// Score scores p with a default scorer
func Score(p profile.Profile) Report {
	return NewScorer().Score(p)
}
