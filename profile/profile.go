package profile

// ContactType identifies the kind of a contact entry
type ContactType string

const (
	ContactEmail    ContactType = "email"
	ContactPhone    ContactType = "phone"
	ContactLinkedIn ContactType = "linkedin"
	ContactGitHub   ContactType = "github"
	ContactWebsite  ContactType = "website"
	ContactOther    ContactType = "other"
)

// Profile is the root aggregate describing one person's resume content
type Profile struct {
	Name     string `yaml:"name" json:"name"`
	Title    string `yaml:"title" json:"title"`
	Location string `yaml:"location" json:"location"`
	Bio      string `yaml:"bio" json:"bio"`

	Contacts        []Contact       `yaml:"contacts" json:"contacts"`
	Experiences     []Experience    `yaml:"experiences" json:"experiences"`
	Academics       []Academic      `yaml:"academics" json:"academics"`
	Projects        []Project       `yaml:"projects" json:"projects"`
	TechnicalSkills []Skill         `yaml:"technicalSkills" json:"technicalSkills"`
	SoftSkills      []Skill         `yaml:"softSkills" json:"softSkills"`
	Certifications  []Certification `yaml:"certifications" json:"certifications"`
	Honors          []Honor         `yaml:"honors" json:"honors"`
	Stats           []Stat          `yaml:"stats" json:"stats"`
	Languages       []Language      `yaml:"languages" json:"languages"`
}

// Contact is one way of reaching the profile owner
type Contact struct {
	Type  ContactType `yaml:"type" json:"type"`
	Label string      `yaml:"label" json:"label"`
	Value string      `yaml:"value" json:"value"`
}

// Experience is one employment entry
type Experience struct {
	Company      string   `yaml:"company" json:"company"`
	Position     string   `yaml:"position" json:"position"`
	Location     string   `yaml:"location,omitempty" json:"location,omitempty"`
	StartDate    string   `yaml:"startDate" json:"startDate"`
	EndDate      string   `yaml:"endDate,omitempty" json:"endDate,omitempty"`
	IsCurrent    bool     `yaml:"isCurrent" json:"isCurrent"`
	Description  string   `yaml:"description,omitempty" json:"description,omitempty"`
	Achievements []string `yaml:"achievements" json:"achievements"`
	Technologies []string `yaml:"technologies" json:"technologies"`
}

// Academic is one education entry
type Academic struct {
	Institution string `yaml:"institution" json:"institution"`
	Degree      string `yaml:"degree" json:"degree"`
	Field       string `yaml:"field,omitempty" json:"field,omitempty"`
	StartDate   string `yaml:"startDate" json:"startDate"`
	EndDate     string `yaml:"endDate,omitempty" json:"endDate,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Project is a personal or professional project
type Project struct {
	Title        string   `yaml:"title" json:"title"`
	Description  string   `yaml:"description,omitempty" json:"description,omitempty"`
	Technologies []string `yaml:"technologies" json:"technologies"`
	Achievements []string `yaml:"achievements" json:"achievements"`
}

// Skill is a named technical or soft skill
type Skill struct {
	Name string `yaml:"name" json:"name"`
}

// Certification is a professional certification
type Certification struct {
	Name      string `yaml:"name" json:"name"`
	Issuer    string `yaml:"issuer" json:"issuer"`
	IssueDate string `yaml:"issueDate,omitempty" json:"issueDate,omitempty"`
}

// Honor is an award or recognition
type Honor struct {
	Title  string `yaml:"title" json:"title"`
	Issuer string `yaml:"issuer,omitempty" json:"issuer,omitempty"`
	Date   string `yaml:"date,omitempty" json:"date,omitempty"`
}

// Stat is a headline figure such as "Years of experience: 8"
type Stat struct {
	Label string `yaml:"label" json:"label"`
	Value string `yaml:"value" json:"value"`
	Unit  string `yaml:"unit,omitempty" json:"unit,omitempty"`
}

// Language is a spoken language with a proficiency level
type Language struct {
	Name        string `yaml:"name" json:"name"`
	Proficiency string `yaml:"proficiency" json:"proficiency"`
}

// Clone returns a deep copy of the profile. The synthesis engine works on
// its own copy so a caller mutating the original mid-run cannot affect it.
func (p Profile) Clone() Profile {
	c := p
	c.Contacts = append([]Contact(nil), p.Contacts...)
	c.Experiences = append([]Experience(nil), p.Experiences...)
	for i, e := range c.Experiences {
		c.Experiences[i].Achievements = append([]string(nil), e.Achievements...)
		c.Experiences[i].Technologies = append([]string(nil), e.Technologies...)
	}
	c.Academics = append([]Academic(nil), p.Academics...)
	c.Projects = append([]Project(nil), p.Projects...)
	for i, pr := range c.Projects {
		c.Projects[i].Technologies = append([]string(nil), pr.Technologies...)
		c.Projects[i].Achievements = append([]string(nil), pr.Achievements...)
	}
	c.TechnicalSkills = append([]Skill(nil), p.TechnicalSkills...)
	c.SoftSkills = append([]Skill(nil), p.SoftSkills...)
	c.Certifications = append([]Certification(nil), p.Certifications...)
	c.Honors = append([]Honor(nil), p.Honors...)
	c.Stats = append([]Stat(nil), p.Stats...)
	c.Languages = append([]Language(nil), p.Languages...)
	return c
}
