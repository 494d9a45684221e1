// Package profile defines the Profile aggregate consumed by the resume
// synthesis engine.
//
// A [Profile] describes one person's resume content: identity, contact
// entries, experience, education, projects, skills, certifications, honors,
// headline statistics and spoken languages. Every text field may contain
// irregular whitespace; consumers canonicalise through the canon package
// before comparing or laying out any value.
//
// # Loading
//
// Profiles are usually handed over by a data-access collaborator, but they
// can also be decoded from YAML or JSON documents:
//
//	p, err := profile.Load("jane.yaml")
//	if err != nil {
//	    // handle error
//	}
//
// Field names follow the camelCase convention of the profile store
// (startDate, isCurrent, technicalSkills, ...).
package profile
