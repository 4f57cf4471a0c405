package profile

import "time"

// Profile is the user's structured resume data. One record exists per
// identity; saves overwrite it wholesale (last write wins).
type Profile struct {
	Identity string `json:"-"`

	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Website  string `json:"website,omitempty"`

	Summary     string       `json:"summary,omitempty"`
	Experience  []Experience `json:"experience,omitempty"`
	Education   []Education  `json:"education,omitempty"`
	Skills      []Skill      `json:"skills,omitempty"`
	Projects    string       `json:"projects,omitempty"`
	FurtherInfo string       `json:"furtherInfo,omitempty"`

	Certifications []string `json:"certifications,omitempty"`
	Languages      []string `json:"languages,omitempty"`
	Interests      []string `json:"interests,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// Experience is one work entry, ordered most recent first by convention.
type Experience struct {
	Title        string   `json:"title"`
	Company      string   `json:"company,omitempty"`
	StartDate    string   `json:"startDate,omitempty"`
	EndDate      string   `json:"endDate,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}

// Education is one education entry.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution,omitempty"`
	Year        string `json:"year,omitempty"`
}

// Skill is a named skill with an optional guideline category tag.
type Skill struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

// SkillNames returns the skill names in profile order.
func (p Profile) SkillNames() []string {
	out := make([]string, 0, len(p.Skills))
	for _, s := range p.Skills {
		out = append(out, s.Name)
	}
	return out
}

// Validation reports whether a profile carries enough data for generation.
type Validation struct {
	IsValid       bool     `json:"isValid"`
	MissingFields []string `json:"missingFields,omitempty"`
	Warnings      []string `json:"warnings,omitempty"`
}

// Validate checks required fields and flags thin sections. Name, email,
// summary, skills, and experience must be present before a resume or cover
// letter can be generated.
func (p Profile) Validate() Validation {
	v := Validation{IsValid: true}
	if p.Name == "" {
		v.MissingFields = append(v.MissingFields, "name")
	}
	if p.Email == "" {
		v.MissingFields = append(v.MissingFields, "email")
	}
	if p.Summary == "" {
		v.MissingFields = append(v.MissingFields, "summary")
	}
	if len(p.Skills) == 0 {
		v.MissingFields = append(v.MissingFields, "skills")
	}
	if len(p.Experience) == 0 {
		v.MissingFields = append(v.MissingFields, "experience")
	}
	if len(v.MissingFields) > 0 {
		v.IsValid = false
	}

	if p.Summary != "" && len(p.Summary) < 50 {
		v.Warnings = append(v.Warnings, "professional summary is quite short")
	}
	if n := len(p.Skills); n > 0 && n < 3 {
		v.Warnings = append(v.Warnings, "skills section is quite short")
	}
	return v
}
