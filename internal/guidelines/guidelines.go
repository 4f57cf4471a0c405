// Package guidelines holds the static prompt-steering tables: tones,
// industries, experience levels, and the job-analysis classification
// patterns. All tables are fixed at build time; nothing here mutates
// after process startup.
package guidelines

import "sort"

// Category names a validated customization dimension.
type Category string

const (
	CategoryTone            Category = "tone"
	CategoryIndustry        Category = "industry"
	CategoryExperienceLevel Category = "experienceLevel"
	CategorySkillCategory   Category = "skillCategory"
)

// Documented defaults substituted when a caller supplies an unknown value.
const (
	DefaultTone            = "professional"
	DefaultIndustry        = "general"
	DefaultExperienceLevel = "mid_level"
	DefaultSkillCategory   = "technical_skills"
)

// ToneGuide carries the tone text for each document kind.
type ToneGuide struct {
	Resume      string
	CoverLetter string
}

// IndustryGuide carries the industry-specific steering text. Metrics apply
// to resumes, Values to cover letters.
type IndustryGuide struct {
	FocusAreas  []string
	Keywords    []string
	Metrics     []string
	CoverFocus  []string
	CoverWords  []string
	CoverValues []string
}

// ExperienceGuide carries the experience-level framing. Structure describes
// resume section ordering, CoverStructure the cover letter paragraph flow.
type ExperienceGuide struct {
	Focus          string
	Emphasis       string
	Structure      string
	CoverFocus     string
	CoverEmphasis  string
	CoverStructure string
}

// Tone returns the guide for a canonical tone key.
func Tone(key string) (ToneGuide, bool) {
	g, ok := tones[key]
	return g, ok
}

// Industry returns the guide for a canonical industry key. The "general"
// default has no table entry of its own; it renders the technology guide,
// matching the historical fallback.
func Industry(key string) IndustryGuide {
	if g, ok := industries[key]; ok {
		return g
	}
	return industries["technology"]
}

// Experience returns the guide for a canonical experience-level key.
func Experience(key string) (ExperienceGuide, bool) {
	g, ok := experienceLevels[key]
	return g, ok
}

// Tones lists the canonical tone keys, sorted.
func Tones() []string { return sortedKeys(tones) }

// Industries lists the canonical industry keys, sorted. The default
// "general" is accepted by validation but is not a table entry.
func Industries() []string { return sortedKeys(industries) }

// ExperienceLevels lists the canonical experience-level keys, sorted.
func ExperienceLevels() []string { return sortedKeys(experienceLevels) }

// SkillCategoryNames lists the canonical skill-category keys, sorted.
func SkillCategoryNames() []string { return sortedKeys(SkillCategories) }

// Options is the customization surface exposed to API callers. The
// validators and these tables stay in lockstep by construction: both read
// the same maps.
type Options struct {
	Tones               []string `json:"tones"`
	Industries          []string `json:"industries"`
	ExperienceLevels    []string `json:"experienceLevels"`
	ActionVerbs         []string `json:"actionVerbs"`
	AchievementPatterns []string `json:"achievementPatterns"`
}

// AvailableOptions returns the full enumerated option set.
func AvailableOptions() Options {
	return Options{
		Tones:               Tones(),
		Industries:          Industries(),
		ExperienceLevels:    ExperienceLevels(),
		ActionVerbs:         firstN(ActionVerbs, 10),
		AchievementPatterns: append([]string(nil), AchievementPatterns...),
	}
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func firstN(list []string, n int) []string {
	if n > len(list) {
		n = len(list)
	}
	return append([]string(nil), list[:n]...)
}
