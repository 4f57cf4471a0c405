// Package prompt assembles generation prompts from a profile, a job
// description, an optional job analysis, and validated customization
// options. Assembly is a pure function: identical inputs always yield a
// byte-identical prompt, with sections emitted in a fixed order.
package prompt

import (
	"fmt"

	"resumegen-backend/internal/guidelines"
	"resumegen-backend/internal/profile"
)

// Kind selects which document the prompt targets.
type Kind string

const (
	KindResume      Kind = "resume"
	KindCoverLetter Kind = "cover_letter"
	KindJobAnalysis Kind = "job_analysis"
)

// ParseKind resolves a caller-supplied kind string.
func ParseKind(raw string) (Kind, error) {
	switch normalizeKind(raw) {
	case string(KindResume):
		return KindResume, nil
	case string(KindCoverLetter):
		return KindCoverLetter, nil
	case string(KindJobAnalysis):
		return KindJobAnalysis, nil
	default:
		return "", fmt.Errorf("unknown generation kind: %q", raw)
	}
}

// Options are the caller-chosen knobs. Unknown enumerated values degrade to
// their documented defaults; explicit values here override anything a job
// analysis inferred.
type Options struct {
	Tone            string   `json:"tone,omitempty"`
	Industry        string   `json:"industry,omitempty"`
	ExperienceLevel string   `json:"experienceLevel,omitempty"`
	TargetCompany   string   `json:"targetCompany,omitempty"`
	TargetRole      string   `json:"targetRole,omitempty"`
	FocusAreas      []string `json:"focusAreas,omitempty"`
}

// Warning records a silent default substitution so callers can surface it.
type Warning struct {
	Category string `json:"category"`
	Given    string `json:"given"`
	Used     string `json:"used"`
}

func (w Warning) String() string {
	return fmt.Sprintf("unknown %s %q, using %q", w.Category, w.Given, w.Used)
}

// JobAnalysis is the derived summary of a job description, produced by the
// analyzer and consumed as optional prompt context.
type JobAnalysis struct {
	Requirements     []string `json:"requirements,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
	Skills           []string `json:"skills,omitempty"`
	Qualifications   []string `json:"qualifications,omitempty"`
	ExperienceLevel  string   `json:"experienceLevel,omitempty"`
	Industry         string   `json:"industry,omitempty"`
	KeyPhrases       []string `json:"keyPhrases,omitempty"`
}

// Build assembles the prompt for kind. It reads but never mutates its
// inputs. The returned warnings list every option value that was replaced
// by a default.
func Build(kind Kind, p profile.Profile, jobDescription string, analysis *JobAnalysis, opts Options) (string, []Warning, error) {
	resolved := resolveOptions(opts)
	switch kind {
	case KindResume:
		return buildResume(p, jobDescription, analysis, resolved), resolved.warnings, nil
	case KindCoverLetter:
		return buildCoverLetter(p, jobDescription, analysis, resolved), resolved.warnings, nil
	case KindJobAnalysis:
		return buildJobAnalysis(jobDescription), resolved.warnings, nil
	default:
		return "", nil, fmt.Errorf("unknown generation kind: %q", kind)
	}
}

// resolvedOptions carries canonical keys after validation.
type resolvedOptions struct {
	tone            string
	industry        string
	experienceLevel string
	targetCompany   string
	targetRole      string
	focusAreas      []string
	warnings        []Warning
}

func resolveOptions(opts Options) resolvedOptions {
	r := resolvedOptions{
		targetCompany: opts.TargetCompany,
		targetRole:    opts.TargetRole,
		focusAreas:    opts.FocusAreas,
	}

	var substituted bool
	if r.tone, substituted = guidelines.CanonicalTone(opts.Tone); substituted {
		r.warnings = append(r.warnings, Warning{Category: "tone", Given: opts.Tone, Used: r.tone})
	}
	if r.industry, substituted = guidelines.CanonicalIndustry(opts.Industry); substituted {
		r.warnings = append(r.warnings, Warning{Category: "industry", Given: opts.Industry, Used: r.industry})
	}
	if r.experienceLevel, substituted = guidelines.CanonicalExperienceLevel(opts.ExperienceLevel); substituted {
		r.warnings = append(r.warnings, Warning{Category: "experienceLevel", Given: opts.ExperienceLevel, Used: r.experienceLevel})
	}
	return r
}

func normalizeKind(raw string) string {
	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c >= 'A' && c <= 'Z':
			out = append(out, c+'a'-'A')
		case c == '-' || c == ' ':
			out = append(out, '_')
		default:
			out = append(out, c)
		}
	}
	return string(out)
}
