package prompt

import (
	"strings"

	"resumegen-backend/internal/profile"
)

// writeCandidateBlock serializes the profile into the fixed CANDIDATE
// INFORMATION section. Field order is stable; missing fields render as
// empty values so section layout never shifts.
func writeCandidateBlock(b *strings.Builder, p profile.Profile) {
	name := p.Name
	if name == "" {
		name = "Candidate"
	}
	b.WriteString("CANDIDATE INFORMATION:\n")
	b.WriteString("Name: " + name + "\n")
	b.WriteString("Professional Summary: " + p.Summary + "\n")
	b.WriteString("Skills: " + strings.Join(p.SkillNames(), ", ") + "\n")
	b.WriteString("Work Experience: " + formatExperience(p.Experience) + "\n")
	b.WriteString("Education: " + formatEducation(p.Education) + "\n")
	b.WriteString("Projects: " + p.Projects + "\n")
	b.WriteString("Further Information: " + formatFurtherInfo(p) + "\n")
}

// writeAnalysisBlock serializes the optional job analysis. A nil analysis
// renders placeholders, keeping every other section at the same position.
func writeAnalysisBlock(b *strings.Builder, analysis *JobAnalysis) {
	b.WriteString("JOB ANALYSIS:\n")
	if analysis == nil {
		b.WriteString("Required Skills: Not specified\n")
		b.WriteString("Experience Level: Not specified\n")
		b.WriteString("Industry: General\n")
		return
	}
	b.WriteString("Required Skills: " + orPlaceholder(strings.Join(analysis.Skills, ", "), "Not specified") + "\n")
	b.WriteString("Experience Level: " + orPlaceholder(analysis.ExperienceLevel, "Not specified") + "\n")
	b.WriteString("Industry: " + orPlaceholder(analysis.Industry, "General") + "\n")
}

func formatExperience(entries []profile.Experience) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		var sb strings.Builder
		sb.WriteString(e.Title)
		if e.Company != "" {
			sb.WriteString(" at " + e.Company)
		}
		if e.StartDate != "" || e.EndDate != "" {
			sb.WriteString(" (" + e.StartDate + " - " + e.EndDate + ")")
		}
		if len(e.Achievements) > 0 {
			sb.WriteString(": " + strings.Join(e.Achievements, "; "))
		}
		parts = append(parts, sb.String())
	}
	return strings.Join(parts, " | ")
}

func formatEducation(entries []profile.Education) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		var sb strings.Builder
		sb.WriteString(e.Degree)
		if e.Institution != "" {
			sb.WriteString(", " + e.Institution)
		}
		if e.Year != "" {
			sb.WriteString(" (" + e.Year + ")")
		}
		parts = append(parts, sb.String())
	}
	return strings.Join(parts, " | ")
}

func formatFurtherInfo(p profile.Profile) string {
	var parts []string
	if len(p.Certifications) > 0 {
		parts = append(parts, "Certifications: "+strings.Join(p.Certifications, ", "))
	}
	if len(p.Languages) > 0 {
		parts = append(parts, "Languages: "+strings.Join(p.Languages, ", "))
	}
	if len(p.Interests) > 0 {
		parts = append(parts, "Interests: "+strings.Join(p.Interests, ", "))
	}
	if p.FurtherInfo != "" {
		parts = append(parts, p.FurtherInfo)
	}
	return strings.Join(parts, "; ")
}

func orPlaceholder(s, placeholder string) string {
	if s == "" {
		return placeholder
	}
	return s
}

func bulleted(items []string) string {
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString("- " + item + "\n")
	}
	return sb.String()
}
