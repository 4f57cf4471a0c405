package extract

import (
	"context"
	"regexp"
	"strings"

	"resumegen-backend/internal/profile"
)

var (
	emailRe    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe    = regexp.MustCompile(`(\+\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	linkedinRe = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/[\w-]+`)
	githubRe   = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/[\w-]+`)

	cityStateRe   = regexp.MustCompile(`[A-Z][a-z]+,\s*[A-Z]{2}`)
	cityCountryRe = regexp.MustCompile(`[A-Z][a-z]+,\s*[A-Z][a-z]+`)

	summaryRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:professional\s+summary|career\s+summary)[:\s]*([^•\n]+(?:\n[^•\n]+)*)`),
		regexp.MustCompile(`(?i)(?:summary|profile|objective)[:\s]*([^•\n]+(?:\n[^•\n]+)*)`),
	}
	skillsRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:skills|technical\s+skills|competencies)[:\s]*([^•\n]+(?:\n[^•\n]+)*)`),
		regexp.MustCompile(`(?i)(?:programming\s+languages|technologies|tools)[:\s]*([^•\n]+(?:\n[^•\n]+)*)`),
	}
	experienceRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:work\s+experience|employment\s+history|professional\s+experience)[:\s]*([^•\n]+(?:\n[^•\n]+)*)`),
		regexp.MustCompile(`(?i)(?:experience|career\s+history)[:\s]*([^•\n]+(?:\n[^•\n]+)*)`),
	}
	educationRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:education|academic|qualifications)[:\s]*([^•\n]+(?:\n[^•\n]+)*)`),
		regexp.MustCompile(`(?i)(?:degree|university|college)[:\s]*([^•\n]+(?:\n[^•\n]+)*)`),
	}
	projectsRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:projects|portfolio|key\s+projects)[:\s]*([^•\n]+(?:\n[^•\n]+)*)`),
		regexp.MustCompile(`(?i)(?:selected\s+projects|notable\s+projects)[:\s]*([^•\n]+(?:\n[^•\n]+)*)`),
	}
	furtherRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:certifications|certificates)[:\s]*([^•\n]+(?:\n[^•\n]+)*)`),
		regexp.MustCompile(`(?i)(?:languages|language\s+skills)[:\s]*([^•\n]+(?:\n[^•\n]+)*)`),
		regexp.MustCompile(`(?i)(?:interests|hobbies|activities)[:\s]*([^•\n]+(?:\n[^•\n]+)*)`),
		regexp.MustCompile(`(?i)(?:volunteer|community)[:\s]*([^•\n]+(?:\n[^•\n]+)*)`),
		regexp.MustCompile(`(?i)(?:awards|achievements|recognition)[:\s]*([^•\n]+(?:\n[^•\n]+)*)`),
	}
)

// ParseResume extracts a best-effort profile from raw resume text. Fields
// that cannot be located produce warnings, never errors; the partial profile
// is always returned.
func ParseResume(text string) (profile.Profile, []string) {
	text = strings.TrimSpace(text)
	lines := strings.Split(text, "\n")

	p := profile.Profile{
		Email:    firstMatch(emailRe, text),
		Phone:    firstMatch(phoneRe, text),
		LinkedIn: firstMatch(linkedinRe, text),
		GitHub:   firstMatch(githubRe, text),
		Name:     extractName(lines),
		Location: extractLocation(lines),
	}

	p.Summary = firstSection(summaryRes, text)
	p.Projects = firstSection(projectsRes, text)
	p.Skills = splitSkills(firstSection(skillsRes, text))
	p.Experience = splitExperience(firstSection(experienceRes, text))
	p.Education = splitEducation(firstSection(educationRes, text))
	p.FurtherInfo = collectSections(furtherRes, text)

	var warnings []string
	for _, check := range []struct {
		field string
		empty bool
	}{
		{"name", p.Name == ""},
		{"email", p.Email == ""},
		{"phone", p.Phone == ""},
		{"summary", p.Summary == ""},
		{"skills", len(p.Skills) == 0},
		{"experience", len(p.Experience) == 0},
		{"education", len(p.Education) == 0},
	} {
		if check.empty {
			warnings = append(warnings, "could not extract "+check.field)
		}
	}
	return p, warnings
}

// Parser adapts text extraction plus resume parsing to the profile import
// contract.
type Parser struct{}

func (Parser) Parse(ctx context.Context, data []byte, mimeType string, fileName string) (profile.Profile, []string, error) {
	text, err := Text(ctx, data, mimeType, fileName)
	if err != nil {
		return profile.Profile{}, nil, err
	}
	p, warnings := ParseResume(text)
	return p, warnings, nil
}

var _ profile.Parser = Parser{}

// extractName takes the first short, digit-free line near the top.
func extractName(lines []string) string {
	limit := len(lines)
	if limit > 5 {
		limit = 5
	}
	for _, line := range lines[:limit] {
		line = strings.TrimSpace(line)
		if line == "" || len(line) >= 50 {
			continue
		}
		if !strings.ContainsAny(line, "0123456789") {
			return line
		}
	}
	return ""
}

func extractLocation(lines []string) string {
	limit := len(lines)
	if limit > 10 {
		limit = 10
	}
	for _, line := range lines[:limit] {
		line = strings.TrimSpace(line)
		if cityStateRe.MatchString(line) || cityCountryRe.MatchString(line) {
			return line
		}
	}
	return ""
}

func firstMatch(re *regexp.Regexp, text string) string {
	return re.FindString(text)
}

func firstSection(res []*regexp.Regexp, text string) string {
	for _, re := range res {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

func collectSections(res []*regexp.Regexp, text string) string {
	var parts []string
	for _, re := range res {
		if m := re.FindStringSubmatch(text); m != nil {
			parts = append(parts, strings.TrimSpace(m[1]))
		}
	}
	return strings.Join(parts, "; ")
}

func splitSkills(raw string) []profile.Skill {
	var out []profile.Skill
	for _, part := range strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n' || r == '|'
	}) {
		name := strings.TrimSpace(part)
		if name != "" {
			out = append(out, profile.Skill{Name: name})
		}
	}
	return out
}

// splitExperience keeps one entry per nonempty line. Reliable role/date
// structure is not recoverable from flattened text, so each line becomes a
// title for the user to refine.
func splitExperience(raw string) []profile.Experience {
	var out []profile.Experience
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, profile.Experience{Title: line})
		}
	}
	return out
}

func splitEducation(raw string) []profile.Education {
	var out []profile.Education
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, profile.Education{Degree: line})
		}
	}
	return out
}
