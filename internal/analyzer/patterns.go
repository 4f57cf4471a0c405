package analyzer

import (
	"regexp"
	"strings"

	"resumegen-backend/internal/guidelines"
	"resumegen-backend/internal/prompt"
)

// Classification scan order. First keyword hit wins, so more junior levels
// are checked before senior ones and common industries before niche ones.
var (
	experienceScanOrder = []string{"entry_level", "mid_level", "senior_level", "executive"}
	industryScanOrder   = []string{"technology", "finance", "healthcare", "marketing", "sales", "consulting"}
)

var (
	whitespaceRe  = regexp.MustCompile(`\s+`)
	specialsRe    = regexp.MustCompile(`[^\w\s\-\.\,\!\?\:\;\(\)]`)
	requirementRe = regexp.MustCompile(`(?i)(?:requirements?|qualifications?|must have|should have)[\s:]*([^.]+)`)
	dutyRe        = regexp.MustCompile(`(?i)(?:responsibilities?|duties?|tasks?|role|position)[\s:]*([^.]+)`)
	itemSplitRe   = regexp.MustCompile(`[;,\n•]`)
	quotedRe      = regexp.MustCompile(`"([^"]+)"`)
	bulletRe      = regexp.MustCompile(`•\s*([^•\n]+)`)
	capsRe        = regexp.MustCompile(`\b[A-Z][A-Z\s]{3,}\b`)

	qualificationRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:Bachelor|Master|PhD|Degree|Diploma|Certificate)[\s\w]*`),
		regexp.MustCompile(`(?i)\d+[\s\-]*years?[\s\-]*of[\s\-]*experience`),
		regexp.MustCompile(`(?i)experience[\s\-]*in[\s\-]*[\w\s]+`),
	}
)

func analyzeWithPatterns(jobDescription string) prompt.JobAnalysis {
	text := cleanText(jobDescription)
	return prompt.JobAnalysis{
		Requirements:     extractListSections(requirementRe, text, 10),
		Responsibilities: extractListSections(dutyRe, text, 10),
		Skills:           extractSkills(text),
		Qualifications:   extractQualifications(text),
		ExperienceLevel:  classifyExperienceLevel(text),
		Industry:         classifyIndustry(text),
		KeyPhrases:       extractKeyPhrases(jobDescription),
	}
}

func cleanText(text string) string {
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = specialsRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

func extractListSections(re *regexp.Regexp, text string, limit int) []string {
	var out []string
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		for _, item := range itemSplitRe.Split(m[1], -1) {
			item = strings.TrimSpace(item)
			if len(item) > 5 {
				out = append(out, item)
				if len(out) == limit {
					return out
				}
			}
		}
	}
	return out
}

// extractSkills matches the known-skill tables against the text. Table order
// is stable, so output order is deterministic for a given description.
func extractSkills(text string) []string {
	lower := strings.ToLower(text)
	var out []string
	for _, skill := range guidelines.AllKnownSkills() {
		if containsWord(lower, strings.ToLower(skill)) {
			out = append(out, skill)
		}
	}
	return out
}

func extractQualifications(text string) []string {
	var out []string
	for _, re := range qualificationRes {
		for _, m := range re.FindAllString(text, -1) {
			out = append(out, strings.TrimSpace(m))
			if len(out) == 5 {
				return out
			}
		}
	}
	return out
}

func classifyExperienceLevel(text string) string {
	lower := strings.ToLower(text)
	for _, level := range experienceScanOrder {
		for _, keyword := range guidelines.ExperienceLevelPatterns[level].Keywords {
			if containsWord(lower, keyword) {
				return level
			}
		}
	}
	return guidelines.DefaultExperienceLevel
}

func classifyIndustry(text string) string {
	lower := strings.ToLower(text)
	for _, industry := range industryScanOrder {
		for _, keyword := range guidelines.IndustryPatterns[industry].Keywords {
			if strings.Contains(lower, keyword) {
				return industry
			}
		}
	}
	return guidelines.DefaultIndustry
}

func extractKeyPhrases(text string) []string {
	var out []string
	for _, m := range quotedRe.FindAllStringSubmatch(text, -1) {
		out = append(out, strings.TrimSpace(m[1]))
	}
	for _, m := range bulletRe.FindAllStringSubmatch(text, -1) {
		out = append(out, strings.TrimSpace(m[1]))
	}
	caps := capsRe.FindAllString(text, -1)
	if len(caps) > 5 {
		caps = caps[:5]
	}
	for _, m := range caps {
		out = append(out, strings.TrimSpace(m))
	}
	if len(out) > 10 {
		out = out[:10]
	}
	return out
}

// containsWord reports a whole-word, case-normalized match. Both arguments
// must already be lowercased.
func containsWord(haystack, needle string) bool {
	idx := 0
	for {
		i := strings.Index(haystack[idx:], needle)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(needle)
		before := start == 0 || !isWordByte(haystack[start-1])
		after := end == len(haystack) || !isWordByte(haystack[end])
		if before && after {
			return true
		}
		idx = start + 1
	}
}

func isWordByte(c byte) bool {
	return c == '_' || (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
