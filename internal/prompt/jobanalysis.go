package prompt

import (
	"strings"

	"resumegen-backend/internal/guidelines"
)

// Pattern listing order in the analysis prompt, from most to least common.
var (
	industryOrder   = []string{"technology", "finance", "healthcare", "marketing", "sales", "consulting"}
	experienceOrder = []string{"entry_level", "mid_level", "senior_level", "executive"}
	skillCatOrder   = []string{"technical_skills", "soft_skills", "business_skills"}
)

func buildJobAnalysis(jobDescription string) string {
	var industryPatterns strings.Builder
	for i, name := range industryOrder {
		if i > 0 {
			industryPatterns.WriteString("\n")
		}
		industryPatterns.WriteString("- " + name + ": " + strings.Join(guidelines.IndustryPatterns[name].Keywords, ", "))
	}

	var experiencePatterns strings.Builder
	for i, name := range experienceOrder {
		if i > 0 {
			experiencePatterns.WriteString("\n")
		}
		experiencePatterns.WriteString("- " + name + ": " + strings.Join(guidelines.ExperienceLevelPatterns[name].Keywords, ", "))
	}

	var skillCategories strings.Builder
	for i, name := range skillCatOrder {
		if i > 0 {
			skillCategories.WriteString("\n")
		}
		skills := guidelines.SkillCategories[name]
		if len(skills) > 5 {
			skills = skills[:5]
		}
		skillCategories.WriteString("- " + name + ": " + strings.Join(skills, ", "))
	}

	var b strings.Builder
	b.WriteString("You are an expert job analyst with 10+ years of experience in analyzing job descriptions for recruitment and career development.\n\n")
	b.WriteString("JOB DESCRIPTION TO ANALYZE:\n")
	b.WriteString(jobDescription)
	b.WriteString("\n\n")
	b.WriteString(`ANALYSIS GUIDELINES:
Analyze the job description and extract the following information:

1. REQUIREMENTS (High Priority):
   - Must-have qualifications and skills
   - Look for keywords: required, must have, qualifications, essential
   - Extract specific requirements and qualifications

2. RESPONSIBILITIES (High Priority):
   - Job duties and day-to-day tasks
   - Look for keywords: responsibilities, duties, tasks, role, will
   - Extract specific responsibilities and expectations

3. SKILLS (High Priority):
   - Technical and soft skills needed
   - Look for keywords: skills, proficient, experience with, knowledge of
   - Categorize as technical, soft, or business skills

4. QUALIFICATIONS (Medium Priority):
   - Educational and experience requirements
   - Look for: degree requirements, years of experience, certifications
   - Extract specific qualification requirements

5. EXPERIENCE LEVEL (Medium Priority):
   - Determine seniority level required
   - Patterns to identify:
`)
	b.WriteString(experiencePatterns.String())
	b.WriteString(`

6. INDUSTRY (Medium Priority):
   - Identify industry or domain focus
   - Industry patterns to look for:
`)
	b.WriteString(industryPatterns.String())
	b.WriteString(`

7. KEY PHRASES (Low Priority):
   - Important phrases or terms mentioned
   - Company-specific terminology
   - Industry jargon or buzzwords

SKILL CATEGORIZATION:
Categorize skills into:
`)
	b.WriteString(skillCategories.String())
	b.WriteString(`

ANALYSIS REQUIREMENTS:
1. Be thorough and comprehensive
2. Extract specific, actionable information
3. Prioritize information by importance
4. Use consistent formatting
5. Include relevant context
6. Identify patterns and themes

OUTPUT FORMAT:
Respond with a JSON object containing:
- requirements: [list of specific requirements]
- responsibilities: [list of job duties]
- skills: [flat list of skills]
- qualifications: [educational/experience requirements]
- experienceLevel: one of entry_level, mid_level, senior_level, executive
- industry: [identified industry]
- keyPhrases: [important terms/phrases]

Generate a comprehensive, structured analysis of this job description.
`)

	return b.String()
}
