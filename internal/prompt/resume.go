package prompt

import (
	"strings"

	"resumegen-backend/internal/guidelines"
	"resumegen-backend/internal/profile"
)

func buildResume(p profile.Profile, jobDescription string, analysis *JobAnalysis, opts resolvedOptions) string {
	toneGuide, _ := guidelines.Tone(opts.tone)
	industryGuide := guidelines.Industry(opts.industry)
	experienceGuide, _ := guidelines.Experience(opts.experienceLevel)

	actionVerbs := strings.Join(guidelines.ActionVerbs[:10], ", ")

	var b strings.Builder
	b.WriteString("You are an expert resume writer with 15+ years of experience in creating winning resumes for top companies.\n\n")

	writeCandidateBlock(&b, p)

	b.WriteString("\nJOB DESCRIPTION:\n")
	b.WriteString(jobDescription)
	b.WriteString("\n\n")

	writeAnalysisBlock(&b, analysis)

	b.WriteString("\nPROFESSIONAL GUIDELINES:\n")
	b.WriteString("Tone: " + toneGuide.Resume + "\n")
	b.WriteString("Industry Focus: " + strings.Join(industryGuide.FocusAreas, ", ") + "\n")
	b.WriteString("Experience Level Focus: " + experienceGuide.Focus + "\n")
	b.WriteString("Emphasis: " + experienceGuide.Emphasis + "\n")
	if len(opts.focusAreas) > 0 {
		b.WriteString("Requested Focus Areas: " + strings.Join(opts.focusAreas, ", ") + "\n")
	}

	b.WriteString("\nWRITING REQUIREMENTS:\n")
	b.WriteString("1. Use these action verbs: " + actionVerbs + "\n")
	b.WriteString("2. Follow these achievement patterns:\n")
	b.WriteString(bulleted(guidelines.AchievementPatterns))
	b.WriteString("3. Quantify achievements with specific numbers and percentages\n")
	b.WriteString("4. Use industry-specific keywords: " + strings.Join(industryGuide.Keywords, ", ") + "\n")
	b.WriteString("5. Focus on relevant metrics: " + strings.Join(industryGuide.Metrics, ", ") + "\n")
	b.WriteString("6. Structure according to experience level: " + experienceGuide.Structure + "\n")

	b.WriteString(`
RESUME STRUCTURE:
- Contact Information (name, email, phone, LinkedIn)
- Professional Summary (2-3 sentences highlighting key value proposition)
- Work Experience (reverse chronological, with quantifiable achievements)
- Skills (technical and soft skills, prioritized by job requirements)
- Education (degree, institution, graduation year)
- Projects (if relevant to the position)
- Additional Information (certifications, languages, interests, volunteer work, etc.)

FORMATTING REQUIREMENTS:
- Use bullet points for achievements
- Keep each bullet point to 1-2 lines
- Use consistent formatting throughout
- Ensure proper spacing and readability
- Include relevant additional information from Further Information section

Generate a complete, professional resume that follows these guidelines and maximizes the candidate's chances of getting an interview for this specific position.
`)

	return b.String()
}
