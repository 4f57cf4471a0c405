package prompt

import (
	"strings"

	"resumegen-backend/internal/guidelines"
	"resumegen-backend/internal/profile"
)

func buildCoverLetter(p profile.Profile, jobDescription string, analysis *JobAnalysis, opts resolvedOptions) string {
	toneGuide, _ := guidelines.Tone(opts.tone)
	industryGuide := guidelines.Industry(opts.industry)
	experienceGuide, _ := guidelines.Experience(opts.experienceLevel)

	openingPhrases := strings.Join(guidelines.OpeningPhrases[:3], ", ")
	closingPhrases := strings.Join(guidelines.ClosingPhrases[:3], ", ")
	enthusiasm := strings.Join(guidelines.EnthusiasmIndicators[:5], ", ")

	company := opts.targetCompany
	if company == "" {
		company = "the company"
	}
	role := opts.targetRole
	if role == "" {
		role = "the position"
	}

	var b strings.Builder
	b.WriteString("You are an expert cover letter writer with 15+ years of experience in creating compelling cover letters for top companies.\n\n")

	writeCandidateBlock(&b, p)

	b.WriteString("\nJOB DESCRIPTION:\n")
	b.WriteString(jobDescription)
	b.WriteString("\n\n")

	writeAnalysisBlock(&b, analysis)

	b.WriteString("\nCOMPANY & POSITION:\n")
	b.WriteString("Company: " + company + "\n")
	b.WriteString("Position: " + role + "\n")

	b.WriteString("\nPROFESSIONAL GUIDELINES:\n")
	b.WriteString("Tone: " + toneGuide.CoverLetter + "\n")
	b.WriteString("Industry Focus: " + strings.Join(industryGuide.CoverFocus, ", ") + "\n")
	b.WriteString("Industry Keywords: " + strings.Join(industryGuide.CoverWords, ", ") + "\n")
	b.WriteString("Industry Values: " + strings.Join(industryGuide.CoverValues, ", ") + "\n")
	b.WriteString("Experience Level Focus: " + experienceGuide.CoverFocus + "\n")
	b.WriteString("Emphasis: " + experienceGuide.CoverEmphasis + "\n")
	b.WriteString("Structure: " + experienceGuide.CoverStructure + "\n")
	if len(opts.focusAreas) > 0 {
		b.WriteString("Requested Focus Areas: " + strings.Join(opts.focusAreas, ", ") + "\n")
	}

	b.WriteString("\nWRITING REQUIREMENTS:\n")
	b.WriteString("1. Use these opening phrases: " + openingPhrases + "\n")
	b.WriteString("2. Use these closing phrases: " + closingPhrases + "\n")
	b.WriteString("3. Show enthusiasm using words like: " + enthusiasm + "\n")
	b.WriteString(`4. Match candidate's experience with job requirements
5. Explain why the candidate is interested in this specific company/role
6. Highlight relevant achievements and skills
7. Use industry-specific keywords and values
8. Keep it to 3-4 paragraphs maximum
9. Include relevant additional information from Further Information section if applicable

COVER LETTER STRUCTURE:
Paragraph 1 (Introduction):
- Mention the specific position and company
- Show enthusiasm for the opportunity
- Reference how you found the position if relevant

Paragraph 2 (Why Interested):
- Explain why you're interested in this company/role
- Connect your career goals with the opportunity
- Mention specific aspects that appeal to you

Paragraph 3 (Why Qualified):
- Highlight relevant experience and skills
- Match your background to job requirements
- Mention specific achievements if relevant
- Show how you can add value
- Include relevant certifications, languages, or other qualifications if mentioned in Further Information

Paragraph 4 (Closing):
- Express interest in discussing the opportunity further
- Mention availability for interview
- Thank them for considering your application
- Include a call to action

FORMATTING REQUIREMENTS:
- Professional business letter format
- Include date, recipient info, greeting, body, closing, signature
- Use clear, concise language
- Show enthusiasm but remain professional
- Use proper spacing and formatting

Generate a complete, compelling cover letter that follows these guidelines and maximizes the candidate's chances of getting an interview.
`)

	return b.String()
}
