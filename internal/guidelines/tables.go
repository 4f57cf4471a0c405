package guidelines

var tones = map[string]ToneGuide{
	"professional": {
		Resume:      "Use formal, business-appropriate language. Avoid casual expressions and maintain a confident, authoritative tone.",
		CoverLetter: "Use formal, business-appropriate language. Show enthusiasm while maintaining professionalism and respect.",
	},
	"enthusiastic": {
		Resume:      "Show passion and excitement while remaining professional. Use dynamic language that conveys energy and motivation.",
		CoverLetter: "Express genuine excitement and passion for the opportunity. Use dynamic, engaging language that shows energy.",
	},
	"conservative": {
		Resume:      "Use traditional, formal language. Focus on stability, reliability, and proven track record.",
		CoverLetter: "Use traditional, formal language. Emphasize stability, reliability, and proven track record.",
	},
	"innovative": {
		Resume:      "Emphasize creativity, adaptability, and forward-thinking. Use modern, dynamic language.",
		CoverLetter: "Show creativity and forward-thinking. Use modern, dynamic language that demonstrates adaptability.",
	},
}

var industries = map[string]IndustryGuide{
	"technology": {
		FocusAreas:  []string{"Technical skills", "Project delivery", "Innovation", "Problem-solving"},
		Keywords:    []string{"Agile", "DevOps", "Cloud", "API", "Database", "Framework", "Architecture"},
		Metrics:     []string{"Performance improvement", "User adoption", "System reliability", "Code quality"},
		CoverFocus:  []string{"Innovation", "Problem-solving", "Technical expertise", "Project delivery"},
		CoverWords:  []string{"Innovation", "Technology", "Development", "Solutions", "Efficiency"},
		CoverValues: []string{"Innovation", "Collaboration", "Continuous learning", "Technical excellence"},
	},
	"finance": {
		FocusAreas:  []string{"Analytical skills", "Risk management", "Financial modeling", "Compliance"},
		Keywords:    []string{"ROI", "P&L", "Risk assessment", "Compliance", "Portfolio", "Trading"},
		Metrics:     []string{"Revenue growth", "Cost reduction", "Risk mitigation", "Compliance rate"},
		CoverFocus:  []string{"Analytical skills", "Risk management", "Financial expertise", "Compliance"},
		CoverWords:  []string{"Analysis", "Risk management", "Financial modeling", "Compliance", "ROI"},
		CoverValues: []string{"Integrity", "Accuracy", "Risk management", "Compliance"},
	},
	"healthcare": {
		FocusAreas:  []string{"Patient care", "Clinical expertise", "Compliance", "Quality improvement"},
		Keywords:    []string{"Patient outcomes", "Clinical protocols", "HIPAA", "Quality metrics"},
		Metrics:     []string{"Patient satisfaction", "Clinical outcomes", "Compliance rate", "Efficiency"},
		CoverFocus:  []string{"Patient care", "Clinical expertise", "Quality improvement", "Compliance"},
		CoverWords:  []string{"Patient care", "Clinical excellence", "Quality", "Safety", "Compliance"},
		CoverValues: []string{"Patient care", "Safety", "Quality", "Compassion"},
	},
	"marketing": {
		FocusAreas:  []string{"Campaign performance", "Brand awareness", "Customer engagement", "ROI"},
		Keywords:    []string{"Digital marketing", "SEO", "Social media", "Analytics", "Conversion"},
		Metrics:     []string{"Conversion rate", "ROI", "Engagement rate", "Brand awareness"},
		CoverFocus:  []string{"Campaign performance", "Brand awareness", "Customer engagement", "ROI"},
		CoverWords:  []string{"Marketing", "Brand", "Engagement", "ROI", "Strategy"},
		CoverValues: []string{"Creativity", "Results", "Customer focus", "Innovation"},
	},
	"sales": {
		FocusAreas:  []string{"Revenue generation", "Client relationships", "Market expansion", "Target achievement"},
		Keywords:    []string{"Sales pipeline", "CRM", "Lead generation", "Account management"},
		Metrics:     []string{"Sales growth", "Quota achievement", "Client retention", "Market share"},
		CoverFocus:  []string{"Revenue generation", "Client relationships", "Market expansion", "Target achievement"},
		CoverWords:  []string{"Sales", "Revenue", "Client relationships", "Growth", "Results"},
		CoverValues: []string{"Results", "Customer focus", "Relationship building", "Growth"},
	},
}

var experienceLevels = map[string]ExperienceGuide{
	"entry_level": {
		Focus:          "Education, internships, projects, and transferable skills",
		Emphasis:       "Learning ability, enthusiasm, and potential",
		Structure:      "Education first, then projects/internships, then skills",
		CoverFocus:     "Education, potential, enthusiasm, and transferable skills",
		CoverEmphasis:  "Learning ability, adaptability, and eagerness to contribute",
		CoverStructure: "Introduction, Why interested, Education/Skills, Closing",
	},
	"mid_level": {
		Focus:          "Relevant work experience, achievements, and technical skills",
		Emphasis:       "Proven track record and specific accomplishments",
		Structure:      "Experience first, then skills, then education",
		CoverFocus:     "Relevant experience, achievements, and technical skills",
		CoverEmphasis:  "Proven track record and specific accomplishments",
		CoverStructure: "Introduction, Why interested, Relevant Experience, Closing",
	},
	"senior_level": {
		Focus:          "Leadership, strategic impact, and business results",
		Emphasis:       "Team leadership, strategic thinking, and measurable impact",
		Structure:      "Experience with leadership focus, then strategic achievements",
		CoverFocus:     "Leadership, strategic impact, and business results",
		CoverEmphasis:  "Team leadership, strategic thinking, and measurable impact",
		CoverStructure: "Introduction, Why interested, Leadership Experience, Strategic Impact, Closing",
	},
	"executive": {
		Focus:          "Strategic leadership, business transformation, and organizational impact",
		Emphasis:       "Vision, strategy execution, and business growth",
		Structure:      "Executive summary, strategic achievements, leadership experience",
		CoverFocus:     "Strategic leadership, business transformation, and organizational impact",
		CoverEmphasis:  "Vision, strategy execution, and business growth",
		CoverStructure: "Introduction, Strategic Vision, Leadership Impact, Business Results, Closing",
	},
}

// ActionVerbs seed achievement bullets; prompts quote the first ten.
var ActionVerbs = []string{
	"Achieved", "Developed", "Implemented", "Managed", "Led", "Created", "Designed", "Built",
	"Optimized", "Streamlined", "Increased", "Reduced", "Generated", "Established", "Coordinated",
	"Facilitated", "Delivered", "Produced", "Executed", "Orchestrated", "Spearheaded", "Pioneered",
	"Revolutionized", "Transformed", "Enhanced", "Strengthened", "Expanded", "Launched", "Initiated",
}

// QuantificationPhrases connect actions to measurable outcomes.
var QuantificationPhrases = []string{
	"resulting in", "leading to", "which increased", "that improved", "achieving", "delivering",
	"generating", "reducing", "saving", "improving", "enhancing", "streamlining", "optimizing",
}

// AchievementPatterns are fill-in templates for quantified bullets.
var AchievementPatterns = []string{
	"Increased [metric] by [percentage] through [action]",
	"Reduced [cost/time] by [amount] by implementing [solution]",
	"Led team of [number] to deliver [result]",
	"Developed [solution] that improved [metric] by [amount]",
	"Managed [budget/project] worth [amount] resulting in [outcome]",
}

// OpeningPhrases are suggested cover letter openers; prompts quote the first three.
var OpeningPhrases = []string{
	"I am writing to express my strong interest in",
	"I am excited to apply for the position of",
	"With great enthusiasm, I am submitting my application for",
	"I am writing to apply for the",
	"I am interested in the opportunity to join",
}

// ClosingPhrases are suggested cover letter closers; prompts quote the first three.
var ClosingPhrases = []string{
	"I look forward to discussing how my background, skills, and enthusiasm can contribute to",
	"I would welcome the opportunity to discuss how my experience and skills align with",
	"I am excited about the possibility of contributing to",
	"I look forward to the opportunity to speak with you about how I can add value to",
	"Thank you for considering my application. I look forward to discussing this opportunity",
}

// EnthusiasmIndicators are words that signal genuine interest.
var EnthusiasmIndicators = []string{
	"excited", "passionate", "enthusiastic", "eager", "motivated", "inspired",
	"thrilled", "delighted", "pleased", "honored", "privileged",
}
