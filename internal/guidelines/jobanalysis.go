package guidelines

// AnalysisCategory describes one dimension the job-analysis prompt asks for.
type AnalysisCategory struct {
	Priority    string
	Description string
	Keywords    []string
}

// AnalysisCategories steer the job-analysis prompt, ordered by priority.
var AnalysisCategories = map[string]AnalysisCategory{
	"requirements": {
		Priority:    "high",
		Description: "Must-have qualifications and skills",
		Keywords:    []string{"required", "must have", "qualifications", "requirements", "essential"},
	},
	"responsibilities": {
		Priority:    "high",
		Description: "Job duties and day-to-day tasks",
		Keywords:    []string{"responsibilities", "duties", "tasks", "role", "position", "will"},
	},
	"skills": {
		Priority:    "high",
		Description: "Technical and soft skills needed",
		Keywords:    []string{"skills", "proficient", "experience with", "knowledge of", "familiarity"},
	},
	"qualifications": {
		Priority:    "medium",
		Description: "Educational and experience requirements",
		Keywords:    []string{"degree", "bachelor", "master", "phd", "years of experience", "certification"},
	},
	"experience_level": {
		Priority:    "medium",
		Description: "Seniority level required",
		Keywords:    []string{"entry level", "junior", "senior", "lead", "principal", "executive"},
	},
	"industry": {
		Priority:    "medium",
		Description: "Industry or domain focus",
		Keywords:    []string{"technology", "finance", "healthcare", "marketing", "sales", "consulting"},
	},
}

// IndustryPattern holds classification signals for one industry.
type IndustryPattern struct {
	Keywords  []string
	Companies []string
	Skills    []string
}

// IndustryPatterns classify a job description into an industry. The set is
// wider than the steering tables: consulting can be detected even though no
// consulting guideline text exists.
var IndustryPatterns = map[string]IndustryPattern{
	"technology": {
		Keywords:  []string{"software", "tech", "it", "development", "programming", "coding", "engineering"},
		Companies: []string{"Google", "Microsoft", "Apple", "Amazon", "Meta", "Netflix"},
		Skills:    []string{"Python", "Java", "JavaScript", "React", "AWS", "Docker"},
	},
	"finance": {
		Keywords:  []string{"finance", "banking", "investment", "trading", "fintech", "financial"},
		Companies: []string{"Goldman Sachs", "JP Morgan", "Morgan Stanley", "BlackRock"},
		Skills:    []string{"Financial modeling", "Excel", "Bloomberg", "Risk management"},
	},
	"healthcare": {
		Keywords:  []string{"healthcare", "medical", "pharmaceutical", "biotech", "clinical"},
		Companies: []string{"Johnson & Johnson", "Pfizer", "Merck", "UnitedHealth"},
		Skills:    []string{"Patient care", "Clinical protocols", "HIPAA", "Medical terminology"},
	},
	"marketing": {
		Keywords:  []string{"marketing", "advertising", "brand", "digital marketing", "campaign"},
		Companies: []string{"WPP", "Omnicom", "Publicis", "Interpublic"},
		Skills:    []string{"SEO", "Social media", "Analytics", "Brand management"},
	},
	"sales": {
		Keywords:  []string{"sales", "business development", "account management", "revenue"},
		Companies: []string{"Salesforce", "Oracle", "SAP", "Microsoft"},
		Skills:    []string{"CRM", "Lead generation", "Pipeline management", "Negotiation"},
	},
	"consulting": {
		Keywords:  []string{"consulting", "advisory", "strategy", "management consulting"},
		Companies: []string{"McKinsey", "BCG", "Bain", "Deloitte", "PwC"},
		Skills:    []string{"Strategy", "Analysis", "Problem solving", "Client management"},
	},
}

// ExperiencePattern holds classification signals for one seniority level.
type ExperiencePattern struct {
	Keywords         []string
	Requirements     []string
	Responsibilities []string
}

// ExperienceLevelPatterns classify a job description into a seniority level.
var ExperienceLevelPatterns = map[string]ExperiencePattern{
	"entry_level": {
		Keywords:         []string{"entry level", "junior", "0-2 years", "fresh graduate", "new grad", "associate"},
		Requirements:     []string{"Bachelor's degree", "internship", "basic skills"},
		Responsibilities: []string{"learning", "support", "assist", "entry-level tasks"},
	},
	"mid_level": {
		Keywords:         []string{"mid-level", "intermediate", "3-5 years", "experienced", "specialist"},
		Requirements:     []string{"3+ years experience", "proven track record", "specialized skills"},
		Responsibilities: []string{"independent work", "project management", "mentoring"},
	},
	"senior_level": {
		Keywords:         []string{"senior", "lead", "principal", "5+ years", "experienced professional"},
		Requirements:     []string{"5+ years experience", "leadership experience", "expert skills"},
		Responsibilities: []string{"leadership", "strategy", "mentoring", "decision making"},
	},
	"executive": {
		Keywords:         []string{"executive", "director", "manager", "head of", "vp", "cto", "ceo"},
		Requirements:     []string{"10+ years experience", "executive experience", "strategic thinking"},
		Responsibilities: []string{"strategy", "leadership", "business decisions", "team management"},
	},
}

// SkillCategories group known skills for extraction and categorization.
var SkillCategories = map[string][]string{
	"technical_skills": {
		"Python", "Java", "JavaScript", "React", "Angular", "Vue", "Node.js", "SQL", "MongoDB",
		"AWS", "Azure", "Docker", "Kubernetes", "Git", "Machine Learning", "AI", "Data Science",
	},
	"soft_skills": {
		"Leadership", "Communication", "Problem Solving", "Teamwork", "Collaboration",
		"Project Management", "Agile", "Scrum", "Innovation", "Creativity", "Analytical",
	},
	"business_skills": {
		"Strategy", "Analysis", "Financial modeling", "Risk management", "Compliance",
		"Marketing", "Sales", "Customer service", "Operations", "Supply chain",
	},
}

// AllKnownSkills flattens SkillCategories in stable category order
// (business, soft, technical).
func AllKnownSkills() []string {
	var out []string
	for _, cat := range SkillCategoryNames() {
		out = append(out, SkillCategories[cat]...)
	}
	return out
}
