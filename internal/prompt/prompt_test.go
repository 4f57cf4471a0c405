package prompt

import (
	"strings"
	"testing"

	"resumegen-backend/internal/profile"
)

func fullProfile() profile.Profile {
	return profile.Profile{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Summary: "Backend engineer focused on data-heavy services.",
		Skills: []profile.Skill{
			{Name: "Go"}, {Name: "PostgreSQL"}, {Name: "AWS"},
		},
		Experience: []profile.Experience{
			{
				Title:        "Senior Engineer",
				Company:      "Analytical Engines Ltd",
				StartDate:    "2019",
				EndDate:      "Present",
				Achievements: []string{"Cut query latency by 40%"},
			},
		},
		Education: []profile.Education{
			{Degree: "BSc Mathematics", Institution: "University of London", Year: "2012"},
		},
		Certifications: []string{"AWS Solutions Architect"},
	}
}

func TestBuildDeterministic(t *testing.T) {
	t.Parallel()

	p := fullProfile()
	jd := "Seeking a backend engineer with Go experience."
	analysis := &JobAnalysis{
		Skills:          []string{"go", "postgresql"},
		ExperienceLevel: "senior_level",
		Industry:        "technology",
	}
	opts := Options{Tone: "enthusiastic", Industry: "technology", FocusAreas: []string{"reliability"}}

	for _, kind := range []Kind{KindResume, KindCoverLetter, KindJobAnalysis} {
		first, _, err := Build(kind, p, jd, analysis, opts)
		if err != nil {
			t.Fatalf("build %s: %v", kind, err)
		}
		for i := 0; i < 5; i++ {
			again, _, err := Build(kind, p, jd, analysis, opts)
			if err != nil {
				t.Fatalf("rebuild %s: %v", kind, err)
			}
			if again != first {
				t.Fatalf("%s prompt not byte-identical across builds", kind)
			}
		}
	}
}

func TestBuildJobDescriptionVerbatim(t *testing.T) {
	t.Parallel()

	jd := "Line one with   odd   spacing.\n\n\tTabbed line two.\nLine three."
	for _, kind := range []Kind{KindResume, KindCoverLetter, KindJobAnalysis} {
		text, _, err := Build(kind, fullProfile(), jd, nil, Options{})
		if err != nil {
			t.Fatalf("build %s: %v", kind, err)
		}
		if !strings.Contains(text, jd) {
			t.Fatalf("%s prompt does not contain the job description verbatim", kind)
		}
	}
}

func TestBuildMinimalProfile(t *testing.T) {
	t.Parallel()

	p := profile.Profile{Name: "Ada Lovelace"}
	jd := "Seeking a backend engineer"
	text, _, err := Build(KindResume, p, jd, nil, Options{Industry: "technology"})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	for _, want := range []string{"Ada Lovelace", "Seeking a backend engineer", "Agile", "DevOps"} {
		if !strings.Contains(text, want) {
			t.Fatalf("prompt missing %q", want)
		}
	}
}

func TestBuildUnknownToneEqualsDefault(t *testing.T) {
	t.Parallel()

	p := fullProfile()
	jd := "Seeking a backend engineer"

	unknown, warnings, err := Build(KindResume, p, jd, nil, Options{Tone: "sardonic"})
	if err != nil {
		t.Fatalf("build unknown tone: %v", err)
	}
	def, _, err := Build(KindResume, p, jd, nil, Options{Tone: "professional"})
	if err != nil {
		t.Fatalf("build default tone: %v", err)
	}
	if unknown != def {
		t.Fatalf("unknown tone prompt differs from default tone prompt")
	}

	found := false
	for _, w := range warnings {
		if w.Category == "tone" && w.Given == "sardonic" && w.Used == "professional" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected tone substitution warning, got %v", warnings)
	}
}

func TestBuildUnknownOptionsWarnOnly(t *testing.T) {
	t.Parallel()

	_, warnings, err := Build(KindResume, fullProfile(), "Seeking a backend engineer", nil, Options{
		Tone:            "whimsical",
		Industry:        "alchemy",
		ExperienceLevel: "wizard",
	})
	if err != nil {
		t.Fatalf("unexpected error for unknown option values: %v", err)
	}
	if len(warnings) != 3 {
		t.Fatalf("expected 3 warnings, got %d: %v", len(warnings), warnings)
	}
}

func TestBuildAnalysisDoesNotReorderSections(t *testing.T) {
	t.Parallel()

	p := fullProfile()
	jd := "Seeking a backend engineer"
	sections := []string{
		"CANDIDATE INFORMATION:",
		"JOB DESCRIPTION:",
		"JOB ANALYSIS:",
		"PROFESSIONAL GUIDELINES:",
		"WRITING REQUIREMENTS:",
	}

	analysis := &JobAnalysis{Skills: []string{"go"}, Industry: "technology"}
	for _, a := range []*JobAnalysis{nil, analysis} {
		text, _, err := Build(KindResume, p, jd, a, Options{})
		if err != nil {
			t.Fatalf("build: %v", err)
		}
		last := -1
		for _, header := range sections {
			idx := strings.Index(text, header)
			if idx < 0 {
				t.Fatalf("section %q missing (analysis=%v)", header, a != nil)
			}
			if idx <= last {
				t.Fatalf("section %q out of order (analysis=%v)", header, a != nil)
			}
			last = idx
		}
	}
}

func TestBuildCoverLetterTargets(t *testing.T) {
	t.Parallel()

	jd := "Seeking a backend engineer"

	text, _, err := Build(KindCoverLetter, fullProfile(), jd, nil, Options{})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !strings.Contains(text, "Company: the company\n") || !strings.Contains(text, "Position: the position\n") {
		t.Fatalf("expected placeholder company and position")
	}

	text, _, err = Build(KindCoverLetter, fullProfile(), jd, nil, Options{
		TargetCompany: "Initech",
		TargetRole:    "Staff Engineer",
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !strings.Contains(text, "Company: Initech\n") || !strings.Contains(text, "Position: Staff Engineer\n") {
		t.Fatalf("expected explicit company and position")
	}
}

func TestBuildJobAnalysisOutputKeys(t *testing.T) {
	t.Parallel()

	text, _, err := Build(KindJobAnalysis, profile.Profile{}, "Seeking a backend engineer", nil, Options{})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	keys := []string{"requirements", "responsibilities", "skills", "qualifications", "experienceLevel", "industry", "keyPhrases"}
	for _, key := range keys {
		if !strings.Contains(text, "- "+key+":") {
			t.Fatalf("output format missing key %q", key)
		}
	}
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		want    Kind
		wantErr bool
	}{
		{raw: "resume", want: KindResume},
		{raw: "RESUME", want: KindResume},
		{raw: "cover_letter", want: KindCoverLetter},
		{raw: "cover-letter", want: KindCoverLetter},
		{raw: "Cover Letter", want: KindCoverLetter},
		{raw: "job_analysis", want: KindJobAnalysis},
		{raw: "essay", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseKind(tt.raw)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("ParseKind(%q) expected error", tt.raw)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseKind(%q): %v", tt.raw, err)
		}
		if got != tt.want {
			t.Fatalf("ParseKind(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
