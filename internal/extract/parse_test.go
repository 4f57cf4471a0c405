package extract

import (
	"strings"
	"testing"
)

const sampleResume = `Ada Lovelace
London, UK
ada@example.com | +1 555-123-4567
linkedin.com/in/ada-lovelace
github.com/ada

Professional Summary: Backend engineer with ten years building data platforms.

Skills: Go, PostgreSQL, AWS

Work Experience: Senior Engineer at Analytical Engines

Education: BSc Mathematics, University of London

Certifications: AWS Solutions Architect
`

func TestParseResumeFullDocument(t *testing.T) {
	t.Parallel()

	p, warnings := ParseResume(sampleResume)

	if p.Name != "Ada Lovelace" {
		t.Fatalf("name = %q", p.Name)
	}
	if p.Email != "ada@example.com" {
		t.Fatalf("email = %q", p.Email)
	}
	if p.Phone == "" {
		t.Fatalf("expected phone")
	}
	if !strings.Contains(p.LinkedIn, "linkedin.com/in/ada-lovelace") {
		t.Fatalf("linkedin = %q", p.LinkedIn)
	}
	if !strings.Contains(p.GitHub, "github.com/ada") {
		t.Fatalf("github = %q", p.GitHub)
	}
	if p.Location == "" {
		t.Fatalf("expected location")
	}
	if !strings.Contains(p.Summary, "Backend engineer") {
		t.Fatalf("summary = %q", p.Summary)
	}
	if len(p.Skills) != 3 {
		t.Fatalf("skills = %v", p.Skills)
	}
	if p.Skills[0].Name != "Go" || p.Skills[2].Name != "AWS" {
		t.Fatalf("skills = %v", p.Skills)
	}
	if len(p.Experience) == 0 || !strings.Contains(p.Experience[0].Title, "Senior Engineer") {
		t.Fatalf("experience = %v", p.Experience)
	}
	if len(p.Education) == 0 || !strings.Contains(p.Education[0].Degree, "BSc Mathematics") {
		t.Fatalf("education = %v", p.Education)
	}
	if !strings.Contains(p.FurtherInfo, "AWS Solutions Architect") {
		t.Fatalf("further info = %q", p.FurtherInfo)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
}

func TestParseResumePartialDocumentWarns(t *testing.T) {
	t.Parallel()

	p, warnings := ParseResume("some unstructured text\nwith nothing useful in it at all, not even a short first line under fifty characters would hide the gaps")
	if p.Email != "" {
		t.Fatalf("unexpected email: %q", p.Email)
	}

	wantMissing := []string{"email", "phone", "summary", "skills", "experience", "education"}
	joined := strings.Join(warnings, "; ")
	for _, field := range wantMissing {
		if !strings.Contains(joined, "could not extract "+field) {
			t.Fatalf("expected warning for %s, got %v", field, warnings)
		}
	}
}

func TestParseResumeNeverErrors(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"", "   ", "\n\n\n", "12345"} {
		p, warnings := ParseResume(text)
		if len(warnings) == 0 {
			t.Fatalf("expected warnings for %q", text)
		}
		_ = p
	}
}

func TestExtractName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{name: "first line", lines: []string{"Grace Hopper", "grace@example.com"}, want: "Grace Hopper"},
		{name: "skips digits", lines: []string{"+1 555 000 1111", "Grace Hopper"}, want: "Grace Hopper"},
		{name: "skips long lines", lines: []string{strings.Repeat("x", 60), "Grace Hopper"}, want: "Grace Hopper"},
		{name: "not past fifth line", lines: []string{"1", "2", "3", "4", "5", "Grace Hopper"}, want: ""},
		{name: "empty input", lines: nil, want: ""},
	}
	for _, tt := range tests {
		if got := extractName(tt.lines); got != tt.want {
			t.Fatalf("%s: extractName = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestSplitSkillsSeparators(t *testing.T) {
	t.Parallel()

	skills := splitSkills("Go, PostgreSQL; AWS | Docker\nKubernetes")
	if len(skills) != 5 {
		t.Fatalf("expected 5 skills, got %v", skills)
	}
	if skills[3].Name != "Docker" {
		t.Fatalf("skills = %v", skills)
	}
}
