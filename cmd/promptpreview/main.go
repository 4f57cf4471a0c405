package main

// Print an assembled generation prompt without touching the API or an LLM:
//   go run ./cmd/promptpreview -kind resume -jd ./jd.txt

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"resumegen-backend/internal/analyzer"
	"resumegen-backend/internal/profile"
	"resumegen-backend/internal/prompt"
)

func main() {
	kindFlag := flag.String("kind", "resume", "Generation kind: resume, cover_letter, job_analysis")
	jdPath := flag.String("jd", "", "Path to job description file")
	tone := flag.String("tone", "", "Tone override")
	industry := flag.String("industry", "", "Industry override")
	experience := flag.String("experience", "", "Experience level override")
	analyze := flag.Bool("analyze", true, "Run pattern-based job analysis")
	flag.Parse()

	kind, err := prompt.ParseKind(*kindFlag)
	if err != nil {
		exitErr(err.Error())
	}

	jobDescription := "We are hiring a backend engineer with Go and PostgreSQL experience."
	if strings.TrimSpace(*jdPath) != "" {
		raw, err := os.ReadFile(*jdPath)
		if err != nil {
			exitErr(fmt.Sprintf("read job description: %v", err))
		}
		jobDescription = string(raw)
	}

	var analysis *prompt.JobAnalysis
	if *analyze && kind != prompt.KindJobAnalysis {
		svc := analyzer.NewService(nil)
		a, err := svc.Analyze(context.Background(), jobDescription)
		if err == nil {
			analysis = &a
		}
	}

	text, warnings, err := prompt.Build(kind, sampleProfile(), jobDescription, analysis, prompt.Options{
		Tone:            *tone,
		Industry:        *industry,
		ExperienceLevel: *experience,
	})
	if err != nil {
		exitErr(err.Error())
	}

	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, "warning:", w.String())
	}
	fmt.Print(text)
}

func sampleProfile() profile.Profile {
	return profile.Profile{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Summary: "Backend engineer with a decade of experience building data-heavy services.",
		Skills: []profile.Skill{
			{Name: "Go"}, {Name: "PostgreSQL"}, {Name: "AWS"},
		},
		Experience: []profile.Experience{
			{
				Title:        "Senior Engineer",
				Company:      "Analytical Engines Ltd",
				StartDate:    "2019",
				EndDate:      "Present",
				Achievements: []string{"Cut query latency by 40%", "Led a team of five"},
			},
		},
		Education: []profile.Education{
			{Degree: "BSc Mathematics", Institution: "University of London", Year: "2012"},
		},
	}
}

func exitErr(msg string) {
	fmt.Fprintln(os.Stderr, "error:", msg)
	os.Exit(1)
}
