// Package analyzer derives a structured job analysis from a raw job
// description. The LLM path uses JSON-mode completion; when no provider is
// configured or the call fails, a pattern-matching fallback over the static
// classification tables produces a best-effort analysis instead.
package analyzer

import (
	"context"
	"encoding/json"
	"strings"

	"resumegen-backend/internal/llm"
	"resumegen-backend/internal/profile"
	"resumegen-backend/internal/prompt"
	"resumegen-backend/internal/shared/telemetry"
)

type Service struct {
	LLM llm.Client
}

func NewService(client llm.Client) *Service {
	return &Service{LLM: client}
}

// Analyze returns a job analysis for the description. An empty description
// yields an empty analysis. LLM failures degrade to pattern matching and
// never surface as errors.
func (s *Service) Analyze(ctx context.Context, jobDescription string) (prompt.JobAnalysis, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return prompt.JobAnalysis{}, nil
	}

	if s.LLM != nil {
		analysis, err := s.analyzeWithLLM(ctx, jobDescription)
		if err == nil {
			return analysis, nil
		}
		telemetry.Info("job_analysis.fallback", map[string]any{"reason": err.Error()})
	}

	return analyzeWithPatterns(jobDescription), nil
}

func (s *Service) analyzeWithLLM(ctx context.Context, jobDescription string) (prompt.JobAnalysis, error) {
	text, _, err := prompt.Build(prompt.KindJobAnalysis, profile.Profile{}, jobDescription, nil, prompt.Options{})
	if err != nil {
		return prompt.JobAnalysis{}, err
	}

	raw, err := s.LLM.CompleteJSON(ctx, text)
	if err != nil {
		return prompt.JobAnalysis{}, err
	}

	var analysis prompt.JobAnalysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		return prompt.JobAnalysis{}, err
	}
	return analysis, nil
}
