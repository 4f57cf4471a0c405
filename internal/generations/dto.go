package generations

import "resumegen-backend/internal/prompt"

type createRequest struct {
	Kind           string         `json:"kind"`
	JobDescription string         `json:"jobDescription"`
	Analyze        *bool          `json:"analyze,omitempty"`
	Options        prompt.Options `json:"options"`
}

// previewResponse exposes the assembled prompt, which list responses omit.
type previewResponse struct {
	Kind       prompt.Kind         `json:"kind"`
	Prompt     string              `json:"prompt"`
	PromptHash string              `json:"promptHash"`
	Warnings   []string            `json:"warnings,omitempty"`
	Analysis   *prompt.JobAnalysis `json:"analysis,omitempty"`
	Options    prompt.Options      `json:"options"`
}

type listResponse struct {
	Generations []Generation `json:"generations"`
}
