package generations

import (
	"time"

	"resumegen-backend/internal/prompt"
)

const (
	StatusQueued     = "queued"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Generation is one document-generation job. The assembled prompt is stored
// with the record so asynchronous completion never re-reads the profile.
type Generation struct {
	ID             string              `json:"id"`
	Identity       string              `json:"-"`
	Kind           prompt.Kind         `json:"kind"`
	Status         string              `json:"status"`
	JobDescription string              `json:"jobDescription"`
	Options        prompt.Options      `json:"options"`
	Analysis       *prompt.JobAnalysis `json:"analysis,omitempty"`
	Warnings       []string            `json:"warnings,omitempty"`

	Prompt     string `json:"-"`
	PromptHash string `json:"promptHash"`
	Result     string `json:"result,omitempty"`

	ErrorCode    string `json:"errorCode,omitempty"`
	ErrorMessage string `json:"errorMessage,omitempty"`

	Provider string `json:"provider,omitempty"`
	Model    string `json:"model,omitempty"`

	CreatedAt   time.Time  `json:"createdAt"`
	StartedAt   *time.Time `json:"startedAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}
