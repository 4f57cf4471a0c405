package generations

import "errors"

var (
	ErrNotFound          = errors.New("generation not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrProfileIncomplete = errors.New("profile incomplete")
)

// Error codes persisted on failed generations.
const (
	ErrorCodeLLMTimeout = "llm_timeout"
	ErrorCodeLLM        = "llm_error"
	ErrorCodeStorage    = "storage_error"
	ErrorCodeInternal   = "internal_error"
)
