package generations

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"resumegen-backend/internal/analyzer"
	"resumegen-backend/internal/llm"
	"resumegen-backend/internal/profile"
	"resumegen-backend/internal/prompt"
	"resumegen-backend/internal/shared/metrics"
	"resumegen-backend/internal/shared/telemetry"
)

// Service contains business logic for document generations.
type Service struct {
	Repo     Repo
	Profiles *profile.Service
	Analyzer *analyzer.Service
	LLM      llm.Client
	Provider string
	Model    string
}

// CreateInput is the validated input for starting a generation.
type CreateInput struct {
	Kind           prompt.Kind
	JobDescription string
	Analyze        bool
	Options        prompt.Options
}

// Create assembles the prompt, persists a queued generation, and kicks off
// asynchronous completion. The returned record is the queued snapshot;
// callers poll Get for progress.
func (s *Service) Create(ctx context.Context, identity string, in CreateInput) (Generation, error) {
	g, err := s.prepare(ctx, identity, in)
	if err != nil {
		return Generation{}, err
	}

	if err := s.Repo.Create(ctx, g); err != nil {
		return Generation{}, err
	}

	go s.completeAsync(context.Background(), g.ID, g.Identity)

	return g, nil
}

// Preview assembles the prompt without persisting or calling the LLM.
func (s *Service) Preview(ctx context.Context, identity string, in CreateInput) (Generation, error) {
	return s.prepare(ctx, identity, in)
}

// Get returns a generation by ID scoped to the identity.
func (s *Service) Get(ctx context.Context, identity, id string) (Generation, error) {
	if id == "" {
		return Generation{}, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	return s.Repo.GetByID(ctx, identity, id)
}

// List returns the identity's generations newest-first.
func (s *Service) List(ctx context.Context, identity string, limit, offset int) ([]Generation, error) {
	return s.Repo.ListByIdentity(ctx, identity, limit, offset)
}

func (s *Service) prepare(ctx context.Context, identity string, in CreateInput) (Generation, error) {
	if strings.TrimSpace(in.JobDescription) == "" {
		return Generation{}, fmt.Errorf("%w: job description is required", ErrInvalidInput)
	}

	p := profile.Profile{}
	if in.Kind != prompt.KindJobAnalysis {
		loaded, err := s.Profiles.Get(ctx, identity)
		if err != nil {
			if errors.Is(err, profile.ErrNotFound) {
				return Generation{}, fmt.Errorf("%w: no profile saved", ErrProfileIncomplete)
			}
			return Generation{}, err
		}
		if v := loaded.Validate(); !v.IsValid {
			return Generation{}, fmt.Errorf("%w: missing %s", ErrProfileIncomplete, strings.Join(v.MissingFields, ", "))
		}
		p = loaded
	}

	var analysis *prompt.JobAnalysis
	if in.Analyze && in.Kind != prompt.KindJobAnalysis && s.Analyzer != nil {
		a, err := s.Analyzer.Analyze(ctx, in.JobDescription)
		if err == nil {
			analysis = &a
		}
	}

	opts := in.Options
	// Explicit options win; analysis only fills what the caller left blank.
	if analysis != nil {
		if opts.Industry == "" {
			opts.Industry = analysis.Industry
		}
		if opts.ExperienceLevel == "" {
			opts.ExperienceLevel = analysis.ExperienceLevel
		}
	}

	text, warnings, err := prompt.Build(in.Kind, p, in.JobDescription, analysis, opts)
	if err != nil {
		return Generation{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	warningStrings := make([]string, 0, len(warnings))
	for _, w := range warnings {
		warningStrings = append(warningStrings, w.String())
	}

	return Generation{
		ID:             uuid.NewString(),
		Identity:       identity,
		Kind:           in.Kind,
		Status:         StatusQueued,
		JobDescription: in.JobDescription,
		Options:        opts,
		Analysis:       analysis,
		Warnings:       warningStrings,
		Prompt:         text,
		PromptHash:     hashPrompt(text),
		Provider:       s.Provider,
		Model:          s.Model,
		CreatedAt:      time.Now().UTC(),
	}, nil
}

func (s *Service) completeAsync(ctx context.Context, id, identity string) {
	defer func() {
		if r := recover(); r != nil {
			s.fail(ctx, id, identity, fmt.Errorf("panic: %v", r))
		}
	}()

	startedAt := time.Now().UTC()
	if err := s.Repo.MarkProcessing(ctx, id, startedAt); err != nil {
		s.fail(ctx, id, identity, fmt.Errorf("set processing failed: %w", err))
		return
	}
	metrics.IncGenerationStarted()
	telemetry.Info("generation.status", map[string]any{
		"generation_id":     id,
		"status":            StatusProcessing,
		"status_transition": "queued->processing",
	})

	g, err := s.Repo.GetByID(ctx, identity, id)
	if err != nil {
		s.fail(ctx, id, identity, fmt.Errorf("generation lookup: %w", err))
		return
	}
	if s.LLM == nil {
		s.fail(ctx, id, identity, errors.New("missing llm client"))
		return
	}

	var result string
	if g.Kind == prompt.KindJobAnalysis {
		result, err = s.LLM.CompleteJSON(ctx, g.Prompt)
	} else {
		result, err = s.LLM.Complete(ctx, g.Prompt)
	}
	if err != nil {
		s.fail(ctx, id, identity, fmt.Errorf("llm complete: %w", err))
		return
	}

	completedAt := time.Now().UTC()
	if err := s.Repo.MarkCompleted(ctx, id, result, completedAt); err != nil {
		s.fail(ctx, id, identity, fmt.Errorf("set result failed: %w", err))
		return
	}
	metrics.IncGenerationCompleted()
	metrics.ObserveGenerationDurationMs(float64(completedAt.Sub(startedAt).Microseconds()) / 1000.0)
	telemetry.Info("generation.status", map[string]any{
		"generation_id":     id,
		"status":            StatusCompleted,
		"status_transition": "processing->completed",
		"duration_ms":       float64(completedAt.Sub(startedAt).Microseconds()) / 1000.0,
	})
}

func (s *Service) fail(ctx context.Context, id, identity string, err error) {
	metrics.IncGenerationFailed()
	code := classifyFailure(err)
	msg := sanitizeError(err)
	completedAt := time.Now().UTC()
	if updateErr := s.Repo.MarkFailed(context.Background(), id, code, msg, completedAt); updateErr != nil {
		telemetry.Error("generation.fail_update", map[string]any{
			"generation_id": id,
			"error":         updateErr.Error(),
			"original":      msg,
		})
	}
	telemetry.Info("generation.status", map[string]any{
		"generation_id":     id,
		"status":            StatusFailed,
		"error_code":        code,
		"error":             msg,
		"status_transition": "processing->failed",
	})
	_ = ctx
	_ = identity
}

func classifyFailure(err error) string {
	if err == nil {
		return ErrorCodeInternal
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrorCodeLLMTimeout
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "timeout"):
		return ErrorCodeLLMTimeout
	case strings.Contains(msg, "llm") || strings.Contains(msg, "openai"):
		return ErrorCodeLLM
	case strings.Contains(msg, "set processing") || strings.Contains(msg, "set result") || strings.Contains(msg, "lookup"):
		return ErrorCodeStorage
	default:
		return ErrorCodeInternal
	}
}

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	msg := strings.ReplaceAll(err.Error(), "\n", " ")
	msg = strings.ReplaceAll(msg, "\r", " ")
	msg = strings.TrimSpace(msg)
	const maxLen = 500
	if len(msg) > maxLen {
		msg = msg[:maxLen]
	}
	return msg
}

func hashPrompt(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
