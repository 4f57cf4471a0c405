package generations

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"resumegen-backend/internal/prompt"
)

// PGRepo implements Repo using Postgres. Options, analysis, and warnings are
// stored as JSONB.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new generation.
func (r *PGRepo) Create(ctx context.Context, g Generation) error {
	const query = `
INSERT INTO generations (
	id, identity, kind, status, job_description, options, analysis, warnings,
	prompt, prompt_hash, provider, model, created_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	options, err := json.Marshal(g.Options)
	if err != nil {
		return fmt.Errorf("marshal options: %w", err)
	}
	analysis, err := marshalNullable(g.Analysis)
	if err != nil {
		return fmt.Errorf("marshal analysis: %w", err)
	}
	warnings, err := json.Marshal(g.Warnings)
	if err != nil {
		return fmt.Errorf("marshal warnings: %w", err)
	}

	_, err = r.DB.ExecContext(ctx, query,
		g.ID,
		g.Identity,
		string(g.Kind),
		g.Status,
		g.JobDescription,
		options,
		analysis,
		warnings,
		g.Prompt,
		g.PromptHash,
		g.Provider,
		g.Model,
		g.CreatedAt,
	)
	return err
}

const selectColumns = `
SELECT id, identity, kind, status, job_description, options, analysis, warnings,
       prompt, prompt_hash, result, error_code, error_message, provider, model,
       created_at, started_at, completed_at
FROM generations`

// GetByID returns a generation owned by the identity.
func (r *PGRepo) GetByID(ctx context.Context, identity, id string) (Generation, error) {
	row := r.DB.QueryRowContext(ctx, selectColumns+` WHERE id = $1 AND identity = $2`, id, identity)
	g, err := scanGeneration(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Generation{}, ErrNotFound
		}
		return Generation{}, err
	}
	return g, nil
}

// ListByIdentity returns the identity's generations newest-first.
func (r *PGRepo) ListByIdentity(ctx context.Context, identity string, limit, offset int) ([]Generation, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.DB.QueryContext(ctx,
		selectColumns+` WHERE identity = $1 ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3`,
		identity, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Generation
	for rows.Next() {
		g, err := scanGeneration(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// MarkProcessing transitions a generation to processing.
func (r *PGRepo) MarkProcessing(ctx context.Context, id string, startedAt time.Time) error {
	return r.exec(ctx,
		`UPDATE generations SET status = $2, started_at = $3 WHERE id = $1`,
		id, StatusProcessing, startedAt)
}

// MarkCompleted stores the result and transitions to completed.
func (r *PGRepo) MarkCompleted(ctx context.Context, id string, result string, completedAt time.Time) error {
	return r.exec(ctx,
		`UPDATE generations SET status = $2, result = $3, completed_at = $4 WHERE id = $1`,
		id, StatusCompleted, result, completedAt)
}

// MarkFailed stores the error and transitions to failed.
func (r *PGRepo) MarkFailed(ctx context.Context, id string, code, message string, completedAt time.Time) error {
	return r.exec(ctx,
		`UPDATE generations SET status = $2, error_code = $3, error_message = $4, completed_at = $5 WHERE id = $1`,
		id, StatusFailed, code, message, completedAt)
}

func (r *PGRepo) exec(ctx context.Context, query string, args ...any) error {
	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGeneration(row rowScanner) (Generation, error) {
	var g Generation
	var kind string
	var options, analysis, warnings []byte
	var result, errorCode, errorMessage sql.NullString
	var startedAt, completedAt sql.NullTime

	err := row.Scan(
		&g.ID,
		&g.Identity,
		&kind,
		&g.Status,
		&g.JobDescription,
		&options,
		&analysis,
		&warnings,
		&g.Prompt,
		&g.PromptHash,
		&result,
		&errorCode,
		&errorMessage,
		&g.Provider,
		&g.Model,
		&g.CreatedAt,
		&startedAt,
		&completedAt,
	)
	if err != nil {
		return Generation{}, err
	}

	g.Kind = prompt.Kind(kind)
	if len(options) > 0 {
		if err := json.Unmarshal(options, &g.Options); err != nil {
			return Generation{}, fmt.Errorf("unmarshal options: %w", err)
		}
	}
	if len(analysis) > 0 {
		var a prompt.JobAnalysis
		if err := json.Unmarshal(analysis, &a); err != nil {
			return Generation{}, fmt.Errorf("unmarshal analysis: %w", err)
		}
		g.Analysis = &a
	}
	if len(warnings) > 0 {
		if err := json.Unmarshal(warnings, &g.Warnings); err != nil {
			return Generation{}, fmt.Errorf("unmarshal warnings: %w", err)
		}
	}
	g.Result = result.String
	g.ErrorCode = errorCode.String
	g.ErrorMessage = errorMessage.String
	if startedAt.Valid {
		t := startedAt.Time
		g.StartedAt = &t
	}
	if completedAt.Valid {
		t := completedAt.Time
		g.CompletedAt = &t
	}
	return g, nil
}

func marshalNullable(a *prompt.JobAnalysis) ([]byte, error) {
	if a == nil {
		return nil, nil
	}
	return json.Marshal(a)
}

var _ Repo = (*PGRepo)(nil)
