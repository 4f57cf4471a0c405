package generations

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo stores generations in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu   sync.RWMutex
	byID map[string]Generation
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]Generation)}
}

// Create stores the generation.
func (r *MemoryRepo) Create(ctx context.Context, g Generation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[g.ID] = g
	return nil
}

// GetByID returns a generation owned by the identity.
func (r *MemoryRepo) GetByID(ctx context.Context, identity, id string) (Generation, error) {
	if err := ctx.Err(); err != nil {
		return Generation{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.byID[id]
	if !ok || g.Identity != identity {
		return Generation{}, ErrNotFound
	}
	return g, nil
}

// ListByIdentity returns the identity's generations newest-first.
func (r *MemoryRepo) ListByIdentity(ctx context.Context, identity string, limit, offset int) ([]Generation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Generation
	for _, g := range r.byID {
		if g.Identity == identity {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

// MarkProcessing transitions a generation to processing.
func (r *MemoryRepo) MarkProcessing(ctx context.Context, id string, startedAt time.Time) error {
	return r.update(ctx, id, func(g *Generation) {
		g.Status = StatusProcessing
		g.StartedAt = &startedAt
	})
}

// MarkCompleted stores the result and transitions to completed.
func (r *MemoryRepo) MarkCompleted(ctx context.Context, id string, result string, completedAt time.Time) error {
	return r.update(ctx, id, func(g *Generation) {
		g.Status = StatusCompleted
		g.Result = result
		g.CompletedAt = &completedAt
	})
}

// MarkFailed stores the error and transitions to failed.
func (r *MemoryRepo) MarkFailed(ctx context.Context, id string, code, message string, completedAt time.Time) error {
	return r.update(ctx, id, func(g *Generation) {
		g.Status = StatusFailed
		g.ErrorCode = code
		g.ErrorMessage = message
		g.CompletedAt = &completedAt
	})
}

func (r *MemoryRepo) update(ctx context.Context, id string, apply func(*Generation)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	apply(&g)
	r.byID[id] = g
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
