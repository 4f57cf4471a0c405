package generations

import (
	"context"
	"time"
)

// Repo persists generation records.
type Repo interface {
	Create(ctx context.Context, g Generation) error
	GetByID(ctx context.Context, identity, id string) (Generation, error)
	ListByIdentity(ctx context.Context, identity string, limit, offset int) ([]Generation, error)
	MarkProcessing(ctx context.Context, id string, startedAt time.Time) error
	MarkCompleted(ctx context.Context, id string, result string, completedAt time.Time) error
	MarkFailed(ctx context.Context, id string, code, message string, completedAt time.Time) error
}
