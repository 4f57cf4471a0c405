package profile

import "context"

// Repo defines persistence for the single-per-identity profile record.
type Repo interface {
	Save(ctx context.Context, p Profile) error
	Get(ctx context.Context, identity string) (Profile, error)
}
