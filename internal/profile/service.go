package profile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"resumegen-backend/internal/shared/storage/object"
)

// Parser turns an uploaded resume file into a best-effort profile plus
// per-field warnings.
type Parser interface {
	Parse(ctx context.Context, data []byte, mimeType string, fileName string) (Profile, []string, error)
}

type Service struct {
	Repo   Repo
	Store  object.ObjectStore
	Parser Parser

	now func() time.Time
}

func NewService(repo Repo, store object.ObjectStore, parser Parser) *Service {
	return &Service{Repo: repo, Store: store, Parser: parser, now: time.Now}
}

// Save upserts the identity's profile. The stored record is replaced
// wholesale; created_at is preserved when a record already exists.
func (s *Service) Save(ctx context.Context, identity string, p Profile) (Profile, error) {
	if s == nil || s.Repo == nil {
		return Profile{}, errors.New("profile service not configured")
	}
	if strings.TrimSpace(identity) == "" {
		return Profile{}, fmt.Errorf("%w: identity is required", ErrInvalidInput)
	}

	now := s.now().UTC()
	p.Identity = identity
	p.CreatedAt = now
	p.UpdatedAt = now
	if existing, err := s.Repo.Get(ctx, identity); err == nil {
		p.CreatedAt = existing.CreatedAt
	}

	if err := s.Repo.Save(ctx, p); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Get loads the identity's profile.
func (s *Service) Get(ctx context.Context, identity string) (Profile, error) {
	if s == nil || s.Repo == nil {
		return Profile{}, errors.New("profile service not configured")
	}
	return s.Repo.Get(ctx, identity)
}

// Import parses an uploaded resume file into a profile, saves it for the
// identity, and archives the original file when a store is configured.
// Parse warnings are informational; a partial profile still saves.
func (s *Service) Import(ctx context.Context, identity string, fileName string, mimeType string, data []byte) (Profile, []string, error) {
	if s == nil || s.Parser == nil {
		return Profile{}, nil, errors.New("profile import not configured")
	}
	if len(data) == 0 {
		return Profile{}, nil, fmt.Errorf("%w: empty file", ErrInvalidInput)
	}

	parsed, warnings, err := s.Parser.Parse(ctx, data, mimeType, fileName)
	if err != nil {
		return Profile{}, nil, fmt.Errorf("parse resume: %w", err)
	}

	if s.Store != nil {
		if _, _, _, err := s.Store.Save(ctx, identity, fileName, bytes.NewReader(data)); err != nil {
			warnings = append(warnings, "original file could not be archived")
		}
	}

	saved, err := s.Save(ctx, identity, parsed)
	if err != nil {
		return Profile{}, nil, err
	}
	return saved, warnings, nil
}
