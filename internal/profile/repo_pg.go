package profile

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres. List-valued fields are stored as
// JSONB so the single-row-per-identity shape stays a plain upsert.
type PGRepo struct {
	DB *sql.DB
}

// Save upserts the profile record for its identity.
func (r *PGRepo) Save(ctx context.Context, p Profile) error {
	const query = `
INSERT INTO profiles (
    identity,
    name,
    email,
    phone,
    location,
    linkedin,
    github,
    website,
    summary,
    experience,
    education,
    skills,
    projects,
    further_info,
    extras,
    created_at,
    updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
ON CONFLICT (identity) DO UPDATE SET
    name = EXCLUDED.name,
    email = EXCLUDED.email,
    phone = EXCLUDED.phone,
    location = EXCLUDED.location,
    linkedin = EXCLUDED.linkedin,
    github = EXCLUDED.github,
    website = EXCLUDED.website,
    summary = EXCLUDED.summary,
    experience = EXCLUDED.experience,
    education = EXCLUDED.education,
    skills = EXCLUDED.skills,
    projects = EXCLUDED.projects,
    further_info = EXCLUDED.further_info,
    extras = EXCLUDED.extras,
    updated_at = EXCLUDED.updated_at`

	experience, err := marshalList(p.Experience)
	if err != nil {
		return fmt.Errorf("marshal experience: %w", err)
	}
	education, err := marshalList(p.Education)
	if err != nil {
		return fmt.Errorf("marshal education: %w", err)
	}
	skills, err := marshalList(p.Skills)
	if err != nil {
		return fmt.Errorf("marshal skills: %w", err)
	}
	extras, err := json.Marshal(profileExtras{
		Certifications: p.Certifications,
		Languages:      p.Languages,
		Interests:      p.Interests,
	})
	if err != nil {
		return fmt.Errorf("marshal extras: %w", err)
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		p.Identity,
		p.Name,
		p.Email,
		p.Phone,
		p.Location,
		p.LinkedIn,
		p.GitHub,
		p.Website,
		p.Summary,
		experience,
		education,
		skills,
		p.Projects,
		p.FurtherInfo,
		extras,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

// Get loads the profile record for an identity.
func (r *PGRepo) Get(ctx context.Context, identity string) (Profile, error) {
	const query = `
SELECT identity, name, email, phone, location, linkedin, github, website, summary,
       experience, education, skills, projects, further_info, extras, created_at, updated_at
FROM profiles
WHERE identity = $1`

	var p Profile
	var experience, education, skills, extras []byte
	err := r.DB.QueryRowContext(ctx, query, identity).Scan(
		&p.Identity,
		&p.Name,
		&p.Email,
		&p.Phone,
		&p.Location,
		&p.LinkedIn,
		&p.GitHub,
		&p.Website,
		&p.Summary,
		&experience,
		&education,
		&skills,
		&p.Projects,
		&p.FurtherInfo,
		&extras,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, err
	}

	if err := unmarshalList(experience, &p.Experience); err != nil {
		return Profile{}, fmt.Errorf("unmarshal experience: %w", err)
	}
	if err := unmarshalList(education, &p.Education); err != nil {
		return Profile{}, fmt.Errorf("unmarshal education: %w", err)
	}
	if err := unmarshalList(skills, &p.Skills); err != nil {
		return Profile{}, fmt.Errorf("unmarshal skills: %w", err)
	}
	if len(extras) > 0 {
		var ex profileExtras
		if err := json.Unmarshal(extras, &ex); err != nil {
			return Profile{}, fmt.Errorf("unmarshal extras: %w", err)
		}
		p.Certifications = ex.Certifications
		p.Languages = ex.Languages
		p.Interests = ex.Interests
	}
	return p, nil
}

type profileExtras struct {
	Certifications []string `json:"certifications,omitempty"`
	Languages      []string `json:"languages,omitempty"`
	Interests      []string `json:"interests,omitempty"`
}

func marshalList[T any](list []T) ([]byte, error) {
	if list == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(list)
}

func unmarshalList[T any](raw []byte, dst *[]T) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dst)
}

var _ Repo = (*PGRepo)(nil)
