package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"attest/internal/registry/models"
	id "attest/pkg/domain"
	"attest/pkg/platform/sentinel"
)

// PostgresStore persists profiles in PostgreSQL. Save is an upsert because
// setProfile fully overwrites an existing profile.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const Schema = `
CREATE TABLE IF NOT EXISTS profiles (
	principal  TEXT        PRIMARY KEY,
	name       TEXT        NOT NULL,
	university TEXT        NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
`

// EnsureSchema applies the store schema.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("ensure profile schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Save(ctx context.Context, p *models.Profile) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO profiles (principal, name, university, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (principal) DO UPDATE
		SET name = EXCLUDED.name, university = EXCLUDED.university, updated_at = EXCLUDED.updated_at`,
		p.Principal.String(), p.Name, p.University, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

func (s *PostgresStore) Find(ctx context.Context, principal id.Principal) (*models.Profile, error) {
	p := &models.Profile{Principal: principal}
	err := s.db.QueryRowContext(ctx,
		`SELECT name, university, updated_at FROM profiles WHERE principal = $1`,
		principal.String(),
	).Scan(&p.Name, &p.University, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return p, nil
}
