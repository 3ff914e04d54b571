package skill

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"attest/internal/registry/models"
	id "attest/pkg/domain"
	"attest/pkg/platform/sentinel"
)

// PostgresStore persists skill records in PostgreSQL. Verifications live in
// a child table ordered by an append sequence; ON DELETE CASCADE makes
// revocation discard the history atomically.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Schema creates the tables this store needs. Integration tests and fresh
// deployments call it once at startup.
const Schema = `
CREATE TABLE IF NOT EXISTS skills (
	owner            TEXT        NOT NULL,
	name             TEXT        NOT NULL,
	description      TEXT        NOT NULL DEFAULT '',
	added_at         TIMESTAMPTZ NOT NULL,
	last_verified_at TIMESTAMPTZ,
	PRIMARY KEY (owner, name)
);

CREATE TABLE IF NOT EXISTS skill_verifications (
	seq         BIGSERIAL PRIMARY KEY,
	owner       TEXT        NOT NULL,
	name        TEXT        NOT NULL,
	verifier    TEXT        NOT NULL,
	verified_at TIMESTAMPTZ NOT NULL,
	UNIQUE (owner, name, verifier),
	FOREIGN KEY (owner, name) REFERENCES skills (owner, name) ON DELETE CASCADE
);
`

// EnsureSchema applies the store schema.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("ensure skill schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Create(ctx context.Context, skill *models.Skill) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO skills (owner, name, description, added_at) VALUES ($1, $2, $3, $4)`,
		skill.Owner.String(), skill.Name, skill.Description, skill.AddedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return sentinel.ErrAlreadyUsed
		}
		return fmt.Errorf("create skill: %w", err)
	}
	return nil
}

func (s *PostgresStore) Find(ctx context.Context, owner id.Principal, name string) (*models.Skill, error) {
	return s.load(ctx, s.db, owner, name, false)
}

// Execute wraps validate-then-mutate in a transaction holding a FOR UPDATE
// row lock, the SQL equivalent of the in-memory store's exclusive section.
// Mutations may only append verifiers and advance last_verified_at, so
// persisting the diff means inserting the verifier rows added beyond the
// loaded count and updating the timestamp.
func (s *PostgresStore) Execute(
	ctx context.Context,
	owner id.Principal,
	name string,
	validate func(*models.Skill) error,
	mutate func(*models.Skill),
) (*models.Skill, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	skill, err := s.load(ctx, tx, owner, name, true)
	if err != nil {
		return nil, err
	}
	loaded := skill.VerificationCount()

	if err := validate(skill); err != nil {
		return nil, err
	}
	mutate(skill)

	for _, verifier := range skill.Verifiers[loaded:] {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO skill_verifications (owner, name, verifier, verified_at) VALUES ($1, $2, $3, $4)`,
			owner.String(), name, verifier.String(), skill.LastVerifiedAt,
		)
		if err != nil {
			var pqErr *pq.Error
			if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
				return nil, sentinel.ErrDuplicate
			}
			return nil, fmt.Errorf("append verification: %w", err)
		}
	}
	_, err = tx.ExecContext(ctx,
		`UPDATE skills SET last_verified_at = $3 WHERE owner = $1 AND name = $2`,
		owner.String(), name, nullTime(skill.LastVerifiedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("update skill: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return skill, nil
}

func (s *PostgresStore) Delete(ctx context.Context, owner id.Principal, name string) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM skills WHERE owner = $1 AND name = $2`,
		owner.String(), name,
	)
	if err != nil {
		return fmt.Errorf("delete skill: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete skill: %w", err)
	}
	if affected == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func (s *PostgresStore) load(ctx context.Context, q querier, owner id.Principal, name string, forUpdate bool) (*models.Skill, error) {
	query := `SELECT description, added_at, last_verified_at FROM skills WHERE owner = $1 AND name = $2`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var (
		description  string
		addedAt      time.Time
		lastVerified sql.NullTime
	)
	err := q.QueryRowContext(ctx, query, owner.String(), name).Scan(&description, &addedAt, &lastVerified)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load skill: %w", err)
	}

	skill := &models.Skill{
		Owner:       owner,
		Name:        name,
		Description: description,
		AddedAt:     addedAt,
		Verified:    make(map[id.Principal]bool),
	}
	if lastVerified.Valid {
		skill.LastVerifiedAt = lastVerified.Time
	}

	rows, err := q.QueryContext(ctx,
		`SELECT verifier FROM skill_verifications WHERE owner = $1 AND name = $2 ORDER BY seq`,
		owner.String(), name,
	)
	if err != nil {
		return nil, fmt.Errorf("load verifiers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var verifier string
		if err := rows.Scan(&verifier); err != nil {
			return nil, fmt.Errorf("scan verifier: %w", err)
		}
		p := id.Principal(verifier)
		skill.Verifiers = append(skill.Verifiers, p)
		skill.Verified[p] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate verifiers: %w", err)
	}
	return skill, nil
}

func nullTime(t time.Time) sql.NullTime {
	if t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t, Valid: true}
}
