package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"recruit/internal/reviewer/models"
	"recruit/pkg/domain"
	"recruit/pkg/platform/sentinel"
	"recruit/pkg/platform/tx"
)

// PostgresStore reads the reviewers table. Queries join a transaction
// carried in ctx so evaluator resolution sees the same snapshot as the
// application insert.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const reviewerColumns = `id, role, faculty_code, specialty_code, active`

func (s *PostgresStore) FindByID(ctx context.Context, id domain.UserID) (*models.Reviewer, error) {
	row := tx.Executor(ctx, s.db).QueryRowContext(ctx,
		`SELECT `+reviewerColumns+` FROM reviewers WHERE id = $1`, int64(id))
	r, err := scanReviewer(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find reviewer: %w", err)
	}
	return r, nil
}

func (s *PostgresStore) FirstActiveDirector(ctx context.Context, key domain.SpecialtyKey) (*models.Reviewer, error) {
	row := tx.Executor(ctx, s.db).QueryRowContext(ctx, `
		SELECT `+reviewerColumns+`
		FROM reviewers
		WHERE role = 'DIRECTOR' AND active
		  AND faculty_code = $1 AND specialty_code = $2
		ORDER BY id
		LIMIT 1`,
		key.Faculty, key.Specialty,
	)
	r, err := scanReviewer(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find director: %w", err)
	}
	return r, nil
}

func scanReviewer(row *sql.Row) (*models.Reviewer, error) {
	var (
		r                  models.Reviewer
		role               string
		faculty, specialty sql.NullString
	)
	if err := row.Scan(&r.ID, &role, &faculty, &specialty, &r.Active); err != nil {
		return nil, err
	}
	r.Role = domain.Role(role)
	if faculty.Valid && specialty.Valid {
		r.Specialty = &domain.SpecialtyKey{Faculty: faculty.String, Specialty: specialty.String}
	}
	return &r, nil
}
