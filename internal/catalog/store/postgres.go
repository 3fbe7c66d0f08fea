package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"recruit/internal/catalog/models"
	"recruit/pkg/domain"
	"recruit/pkg/platform/sentinel"
)

// PostgresStore reads the catalog tables.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed catalog.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) FindSpecialty(ctx context.Context, key domain.SpecialtyKey) (*models.Specialty, error) {
	var sp models.Specialty
	err := s.db.QueryRowContext(ctx, `
		SELECT faculty_code, specialty_code, name
		FROM specialties
		WHERE faculty_code = $1 AND specialty_code = $2`,
		key.Faculty, key.Specialty,
	).Scan(&sp.Key.Faculty, &sp.Key.Specialty, &sp.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find specialty: %w", err)
	}
	return &sp, nil
}

func (s *PostgresStore) FindCourses(ctx context.Context, ids []domain.CourseID) (map[domain.CourseID]*models.Course, error) {
	out := make(map[domain.CourseID]*models.Course, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	raw := make([]int64, len(ids))
	for i, id := range ids {
		raw[i] = int64(id)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, faculty_code, specialty_code, name
		FROM courses
		WHERE id = ANY($1)`,
		pq.Array(raw),
	)
	if err != nil {
		return nil, fmt.Errorf("find courses: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c models.Course
		if err := rows.Scan(&c.ID, &c.Specialty.Faculty, &c.Specialty.Specialty, &c.Name); err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		out[c.ID] = &c
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate courses: %w", err)
	}
	return out, nil
}
