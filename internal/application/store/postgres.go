package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"recruit/internal/application/models"
	"recruit/internal/application/service"
	"recruit/pkg/domain"
	dErrors "recruit/pkg/domain-errors"
	"recruit/pkg/platform/sentinel"
	"recruit/pkg/platform/tx"
)

// uniqueViolation is the PostgreSQL SQLSTATE for unique_violation.
const uniqueViolation = "23505"

// PostgresStore persists applications in PostgreSQL. Every statement runs
// on the transaction carried in ctx when there is one.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed application store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const applicationColumns = `id, applicant_id, faculty_code, specialty_code, status,
	evaluator_id, evaluation_comment, submitted_at, evaluated_at`

func (s *PostgresStore) FindByApplicantAndSpecialty(ctx context.Context, applicant domain.UserID, key domain.SpecialtyKey) (*models.Application, error) {
	row := tx.Executor(ctx, s.db).QueryRowContext(ctx, `
		SELECT `+applicationColumns+`
		FROM applications
		WHERE applicant_id = $1 AND faculty_code = $2 AND specialty_code = $3`,
		int64(applicant), key.Faculty, key.Specialty,
	)
	app, err := scanApplication(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find application by applicant and specialty: %w", err)
	}
	return app, nil
}

// FindByID locks the row when called inside a transaction so a concurrent
// status change waits for the first to commit.
func (s *PostgresStore) FindByID(ctx context.Context, id domain.ApplicationID) (*models.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`
	if _, inTx := tx.From(ctx); inTx {
		query += ` FOR UPDATE`
	}
	app, err := scanApplication(tx.Executor(ctx, s.db).QueryRowContext(ctx, query, int64(id)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find application by id: %w", err)
	}
	return app, nil
}

func (s *PostgresStore) Create(ctx context.Context, app *models.Application) error {
	var id int64
	err := tx.Executor(ctx, s.db).QueryRowContext(ctx, `
		INSERT INTO applications (applicant_id, faculty_code, specialty_code, status, evaluator_id, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		int64(app.ApplicantID),
		app.Specialty.Faculty,
		app.Specialty.Specialty,
		string(app.Status),
		nullUserID(app.EvaluatorID),
		app.SubmittedAt,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("insert application: %w", err)
	}
	app.ID = domain.ApplicationID(id)
	return nil
}

func (s *PostgresStore) AddScheduleSlots(ctx context.Context, id domain.ApplicationID, slots []models.ScheduleSlot) (int, error) {
	if len(slots) == 0 {
		return 0, nil
	}
	days := make([]string, len(slots))
	starts := make([]string, len(slots))
	ends := make([]string, len(slots))
	for i, slot := range slots {
		days[i] = string(slot.Day)
		starts[i] = slot.Start.String()
		ends[i] = slot.End.String()
	}

	res, err := tx.Executor(ctx, s.db).ExecContext(ctx, `
		INSERT INTO schedule_slots (application_id, day_of_week, start_time, end_time)
		SELECT $1, t.day, t.start_at::time, t.end_at::time
		FROM unnest($2::text[], $3::text[], $4::text[]) AS t(day, start_at, end_at)`,
		int64(id), pq.Array(days), pq.Array(starts), pq.Array(ends),
	)
	if err != nil {
		return 0, fmt.Errorf("insert schedule slots: %w", err)
	}
	return affected(res, "schedule slots")
}

func (s *PostgresStore) AddCourseInterests(ctx context.Context, id domain.ApplicationID, interests []models.CourseInterest) (int, error) {
	if len(interests) == 0 {
		return 0, nil
	}
	courseIDs := make([]int64, len(interests))
	for i, ci := range interests {
		courseIDs[i] = int64(ci.CourseID)
	}

	res, err := tx.Executor(ctx, s.db).ExecContext(ctx, `
		INSERT INTO course_interests (application_id, course_id)
		SELECT $1, unnest($2::bigint[])`,
		int64(id), pq.Array(courseIDs),
	)
	if err != nil {
		return 0, fmt.Errorf("insert course interests: %w", err)
	}
	return affected(res, "course interests")
}

func (s *PostgresStore) UpdateStatus(ctx context.Context, app *models.Application) error {
	res, err := tx.Executor(ctx, s.db).ExecContext(ctx, `
		UPDATE applications
		SET status = $2, evaluation_comment = $3, evaluated_at = $4
		WHERE id = $1`,
		int64(app.ID), string(app.Status), app.EvaluationComment, app.EvaluatedAt,
	)
	if err != nil {
		return fmt.Errorf("update application status: %w", err)
	}
	n, err := affected(res, "application status")
	if err != nil {
		return err
	}
	if n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

// List applies the filter in SQL so the count and the page agree.
func (s *PostgresStore) List(ctx context.Context, filter models.ListFilter) ([]*models.Application, int, error) {
	var (
		conds []string
		args  []any
	)
	if filter.Specialty != nil {
		args = append(args, filter.Specialty.Faculty, filter.Specialty.Specialty)
		conds = append(conds, fmt.Sprintf("faculty_code = $%d AND specialty_code = $%d", len(args)-1, len(args)))
	}
	if filter.ApplicantID != nil {
		args = append(args, int64(*filter.ApplicantID))
		conds = append(conds, fmt.Sprintf("applicant_id = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	exec := tx.Executor(ctx, s.db)
	var total int
	if err := exec.QueryRowContext(ctx, `SELECT COUNT(*) FROM applications`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count applications: %w", err)
	}
	if total == 0 {
		return []*models.Application{}, 0, nil
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = models.MaxPageSize
	}
	pageArgs := append(args, limit, filter.Offset)
	rows, err := exec.QueryContext(ctx,
		`SELECT `+applicationColumns+` FROM applications`+where+
			fmt.Sprintf(` ORDER BY submitted_at DESC, id DESC LIMIT $%d OFFSET $%d`, len(pageArgs)-1, len(pageArgs)),
		pageArgs...,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list applications: %w", err)
	}
	defer rows.Close()

	items := make([]*models.Application, 0, limit)
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan application: %w", err)
		}
		items = append(items, app)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate applications: %w", err)
	}
	return items, total, nil
}

func (s *PostgresStore) ScheduleSlotsFor(ctx context.Context, ids []domain.ApplicationID) (map[domain.ApplicationID][]models.ScheduleSlot, error) {
	out := make(map[domain.ApplicationID][]models.ScheduleSlot, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	rows, err := tx.Executor(ctx, s.db).QueryContext(ctx, `
		SELECT application_id, day_of_week, to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI')
		FROM schedule_slots
		WHERE application_id = ANY($1)
		ORDER BY application_id, id`,
		pq.Array(rawIDs(ids)),
	)
	if err != nil {
		return nil, fmt.Errorf("list schedule slots: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			appID      domain.ApplicationID
			day        string
			start, end string
		)
		if err := rows.Scan(&appID, &day, &start, &end); err != nil {
			return nil, fmt.Errorf("scan schedule slot: %w", err)
		}
		slot := models.ScheduleSlot{Day: models.Weekday(day)}
		if slot.Start, err = models.ParseClockTime(start); err != nil {
			return nil, fmt.Errorf("decode slot start %q: %w", start, err)
		}
		if slot.End, err = models.ParseClockTime(end); err != nil {
			return nil, fmt.Errorf("decode slot end %q: %w", end, err)
		}
		out[appID] = append(out[appID], slot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate schedule slots: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) CourseInterestsFor(ctx context.Context, ids []domain.ApplicationID) (map[domain.ApplicationID][]models.CourseInterest, error) {
	out := make(map[domain.ApplicationID][]models.CourseInterest, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	rows, err := tx.Executor(ctx, s.db).QueryContext(ctx, `
		SELECT ci.application_id, ci.course_id, c.name
		FROM course_interests ci
		JOIN courses c ON c.id = ci.course_id
		WHERE ci.application_id = ANY($1)
		ORDER BY ci.application_id, ci.id`,
		pq.Array(rawIDs(ids)),
	)
	if err != nil {
		return nil, fmt.Errorf("list course interests: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			appID domain.ApplicationID
			ci    models.CourseInterest
		)
		if err := rows.Scan(&appID, &ci.CourseID, &ci.CourseName); err != nil {
			return nil, fmt.Errorf("scan course interest: %w", err)
		}
		out[appID] = append(out[appID], ci)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate course interests: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanApplication(row rowScanner) (*models.Application, error) {
	var (
		app         models.Application
		status      string
		evaluatorID sql.NullInt64
		comment     sql.NullString
		evaluatedAt sql.NullTime
	)
	if err := row.Scan(
		&app.ID, &app.ApplicantID, &app.Specialty.Faculty, &app.Specialty.Specialty, &status,
		&evaluatorID, &comment, &app.SubmittedAt, &evaluatedAt,
	); err != nil {
		return nil, err
	}
	app.Status = models.Status(status)
	if evaluatorID.Valid {
		id := domain.UserID(evaluatorID.Int64)
		app.EvaluatorID = &id
	}
	if comment.Valid {
		c := comment.String
		app.EvaluationComment = &c
	}
	if evaluatedAt.Valid {
		t := evaluatedAt.Time
		app.EvaluatedAt = &t
	}
	return &app, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func nullUserID(id *domain.UserID) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*id), Valid: true}
}

func rawIDs(ids []domain.ApplicationID) []int64 {
	out := make([]int64, len(ids))
	for i, id := range ids {
		out[i] = int64(id)
	}
	return out
}

func affected(res sql.Result, what string) (int, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected for %s: %w", what, err)
	}
	return int(n), nil
}

const defaultTxTimeout = 5 * time.Second

// PostgresTx runs application units of work in one database transaction.
type PostgresTx struct {
	db      *sql.DB
	store   *PostgresStore
	timeout time.Duration
}

// NewPostgresTx builds a transaction runner. A zero timeout uses the
// default of five seconds; it applies only when ctx has no deadline.
func NewPostgresTx(db *sql.DB, store *PostgresStore, timeout time.Duration) *PostgresTx {
	if timeout <= 0 {
		timeout = defaultTxTimeout
	}
	return &PostgresTx{db: db, store: store, timeout: timeout}
}

func (t *PostgresTx) RunInTx(ctx context.Context, fn func(ctx context.Context, store service.Store) error) error {
	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
	}
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}
	return tx.Run(ctx, t.db, func(txCtx context.Context) error {
		return fn(txCtx, t.store)
	})
}
