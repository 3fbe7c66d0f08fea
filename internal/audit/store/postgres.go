package store

import (
	"context"
	"database/sql"
	"fmt"

	"recruit/internal/audit"
	"recruit/pkg/domain"
	"recruit/pkg/platform/tx"
)

// PostgresStore writes the application_audit table. Append joins the
// transaction carried in ctx.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Append(ctx context.Context, event audit.Event) error {
	_, err := tx.Executor(ctx, s.db).ExecContext(ctx, `
		INSERT INTO application_audit (application_id, action, actor_id, status, comment, request_id, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		int64(event.ApplicationID),
		string(event.Action),
		int64(event.ActorID),
		event.Status,
		event.Comment,
		nullString(event.RequestID),
		event.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListByApplication(ctx context.Context, id domain.ApplicationID) ([]audit.Event, error) {
	rows, err := tx.Executor(ctx, s.db).QueryContext(ctx, `
		SELECT application_id, action, actor_id, status, comment, request_id, occurred_at
		FROM application_audit
		WHERE application_id = $1
		ORDER BY occurred_at, id`,
		int64(id),
	)
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	defer rows.Close()

	var out []audit.Event
	for rows.Next() {
		var (
			e         audit.Event
			action    string
			comment   sql.NullString
			requestID sql.NullString
		)
		if err := rows.Scan(&e.ApplicationID, &action, &e.ActorID, &e.Status, &comment, &requestID, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		e.Action = audit.Action(action)
		if comment.Valid {
			c := comment.String
			e.Comment = &c
		}
		e.RequestID = requestID.String
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit events: %w", err)
	}
	return out, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
