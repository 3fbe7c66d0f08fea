package audit_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruit/internal/audit"
	auditstore "recruit/internal/audit/store"
	"recruit/pkg/platform/tx"
)

func TestPublisher_EmitStampsTimestamp(t *testing.T) {
	store := auditstore.NewInMemory()
	p := audit.NewPublisher(store)
	ctx := context.Background()

	require.NoError(t, p.Emit(ctx, audit.Event{ApplicationID: 1, Action: audit.ActionSubmitted, ActorID: 7, Status: "PENDING"}))
	require.NoError(t, p.Emit(ctx, audit.Event{ApplicationID: 2, Action: audit.ActionSubmitted, ActorID: 8, Status: "PENDING"}))

	events, err := p.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, audit.ActionSubmitted, events[0].Action)
	assert.WithinDuration(t, time.Now(), events[0].Timestamp, time.Second)
}

func TestInMemory_Truncate(t *testing.T) {
	store := auditstore.NewInMemory()
	ctx := context.Background()
	_ = store.Append(ctx, audit.Event{ApplicationID: 1})
	_ = store.Append(ctx, audit.Event{ApplicationID: 1})

	store.Truncate(1)
	assert.Equal(t, 1, store.Len())
}

func TestPostgresStore_AppendJoinsTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	at := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	comment := "looks good"

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO application_audit")).
		WithArgs(int64(11), "application_status_changed", int64(3), "APPROVED", comment, sqlmock.AnyArg(), at).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	store := auditstore.NewPostgres(db)
	err = tx.Run(context.Background(), db, func(ctx context.Context) error {
		return store.Append(ctx, audit.Event{
			ApplicationID: 11,
			Action:        audit.ActionStatusChanged,
			ActorID:       3,
			Status:        "APPROVED",
			Comment:       &comment,
			RequestID:     "req-1",
			Timestamp:     at,
		})
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
