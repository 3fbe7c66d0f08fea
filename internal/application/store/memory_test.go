package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruit/internal/application/models"
	"recruit/internal/application/service"
	"recruit/internal/audit"
	auditStore "recruit/internal/audit/store"
	"recruit/pkg/domain"
	"recruit/pkg/platform/sentinel"
)

var physics = domain.SpecialtyKey{Faculty: "S", Specialty: "S1"}

func TestInMemory_UniquePerApplicantAndSpecialty(t *testing.T) {
	s := NewInMemory()
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, s.Create(ctx, models.NewApplication(42, physics, nil, now)))
	assert.ErrorIs(t, s.Create(ctx, models.NewApplication(42, physics, nil, now)), sentinel.ErrConflict)
	require.NoError(t, s.Create(ctx, models.NewApplication(43, physics, nil, now)))
	require.NoError(t, s.Create(ctx, models.NewApplication(42, domain.SpecialtyKey{Faculty: "M", Specialty: "M1"}, nil, now)))

	apps, _, _ := s.Count()
	assert.Equal(t, 3, apps)
}

func TestInMemory_ReturnsCopies(t *testing.T) {
	s := NewInMemory()
	ctx := context.Background()
	app := models.NewApplication(42, physics, nil, time.Now())
	require.NoError(t, s.Create(ctx, app))

	got, err := s.FindByID(ctx, app.ID)
	require.NoError(t, err)
	got.Status = models.StatusApproved

	again, err := s.FindByID(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, again.Status)
}

func TestInMemory_SubRecordsRequireParent(t *testing.T) {
	s := NewInMemory()
	_, err := s.AddScheduleSlots(context.Background(), 99, []models.ScheduleSlot{{Day: models.Monday, Start: 60, End: 120}})
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
	_, err = s.AddCourseInterests(context.Background(), 99, []models.CourseInterest{{CourseID: 1}})
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
	assert.ErrorIs(t, s.UpdateStatus(context.Background(), &models.Application{ID: 99}), sentinel.ErrNotFound)
}

func TestInMemoryTx_RestoresStateAndJournals(t *testing.T) {
	s := NewInMemory()
	events := auditStore.NewInMemory()
	runner := NewInMemoryTx(s, events)
	ctx := context.Background()

	require.NoError(t, runner.RunInTx(ctx, func(ctx context.Context, st service.Store) error {
		return st.Create(ctx, models.NewApplication(1, physics, nil, time.Now()))
	}))
	require.NoError(t, events.Append(ctx, audit.Event{ApplicationID: 1, Action: audit.ActionSubmitted}))

	boom := errors.New("boom")
	err := runner.RunInTx(ctx, func(ctx context.Context, st service.Store) error {
		app := models.NewApplication(2, physics, nil, time.Now())
		if err := st.Create(ctx, app); err != nil {
			return err
		}
		if _, err := st.AddScheduleSlots(ctx, app.ID, []models.ScheduleSlot{{Day: models.Friday, Start: 60, End: 120}}); err != nil {
			return err
		}
		if err := events.Append(ctx, audit.Event{ApplicationID: app.ID, Action: audit.ActionSubmitted}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	apps, slots, interests := s.Count()
	assert.Equal(t, []int{1, 0, 0}, []int{apps, slots, interests})
	assert.Equal(t, 1, events.Len())

	// the id sequence rolls back with the unit
	app := models.NewApplication(3, physics, nil, time.Now())
	require.NoError(t, s.Create(ctx, app))
	assert.Equal(t, domain.ApplicationID(2), app.ID)
}
