package application

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruit/internal/application/models"
	"recruit/internal/audit"
	"recruit/pkg/domain"
	dErrors "recruit/pkg/domain-errors"
)

func TestNewInMemory_SeededWorkflow(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewInMemory(Config{Policy: models.PolicyStrict}, slog.New(slog.NewTextHandler(io.Discard, nil)), reg)
	ctx := context.Background()

	result, err := m.Service.Submit(ctx, domain.Principal{UserID: 42, Role: domain.RoleApplicant}, &models.SubmitRequest{
		Specialty:     domain.SpecialtyKey{Faculty: "M", Specialty: "M1"},
		ScheduleSlots: []models.ScheduleSlot{{Day: models.Thursday, Start: 600, End: 720}},
		CourseIDs:     []domain.CourseID{20, 21},
	})
	require.NoError(t, err)
	require.NotNil(t, result.Application.EvaluatorID)
	assert.Equal(t, domain.UserID(600), *result.Application.EvaluatorID)
	assert.Equal(t, 2, result.InterestsWritten)

	dean := domain.Principal{UserID: 900, Role: domain.RoleDean}
	_, err = m.Service.UpdateStatus(ctx, dean, result.Application.ID, "REJECTED", nil)
	require.NoError(t, err)
	_, err = m.Service.UpdateStatus(ctx, dean, result.Application.ID, "PENDING", nil)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidState), "strict policy is applied")

	events, err := m.Audit.List(ctx, result.Application.ID)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, audit.ActionStatusChanged, events[1].Action)

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families, "service metrics are registered")
}
