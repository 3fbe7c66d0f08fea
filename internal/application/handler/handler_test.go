package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruit/internal/application/models"
	"recruit/internal/application/service"
	"recruit/internal/application/store"
	"recruit/internal/audit"
	auditStore "recruit/internal/audit/store"
	catalogStore "recruit/internal/catalog/store"
	jwttoken "recruit/internal/jwt_token"
	"recruit/internal/platform/middleware"
	"recruit/internal/reviewer"
	reviewerModels "recruit/internal/reviewer/models"
	reviewerStore "recruit/internal/reviewer/store"
	"recruit/pkg/domain"
	dErrors "recruit/pkg/domain-errors"
	"recruit/pkg/testutil"
)

type testEnv struct {
	router http.Handler
	tokens *jwttoken.JWTService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	catalog := catalogStore.NewInMemory()
	catalogStore.SeedDevelopmentCatalog(catalog)

	physics := domain.SpecialtyKey{Faculty: "S", Specialty: "S1"}
	maths := domain.SpecialtyKey{Faculty: "M", Specialty: "M1"}
	reviewers := reviewerStore.NewInMemory()
	reviewers.Save(reviewerModels.Reviewer{ID: 500, Role: domain.RoleDirector, Specialty: &physics, Active: true})
	reviewers.Save(reviewerModels.Reviewer{ID: 600, Role: domain.RoleDirector, Specialty: &maths, Active: true})

	apps := store.NewInMemory()
	events := auditStore.NewInMemory()
	svc := service.New(apps, store.NewInMemoryTx(apps, events), reviewer.NewDirectory(reviewers), catalog,
		service.WithLogger(logger),
		service.WithAuditPublisher(audit.NewPublisher(events)),
	)

	tokens := jwttoken.NewJWTService("test-key", "recruit-identity", "recruit")
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.ContentTypeJSON)
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(jwttoken.NewJWTServiceAdapter(tokens), logger))
		New(svc, logger).Register(r)
	})
	return &testEnv{router: r, tokens: tokens}
}

func (e *testEnv) do(t *testing.T, method, path string, userID domain.UserID, role domain.Role, body any) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != nil {
		req = testutil.NewJSONRequest(t, method, path, body)
	} else {
		req = testutil.NewRequest(t, method, path)
	}
	token, err := e.tokens.GenerateAccessToken(userID, role, nil, time.Minute)
	require.NoError(t, err)
	testutil.WithBearer(req, token)
	return testutil.DoRequest(e.router, req)
}

func submitBody(faculty, specialty string, courses ...int64) map[string]any {
	return map[string]any{
		"specialty":      map[string]string{"faculty": faculty, "specialty": specialty},
		"schedule_slots": []map[string]string{{"day": "Mon", "start": "08:00", "end": "12:00"}},
		"course_ids":     courses,
	}
}

func TestSubmitAndFetch(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/applications", 42, domain.RoleApplicant, submitBody("S", "S1", 10))
	testutil.AssertStatus(t, rec, http.StatusCreated)

	created := testutil.UnmarshalResponse[SubmitResponse](t, rec)
	assert.Equal(t, "PENDING", created.Application.Status)
	assert.Equal(t, 1, created.SlotsWritten)
	assert.Equal(t, 1, created.InterestsWritten)
	assert.Equal(t, []ScheduleSlotResponse{{Day: "MON", Start: "08:00", End: "12:00"}}, created.Application.ScheduleSlots)
	require.NotNil(t, created.Application.EvaluatorID)
	assert.Equal(t, int64(500), *created.Application.EvaluatorID)

	path := fmt.Sprintf("/applications/%d", created.Application.ID)
	rec = env.do(t, http.MethodGet, path, 42, domain.RoleApplicant, nil)
	testutil.AssertStatusOK(t, rec)
	fetched := testutil.UnmarshalResponse[ApplicationResponse](t, rec)
	assert.Equal(t, created.Application.ID, fetched.ID)
	assert.Len(t, fetched.CourseInterests, 1)

	rec = env.do(t, http.MethodGet, path, 43, domain.RoleApplicant, nil)
	testutil.AssertStatusAndError(t, rec, http.StatusForbidden, "forbidden")

	rec = env.do(t, http.MethodPost, "/applications", 42, domain.RoleApplicant, submitBody("S", "S1", 11))
	testutil.AssertStatusAndError(t, rec, http.StatusConflict, "conflict")
}

func TestSubmitValidation(t *testing.T) {
	env := newTestEnv(t)

	cases := []struct {
		name string
		body any
		code string
	}{
		{"empty slots", map[string]any{
			"specialty":      map[string]string{"faculty": "S", "specialty": "S1"},
			"schedule_slots": []any{},
			"course_ids":     []int64{10},
		}, "validation_error"},
		{"bad day", map[string]any{
			"specialty":      map[string]string{"faculty": "S", "specialty": "S1"},
			"schedule_slots": []map[string]string{{"day": "Someday", "start": "08:00", "end": "12:00"}},
			"course_ids":     []int64{10},
		}, "validation_error"},
		{"end before start", map[string]any{
			"specialty":      map[string]string{"faculty": "S", "specialty": "S1"},
			"schedule_slots": []map[string]string{{"day": "TUE", "start": "12:00", "end": "08:00"}},
			"course_ids":     []int64{10},
		}, "validation_error"},
		{"missing specialty", submitBody("", "S1", 10), "validation_error"},
		{"unknown course", submitBody("S", "S1", 999), "validation_error"},
		{"course of another specialty", submitBody("S", "S1", 20), "validation_error"},
		{"unknown field", map[string]any{"specialty": map[string]string{"faculty": "S", "specialty": "S1"}, "extra": true}, "bad_request"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := env.do(t, http.MethodPost, "/applications", 42, domain.RoleApplicant, tc.body)
			testutil.AssertStatusAndError(t, rec, http.StatusBadRequest, tc.code)
		})
	}

	t.Run("reviewers cannot submit", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/applications", 500, domain.RoleDirector, submitBody("S", "S1", 10))
		testutil.AssertStatusAndError(t, rec, http.StatusForbidden, "forbidden")
	})
}

func TestEligibility(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/applications/eligibility?faculty=S&specialty=S1", 42, domain.RoleApplicant, nil)
	testutil.AssertStatusOK(t, rec)
	assert.Equal(t, &EligibilityResponse{CanApply: true}, testutil.UnmarshalResponse[EligibilityResponse](t, rec))

	rec = env.do(t, http.MethodPost, "/applications", 42, domain.RoleApplicant, submitBody("S", "S1", 10))
	testutil.AssertStatus(t, rec, http.StatusCreated)

	rec = env.do(t, http.MethodGet, "/applications/eligibility?faculty=S&specialty=S1", 42, domain.RoleApplicant, nil)
	testutil.AssertStatusOK(t, rec)
	got := testutil.UnmarshalResponse[EligibilityResponse](t, rec)
	assert.False(t, got.CanApply)
	require.NotNil(t, got.Existing)
	assert.Equal(t, "PENDING", got.Existing.Status)

	rec = env.do(t, http.MethodGet, "/applications/eligibility?faculty=S", 42, domain.RoleApplicant, nil)
	testutil.AssertStatusAndError(t, rec, http.StatusBadRequest, "validation_error")
}

func TestListScoping(t *testing.T) {
	env := newTestEnv(t)
	for i, body := range []any{submitBody("S", "S1", 10), submitBody("M", "M1", 20), submitBody("S", "S1", 11)} {
		rec := env.do(t, http.MethodPost, "/applications", domain.UserID(i+1), domain.RoleApplicant, body)
		testutil.AssertStatus(t, rec, http.StatusCreated)
	}

	list := func(userID domain.UserID, role domain.Role, query string) *PageResponse {
		rec := env.do(t, http.MethodGet, "/applications"+query, userID, role, nil)
		testutil.AssertStatusOK(t, rec)
		return testutil.UnmarshalResponse[PageResponse](t, rec)
	}

	assert.Equal(t, 3, list(1, domain.RoleDean, "").Total)
	assert.Equal(t, 3, list(2, domain.RoleAdministrator, "?status=pending").Total)
	assert.Equal(t, 0, list(2, domain.RoleAdministrator, "?status=APPROVED").Total)

	maths := list(600, domain.RoleDirector, "")
	require.Equal(t, 1, maths.Total)
	assert.Equal(t, "M1", maths.Items[0].Specialty.Specialty)

	applicant := list(1, domain.RoleApplicant, "")
	assert.Equal(t, 0, applicant.Total)
	assert.NotNil(t, applicant.Items)

	paged := list(1, domain.RoleDean, "?page=2&page_size=2")
	assert.Equal(t, 3, paged.Total)
	assert.Len(t, paged.Items, 1)
	assert.Equal(t, 2, paged.Page)

	rec := env.do(t, http.MethodGet, "/applications/mine", 2, domain.RoleApplicant, nil)
	testutil.AssertStatusOK(t, rec)
	mine := testutil.UnmarshalResponse[PageResponse](t, rec)
	require.Equal(t, 1, mine.Total)
	assert.Equal(t, int64(2), mine.Items[0].ApplicantID)

	for _, q := range []string{"?page=0", "?page_size=101", "?page=abc", "?status=ARCHIVED"} {
		rec := env.do(t, http.MethodGet, "/applications"+q, 1, domain.RoleDean, nil)
		testutil.AssertStatusAndError(t, rec, http.StatusBadRequest, "validation_error")
	}
}

func TestUpdateStatus(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodPost, "/applications", 42, domain.RoleApplicant, submitBody("S", "S1", 10))
	testutil.AssertStatus(t, rec, http.StatusCreated)
	id := testutil.UnmarshalResponse[SubmitResponse](t, rec).Application.ID
	path := fmt.Sprintf("/applications/%d/status", id)

	rec = env.do(t, http.MethodPatch, path, 600, domain.RoleDirector, map[string]any{"status": "APPROVED"})
	testutil.AssertStatusAndError(t, rec, http.StatusForbidden, "forbidden")

	rec = env.do(t, http.MethodPatch, path, 500, domain.RoleDirector, map[string]any{"status": "APPROVED", "comment": "Welcome aboard"})
	testutil.AssertStatusOK(t, rec)
	updated := testutil.UnmarshalResponse[ApplicationResponse](t, rec)
	assert.Equal(t, "APPROVED", updated.Status)
	require.NotNil(t, updated.EvaluationComment)
	assert.Equal(t, "Welcome aboard", *updated.EvaluationComment)
	assert.NotNil(t, updated.EvaluatedAt)

	rec = env.do(t, http.MethodPatch, "/applications/9999/status", 1, domain.RoleDean, map[string]any{"status": "APPROVED"})
	testutil.AssertStatusAndError(t, rec, http.StatusNotFound, "not_found")

	rec = env.do(t, http.MethodPatch, path, 1, domain.RoleDean, map[string]any{"status": "ARCHIVED"})
	testutil.AssertStatusAndError(t, rec, http.StatusBadRequest, "validation_error")

	rec = env.do(t, http.MethodPatch, "/applications/abc/status", 1, domain.RoleDean, map[string]any{"status": "APPROVED"})
	testutil.AssertStatusAndError(t, rec, http.StatusBadRequest, "invalid_input")
}

func TestAuthentication(t *testing.T) {
	env := newTestEnv(t)

	rec := testutil.DoRequest(env.router, testutil.NewRequest(t, http.MethodGet, "/applications"))
	testutil.AssertStatusAndError(t, rec, http.StatusUnauthorized, "unauthorized")

	req := testutil.NewRequest(t, http.MethodGet, "/applications")
	testutil.WithBearer(req, "not-a-token")
	rec = testutil.DoRequest(env.router, req)
	testutil.AssertStatusAndError(t, rec, http.StatusUnauthorized, "unauthorized")

	other := jwttoken.NewJWTService("other-key", "recruit-identity", "recruit")
	token, err := other.GenerateAccessToken(1, domain.RoleDean, nil, time.Minute)
	require.NoError(t, err)
	req = testutil.NewRequest(t, http.MethodGet, "/applications")
	testutil.WithBearer(req, token)
	rec = testutil.DoRequest(env.router, req)
	testutil.AssertStatusAndError(t, rec, http.StatusUnauthorized, "unauthorized")
}

type fakeService struct {
	Service
	err error
}

func (f fakeService) ListMine(context.Context, domain.Principal, models.PageRequest) (*models.Page, error) {
	return nil, f.err
}

func TestInternalErrorsAreHiddenByDefault(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	svc := fakeService{err: dErrors.Wrap(errors.New("pq: connection refused"), dErrors.CodeInternal, "failed to list applications")}
	p := domain.Principal{UserID: 1, Role: domain.RoleApplicant}

	for _, expose := range []bool{false, true} {
		r := chi.NewRouter()
		New(svc, logger, WithInternalErrors(expose)).Register(r)
		rec := testutil.DoRequest(r, testutil.WithPrincipal(testutil.NewRequest(t, http.MethodGet, "/applications/mine"), p))

		testutil.AssertStatus(t, rec, http.StatusInternalServerError)
		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "internal_error", body["error"])
		if expose {
			assert.Contains(t, body["error_description"], "connection refused")
		} else {
			assert.NotContains(t, body, "error_description")
		}
	}
}
