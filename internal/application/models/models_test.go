package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruit/pkg/domain"
	dErrors "recruit/pkg/domain-errors"
)

func TestParseClockTime(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"08:00", "08:00", false},
		{"8:30", "08:30", false},
		{"23:59", "23:59", false},
		{"12:00:00", "12:00", false},
		{"12:00:30", "", true},
		{"24:00", "", true},
		{"12:60", "", true},
		{"12:5", "", true},
		{"noon", "", true},
		{"", "", true},
		{"-0:30", "", true},
		{"+8:00", "", true},
		{"008:00", "", true},
		{"08:+5", "", true},
		{"08: 5", "", true},
		{"08:005", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClockTime(tt.in)
			if tt.wantErr {
				assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestParseWeekday(t *testing.T) {
	for _, in := range []string{"Mon", "mon", "MONDAY", " monday "} {
		d, err := ParseWeekday(in)
		require.NoError(t, err, in)
		assert.Equal(t, Monday, d)
	}
	_, err := ParseWeekday("Funday")
	assert.Error(t, err)
	assert.False(t, Weekday("MONDAY").IsValid(), "only the short code is a stored value")
}

func TestScheduleSlot_Validate(t *testing.T) {
	ok := ScheduleSlot{Day: Monday, Start: 8 * 60, End: 12 * 60}
	assert.NoError(t, ok.Validate())

	equal := ScheduleSlot{Day: Monday, Start: 8 * 60, End: 8 * 60}
	assert.True(t, dErrors.HasCode(equal.Validate(), dErrors.CodeValidation))

	inverted := ScheduleSlot{Day: Friday, Start: 14 * 60, End: 9 * 60}
	assert.Error(t, inverted.Validate())

	badDay := ScheduleSlot{Day: "XYZ", Start: 0, End: 60}
	assert.Error(t, badDay.Validate())
}

func TestTransitionPolicy(t *testing.T) {
	all := []Status{StatusPending, StatusEvaluating, StatusApproved, StatusRejected}

	t.Run("permissive allows any valid target", func(t *testing.T) {
		for _, from := range all {
			for _, to := range all {
				assert.True(t, PolicyPermissive.Allows(from, to), "%s -> %s", from, to)
			}
		}
		assert.False(t, PolicyPermissive.Allows(StatusPending, Status("ARCHIVED")))
	})

	t.Run("strict is forward only", func(t *testing.T) {
		assert.True(t, PolicyStrict.Allows(StatusPending, StatusEvaluating))
		assert.True(t, PolicyStrict.Allows(StatusPending, StatusApproved))
		assert.True(t, PolicyStrict.Allows(StatusEvaluating, StatusRejected))
		assert.False(t, PolicyStrict.Allows(StatusEvaluating, StatusPending))
		assert.False(t, PolicyStrict.Allows(StatusPending, StatusPending))
		for _, to := range all {
			assert.False(t, PolicyStrict.Allows(StatusApproved, to))
			assert.False(t, PolicyStrict.Allows(StatusRejected, to))
		}
	})

	t.Run("parse", func(t *testing.T) {
		p, err := ParseTransitionPolicy("STRICT")
		require.NoError(t, err)
		assert.Equal(t, PolicyStrict, p)
		p, err = ParseTransitionPolicy("")
		require.NoError(t, err)
		assert.Equal(t, PolicyPermissive, p)
		_, err = ParseTransitionPolicy("lenient")
		assert.Error(t, err)
	})
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("approved")
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, s)
	assert.True(t, s.IsTerminal())

	_, err = ParseStatus("DONE")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
}

func TestSubmitRequest_Validate(t *testing.T) {
	valid := func() SubmitRequest {
		return SubmitRequest{
			ApplicantID:   1,
			Specialty:     domain.SpecialtyKey{Faculty: "S", Specialty: "S1"},
			ScheduleSlots: []ScheduleSlot{{Day: Monday, Start: 8 * 60, End: 12 * 60}},
			CourseIDs:     []domain.CourseID{101},
		}
	}

	r := valid()
	assert.NoError(t, r.Validate())

	cases := map[string]func(*SubmitRequest){
		"no slots":        func(r *SubmitRequest) { r.ScheduleSlots = nil },
		"no courses":      func(r *SubmitRequest) { r.CourseIDs = []domain.CourseID{} },
		"no specialty":    func(r *SubmitRequest) { r.Specialty = domain.SpecialtyKey{} },
		"no applicant":    func(r *SubmitRequest) { r.ApplicantID = 0 },
		"bad slot":        func(r *SubmitRequest) { r.ScheduleSlots[0].End = r.ScheduleSlots[0].Start },
		"non-positive id": func(r *SubmitRequest) { r.CourseIDs = []domain.CourseID{-3} },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			r := valid()
			mutate(&r)
			assert.True(t, dErrors.HasCode(r.Validate(), dErrors.CodeValidation))
		})
	}

	t.Run("normalize collapses repeated courses", func(t *testing.T) {
		r := valid()
		r.CourseIDs = []domain.CourseID{101, 102, 101}
		r.Normalize()
		assert.Equal(t, []domain.CourseID{101, 102}, r.CourseIDs)
	})
}

func TestPageRequest_Normalize(t *testing.T) {
	p := PageRequest{}
	require.NoError(t, p.Normalize())
	assert.Equal(t, PageRequest{Page: 1, PageSize: DefaultPageSize}, p)

	p = PageRequest{Page: 3, PageSize: 10}
	require.NoError(t, p.Normalize())
	assert.Equal(t, 20, p.Offset())

	assert.Error(t, (&PageRequest{Page: -1}).Normalize())
	assert.Error(t, (&PageRequest{PageSize: 101}).Normalize())
}

func TestApplication_VisibleTo(t *testing.T) {
	science := domain.SpecialtyKey{Faculty: "S", Specialty: "S1"}
	maths := domain.SpecialtyKey{Faculty: "M", Specialty: "M1"}
	app := NewApplication(5, science, nil, time.Now())

	assert.True(t, app.VisibleTo(domain.Principal{UserID: 5, Role: domain.RoleApplicant}, nil))
	assert.False(t, app.VisibleTo(domain.Principal{UserID: 6, Role: domain.RoleApplicant}, nil))
	assert.True(t, app.VisibleTo(domain.Principal{UserID: 1, Role: domain.RoleDean}, nil))
	assert.True(t, app.VisibleTo(domain.Principal{UserID: 2, Role: domain.RoleDirector}, &science))
	assert.False(t, app.VisibleTo(domain.Principal{UserID: 2, Role: domain.RoleDirector}, &maths))
	assert.False(t, app.VisibleTo(domain.Principal{UserID: 2, Role: domain.RoleDirector}, nil))
}

func TestApplication_ApplyStatus(t *testing.T) {
	app := NewApplication(5, domain.SpecialtyKey{Faculty: "S", Specialty: "S1"}, nil, time.Now())
	require.Equal(t, StatusPending, app.Status)

	now := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
	comment := "Welcome aboard"
	app.ApplyStatus(StatusApproved, &comment, now)

	assert.Equal(t, StatusApproved, app.Status)
	assert.Equal(t, &comment, app.EvaluationComment)
	require.NotNil(t, app.EvaluatedAt)
	assert.Equal(t, now, *app.EvaluatedAt)
}
