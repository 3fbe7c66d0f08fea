package handler

import (
	"time"

	"recruit/internal/application/models"
)

// SpecialtyResponse identifies a specialty.
type SpecialtyResponse struct {
	Faculty   string `json:"faculty"`
	Specialty string `json:"specialty"`
}

type ScheduleSlotResponse struct {
	Day   string `json:"day"`
	Start string `json:"start"`
	End   string `json:"end"`
}

type CourseInterestResponse struct {
	CourseID   int64  `json:"course_id"`
	CourseName string `json:"course_name,omitempty"`
}

// ApplicationResponse is an application with its sub-records.
type ApplicationResponse struct {
	ID                int64                    `json:"id"`
	ApplicantID       int64                    `json:"applicant_id"`
	Specialty         SpecialtyResponse        `json:"specialty"`
	Status            string                   `json:"status"`
	EvaluatorID       *int64                   `json:"evaluator_id"`
	EvaluationComment *string                  `json:"evaluation_comment"`
	SubmittedAt       time.Time                `json:"submitted_at"`
	EvaluatedAt       *time.Time               `json:"evaluated_at"`
	ScheduleSlots     []ScheduleSlotResponse   `json:"schedule_slots"`
	CourseInterests   []CourseInterestResponse `json:"course_interests"`
}

// SubmitResponse is the HTTP response for POST /applications.
type SubmitResponse struct {
	Application      *ApplicationResponse `json:"application"`
	SlotsWritten     int                  `json:"slots_written"`
	InterestsWritten int                  `json:"interests_written"`
}

type ExistingResponse struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

// EligibilityResponse is the HTTP response for GET /applications/eligibility.
type EligibilityResponse struct {
	CanApply bool              `json:"can_apply"`
	Existing *ExistingResponse `json:"existing,omitempty"`
}

// PageResponse is the listing envelope.
type PageResponse struct {
	Items    []*ApplicationResponse `json:"items"`
	Total    int                    `json:"total"`
	Page     int                    `json:"page"`
	PageSize int                    `json:"page_size"`
}

// FromApplication converts a domain application to its HTTP form.
func FromApplication(app *models.Application) *ApplicationResponse {
	resp := &ApplicationResponse{
		ID:          int64(app.ID),
		ApplicantID: int64(app.ApplicantID),
		Specialty: SpecialtyResponse{
			Faculty:   app.Specialty.Faculty,
			Specialty: app.Specialty.Specialty,
		},
		Status:            app.Status.String(),
		EvaluationComment: app.EvaluationComment,
		SubmittedAt:       app.SubmittedAt,
		EvaluatedAt:       app.EvaluatedAt,
		ScheduleSlots:     make([]ScheduleSlotResponse, 0, len(app.ScheduleSlots)),
		CourseInterests:   make([]CourseInterestResponse, 0, len(app.CourseInterests)),
	}
	if app.EvaluatorID != nil {
		id := int64(*app.EvaluatorID)
		resp.EvaluatorID = &id
	}
	for _, s := range app.ScheduleSlots {
		resp.ScheduleSlots = append(resp.ScheduleSlots, ScheduleSlotResponse{
			Day:   string(s.Day),
			Start: s.Start.String(),
			End:   s.End.String(),
		})
	}
	for _, ci := range app.CourseInterests {
		resp.CourseInterests = append(resp.CourseInterests, CourseInterestResponse{
			CourseID:   int64(ci.CourseID),
			CourseName: ci.CourseName,
		})
	}
	return resp
}

func FromSubmitResult(result *models.SubmitResult) *SubmitResponse {
	return &SubmitResponse{
		Application:      FromApplication(result.Application),
		SlotsWritten:     result.SlotsWritten,
		InterestsWritten: result.InterestsWritten,
	}
}

func FromEligibility(e *models.Eligibility) *EligibilityResponse {
	resp := &EligibilityResponse{CanApply: e.CanApply}
	if e.Existing != nil {
		resp.Existing = &ExistingResponse{ID: int64(e.Existing.ID), Status: e.Existing.Status.String()}
	}
	return resp
}

func FromPage(page *models.Page) *PageResponse {
	items := make([]*ApplicationResponse, 0, len(page.Items))
	for _, app := range page.Items {
		items = append(items, FromApplication(app))
	}
	return &PageResponse{Items: items, Total: page.Total, Page: page.Page, PageSize: page.PageSize}
}
