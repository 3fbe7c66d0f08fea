package handler

import (
	"fmt"
	"strings"

	"recruit/internal/application/models"
	"recruit/pkg/domain"
	dErrors "recruit/pkg/domain-errors"
)

const maxCommentLength = 2000

// SpecialtyRequest names a specialty by its faculty and specialty codes.
type SpecialtyRequest struct {
	Faculty   string `json:"faculty"`
	Specialty string `json:"specialty"`
}

// ScheduleSlotRequest is one weekly availability window, times as "HH:MM".
type ScheduleSlotRequest struct {
	Day   string `json:"day"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// SubmitApplicationRequest is the HTTP request body for POST /applications.
type SubmitApplicationRequest struct {
	Specialty     SpecialtyRequest      `json:"specialty"`
	ScheduleSlots []ScheduleSlotRequest `json:"schedule_slots"`
	CourseIDs     []int64               `json:"course_ids"`

	// Parsed values (populated by Validate)
	parsed models.SubmitRequest
}

// Validate parses the body into domain values.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *SubmitApplicationRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	key, err := domain.NewSpecialtyKey(r.Specialty.Faculty, r.Specialty.Specialty)
	if err != nil {
		return err
	}
	r.parsed.Specialty = key

	r.parsed.ScheduleSlots = make([]models.ScheduleSlot, 0, len(r.ScheduleSlots))
	for i, s := range r.ScheduleSlots {
		slot, err := parseSlot(s)
		if err != nil {
			return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("schedule_slots[%d]: %s", i, dErrors.MessageOf(err)))
		}
		r.parsed.ScheduleSlots = append(r.parsed.ScheduleSlots, slot)
	}

	r.parsed.CourseIDs = make([]domain.CourseID, 0, len(r.CourseIDs))
	for _, id := range r.CourseIDs {
		r.parsed.CourseIDs = append(r.parsed.CourseIDs, domain.CourseID(id))
	}
	return nil
}

// Parsed returns the domain request. The applicant comes from the caller.
func (r *SubmitApplicationRequest) Parsed() *models.SubmitRequest {
	req := r.parsed
	return &req
}

func parseSlot(s ScheduleSlotRequest) (models.ScheduleSlot, error) {
	day, err := models.ParseWeekday(s.Day)
	if err != nil {
		return models.ScheduleSlot{}, err
	}
	start, err := models.ParseClockTime(s.Start)
	if err != nil {
		return models.ScheduleSlot{}, err
	}
	end, err := models.ParseClockTime(s.End)
	if err != nil {
		return models.ScheduleSlot{}, err
	}
	slot := models.ScheduleSlot{Day: day, Start: start, End: end}
	if err := slot.Validate(); err != nil {
		return models.ScheduleSlot{}, err
	}
	return slot, nil
}

// UpdateStatusRequest is the HTTP request body for PATCH /applications/{id}/status.
type UpdateStatusRequest struct {
	Status  string  `json:"status"`
	Comment *string `json:"comment"`
}

func (r *UpdateStatusRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	r.Status = strings.TrimSpace(r.Status)
	if r.Status == "" {
		return dErrors.New(dErrors.CodeValidation, "status is required")
	}
	if _, err := models.ParseStatus(r.Status); err != nil {
		return err
	}
	if r.Comment != nil && len(*r.Comment) > maxCommentLength {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("comment must be at most %d characters", maxCommentLength))
	}
	return nil
}
