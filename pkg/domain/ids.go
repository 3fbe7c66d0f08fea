package domain

import (
	"strconv"
	"strings"

	dErrors "recruit/pkg/domain-errors"
)

// Typed identifiers. Every identity in this service is a positive surrogate
// key; the zero value means "not set".
type (
	UserID        int64
	ApplicationID int64
	CourseID      int64
)

// maxIDLength bounds parsing input before strconv sees it.
const maxIDLength = 19

func (id UserID) String() string        { return strconv.FormatInt(int64(id), 10) }
func (id UserID) IsNil() bool           { return id <= 0 }
func (id ApplicationID) String() string { return strconv.FormatInt(int64(id), 10) }
func (id ApplicationID) IsNil() bool    { return id <= 0 }
func (id CourseID) String() string      { return strconv.FormatInt(int64(id), 10) }
func (id CourseID) IsNil() bool         { return id <= 0 }

// ParseUserID parses a positive user identifier from external input.
func ParseUserID(s string) (UserID, error) {
	v, err := parsePositive(s, "user id")
	return UserID(v), err
}

// ParseApplicationID parses a positive application identifier from external input.
func ParseApplicationID(s string) (ApplicationID, error) {
	v, err := parsePositive(s, "application id")
	return ApplicationID(v), err
}

// ParseCourseID parses a positive course identifier from external input.
func ParseCourseID(s string) (CourseID, error) {
	v, err := parsePositive(s, "course id")
	return CourseID(v), err
}

func parsePositive(s, name string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, dErrors.New(dErrors.CodeInvalidInput, name+" is required")
	}
	if len(s) > maxIDLength {
		return 0, dErrors.New(dErrors.CodeInvalidInput, name+" is too long")
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "invalid "+name)
	}
	if v <= 0 {
		return 0, dErrors.New(dErrors.CodeInvalidInput, name+" must be positive")
	}
	return v, nil
}
