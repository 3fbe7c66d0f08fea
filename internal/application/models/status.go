package models

import (
	"strings"

	dErrors "recruit/pkg/domain-errors"
)

// Status is the evaluation state of an application.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusEvaluating Status = "EVALUATING"
	StatusApproved   Status = "APPROVED"
	StatusRejected   Status = "REJECTED"
)

// ParseStatus accepts status names case-insensitively.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToUpper(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", dErrors.New(dErrors.CodeValidation, "unknown status: "+s)
	}
	return st, nil
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusEvaluating, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether the status ends the evaluation.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

func (s Status) String() string {
	return string(s)
}

// TransitionPolicy decides which status changes reviewers may make.
type TransitionPolicy string

const (
	// PolicyPermissive lets a reviewer set any status from any status.
	PolicyPermissive TransitionPolicy = "permissive"
	// PolicyStrict only allows forward moves; terminal states are final.
	PolicyStrict TransitionPolicy = "strict"
)

var forwardTransitions = map[Status][]Status{
	StatusPending:    {StatusEvaluating, StatusApproved, StatusRejected},
	StatusEvaluating: {StatusApproved, StatusRejected},
}

// ParseTransitionPolicy maps a configuration value to a policy.
func ParseTransitionPolicy(s string) (TransitionPolicy, error) {
	switch p := TransitionPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case PolicyPermissive, PolicyStrict:
		return p, nil
	case "":
		return PolicyPermissive, nil
	}
	return "", dErrors.New(dErrors.CodeInvalidInput, "unknown transition policy: "+s)
}

// Allows reports whether moving from one status to another is permitted.
func (p TransitionPolicy) Allows(from, to Status) bool {
	if !to.IsValid() {
		return false
	}
	if p != PolicyStrict {
		return true
	}
	for _, next := range forwardTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
