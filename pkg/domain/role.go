package domain

import (
	"strings"

	dErrors "recruit/pkg/domain-errors"
)

// Role is the closed set of caller roles the identity collaborator can assert.
type Role string

const (
	RoleApplicant     Role = "APPLICANT"
	RoleDirector      Role = "DIRECTOR"
	RoleAdministrator Role = "ADMINISTRATOR"
	RoleDean          Role = "DEAN"
)

// ReviewScope describes which applications a role may review.
type ReviewScope int

const (
	// ScopeNone grants no reviewer visibility.
	ScopeNone ReviewScope = iota
	// ScopeSpecialty limits visibility to the reviewer's assigned specialty.
	ScopeSpecialty
	// ScopeAll grants institution-wide visibility.
	ScopeAll
)

var validRoles = map[Role]ReviewScope{
	RoleApplicant:     ScopeNone,
	RoleDirector:      ScopeSpecialty,
	RoleAdministrator: ScopeAll,
	RoleDean:          ScopeAll,
}

// ParseRole accepts role names case-insensitively.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := validRoles[r]; !ok {
		return "", dErrors.New(dErrors.CodeInvalidInput, "unknown role: "+s)
	}
	return r, nil
}

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	_, ok := validRoles[r]
	return ok
}

// Scope returns the review capability of the role. Unknown roles get ScopeNone.
func (r Role) Scope() ReviewScope {
	return validRoles[r]
}

// IsReviewer reports whether the role can review applications at all.
func (r Role) IsReviewer() bool {
	return r.Scope() != ScopeNone
}

func (r Role) String() string {
	return string(r)
}
