package domain

import (
	"strings"

	dErrors "recruit/pkg/domain-errors"
)

// SpecialtyKey identifies an academic specialty inside a faculty.
// Both codes are required; the pair is the natural key across catalog,
// reviewer assignments and applications.
type SpecialtyKey struct {
	Faculty   string `json:"faculty"`
	Specialty string `json:"specialty"`
}

const maxCodeLength = 16

// NewSpecialtyKey trims and validates both codes.
func NewSpecialtyKey(faculty, specialty string) (SpecialtyKey, error) {
	key := SpecialtyKey{
		Faculty:   strings.TrimSpace(faculty),
		Specialty: strings.TrimSpace(specialty),
	}
	if err := key.Validate(); err != nil {
		return SpecialtyKey{}, err
	}
	return key, nil
}

// ParseSpecialtyKey parses the "FACULTY/SPECIALTY" form.
func ParseSpecialtyKey(s string) (SpecialtyKey, error) {
	faculty, specialty, ok := strings.Cut(s, "/")
	if !ok {
		return SpecialtyKey{}, dErrors.New(dErrors.CodeInvalidInput, "specialty key must be FACULTY/SPECIALTY")
	}
	return NewSpecialtyKey(faculty, specialty)
}

// Validate checks that both codes are present and bounded.
func (k SpecialtyKey) Validate() error {
	if k.Faculty == "" {
		return dErrors.New(dErrors.CodeValidation, "faculty code is required")
	}
	if k.Specialty == "" {
		return dErrors.New(dErrors.CodeValidation, "specialty code is required")
	}
	if len(k.Faculty) > maxCodeLength || len(k.Specialty) > maxCodeLength {
		return dErrors.New(dErrors.CodeValidation, "specialty codes must be at most 16 characters")
	}
	if strings.ContainsAny(k.Faculty+k.Specialty, "/ \t\n") {
		return dErrors.New(dErrors.CodeValidation, "specialty codes must not contain separators or whitespace")
	}
	return nil
}

// IsZero reports whether the key is unset.
func (k SpecialtyKey) IsZero() bool {
	return k.Faculty == "" && k.Specialty == ""
}

func (k SpecialtyKey) String() string {
	return k.Faculty + "/" + k.Specialty
}
