package domain

// Principal is the resolved caller identity handed to this service by the
// identity collaborator. Specialty is only a hint carried by the token; the
// reviewer directory stays authoritative for scoping.
type Principal struct {
	UserID    UserID
	Role      Role
	Specialty *SpecialtyKey
}

// IsAuthenticated reports whether the principal carries a usable identity.
func (p Principal) IsAuthenticated() bool {
	return !p.UserID.IsNil() && p.Role.IsValid()
}
