package models

type VerificationStatus string
type RoleName string
type ProfessionalTypeName string

const (
	VerificationStatusPending  VerificationStatus = "pending"
	VerificationStatusVerified VerificationStatus = "verified"
	VerificationStatusRejected VerificationStatus = "rejected"

	RoleCustomer  RoleName = "customer"
	RoleDealer    RoleName = "dealer"
	RoleCutter    RoleName = "cutter"
	RoleAppraiser RoleName = "appraiser"
	RoleAdmin     RoleName = "admin"

	ProfessionalTypeDealer    ProfessionalTypeName = "dealer"
	ProfessionalTypeCutter    ProfessionalTypeName = "cutter"
	ProfessionalTypeAppraiser ProfessionalTypeName = "appraiser"
	ProfessionalTypeJeweler   ProfessionalTypeName = "jeweler"
)

// AllRoleNames lists the static role reference rows in seed order.
var AllRoleNames = []RoleName{
	RoleCustomer,
	RoleDealer,
	RoleCutter,
	RoleAppraiser,
	RoleAdmin,
}

// AllProfessionalTypeNames lists the professional type reference rows in seed order.
var AllProfessionalTypeNames = []ProfessionalTypeName{
	ProfessionalTypeDealer,
	ProfessionalTypeCutter,
	ProfessionalTypeAppraiser,
	ProfessionalTypeJeweler,
}

// ValidVerificationStatus reports whether s is one of the known states.
func ValidVerificationStatus(s VerificationStatus) bool {
	switch s {
	case VerificationStatusPending, VerificationStatusVerified, VerificationStatusRejected:
		return true
	default:
		return false
	}
}
