package dto

import "gemmarket_backend/internal/registration"

// ProfessionalRegistrationRequest is the accumulated payload of the
// three-step registration form, submitted as one unit.
type ProfessionalRegistrationRequest struct {
	// Step 1: basic info
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email" binding:"omitempty,email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`

	// Step 2: professional info
	BusinessName        string   `json:"business_name"`
	Role                string   `json:"role" binding:"omitempty,is-professional-type"`
	BusinessDescription string   `json:"business_description"`
	YearsOfExperience   string   `json:"years_of_experience"`
	Specializations     []string `json:"specializations"`
	Website             string   `json:"website" binding:"omitempty,url"`

	// Step 3: verification
	HasAcceptedTerms bool `json:"has_accepted_terms"`
}

// ToFormData maps the request onto the workflow form state.
func (r *ProfessionalRegistrationRequest) ToFormData() registration.FormData {
	return registration.FormData{
		FirstName:           r.FirstName,
		LastName:            r.LastName,
		Email:               r.Email,
		Password:            r.Password,
		ConfirmPassword:     r.ConfirmPassword,
		BusinessName:        r.BusinessName,
		Role:                r.Role,
		BusinessDescription: r.BusinessDescription,
		YearsOfExperience:   r.YearsOfExperience,
		Specializations:     r.Specializations,
		Website:             r.Website,
		HasAcceptedTerms:    r.HasAcceptedTerms,
	}
}

// RegistrationStepError reports the step a failed transition stopped on
// together with the single visible error message.
type RegistrationStepError struct {
	Step    int    `json:"step"`
	Message string `json:"message"`
}
