package dto

import (
	"time"

	"gemmarket_backend/internal/models"
)

// ProfessionalDTO is the public professional profile.
type ProfessionalDTO struct {
	ID                  string            `json:"id"`
	UserID              string            `json:"user_id"`
	BusinessName        string            `json:"business_name"`
	BusinessDescription string            `json:"business_description,omitempty"`
	YearsOfExperience   *int              `json:"years_of_experience,omitempty"`
	Specializations     []string          `json:"specializations"`
	Website             string            `json:"website,omitempty"`
	SocialLinks         map[string]string `json:"social_links,omitempty"`
	Types               []string          `json:"types"`
	VerificationStatus  string            `json:"verification_status"`
	Rating              float64           `json:"rating"`
	ReviewCount         int               `json:"review_count"`
	CreatedAt           time.Time         `json:"created_at"`
}

// NewProfessionalDTO maps a professional model to its public view.
func NewProfessionalDTO(p *models.Professional) ProfessionalDTO {
	types := make([]string, 0, len(p.Types))
	for _, t := range p.Types {
		types = append(types, string(t.Name))
	}
	return ProfessionalDTO{
		ID:                  p.ID,
		UserID:              p.UserID,
		BusinessName:        p.BusinessName,
		BusinessDescription: p.BusinessDescription,
		YearsOfExperience:   p.YearsOfExperience,
		Specializations:     p.GetSpecializations(),
		Website:             p.Website,
		SocialLinks:         p.GetSocialLinks(),
		Types:               types,
		VerificationStatus:  string(p.VerificationStatus),
		Rating:              p.Rating,
		ReviewCount:         p.ReviewCount,
		CreatedAt:           p.CreatedAt,
	}
}

// UpdateProfessionalRequest edits the owner-mutable profile fields.
type UpdateProfessionalRequest struct {
	BusinessName        string            `json:"business_name" binding:"required"`
	BusinessDescription string            `json:"business_description"`
	YearsOfExperience   *int              `json:"years_of_experience" binding:"omitempty,min=0,max=100"`
	Specializations     []string          `json:"specializations"`
	Website             string            `json:"website" binding:"omitempty,url"`
	SocialLinks         map[string]string `json:"social_links"`
}

// ListProfessionalsQuery filters the professional list.
type ListProfessionalsQuery struct {
	Status string `form:"status" binding:"omitempty,is-verification-status"`
	Type   string `form:"type" binding:"omitempty,is-professional-type"`
	Search string `form:"search"`
}

// ProfessionalListResponse is a paginated professional list.
type ProfessionalListResponse struct {
	Items    []ProfessionalDTO `json:"items"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}
