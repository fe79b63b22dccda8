package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// Professional is the extended business profile owned by exactly one user.
// It is created in the pending state and moves to verified or rejected
// after staff review of the uploaded documents.
type Professional struct {
	BaseModel
	UserID              string `gorm:"type:uuid;uniqueIndex;not null"`
	BusinessName        string `gorm:"not null"`
	BusinessDescription string
	YearsOfExperience   *int           // nil means unspecified, never zero
	Specializations     datatypes.JSON `gorm:"type:jsonb"` // ["sapphire", "emerald"]
	Website             string
	SocialLinks         datatypes.JSON     `gorm:"type:jsonb"` // {"instagram": "..."}
	VerificationStatus  VerificationStatus `gorm:"type:varchar(20);default:'pending'"`
	Rating              float64            `gorm:"default:0"`
	ReviewCount         int                `gorm:"default:0"`

	// Relations
	Types                 []ProfessionalType     `gorm:"many2many:professional_professional_types;constraint:OnDelete:CASCADE"`
	VerificationDocuments []VerificationDocument `gorm:"foreignKey:ProfessionalID;constraint:OnDelete:CASCADE"`
}

// ProfessionalType is a reference list (dealer/cutter/appraiser/jeweler).
type ProfessionalType struct {
	ID   uint                 `gorm:"primaryKey"`
	Name ProfessionalTypeName `gorm:"type:varchar(20);uniqueIndex;not null"`
}

// GetSpecializations returns the specialization set as a slice of strings.
func (p *Professional) GetSpecializations() []string {
	var specializations []string
	if len(p.Specializations) > 0 {
		_ = json.Unmarshal(p.Specializations, &specializations)
	}
	return specializations
}

// SetSpecializations stores the specialization set.
func (p *Professional) SetSpecializations(specializations []string) {
	data, _ := json.Marshal(specializations)
	p.Specializations = datatypes.JSON(data)
}

// GetSocialLinks returns the social links as a map.
func (p *Professional) GetSocialLinks() map[string]string {
	links := map[string]string{}
	if len(p.SocialLinks) > 0 {
		_ = json.Unmarshal(p.SocialLinks, &links)
	}
	return links
}

// SetSocialLinks stores the social links map.
func (p *Professional) SetSocialLinks(links map[string]string) {
	data, _ := json.Marshal(links)
	p.SocialLinks = datatypes.JSON(data)
}
