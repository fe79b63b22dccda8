package models

import "time"

// VerificationDocument is an evidence artifact uploaded by a professional
// and reviewed by staff. VerifiedBy and VerifiedAt are set together when a
// reviewer marks the document verified; both stay empty until then.
type VerificationDocument struct {
	BaseModel
	ProfessionalID    string `gorm:"type:uuid;not null;index"`
	DocumentType      string `gorm:"type:varchar(50);not null"`
	DocumentURL       string `gorm:"not null"`
	VerificationNotes string
	IsVerified        bool    `gorm:"default:false"`
	VerifiedBy        *string `gorm:"type:uuid"`
	VerifiedAt        *time.Time

	Verifier *User `gorm:"foreignKey:VerifiedBy"`
}

// Reviewed reports whether the document has gone through staff review.
func (d *VerificationDocument) Reviewed() bool {
	return d.VerifiedAt != nil
}

// MarkVerified records the reviewing user and timestamp as a single unit.
func (d *VerificationDocument) MarkVerified(reviewerID string, at time.Time, notes string) {
	d.IsVerified = true
	d.VerifiedBy = &reviewerID
	d.VerifiedAt = &at
	if notes != "" {
		d.VerificationNotes = notes
	}
}
