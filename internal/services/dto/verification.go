package dto

import (
	"time"

	"gemmarket_backend/internal/models"
)

// UploadDocumentRequest registers an evidence document for review.
type UploadDocumentRequest struct {
	DocumentType string `json:"document_type" binding:"required,oneof=business_license certification id_document portfolio other"`
	DocumentURL  string `json:"document_url" binding:"required,url"`
}

// ReviewDocumentRequest is the staff review decision for one document.
type ReviewDocumentRequest struct {
	Verified bool   `json:"verified"`
	Notes    string `json:"notes"`
}

// ReviewProfessionalRequest decides a professional's verification status.
type ReviewProfessionalRequest struct {
	Status string `json:"status" binding:"required,oneof=verified rejected"`
	Notes  string `json:"notes"`
}

// VerificationDocumentDTO is the API view of an evidence document.
type VerificationDocumentDTO struct {
	ID                string     `json:"id"`
	ProfessionalID    string     `json:"professional_id"`
	DocumentType      string     `json:"document_type"`
	DocumentURL       string     `json:"document_url"`
	VerificationNotes string     `json:"verification_notes,omitempty"`
	IsVerified        bool       `json:"is_verified"`
	VerifiedBy        *string    `json:"verified_by,omitempty"`
	VerifiedAt        *time.Time `json:"verified_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

// NewVerificationDocumentDTO maps a document model to its API view.
func NewVerificationDocumentDTO(d *models.VerificationDocument) VerificationDocumentDTO {
	return VerificationDocumentDTO{
		ID:                d.ID,
		ProfessionalID:    d.ProfessionalID,
		DocumentType:      d.DocumentType,
		DocumentURL:       d.DocumentURL,
		VerificationNotes: d.VerificationNotes,
		IsVerified:        d.IsVerified,
		VerifiedBy:        d.VerifiedBy,
		VerifiedAt:        d.VerifiedAt,
		CreatedAt:         d.CreatedAt,
	}
}

// VerificationStatusResponse summarizes where a professional stands in
// the verification lifecycle.
type VerificationStatusResponse struct {
	ProfessionalID    string                    `json:"professional_id"`
	Status            string                    `json:"status"`
	DocumentsTotal    int                       `json:"documents_total"`
	DocumentsVerified int                       `json:"documents_verified"`
	Documents         []VerificationDocumentDTO `json:"documents"`
}
