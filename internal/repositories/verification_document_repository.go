package repositories

import (
	"errors"

	"gemmarket_backend/internal/models"

	"gorm.io/gorm"
)

var ErrDocumentNotFound = errors.New("verification document not found")

type VerificationDocumentRepository interface {
	FindByID(db *gorm.DB, id string) (*models.VerificationDocument, error)
	FindByProfessional(db *gorm.DB, professionalID string) ([]models.VerificationDocument, error)
	FindPending(db *gorm.DB, limit, offset int) ([]models.VerificationDocument, error)
	Create(db *gorm.DB, doc *models.VerificationDocument) error
	Update(db *gorm.DB, doc *models.VerificationDocument) error
	Delete(db *gorm.DB, id string) error
	CountVerified(db *gorm.DB, professionalID string) (int64, error)
}

type VerificationDocumentRepositoryImpl struct{}

func NewVerificationDocumentRepository() VerificationDocumentRepository {
	return &VerificationDocumentRepositoryImpl{}
}

func (r *VerificationDocumentRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.VerificationDocument, error) {
	var doc models.VerificationDocument
	err := db.First(&doc, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	return &doc, nil
}

func (r *VerificationDocumentRepositoryImpl) FindByProfessional(db *gorm.DB, professionalID string) ([]models.VerificationDocument, error) {
	var docs []models.VerificationDocument
	err := db.Where("professional_id = ?", professionalID).
		Order("created_at").
		Find(&docs).Error
	return docs, err
}

func (r *VerificationDocumentRepositoryImpl) FindPending(db *gorm.DB, limit, offset int) ([]models.VerificationDocument, error) {
	var docs []models.VerificationDocument
	err := db.Where("verified_at IS NULL").
		Order("created_at").
		Limit(limit).
		Offset(offset).
		Find(&docs).Error
	return docs, err
}

func (r *VerificationDocumentRepositoryImpl) Create(db *gorm.DB, doc *models.VerificationDocument) error {
	return db.Create(doc).Error
}

// Update persists review fields as a single write so verified_by and
// verified_at can never drift apart.
func (r *VerificationDocumentRepositoryImpl) Update(db *gorm.DB, doc *models.VerificationDocument) error {
	result := db.Model(doc).Updates(map[string]interface{}{
		"verification_notes": doc.VerificationNotes,
		"is_verified":        doc.IsVerified,
		"verified_by":        doc.VerifiedBy,
		"verified_at":        doc.VerifiedAt,
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDocumentNotFound
	}
	return nil
}

func (r *VerificationDocumentRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.VerificationDocument{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDocumentNotFound
	}
	return nil
}

func (r *VerificationDocumentRepositoryImpl) CountVerified(db *gorm.DB, professionalID string) (int64, error) {
	var count int64
	err := db.Model(&models.VerificationDocument{}).
		Where("professional_id = ? AND is_verified = ?", professionalID, true).
		Count(&count).Error
	return count, err
}
