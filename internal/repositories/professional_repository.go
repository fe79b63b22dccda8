package repositories

import (
	"errors"
	"time"

	"gemmarket_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrProfessionalNotFound      = errors.New("professional not found")
	ErrProfessionalAlreadyExists = errors.New("professional already exists for user")
)

type ProfessionalFilter struct {
	Status   models.VerificationStatus
	TypeName models.ProfessionalTypeName
	Search   string
	Page     int
	PageSize int
}

type ProfessionalRepository interface {
	FindByID(db *gorm.DB, id string) (*models.Professional, error)
	FindByUserID(db *gorm.DB, userID string) (*models.Professional, error)
	Create(db *gorm.DB, professional *models.Professional) error
	Update(db *gorm.DB, professional *models.Professional) error
	UpdateStatus(db *gorm.DB, id string, status models.VerificationStatus) error
	Delete(db *gorm.DB, id string) error
	AssignTypes(db *gorm.DB, professional *models.Professional, types []models.ProfessionalType) error
	FindWithFilter(db *gorm.DB, filter ProfessionalFilter) ([]models.Professional, int64, error)
	CountByStatus(db *gorm.DB, status models.VerificationStatus) (int64, error)
}

type ProfessionalRepositoryImpl struct{}

func NewProfessionalRepository() ProfessionalRepository {
	return &ProfessionalRepositoryImpl{}
}

func (r *ProfessionalRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Professional, error) {
	var professional models.Professional
	err := db.Preload("Types").Preload("VerificationDocuments").
		First(&professional, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfessionalNotFound
		}
		return nil, err
	}
	return &professional, nil
}

func (r *ProfessionalRepositoryImpl) FindByUserID(db *gorm.DB, userID string) (*models.Professional, error) {
	var professional models.Professional
	err := db.Preload("Types").Preload("VerificationDocuments").
		First(&professional, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfessionalNotFound
		}
		return nil, err
	}
	return &professional, nil
}

func (r *ProfessionalRepositoryImpl) Create(db *gorm.DB, professional *models.Professional) error {
	var existing models.Professional
	if err := db.Where("user_id = ?", professional.UserID).First(&existing).Error; err == nil {
		return ErrProfessionalAlreadyExists
	}

	return db.Create(professional).Error
}

func (r *ProfessionalRepositoryImpl) Update(db *gorm.DB, professional *models.Professional) error {
	result := db.Model(professional).Updates(map[string]interface{}{
		"business_name":        professional.BusinessName,
		"business_description": professional.BusinessDescription,
		"years_of_experience":  professional.YearsOfExperience,
		"specializations":      professional.Specializations,
		"website":              professional.Website,
		"social_links":         professional.SocialLinks,
		"updated_at":           time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfessionalNotFound
	}
	return nil
}

func (r *ProfessionalRepositoryImpl) UpdateStatus(db *gorm.DB, id string, status models.VerificationStatus) error {
	result := db.Model(&models.Professional{}).Where("id = ?", id).Updates(map[string]interface{}{
		"verification_status": status,
		"updated_at":          time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfessionalNotFound
	}
	return nil
}

func (r *ProfessionalRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Professional{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfessionalNotFound
	}
	return nil
}

func (r *ProfessionalRepositoryImpl) AssignTypes(db *gorm.DB, professional *models.Professional, types []models.ProfessionalType) error {
	return db.Model(professional).Association("Types").Replace(types)
}

func (r *ProfessionalRepositoryImpl) FindWithFilter(db *gorm.DB, filter ProfessionalFilter) ([]models.Professional, int64, error) {
	query := db.Model(&models.Professional{})

	if filter.Status != "" {
		query = query.Where("verification_status = ?", filter.Status)
	}
	if filter.Search != "" {
		query = query.Where("business_name ILIKE ?", "%"+filter.Search+"%")
	}
	if filter.TypeName != "" {
		query = query.
			Joins("JOIN professional_professional_types ppt ON ppt.professional_id = professionals.id").
			Joins("JOIN professional_types pt ON pt.id = ppt.professional_type_id").
			Where("pt.name = ?", filter.TypeName)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}

	var professionals []models.Professional
	err := query.Preload("Types").
		Order("created_at DESC").
		Limit(filter.PageSize).
		Offset((filter.Page - 1) * filter.PageSize).
		Find(&professionals).Error

	return professionals, total, err
}

func (r *ProfessionalRepositoryImpl) CountByStatus(db *gorm.DB, status models.VerificationStatus) (int64, error) {
	var count int64
	err := db.Model(&models.Professional{}).Where("verification_status = ?", status).Count(&count).Error
	return count, err
}
