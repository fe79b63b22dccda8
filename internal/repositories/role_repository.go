package repositories

import (
	"errors"

	"gemmarket_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrRoleNotFound             = errors.New("role not found")
	ErrProfessionalTypeNotFound = errors.New("professional type not found")
)

// RoleRepository serves the static reference tables: roles, permissions
// and professional types.
type RoleRepository interface {
	FindByName(db *gorm.DB, name models.RoleName) (*models.Role, error)
	FindAll(db *gorm.DB) ([]models.Role, error)
	FindTypeByName(db *gorm.DB, name models.ProfessionalTypeName) (*models.ProfessionalType, error)
	FindAllTypes(db *gorm.DB) ([]models.ProfessionalType, error)
}

type RoleRepositoryImpl struct{}

func NewRoleRepository() RoleRepository {
	return &RoleRepositoryImpl{}
}

func (r *RoleRepositoryImpl) FindByName(db *gorm.DB, name models.RoleName) (*models.Role, error) {
	var role models.Role
	err := db.Preload("Permissions").Where("name = ?", name).First(&role).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoleNotFound
		}
		return nil, err
	}
	return &role, nil
}

func (r *RoleRepositoryImpl) FindAll(db *gorm.DB) ([]models.Role, error) {
	var roles []models.Role
	err := db.Preload("Permissions").Order("id").Find(&roles).Error
	return roles, err
}

func (r *RoleRepositoryImpl) FindTypeByName(db *gorm.DB, name models.ProfessionalTypeName) (*models.ProfessionalType, error) {
	var pt models.ProfessionalType
	err := db.Where("name = ?", name).First(&pt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfessionalTypeNotFound
		}
		return nil, err
	}
	return &pt, nil
}

func (r *RoleRepositoryImpl) FindAllTypes(db *gorm.DB) ([]models.ProfessionalType, error) {
	var types []models.ProfessionalType
	err := db.Order("id").Find(&types).Error
	return types, err
}
