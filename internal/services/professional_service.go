package services

import (
	"encoding/json"

	"gemmarket_backend/internal/models"
	"gemmarket_backend/internal/repositories"
	"gemmarket_backend/internal/services/dto"
	"gemmarket_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProfessionalService interface {
	GetByID(db *gorm.DB, id string) (*dto.ProfessionalDTO, error)
	GetByUserID(db *gorm.DB, userID string) (*dto.ProfessionalDTO, error)
	List(db *gorm.DB, query *dto.ListProfessionalsQuery, page, pageSize int) (*dto.ProfessionalListResponse, error)
	UpdateOwn(db *gorm.DB, userID string, req *dto.UpdateProfessionalRequest) (*dto.ProfessionalDTO, error)
}

type ProfessionalServiceImpl struct {
	professionalRepo repositories.ProfessionalRepository
	userRepo         repositories.UserRepository
}

func NewProfessionalService(
	professionalRepo repositories.ProfessionalRepository,
	userRepo repositories.UserRepository,
) ProfessionalService {
	return &ProfessionalServiceImpl{
		professionalRepo: professionalRepo,
		userRepo:         userRepo,
	}
}

func (s *ProfessionalServiceImpl) GetByID(db *gorm.DB, id string) (*dto.ProfessionalDTO, error) {
	professional, err := s.professionalRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfessionalNotFound) {
			return nil, apperrors.ErrProfessionalNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	result := dto.NewProfessionalDTO(professional)
	return &result, nil
}

func (s *ProfessionalServiceImpl) GetByUserID(db *gorm.DB, userID string) (*dto.ProfessionalDTO, error) {
	professional, err := s.professionalRepo.FindByUserID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfessionalNotFound) {
			return nil, apperrors.ErrProfessionalNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	result := dto.NewProfessionalDTO(professional)
	return &result, nil
}

func (s *ProfessionalServiceImpl) List(db *gorm.DB, query *dto.ListProfessionalsQuery, page, pageSize int) (*dto.ProfessionalListResponse, error) {
	filter := repositories.ProfessionalFilter{
		Status:   models.VerificationStatus(query.Status),
		TypeName: models.ProfessionalTypeName(query.Type),
		Search:   query.Search,
		Page:     page,
		PageSize: pageSize,
	}

	professionals, total, err := s.professionalRepo.FindWithFilter(db, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]dto.ProfessionalDTO, 0, len(professionals))
	for i := range professionals {
		items = append(items, dto.NewProfessionalDTO(&professionals[i]))
	}

	return &dto.ProfessionalListResponse{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func (s *ProfessionalServiceImpl) UpdateOwn(db *gorm.DB, userID string, req *dto.UpdateProfessionalRequest) (*dto.ProfessionalDTO, error) {
	professional, err := s.professionalRepo.FindByUserID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfessionalNotFound) {
			return nil, apperrors.ErrProfessionalNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	professional.BusinessName = req.BusinessName
	professional.BusinessDescription = req.BusinessDescription
	professional.YearsOfExperience = req.YearsOfExperience
	professional.Website = req.Website
	professional.SetSpecializations(req.Specializations)
	if req.SocialLinks != nil {
		data, _ := json.Marshal(req.SocialLinks)
		professional.SocialLinks = datatypes.JSON(data)
	}

	if err := s.professionalRepo.Update(db, professional); err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := dto.NewProfessionalDTO(professional)
	return &result, nil
}
