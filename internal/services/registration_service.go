package services

import (
	"context"
	"strconv"

	"gemmarket_backend/internal/auth"
	"gemmarket_backend/internal/email"
	"gemmarket_backend/internal/logger"
	"gemmarket_backend/internal/models"
	"gemmarket_backend/internal/registration"
	"gemmarket_backend/internal/repositories"
	"gemmarket_backend/internal/services/dto"
	"gemmarket_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// RegistrationService drives the three-step professional registration
// workflow and owns the persistence of its final submission.
type RegistrationService interface {
	RegisterProfessional(db *gorm.DB, req *dto.ProfessionalRegistrationRequest) (*dto.ProfessionalDTO, error)
}

type RegistrationServiceImpl struct {
	userRepo         repositories.UserRepository
	professionalRepo repositories.ProfessionalRepository
	roleRepo         repositories.RoleRepository
	emailProvider    email.Provider
}

func NewRegistrationService(
	userRepo repositories.UserRepository,
	professionalRepo repositories.ProfessionalRepository,
	roleRepo repositories.RoleRepository,
	emailProvider email.Provider,
) RegistrationService {
	return &RegistrationServiceImpl{
		userRepo:         userRepo,
		professionalRepo: professionalRepo,
		roleRepo:         roleRepo,
		emailProvider:    emailProvider,
	}
}

// RegisterProfessional replays the step-gated workflow over the
// accumulated payload. Each gate failure surfaces the step it stopped on
// and its single error message; only a fully gated form reaches
// persistence.
func (s *RegistrationServiceImpl) RegisterProfessional(db *gorm.DB, req *dto.ProfessionalRegistrationRequest) (*dto.ProfessionalDTO, error) {
	form := registration.NewForm()
	form.Data = req.ToFormData()

	// BasicInfo -> ProfessionalInfo -> Verification
	for form.Step() < registration.StepVerification {
		if !form.GoToNextStep() {
			return nil, stepError(form)
		}
	}

	submitter := &accountSubmitter{service: s, db: db}
	if err := form.Submit(context.Background(), submitter); err != nil {
		if apperrors.Is(err, registration.ErrTermsNotAccepted) {
			return nil, stepError(form)
		}
		if appErr, ok := apperrors.AsAppError(err); ok {
			return nil, appErr
		}
		return nil, apperrors.InternalError(err)
	}

	return submitter.result, nil
}

func stepError(form *registration.Form) *apperrors.AppError {
	return apperrors.ValidationError(dto.RegistrationStepError{
		Step:    int(form.Step()),
		Message: form.Error(),
	})
}

// accountSubmitter is the persistence collaborator handed to the form.
// It binds the request-scoped database handle.
type accountSubmitter struct {
	service *RegistrationServiceImpl
	db      *gorm.DB
	result  *dto.ProfessionalDTO
}

func (a *accountSubmitter) CreateProfessionalAccount(_ context.Context, data *registration.FormData) error {
	professional, err := a.service.createAccount(a.db, data)
	if err != nil {
		return err
	}
	a.result = professional
	return nil
}

// createAccount persists the user and professional as one transaction,
// assigns the matching role and professional type, and sends the email
// verification link.
func (s *RegistrationServiceImpl) createAccount(db *gorm.DB, data *registration.FormData) (*dto.ProfessionalDTO, error) {
	if err := auth.ValidatePassword(data.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	years, err := parseYearsOfExperience(data.YearsOfExperience)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Years of experience must be a number")
	}

	hash, err := auth.HashPassword(data.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:             data.Email,
		PasswordHash:      hash,
		FirstName:         data.FirstName,
		LastName:          data.LastName,
		IsActive:          true,
		VerificationToken: auth.GenerateRandomToken(),
	}

	professional := &models.Professional{
		BusinessName:        data.BusinessName,
		BusinessDescription: data.BusinessDescription,
		YearsOfExperience:   years,
		Website:             data.Website,
		VerificationStatus:  models.VerificationStatusPending,
	}
	professional.SetSpecializations(data.Specializations)

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.Create(tx, user); err != nil {
			if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
				return apperrors.ErrEmailAlreadyExists
			}
			return apperrors.InternalError(err)
		}

		if err := s.assignRole(tx, user, data.Role); err != nil {
			return err
		}

		professional.UserID = user.ID
		if err := s.professionalRepo.Create(tx, professional); err != nil {
			return apperrors.InternalError(err)
		}

		pt, err := s.roleRepo.FindTypeByName(tx, models.ProfessionalTypeName(data.Role))
		if err != nil {
			if apperrors.Is(err, repositories.ErrProfessionalTypeNotFound) {
				return apperrors.ErrInvalidRole
			}
			return apperrors.InternalError(err)
		}
		if err := s.professionalRepo.AssignTypes(tx, professional, []models.ProfessionalType{*pt}); err != nil {
			return apperrors.InternalError(err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.emailProvider.SendVerification(user.Email, user.VerificationToken); err != nil {
		logger.Error("failed to send verification email", "error", err, "email", user.Email)
	}

	result := dto.NewProfessionalDTO(professional)
	return &result, nil
}

// assignRole attaches the role matching the chosen professional type.
// Types without a matching role (jeweler) fall back to customer.
func (s *RegistrationServiceImpl) assignRole(db *gorm.DB, user *models.User, typeName string) error {
	role, err := s.roleRepo.FindByName(db, models.RoleName(typeName))
	if err != nil {
		if !apperrors.Is(err, repositories.ErrRoleNotFound) {
			return apperrors.InternalError(err)
		}
		role, err = s.roleRepo.FindByName(db, models.RoleCustomer)
		if err != nil {
			return apperrors.InternalError(err)
		}
	}
	if err := s.userRepo.AssignRole(db, user, role); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// parseYearsOfExperience maps the free-text field to a nullable count.
// Empty input means unspecified, never zero.
func parseYearsOfExperience(value string) (*int, error) {
	if value == "" {
		return nil, nil
	}
	years, err := strconv.Atoi(value)
	if err != nil || years < 0 {
		return nil, strconv.ErrSyntax
	}
	return &years, nil
}
