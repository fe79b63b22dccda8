package services

import (
	"time"

	"gemmarket_backend/internal/auth"
	"gemmarket_backend/internal/email"
	"gemmarket_backend/internal/logger"
	"gemmarket_backend/internal/models"
	"gemmarket_backend/internal/repositories"
	"gemmarket_backend/internal/services/dto"
	"gemmarket_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const refreshTokenTTL = 30 * 24 * time.Hour

type AuthService interface {
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
	RefreshToken(db *gorm.DB, refreshToken string) (*dto.LoginResponse, error)
	Logout(db *gorm.DB, refreshToken string) error
	VerifyEmail(db *gorm.DB, token string) error
	RequestPasswordReset(db *gorm.DB, emailAddr string) error
	ResetPassword(db *gorm.DB, token, newPassword string) error
}

type AuthServiceImpl struct {
	userRepo         repositories.UserRepository
	refreshTokenRepo repositories.RefreshTokenRepository
	emailProvider    email.Provider
}

func NewAuthService(
	userRepo repositories.UserRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
	emailProvider email.Provider,
) AuthService {
	return &AuthServiceImpl{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		emailProvider:    emailProvider,
	}
}

func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := s.checkUserStatus(user); err != nil {
		return nil, err
	}

	return s.buildLoginResponse(db, user)
}

func (s *AuthServiceImpl) RefreshToken(db *gorm.DB, refreshToken string) (*dto.LoginResponse, error) {
	token, err := s.refreshTokenRepo.FindByToken(db, refreshToken)
	if err != nil {
		// Not found or otherwise: the token is invalid either way
		return nil, apperrors.ErrInvalidToken
	}

	if time.Now().After(token.ExpiresAt) {
		_ = s.refreshTokenRepo.DeleteByToken(db, refreshToken)
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(db, token.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if err := s.checkUserStatus(user); err != nil {
		return nil, err
	}

	// Rotation: the presented token is consumed
	if err := s.refreshTokenRepo.DeleteByToken(db, refreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.buildLoginResponse(db, user)
}

func (s *AuthServiceImpl) Logout(db *gorm.DB, refreshToken string) error {
	return s.refreshTokenRepo.DeleteByToken(db, refreshToken)
}

func (s *AuthServiceImpl) VerifyEmail(db *gorm.DB, token string) error {
	user, err := s.userRepo.FindByVerificationToken(db, token)
	if err != nil {
		return apperrors.ErrInvalidToken
	}

	return s.userRepo.VerifyUser(db, user.ID)
}

func (s *AuthServiceImpl) RequestPasswordReset(db *gorm.DB, emailAddr string) error {
	user, err := s.userRepo.FindByEmail(db, emailAddr)
	if err != nil {
		// Do not reveal whether the email exists
		return nil
	}

	resetToken := auth.GenerateRandomToken()
	resetTokenExp := time.Now().Add(1 * time.Hour)

	user.ResetToken = resetToken
	user.ResetTokenExp = &resetTokenExp

	if err := s.userRepo.Update(db, user); err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.emailProvider.SendPasswordReset(user.Email, resetToken); err != nil {
		logger.Error("failed to send password reset email", "error", err, "email", user.Email)
	}
	return nil
}

func (s *AuthServiceImpl) ResetPassword(db *gorm.DB, token, newPassword string) error {
	if err := auth.ValidatePassword(newPassword); err != nil {
		return apperrors.ErrWeakPassword
	}

	user, err := s.userRepo.FindByResetToken(db, token)
	if err != nil {
		return apperrors.ErrInvalidToken
	}

	if user.ResetTokenExp == nil || time.Now().After(*user.ResetTokenExp) {
		return apperrors.ErrInvalidToken
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	user.PasswordHash = hash
	user.ResetToken = ""
	user.ResetTokenExp = nil

	if err := s.userRepo.Update(db, user); err != nil {
		return apperrors.InternalError(err)
	}

	// All sessions are invalidated after a reset
	return s.refreshTokenRepo.DeleteByUser(db, user.ID)
}

func (s *AuthServiceImpl) checkUserStatus(user *models.User) error {
	if !user.IsActive {
		return apperrors.ErrUserInactive
	}
	if !user.IsVerified {
		return apperrors.ErrUserNotVerified
	}
	return nil
}

func (s *AuthServiceImpl) buildLoginResponse(db *gorm.DB, user *models.User) (*dto.LoginResponse, error) {
	roles := make([]string, 0, len(user.Roles))
	for _, r := range user.Roles {
		roles = append(roles, string(r.Name))
	}

	accessToken, err := auth.GenerateToken(user.ID, roles)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refreshToken := &models.RefreshToken{
		UserID:    user.ID,
		Token:     auth.GenerateRandomToken(),
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}
	if err := s.refreshTokenRepo.Create(db, refreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken.Token,
		User:         dto.NewUserDTO(user),
	}, nil
}
