package services

import (
	"time"

	"gemmarket_backend/internal/email"
	"gemmarket_backend/internal/logger"
	"gemmarket_backend/internal/models"
	"gemmarket_backend/internal/repositories"
	"gemmarket_backend/internal/services/dto"
	"gemmarket_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// VerificationService owns the verification lifecycle: document upload,
// staff review, and the professional's pending -> verified/rejected
// transition.
type VerificationService interface {
	UploadDocument(db *gorm.DB, userID string, req *dto.UploadDocumentRequest) (*dto.VerificationDocumentDTO, error)
	GetStatus(db *gorm.DB, userID string) (*dto.VerificationStatusResponse, error)
	ListPendingDocuments(db *gorm.DB, page, pageSize int) ([]dto.VerificationDocumentDTO, error)
	ReviewDocument(db *gorm.DB, reviewerID, documentID string, req *dto.ReviewDocumentRequest) (*dto.VerificationDocumentDTO, error)
	ReviewProfessional(db *gorm.DB, reviewerID, professionalID string, req *dto.ReviewProfessionalRequest) error
}

type VerificationServiceImpl struct {
	professionalRepo repositories.ProfessionalRepository
	documentRepo     repositories.VerificationDocumentRepository
	userRepo         repositories.UserRepository
	emailProvider    email.Provider
}

func NewVerificationService(
	professionalRepo repositories.ProfessionalRepository,
	documentRepo repositories.VerificationDocumentRepository,
	userRepo repositories.UserRepository,
	emailProvider email.Provider,
) VerificationService {
	return &VerificationServiceImpl{
		professionalRepo: professionalRepo,
		documentRepo:     documentRepo,
		userRepo:         userRepo,
		emailProvider:    emailProvider,
	}
}

func (s *VerificationServiceImpl) UploadDocument(db *gorm.DB, userID string, req *dto.UploadDocumentRequest) (*dto.VerificationDocumentDTO, error) {
	professional, err := s.professionalRepo.FindByUserID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfessionalNotFound) {
			return nil, apperrors.ErrProfessionalNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	doc := &models.VerificationDocument{
		ProfessionalID: professional.ID,
		DocumentType:   req.DocumentType,
		DocumentURL:    req.DocumentURL,
	}
	if err := s.documentRepo.Create(db, doc); err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := dto.NewVerificationDocumentDTO(doc)
	return &result, nil
}

func (s *VerificationServiceImpl) GetStatus(db *gorm.DB, userID string) (*dto.VerificationStatusResponse, error) {
	professional, err := s.professionalRepo.FindByUserID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfessionalNotFound) {
			return nil, apperrors.ErrProfessionalNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	docs, err := s.documentRepo.FindByProfessional(db, professional.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.VerificationStatusResponse{
		ProfessionalID: professional.ID,
		Status:         string(professional.VerificationStatus),
		DocumentsTotal: len(docs),
		Documents:      make([]dto.VerificationDocumentDTO, 0, len(docs)),
	}
	for i := range docs {
		if docs[i].IsVerified {
			resp.DocumentsVerified++
		}
		resp.Documents = append(resp.Documents, dto.NewVerificationDocumentDTO(&docs[i]))
	}
	return resp, nil
}

func (s *VerificationServiceImpl) ListPendingDocuments(db *gorm.DB, page, pageSize int) ([]dto.VerificationDocumentDTO, error) {
	docs, err := s.documentRepo.FindPending(db, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]dto.VerificationDocumentDTO, 0, len(docs))
	for i := range docs {
		items = append(items, dto.NewVerificationDocumentDTO(&docs[i]))
	}
	return items, nil
}

// ReviewDocument records a staff decision on one document. The reviewer
// must exist, and verified_by/verified_at are written together.
func (s *VerificationServiceImpl) ReviewDocument(db *gorm.DB, reviewerID, documentID string, req *dto.ReviewDocumentRequest) (*dto.VerificationDocumentDTO, error) {
	exists, err := s.userRepo.Exists(db, reviewerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !exists {
		return nil, apperrors.ErrVerifierNotFound
	}

	doc, err := s.documentRepo.FindByID(db, documentID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrDocumentNotFound) {
			return nil, apperrors.ErrDocumentNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if doc.Reviewed() {
		return nil, apperrors.ErrAlreadyReviewed
	}

	now := time.Now()
	if req.Verified {
		doc.MarkVerified(reviewerID, now, req.Notes)
	} else {
		doc.IsVerified = false
		doc.VerifiedBy = &reviewerID
		doc.VerifiedAt = &now
		doc.VerificationNotes = req.Notes
	}

	if err := s.documentRepo.Update(db, doc); err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := dto.NewVerificationDocumentDTO(doc)
	return &result, nil
}

// ReviewProfessional moves a pending professional to verified or
// rejected and notifies the owner.
func (s *VerificationServiceImpl) ReviewProfessional(db *gorm.DB, reviewerID, professionalID string, req *dto.ReviewProfessionalRequest) error {
	exists, err := s.userRepo.Exists(db, reviewerID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if !exists {
		return apperrors.ErrVerifierNotFound
	}

	professional, err := s.professionalRepo.FindByID(db, professionalID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfessionalNotFound) {
			return apperrors.ErrProfessionalNotFound
		}
		return apperrors.InternalError(err)
	}

	if professional.VerificationStatus != models.VerificationStatusPending {
		return apperrors.ErrInvalidStatusChange
	}

	status := models.VerificationStatus(req.Status)
	if !models.ValidVerificationStatus(status) || status == models.VerificationStatusPending {
		return apperrors.ErrInvalidStatusChange
	}

	if err := s.professionalRepo.UpdateStatus(db, professionalID, status); err != nil {
		return apperrors.InternalError(err)
	}

	owner, err := s.userRepo.FindByID(db, professional.UserID)
	if err == nil {
		approved := status == models.VerificationStatusVerified
		if err := s.emailProvider.SendVerificationDecision(owner.Email, approved, req.Notes); err != nil {
			logger.Error("failed to send review decision email", "error", err, "email", owner.Email)
		}
	}

	return nil
}
