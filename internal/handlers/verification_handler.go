package handlers

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"gemmarket_backend/internal/middleware"
	"gemmarket_backend/internal/services"
	"gemmarket_backend/internal/services/dto"
	"gemmarket_backend/internal/storage"
	"gemmarket_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxDocumentSize = 10 << 20 // 10 MB

type VerificationHandler struct {
	*BaseHandler
	verificationService services.VerificationService
	store               storage.Storage
}

func NewVerificationHandler(base *BaseHandler, verificationService services.VerificationService, store storage.Storage) *VerificationHandler {
	return &VerificationHandler{
		BaseHandler:         base,
		verificationService: verificationService,
		store:               store,
	}
}

// RegisterRoutes registers the verification lifecycle routes. Owners
// manage their own documents; review is admin-only.
func (h *VerificationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	verification := rg.Group("/verification")
	verification.Use(middleware.AuthMiddleware())
	{
		verification.GET("/status", h.GetStatus)
		verification.POST("/documents", h.UploadDocument)
		verification.POST("/documents/upload", h.UploadDocumentFile)
	}

	files := rg.Group("/files")
	files.Use(middleware.AuthMiddleware())
	{
		files.GET("/*path", h.ServeDocument)
	}

	admin := rg.Group("/admin/verification")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.AdminMiddleware())
	{
		admin.GET("/documents", h.ListPendingDocuments)
		admin.POST("/documents/:id/review", h.ReviewDocument)
		admin.POST("/professionals/:id/review", h.ReviewProfessional)
	}
}

func (h *VerificationHandler) GetStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	status, err := h.verificationService.GetStatus(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

func (h *VerificationHandler) UploadDocument(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UploadDocumentRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	doc, err := h.verificationService.UploadDocument(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, doc)
}

var allowedDocumentTypes = map[string]bool{
	"business_license": true,
	"certification":    true,
	"id_document":      true,
	"portfolio":        true,
	"other":            true,
}

// UploadDocumentFile accepts a multipart upload, stores the file and
// registers it as an evidence document in one request.
func (h *VerificationHandler) UploadDocumentFile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	documentType := c.PostForm("document_type")
	if !allowedDocumentTypes[documentType] {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid document type"))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing file in multipart form"))
		return
	}
	if fileHeader.Size > maxDocumentSize {
		apperrors.HandleError(c, apperrors.NewBadRequestError("File exceeds the 10 MB limit"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		apperrors.HandleError(c, apperrors.InternalError(err))
		return
	}
	defer file.Close()

	ext := filepath.Ext(fileHeader.Filename)
	path := fmt.Sprintf("verification/%s/%s%s", userID, uuid.NewString(), ext)
	contentType := fileHeader.Header.Get("Content-Type")

	if err := h.store.Save(c.Request.Context(), path, file, contentType); err != nil {
		apperrors.HandleError(c, apperrors.InternalError(err))
		return
	}

	url, err := h.store.GetURL(c.Request.Context(), path)
	if err != nil {
		apperrors.HandleError(c, apperrors.InternalError(err))
		return
	}

	db := h.GetDB(c)

	doc, err := h.verificationService.UploadDocument(db, userID, &dto.UploadDocumentRequest{
		DocumentType: documentType,
		DocumentURL:  url,
	})
	if err != nil {
		// The document row failed, drop the orphaned file
		_ = h.store.Delete(c.Request.Context(), path)
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, doc)
}

// ServeDocument streams a stored document back to an authenticated user.
func (h *VerificationHandler) ServeDocument(c *gin.Context) {
	path := strings.TrimPrefix(c.Param("path"), "/")
	if path == "" || strings.Contains(path, "..") {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid file path"))
		return
	}

	reader, err := h.store.Get(c.Request.Context(), path)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}
	defer reader.Close()

	c.Header("Content-Disposition", "inline")
	if _, err := io.Copy(c.Writer, reader); err != nil {
		c.Error(err)
	}
}

func (h *VerificationHandler) ListPendingDocuments(c *gin.Context) {
	page, pageSize := ParsePagination(c)
	db := h.GetDB(c)

	docs, err := h.verificationService.ListPendingDocuments(db, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": docs, "page": page, "page_size": pageSize})
}

func (h *VerificationHandler) ReviewDocument(c *gin.Context) {
	reviewerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ReviewDocumentRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	doc, err := h.verificationService.ReviewDocument(db, reviewerID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}

func (h *VerificationHandler) ReviewProfessional(c *gin.Context) {
	reviewerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ReviewProfessionalRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	if err := h.verificationService.ReviewProfessional(db, reviewerID, c.Param("id"), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review recorded"})
}
