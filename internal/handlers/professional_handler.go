package handlers

import (
	"net/http"

	"gemmarket_backend/internal/middleware"
	"gemmarket_backend/internal/services"
	"gemmarket_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProfessionalHandler struct {
	*BaseHandler
	professionalService services.ProfessionalService
}

func NewProfessionalHandler(base *BaseHandler, professionalService services.ProfessionalService) *ProfessionalHandler {
	return &ProfessionalHandler{
		BaseHandler:         base,
		professionalService: professionalService,
	}
}

// RegisterRoutes registers the professional profile routes.
func (h *ProfessionalHandler) RegisterRoutes(rg *gin.RouterGroup) {
	professionals := rg.Group("/professionals")
	{
		professionals.GET("", h.List)
		professionals.GET("/:id", h.GetByID)
	}

	me := rg.Group("/professionals/me")
	me.Use(middleware.AuthMiddleware())
	{
		me.GET("", h.GetOwn)
		me.PUT("", h.UpdateOwn)
	}
}

func (h *ProfessionalHandler) List(c *gin.Context) {
	var query dto.ListProfessionalsQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	page, pageSize := ParsePagination(c)
	db := h.GetDB(c)

	response, err := h.professionalService.List(db, &query, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ProfessionalHandler) GetByID(c *gin.Context) {
	db := h.GetDB(c)

	professional, err := h.professionalService.GetByID(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, professional)
}

func (h *ProfessionalHandler) GetOwn(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	professional, err := h.professionalService.GetByUserID(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, professional)
}

func (h *ProfessionalHandler) UpdateOwn(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfessionalRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	professional, err := h.professionalService.UpdateOwn(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, professional)
}
