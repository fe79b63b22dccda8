package handlers

import (
	"net/http"

	"gemmarket_backend/internal/services"
	"gemmarket_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type RegistrationHandler struct {
	*BaseHandler
	registrationService services.RegistrationService
}

func NewRegistrationHandler(base *BaseHandler, registrationService services.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{
		BaseHandler:         base,
		registrationService: registrationService,
	}
}

// RegisterRoutes registers the professional registration routes.
func (h *RegistrationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	professionals := rg.Group("/professionals")
	{
		professionals.POST("/register", h.Register)
	}
}

// Register accepts the accumulated three-step form payload. The workflow
// gates replay server-side; a gate failure reports the step it stopped
// on and its error message. On success the account awaits verification.
func (h *RegistrationHandler) Register(c *gin.Context) {
	var req dto.ProfessionalRegistrationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	professional, err := h.registrationService.RegisterProfessional(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Registration successful. Your profile is pending verification.",
		"professional": professional,
		"next":         "/verification-pending",
	})
}
