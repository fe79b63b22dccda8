package routes

import (
	"gemmarket_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all HTTP routes under /api/v1.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.RegistrationHandler.RegisterRoutes(api)
		appHandlers.ProfessionalHandler.RegisterRoutes(api)
		appHandlers.VerificationHandler.RegisterRoutes(api)
		appHandlers.ReferenceHandler.RegisterRoutes(api)
		appHandlers.StubHandler.RegisterRoutes(api)
	}
}
