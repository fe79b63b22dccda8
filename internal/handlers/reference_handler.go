package handlers

import (
	"net/http"

	"gemmarket_backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// ReferenceHandler serves the seeded lookup tables.
type ReferenceHandler struct {
	*BaseHandler
	roleRepo repositories.RoleRepository
}

func NewReferenceHandler(base *BaseHandler, roleRepo repositories.RoleRepository) *ReferenceHandler {
	return &ReferenceHandler{
		BaseHandler: base,
		roleRepo:    roleRepo,
	}
}

// RegisterRoutes registers the reference data routes.
func (h *ReferenceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reference := rg.Group("/reference-data")
	{
		reference.GET("/roles", h.ListRoles)
		reference.GET("/professional-types", h.ListProfessionalTypes)
	}
}

func (h *ReferenceHandler) ListRoles(c *gin.Context) {
	db := h.GetDB(c)

	roles, err := h.roleRepo.FindAll(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	items := make([]gin.H, 0, len(roles))
	for _, r := range roles {
		perms := make([]string, 0, len(r.Permissions))
		for _, p := range r.Permissions {
			perms = append(perms, p.Name)
		}
		items = append(items, gin.H{
			"id":          r.ID,
			"name":        r.Name,
			"permissions": perms,
		})
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *ReferenceHandler) ListProfessionalTypes(c *gin.Context) {
	db := h.GetDB(c)

	types, err := h.roleRepo.FindAllTypes(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	items := make([]gin.H, 0, len(types))
	for _, t := range types {
		items = append(items, gin.H{"id": t.ID, "name": t.Name})
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}
