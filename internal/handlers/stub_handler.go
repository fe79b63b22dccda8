package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StubHandler serves the resources that have no real implementation yet.
// Clients depend on the exact placeholder body; keep it until real
// handlers replace these routes.
type StubHandler struct{}

func NewStubHandler() *StubHandler {
	return &StubHandler{}
}

// RegisterRoutes registers the placeholder resource routes.
func (h *StubHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/marketplace", h.placeholder("Marketplace"))
	rg.GET("/rough-stones", h.placeholder("Rough stone"))
}

func (h *StubHandler) placeholder(resource string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": resource + " routes are not implemented yet",
		})
	}
}
