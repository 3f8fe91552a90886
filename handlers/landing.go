// File: handlers/landing.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"miagenda/models"
)

// UpsertLandingPageHandler handles PUT /api/landing.
func (h *ProfessionalHandler) UpsertLandingPageHandler(c *gin.Context) {
	id, ok := professionalID(c)
	if !ok {
		return
	}

	var page models.LandingPage
	if err := c.ShouldBindJSON(&page); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	page.ProfessionalID = id

	if err := h.Service.UpsertLandingPage(c.Request.Context(), &page); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetLandingPageHandler handles GET /api/landing.
func (h *ProfessionalHandler) GetLandingPageHandler(c *gin.Context) {
	id, ok := professionalID(c)
	if !ok {
		return
	}
	page, err := h.Service.GetLandingPage(c.Request.Context(), id)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}
