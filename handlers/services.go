// File: handlers/services.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"miagenda/models"
)

// CreateServiceHandler handles POST /api/services.
func (h *ProfessionalHandler) CreateServiceHandler(c *gin.Context) {
	id, ok := professionalID(c)
	if !ok {
		return
	}

	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	svc.ProfessionalID = id

	if err := h.Service.CreateService(c.Request.Context(), &svc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, svc)
}

// ListServicesHandler handles GET /api/services?active=true.
func (h *ProfessionalHandler) ListServicesHandler(c *gin.Context) {
	id, ok := professionalID(c)
	if !ok {
		return
	}

	activeOnly := c.Query("active") == "true"
	services, err := h.Service.ListServices(c.Request.Context(), id, activeOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, services)
}

// UpdateServiceHandler handles PUT /api/services/:id.
func (h *ProfessionalHandler) UpdateServiceHandler(c *gin.Context) {
	id, ok := professionalID(c)
	if !ok {
		return
	}

	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	svc.ID = c.Param("id")
	svc.ProfessionalID = id

	if err := h.Service.UpdateService(c.Request.Context(), &svc); err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// DeleteServiceHandler handles DELETE /api/services/:id.
func (h *ProfessionalHandler) DeleteServiceHandler(c *gin.Context) {
	id, ok := professionalID(c)
	if !ok {
		return
	}
	if err := h.Service.DeleteService(c.Request.Context(), id, c.Param("id")); err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}
