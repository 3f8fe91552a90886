// File: handlers/customer.go
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"miagenda/models"
	"miagenda/services/customer"
)

// CustomerHandler serves the authenticated customer directory.
type CustomerHandler struct {
	Service customer.CustomerService
}

func NewCustomerHandler(svc customer.CustomerService) *CustomerHandler {
	return &CustomerHandler{Service: svc}
}

// CreateCustomerHandler handles POST /api/customers.
func (h *CustomerHandler) CreateCustomerHandler(c *gin.Context) {
	id, ok := professionalID(c)
	if !ok {
		return
	}

	var cust models.Customer
	if err := c.ShouldBindJSON(&cust); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	cust.ID = uuid.New().String()
	cust.ProfessionalID = id
	cust.CreatedAt = time.Now()

	if err := h.Service.Create(c.Request.Context(), &cust); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, cust)
}

// ListCustomersHandler handles GET /api/customers.
func (h *CustomerHandler) ListCustomersHandler(c *gin.Context) {
	id, ok := professionalID(c)
	if !ok {
		return
	}
	customers, err := h.Service.List(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, customers)
}

// GetCustomerHandler handles GET /api/customers/:id.
func (h *CustomerHandler) GetCustomerHandler(c *gin.Context) {
	id, ok := professionalID(c)
	if !ok {
		return
	}
	cust, err := h.Service.GetByID(c.Request.Context(), id, c.Param("id"))
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, cust)
}

// UpdateCustomerHandler handles PUT /api/customers/:id.
func (h *CustomerHandler) UpdateCustomerHandler(c *gin.Context) {
	id, ok := professionalID(c)
	if !ok {
		return
	}

	var cust models.Customer
	if err := c.ShouldBindJSON(&cust); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	cust.ID = c.Param("id")
	cust.ProfessionalID = id

	if err := h.Service.Update(c.Request.Context(), &cust); err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, cust)
}

// DeleteCustomerHandler handles DELETE /api/customers/:id.
func (h *CustomerHandler) DeleteCustomerHandler(c *gin.Context) {
	id, ok := professionalID(c)
	if !ok {
		return
	}
	if err := h.Service.Delete(c.Request.Context(), id, c.Param("id")); err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted"})
}
