// File: handlers/professional.go
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"miagenda/models"
	"miagenda/services/professional"
	"miagenda/utils"
)

// ProfessionalHandler serves account, availability and catalogue endpoints.
type ProfessionalHandler struct {
	Service professional.ProfessionalService
}

func NewProfessionalHandler(svc professional.ProfessionalService) *ProfessionalHandler {
	return &ProfessionalHandler{Service: svc}
}

// professionalID pulls the authenticated ID set by the auth middleware.
func professionalID(c *gin.Context) (string, bool) {
	id, exists := c.Get("professionalID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	idStr, ok := id.(string)
	if !ok || idStr == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid professional ID type"})
		return "", false
	}
	return idStr, true
}

// RegisterHandler handles POST /api/professionals/register.
func (h *ProfessionalHandler) RegisterHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var input professional.RegistrationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	result, err := h.Service.Register(c.Request.Context(), input)
	if err != nil {
		logger.Error("Registration failed", zap.String("email", input.Email), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, result)
}

// LoginHandler handles POST /api/professionals/login.
func (h *ProfessionalHandler) LoginHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	result, err := h.Service.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		logger.Warn("Login failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// LogoutHandler handles POST /api/professionals/logout. Revoking the stored
// token hash invalidates every outstanding token.
func (h *ProfessionalHandler) LogoutHandler(c *gin.Context) {
	id, ok := professionalID(c)
	if !ok {
		return
	}
	if err := h.Service.RevokeToken(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// GetProfileHandler handles GET /api/professionals/me.
func (h *ProfessionalHandler) GetProfileHandler(c *gin.Context) {
	id, ok := professionalID(c)
	if !ok {
		return
	}
	pro, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, pro)
}

// UpdateProfileHandler handles PUT /api/professionals/me.
func (h *ProfessionalHandler) UpdateProfileHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id, ok := professionalID(c)
	if !ok {
		return
	}

	var update models.Professional
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	update.ID = id

	if err := h.Service.UpdateProfile(c.Request.Context(), &update); err != nil {
		logger.Error("Profile update failed", zap.String("professionalID", id), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pro, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, pro)
}

// UpdateAvailabilityHandler handles PUT /api/professionals/me/availability.
func (h *ProfessionalHandler) UpdateAvailabilityHandler(c *gin.Context) {
	id, ok := professionalID(c)
	if !ok {
		return
	}

	var cfg models.AvailabilityConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Service.UpdateAvailability(c.Request.Context(), id, cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// ConnectGoogleHandler handles POST /api/professionals/me/google.
func (h *ProfessionalHandler) ConnectGoogleHandler(c *gin.Context) {
	id, ok := professionalID(c)
	if !ok {
		return
	}

	var req struct {
		RefreshToken string `json:"refreshToken" binding:"required"`
		CalendarID   string `json:"calendarId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Service.ConnectGoogle(c.Request.Context(), id, req.RefreshToken, req.CalendarID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Google Calendar connected"})
}

// DisconnectGoogleHandler handles DELETE /api/professionals/me/google.
func (h *ProfessionalHandler) DisconnectGoogleHandler(c *gin.Context) {
	id, ok := professionalID(c)
	if !ok {
		return
	}
	if err := h.Service.DisconnectGoogle(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Google Calendar disconnected"})
}

// StatsHandler handles GET /api/professionals/me/stats?from=...&to=...
// Defaults to the current month.
func (h *ProfessionalHandler) StatsHandler(c *gin.Context) {
	id, ok := professionalID(c)
	if !ok {
		return
	}

	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 1, 0)

	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from must be YYYY-MM-DD"})
			return
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "to must be YYYY-MM-DD"})
			return
		}
		to = parsed
	}

	stats, err := h.Service.IncomeStats(c.Request.Context(), id, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}
