// File: handlers/appointment.go
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appointmentRepo "miagenda/database/repository/appointment"
	"miagenda/models"
	"miagenda/services/booking"
	"miagenda/utils"
)

// AppointmentHandler serves the authenticated agenda: bookings, listings,
// status changes, reschedules and availability lookups.
type AppointmentHandler struct {
	Scheduler    booking.SchedulingService
	Appointments appointmentRepo.AppointmentRepository
}

func NewAppointmentHandler(scheduler booking.SchedulingService, appointments appointmentRepo.AppointmentRepository) *AppointmentHandler {
	return &AppointmentHandler{Scheduler: scheduler, Appointments: appointments}
}

type createAppointmentRequest struct {
	CustomerID      string    `json:"customerId" binding:"required"`
	ServiceID       string    `json:"serviceId"`
	Start           time.Time `json:"start" binding:"required"`
	DurationMinutes int       `json:"durationMinutes"`
	Notes           string    `json:"notes"`
}

// CreateAppointmentHandler handles POST /api/appointments.
func (h *AppointmentHandler) CreateAppointmentHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id, ok := professionalID(c)
	if !ok {
		return
	}

	var req createAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	appt, err := h.Scheduler.BookAppointment(c.Request.Context(), booking.BookingRequest{
		ProfessionalID:  id,
		CustomerID:      req.CustomerID,
		ServiceID:       req.ServiceID,
		Start:           req.Start,
		DurationMinutes: req.DurationMinutes,
		Notes:           req.Notes,
		Source:          models.SourceInternal,
	})
	if err != nil {
		logger.Warn("Booking rejected", zap.String("professionalID", id), zap.Error(err))
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// ListAppointmentsHandler handles GET /api/appointments?date=YYYY-MM-DD or
// ?from=...&to=... Defaults to today.
func (h *AppointmentHandler) ListAppointmentsHandler(c *gin.Context) {
	id, ok := professionalID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	if from, to := c.Query("from"), c.Query("to"); from != "" && to != "" {
		fromDay, err1 := time.Parse("2006-01-02", from)
		toDay, err2 := time.Parse("2006-01-02", to)
		if err1 != nil || err2 != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from and to must be YYYY-MM-DD"})
			return
		}
		appts, err := h.Appointments.ListByRange(ctx, id, fromDay, toDay.AddDate(0, 0, 1))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, appts)
		return
	}

	day := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		day = parsed
	}

	appts, err := h.Appointments.ListByDay(ctx, id, day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appts)
}

// GetAppointmentHandler handles GET /api/appointments/id/:id.
func (h *AppointmentHandler) GetAppointmentHandler(c *gin.Context) {
	id, ok := professionalID(c)
	if !ok {
		return
	}
	appt, err := h.Appointments.GetByID(c.Request.Context(), id, c.Param("id"))
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// UpdateStatusHandler handles PATCH /api/appointments/id/:id/status.
func (h *AppointmentHandler) UpdateStatusHandler(c *gin.Context) {
	id, ok := professionalID(c)
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	appt, err := h.Scheduler.UpdateStatus(c.Request.Context(), id, c.Param("id"), req.Status)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// RescheduleHandler handles PATCH /api/appointments/id/:id/reschedule.
func (h *AppointmentHandler) RescheduleHandler(c *gin.Context) {
	id, ok := professionalID(c)
	if !ok {
		return
	}

	var req struct {
		Start time.Time `json:"start" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	appt, err := h.Scheduler.RescheduleAppointment(c.Request.Context(), id, c.Param("id"), req.Start)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// DeleteAppointmentHandler handles DELETE /api/appointments/id/:id.
func (h *AppointmentHandler) DeleteAppointmentHandler(c *gin.Context) {
	id, ok := professionalID(c)
	if !ok {
		return
	}
	if err := h.Appointments.Delete(c.Request.Context(), id, c.Param("id")); err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted"})
}

// AvailabilityHandler handles GET /api/appointments/availability.
// ?date=YYYY-MM-DD returns one day; with date omitted (or ?week=true) the
// seven-day forward window is returned. serviceId optionally overrides
// duration and buffer.
func (h *AppointmentHandler) AvailabilityHandler(c *gin.Context) {
	id, ok := professionalID(c)
	if !ok {
		return
	}
	respondAvailability(c, h.Scheduler, id)
}

// respondAvailability is shared between the authenticated and the public
// availability endpoints.
func respondAvailability(c *gin.Context, scheduler booking.SchedulingService, professionalID string) {
	day := time.Now()
	weekView := c.Query("week") == "true" || c.Query("date") == ""
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		day = parsed
	}
	serviceID := c.Query("serviceId")

	if weekView {
		days, err := scheduler.GetWeekAvailability(c.Request.Context(), professionalID, serviceID, day)
		if err != nil {
			respondSchedulingError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"days": days})
		return
	}

	slots, err := scheduler.GetDayAvailability(c.Request.Context(), professionalID, serviceID, day)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, slots)
}
