// File: handlers/public.go
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	landingRepo "miagenda/database/repository/landing"
	professionalRepo "miagenda/database/repository/professional"
	"miagenda/models"
	"miagenda/services/booking"
	"miagenda/utils"
)

// landingViewTTL caps staleness of the cached public landing view.
const landingViewTTL = 60 * time.Second

const landingCachePrefix = "landing:view:"

// PublicHandler serves the unauthenticated, slug-addressed booking surface.
type PublicHandler struct {
	Landing       landingRepo.LandingRepository
	Professionals professionalRepo.ProfessionalRepository
	Scheduler     booking.SchedulingService
}

func NewPublicHandler(landing landingRepo.LandingRepository, professionals professionalRepo.ProfessionalRepository, scheduler booking.SchedulingService) *PublicHandler {
	return &PublicHandler{Landing: landing, Professionals: professionals, Scheduler: scheduler}
}

// resolvePage loads a published landing page by slug. Unpublished pages are
// indistinguishable from missing ones.
func (h *PublicHandler) resolvePage(ctx context.Context, slug string) (*models.LandingPage, error) {
	page, err := h.Landing.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !page.Published {
		return nil, mongo.ErrNoDocuments
	}
	return page, nil
}

// LandingViewHandler handles GET /api/public/:slug. The assembled view is
// cached in redis for a minute.
func (h *PublicHandler) LandingViewHandler(c *gin.Context) {
	logger := utils.GetLogger()
	ctx := c.Request.Context()
	slug := c.Param("slug")

	cacheKey := landingCachePrefix + slug
	if cache := utils.GetCacheClient(); cache != nil {
		if raw, err := cache.Get(ctx, cacheKey).Result(); err == nil {
			var view models.LandingView
			if json.Unmarshal([]byte(raw), &view) == nil {
				c.JSON(http.StatusOK, view)
				return
			}
		}
	}

	page, err := h.resolvePage(ctx, slug)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	pro, err := h.Professionals.GetByID(ctx, page.ProfessionalID)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	services, err := h.Professionals.ListServices(ctx, page.ProfessionalID, true)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	if len(page.ServiceIDs) > 0 {
		visible := make(map[string]bool, len(page.ServiceIDs))
		for _, id := range page.ServiceIDs {
			visible[id] = true
		}
		filtered := services[:0]
		for _, svc := range services {
			if visible[svc.ID] {
				filtered = append(filtered, svc)
			}
		}
		services = filtered
	}

	view := models.LandingView{
		Page: *page,
		Professional: models.PublicProfile{
			ID:         pro.ID,
			Name:       pro.Name,
			Profession: pro.Profession,
		},
		Services: services,
	}

	if cache := utils.GetCacheClient(); cache != nil {
		if raw, err := json.Marshal(view); err == nil {
			if err := cache.Set(ctx, cacheKey, raw, landingViewTTL).Err(); err != nil {
				logger.Warn("failed to cache landing view", zap.String("slug", slug), zap.Error(err))
			}
		}
	}
	c.JSON(http.StatusOK, view)
}

// PublicAvailabilityHandler handles GET /api/public/:slug/availability.
func (h *PublicHandler) PublicAvailabilityHandler(c *gin.Context) {
	page, err := h.resolvePage(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	respondAvailability(c, h.Scheduler, page.ProfessionalID)
}

type publicBookingRequest struct {
	CustomerName string    `json:"customerName" binding:"required"`
	Phone        string    `json:"phone" binding:"required"`
	Email        string    `json:"email"`
	ServiceID    string    `json:"serviceId"`
	Start        time.Time `json:"start" binding:"required"`
	Notes        string    `json:"notes"`
}

// PublicBookingHandler handles POST /api/public/:slug/book. A collision with
// an existing appointment comes back as a 409 with the colliding slots.
func (h *PublicHandler) PublicBookingHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req publicBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	appt, err := h.Scheduler.BookPublicAppointment(c.Request.Context(), booking.PublicBookingRequest{
		Slug:         c.Param("slug"),
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Email:        req.Email,
		ServiceID:    req.ServiceID,
		Start:        req.Start,
		Notes:        req.Notes,
	})
	if err != nil {
		logger.Warn("Public booking rejected", zap.String("slug", c.Param("slug")), zap.Error(err))
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}
