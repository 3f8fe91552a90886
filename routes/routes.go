// File: routes/routes.go
package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"miagenda/handlers"
	"miagenda/middleware"
)

// RegisterProfessionalRoutes registers account and catalogue endpoints.
func RegisterProfessionalRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/professionals")
	{
		api.POST("/register", hb.Professional.RegisterHandler)
		api.POST("/login", hb.Professional.LoginHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthProfessionalMiddleware(hb.ProfessionalRepo))
		api.POST("/logout", hb.Professional.LogoutHandler)
		api.GET("/me", hb.Professional.GetProfileHandler)
		api.PUT("/me", hb.Professional.UpdateProfileHandler)
		api.PUT("/me/availability", hb.Professional.UpdateAvailabilityHandler)
		api.POST("/me/google", hb.Professional.ConnectGoogleHandler)
		api.DELETE("/me/google", hb.Professional.DisconnectGoogleHandler)
		api.GET("/me/stats", hb.Professional.StatsHandler)
	}

	services := r.Group("/api/services")
	{
		services.Use(middleware.JWTAuthProfessionalMiddleware(hb.ProfessionalRepo))
		services.POST("", hb.Professional.CreateServiceHandler)
		services.GET("", hb.Professional.ListServicesHandler)
		services.PUT("/:id", hb.Professional.UpdateServiceHandler)
		services.DELETE("/:id", hb.Professional.DeleteServiceHandler)
	}

	landing := r.Group("/api/landing")
	{
		landing.Use(middleware.JWTAuthProfessionalMiddleware(hb.ProfessionalRepo))
		landing.PUT("", hb.Professional.UpsertLandingPageHandler)
		landing.GET("", hb.Professional.GetLandingPageHandler)
	}
}

// RegisterCustomerRoutes registers the authenticated customer directory.
func RegisterCustomerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/customers")
	{
		api.Use(middleware.JWTAuthProfessionalMiddleware(hb.ProfessionalRepo))
		api.POST("", hb.Customer.CreateCustomerHandler)
		api.GET("", hb.Customer.ListCustomersHandler)
		api.GET("/:id", hb.Customer.GetCustomerHandler)
		api.PUT("/:id", hb.Customer.UpdateCustomerHandler)
		api.DELETE("/:id", hb.Customer.DeleteCustomerHandler)
	}
}

// RegisterAppointmentRoutes registers the authenticated agenda.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.JWTAuthProfessionalMiddleware(hb.ProfessionalRepo))
		api.GET("/availability", hb.Appointment.AvailabilityHandler)
		api.POST("", hb.Appointment.CreateAppointmentHandler)
		api.GET("", hb.Appointment.ListAppointmentsHandler)
		api.GET("/id/:id", hb.Appointment.GetAppointmentHandler)
		api.PATCH("/id/:id/status", hb.Appointment.UpdateStatusHandler)
		api.PATCH("/id/:id/reschedule", hb.Appointment.RescheduleHandler)
		api.DELETE("/id/:id", hb.Appointment.DeleteAppointmentHandler)
	}
}

// RegisterPublicRoutes registers the unauthenticated landing-page surface.
// The per-IP rate limiter is installed globally in main.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/public")
	{
		api.GET("/:slug", hb.Public.LandingViewHandler)
		api.GET("/:slug/availability", hb.Public.PublicAvailabilityHandler)
		api.POST("/:slug/book", hb.Public.PublicBookingHandler)
	}
}

// RegisterHealthRoute registers the liveness endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes registers all routes on the given router.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterProfessionalRoutes(r, hb)
	RegisterCustomerRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterPublicRoutes(r, hb)
	RegisterHealthRoute(r)
}
