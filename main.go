// File: main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"miagenda/config"
	"miagenda/cron"
	"miagenda/database"
	appointmentRepoPkg "miagenda/database/repository/appointment"
	customerRepoPkg "miagenda/database/repository/customer"
	landingRepoPkg "miagenda/database/repository/landing"
	professionalRepoPkg "miagenda/database/repository/professional"
	"miagenda/handlers"
	"miagenda/middleware"
	"miagenda/routes"
	"miagenda/services/booking"
	"miagenda/services/calendar"
	"miagenda/services/customer"
	"miagenda/services/notification"
	"miagenda/services/professional"
	"miagenda/services/tasks"
	"miagenda/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	if err := appointmentRepoPkg.EnsureIndexes(ctx); err != nil {
		logger.Sugar().Fatalf("main: failed to create appointment indexes: %v", err)
	}
	cancel()

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	proRepo := professionalRepoPkg.NewMongoProfessionalRepo()
	custRepo := customerRepoPkg.NewMongoCustomerRepo()
	apptRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	landRepo := landingRepoPkg.NewMongoLandingRepo()

	// async task queue and delivery channels.
	queueClient := tasks.NewClient()
	defer queueClient.Close()
	notifier := notification.NewDefaultNotificationService()

	// services.
	professionalService := &professional.DefaultProfessionalService{
		Repo:    proRepo,
		Landing: landRepo,
		Income:  apptRepo,
	}
	customerService := &customer.DefaultCustomerService{
		Repo: custRepo,
	}
	schedulingEngine := &booking.DefaultSchedulingEngine{
		Appointments:  apptRepo,
		Professionals: proRepo,
		Customers:     custRepo,
		Landing:       landRepo,
		Queue:         queueClient,
		Calendar:      calendar.NewGoogleCalendarService(),
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		ProfessionalRepo: proRepo,
		Professional:     handlers.NewProfessionalHandler(professionalService),
		Customer:         handlers.NewCustomerHandler(customerService),
		Appointment:      handlers.NewAppointmentHandler(schedulingEngine, apptRepo),
		Public:           handlers.NewPublicHandler(landRepo, proRepo, schedulingEngine),
	}

	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Start the notification worker.
	worker := cron.NewWorker(apptRepo, notifier)
	if err := worker.Start(); err != nil {
		logger.Sugar().Fatalf("main: failed to start task worker: %v", err)
	}

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	worker.Shutdown()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
