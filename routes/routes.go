package routes

import (
	"ChronicStable/cache"
	"ChronicStable/config"
	"ChronicStable/controllers"
	"ChronicStable/handlers"
	"ChronicStable/llm"
	"ChronicStable/middlewares"
	"ChronicStable/repositories"
	"ChronicStable/services"
	"ChronicStable/utils"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(store *cache.Store, cfg *config.AppConfig, db *gorm.DB) http.Handler {
	// Set Gin to release mode
	gin.SetMode(gin.ReleaseMode)

	// Create a Gin router
	router := gin.Default()

	// Create and apply CORS middleware configuration
	corsConfig := &middlewares.CorsConfig{
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:8930"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}
	router.Use(middlewares.CorsMiddleware(corsConfig))

	// Apply rate limiter middleware
	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: 15,
		Burst:             30,
	}))

	// Apply logging middleware
	router.Use(middlewares.LoggingMiddleware())

	// Initialize repositories
	doctorRepo := repositories.NewDoctorRepository(db)
	patientRepo := repositories.NewPatientRepository(db)
	consultationRepo := repositories.NewConsultationRepository(db)
	appointmentRepo := repositories.NewAppointmentRepository(db)
	chatSessionRepo := repositories.NewChatSessionRepository(store, cfg.SessionTTL)

	// Initialize services
	doctorService := services.NewDoctorService(doctorRepo)
	patientService := services.NewPatientService(patientRepo)
	consultationService := services.NewConsultationService(consultationRepo)
	appointmentService := services.NewAppointmentService(appointmentRepo, patientRepo, utils.NewMailer(cfg))
	contextService := services.NewContextService(patientRepo, consultationRepo, appointmentRepo, doctorRepo, cfg.ContextMaxConsultations)

	llmClient := llm.NewCompletionClient(cfg.LLMBaseURL, cfg.LLMModel, cfg.LLMTimeout)
	chatService := services.NewChatService(llmClient, chatSessionRepo, contextService, cfg.ChatHistoryLimit)

	// Initialize handlers
	doctorHandler := handlers.NewDoctorHandler(doctorService, patientService)
	patientHandler := handlers.NewPatientHandler(patientService)
	consultationHandler := handlers.NewConsultationHandler(consultationService)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)
	chatHandler := handlers.NewChatHandler(chatService, contextService)

	// Register routes
	controllers.SetupAPIRoutes(router, doctorHandler, patientHandler, consultationHandler, appointmentHandler, chatHandler)
	controllers.SetupRootRoutes(router)

	return router
}
