package main

import (
	"ChronicStable/cache"
	"ChronicStable/config"
	"ChronicStable/database"
	"ChronicStable/routes"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env when present; real environments set variables directly
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration from the environment
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Initialize the database
	db, err := database.InitDB(context.Background(), cfg.DBURL)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Initialize Redis
	if err := database.InitializeRedis(cfg.RedisAddress); err != nil {
		log.Fatalf("failed to initialize Redis client: %v", err)
	}

	// Initialize the session store
	store, err := cache.NewStore()
	if err != nil {
		log.Fatalf("failed to initialize session store: %v", err)
	}

	// Pass the config to SetupRoutes
	handler := routes.SetupRoutes(store, cfg, db)

	// Configure and start the server
	srv := &http.Server{
		Addr:           ":8930",
		Handler:        handler,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   90 * time.Second,
		MaxHeaderBytes: 1 << 20,
		IdleTimeout:    30 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()
		log.Println("Starting server on :8930")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listenAndServe(): %v", err)
		}
	}()

	// Graceful shutdown handling
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	// Create a context with a timeout for shutdown
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	log.Println("Shutting down server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server shutdown failed: %+v", err)
	}

	wg.Wait() // Wait for all goroutines to finish before exiting
	log.Println("Server exited gracefully")
}

// loadConfig loads configuration from environment variables. Missing required
// settings are fatal: the server never starts half-configured.
func loadConfig() (*config.AppConfig, error) {
	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		return nil, errors.New("missing DB_URL environment variable")
	}

	redisAddress := os.Getenv("REDIS_URL")
	if redisAddress == "" {
		return nil, errors.New("missing REDIS_URL environment variable")
	}

	llmBaseURL := os.Getenv("LLM_BASE_URL")
	if llmBaseURL == "" {
		return nil, errors.New("missing LLM_BASE_URL environment variable")
	}

	llmModel := os.Getenv("LLM_MODEL")
	if llmModel == "" {
		return nil, errors.New("missing LLM_MODEL environment variable")
	}

	return &config.AppConfig{
		DBURL:                   dbURL,
		RedisAddress:            redisAddress,
		LLMBaseURL:              llmBaseURL,
		LLMModel:                llmModel,
		LLMTimeout:              envDuration("LLM_TIMEOUT", 60*time.Second),
		ContextMaxConsultations: envInt("CONTEXT_MAX_CONSULTATIONS", 3),
		ChatHistoryLimit:        envInt("CHAT_HISTORY_LIMIT", 50),
		SessionTTL:              envDuration("SESSION_TTL", 30*time.Minute),
		SMTPHost:                os.Getenv("SMTP_HOST"),
		SMTPPort:                envInt("SMTP_PORT", 587),
		SMTPUser:                os.Getenv("SMTP_USER"),
		SMTPPass:                os.Getenv("SMTP_PASS"),
	}, nil
}

func envInt(name string, defaultValue int) int {
	if value := os.Getenv(name); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
		log.Printf("Warning: Invalid integer value for %s, using default: %d", name, defaultValue)
	}
	return defaultValue
}

func envDuration(name string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(name); value != "" {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
		log.Printf("Warning: Invalid duration value for %s, using default: %s", name, defaultValue.String())
	}
	return defaultValue
}
