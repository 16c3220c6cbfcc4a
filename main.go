package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/formworks/survey-server/src/config"
	"github.com/formworks/survey-server/src/database"
	"github.com/formworks/survey-server/src/handlers"
	"github.com/formworks/survey-server/src/logging"
	"github.com/formworks/survey-server/src/middleware"
	"github.com/formworks/survey-server/src/repositories"
	"github.com/formworks/survey-server/src/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load .env if present, then configuration
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Initialize structured logging
	logging.Setup(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	log.Info().
		Int("port", cfg.Port).
		Str("log_level", cfg.LogLevel).
		Msg("starting server")

	// Initialize database
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	db, err := database.New(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer db.Close()

	log.Info().Msg("database connected")

	// Initialize services
	hasher := services.NewPasswordHasher(cfg.BcryptCost)
	tokens := services.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	adminRepo := repositories.NewPostgresAdminRepository(db.GetPool())
	surveyRepo := repositories.NewPostgresSurveyRepository(db.GetPool())
	adminService := services.NewAdminService(adminRepo, hasher)
	surveyService := services.NewSurveyService(surveyRepo)

	seedAdmins(adminService, cfg)

	// Create Gin router
	router := gin.New()
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(gin.Recovery())

	// CORS: single frontend origin, credentials allowed so the session
	// cookie can travel cross-origin
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendOrigin},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	setupRoutes(router, db, adminService, surveyService, tokens, cfg)

	// Create HTTP server with timeouts
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Int("port", cfg.Port).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	sig := <-sigChan

	log.Info().Str("signal", sig.String()).Msg("received shutdown signal")

	// Graceful shutdown with timeout
	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}

	log.Info().Msg("server shut down successfully")
}

// seedAdmins creates admin accounts on first run: one from
// ADMIN_USERNAME/ADMIN_PASSWORD and any listed in the YAML seed file.
// Existing accounts are never touched.
func seedAdmins(adminService *services.AdminService, cfg *config.Config) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if cfg.AdminUsername != "" && cfg.AdminPassword != "" {
		if _, created, err := adminService.EnsureAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
			log.Error().Err(err).Msg("failed to seed admin user")
		} else if created {
			log.Info().Str("username", cfg.AdminUsername).Msg("admin user created")
		}
	}

	if cfg.AdminSeedFile == "" {
		return
	}

	accounts, err := config.LoadSeedFile(cfg.AdminSeedFile)
	if err != nil {
		log.Error().Err(err).Str("path", cfg.AdminSeedFile).Msg("failed to load admin seed file")
		return
	}
	for _, acc := range accounts {
		if _, created, err := adminService.EnsureAdmin(ctx, acc.Username, acc.Password); err != nil {
			log.Error().Err(err).Str("username", acc.Username).Msg("failed to seed admin user")
		} else if created {
			log.Info().Str("username", acc.Username).Msg("admin user created")
		}
	}
}

func setupRoutes(router *gin.Engine, db *database.Database, adminService *services.AdminService, surveyService *services.SurveyService, tokens *services.TokenService, cfg *config.Config) {
	cookies := handlers.CookiePolicy{
		Secure:    cfg.CookieSecure,
		CrossSite: cfg.CrossSiteCookies,
	}

	healthHandler := handlers.NewHealthHandler(db)
	adminHandler := handlers.NewAdminHandler(adminService, tokens, cookies, int(cfg.TokenTTL.Seconds()))
	surveyHandler := handlers.NewSurveyHandler(surveyService)

	// Health check endpoints
	router.GET("/health", healthHandler.HandleHealth)
	router.GET("/ready", healthHandler.HandleReady)

	// Public survey submission
	router.POST("/api/surveys", surveyHandler.HandleCreate)

	// Admin authentication
	router.POST("/api/admin/login", middleware.LoginRateLimitMiddleware(), adminHandler.HandleLogin)
	router.POST("/api/admin/logout", adminHandler.HandleLogout)

	// Admin read path, behind the auth gate
	router.GET("/api/admin/surveys", middleware.AuthMiddleware(tokens), surveyHandler.HandleList)
}
