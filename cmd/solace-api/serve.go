package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/solace-app/solace/backend/internal/config"
	"github.com/solace-app/solace/backend/internal/handlers"
	"github.com/solace-app/solace/backend/internal/logger"
	"github.com/solace-app/solace/backend/internal/middleware"
	"github.com/solace-app/solace/backend/internal/repository"
	"github.com/solace-app/solace/backend/internal/service"
	"github.com/solace-app/solace/backend/pkg/supabase"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API server and listen for requests.`,
	RunE:  runServe,
}

var (
	port string
)

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Override port from flag if provided
	if port != "" {
		cfg.Server.Port = port
	}

	// Initialize logging
	log := logger.NewSlogLogger(logger.Config{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
	})
	logger.SetDefault(log)

	log.Info("starting solace API server",
		logger.String("env", cfg.Server.Env),
		logger.String("supabase_url", cfg.Supabase.URL),
	)

	// Initialize Supabase client
	supabaseClient := supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.ServiceKey)

	// Initialize repositories
	profileRepo := repository.NewProfileRepository(supabaseClient)
	moodLogRepo := repository.NewMoodLogRepository(supabaseClient)
	journalRepo := repository.NewJournalRepository(supabaseClient)
	engagementRepo := repository.NewEngagementRepository(supabaseClient)
	eventRepo := repository.NewAppEventRepository(supabaseClient)

	// Initialize services
	profileService := service.NewProfileService(profileRepo, nil)
	moodLogService := service.NewMoodLogService(moodLogRepo, eventRepo, nil)
	journalService := service.NewJournalService(journalRepo, eventRepo, nil)
	insightsService := service.NewInsightsService(moodLogRepo, nil, nil)
	analyticsService := service.NewAnalyticsService(engagementRepo, eventRepo, nil)
	dataService := service.NewDataService(profileRepo, moodLogRepo, journalRepo, engagementRepo, eventRepo)

	// Initialize handlers
	profileHandler := handlers.NewProfileHandler(profileService)
	moodLogHandler := handlers.NewMoodLogHandler(moodLogService)
	journalHandler := handlers.NewJournalHandler(journalService)
	insightsHandler := handlers.NewInsightsHandler(insightsService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	dataHandler := handlers.NewDataHandler(dataService)

	// Set Gin mode based on environment
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RateLimit())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"env":    cfg.Server.Env,
		})
	})

	// Writes get a stricter per-IP limit; check-ins are user-paced
	writeLimit := middleware.RateLimitWrite()

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Profile routes
		v1.POST("/profile", writeLimit, profileHandler.UpsertProfile)
		v1.GET("/profile", profileHandler.GetProfile)

		// Mood log routes
		v1.POST("/moodlog", writeLimit, moodLogHandler.CreateMoodLog)
		v1.GET("/moodlog", moodLogHandler.ListMoodLogs)

		// Journal routes
		v1.POST("/journal", writeLimit, journalHandler.CreateEntry)
		v1.GET("/journal", journalHandler.ListEntries)

		// Insights and suggestion routes
		v1.GET("/insights", insightsHandler.GetInsights)
		v1.GET("/suggestions", insightsHandler.GetSuggestions)

		// Analytics routes
		v1.POST("/engagement", writeLimit, analyticsHandler.TrackEngagement)
		v1.POST("/event", writeLimit, analyticsHandler.TrackEvent)

		// Data export and deletion routes
		v1.GET("/export", dataHandler.Export)
		v1.DELETE("/data", dataHandler.DeleteAll)
	}

	log.Info("server listening", logger.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
