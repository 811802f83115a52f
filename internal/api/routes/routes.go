package routes

import (
	"fmt"
	"net/http"
	"time"

	"publiflow-backend/internal/api/handlers"
	"publiflow-backend/internal/api/middleware"
	"publiflow-backend/internal/auth"
	"publiflow-backend/internal/calendar"
	"publiflow-backend/internal/config"
	"publiflow-backend/internal/metrics"
	"publiflow-backend/internal/repository"
	"publiflow-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint; set at build time
var Version = "dev"

// calendarHTTPClient returns the client used for calendar and token calls
func calendarHTTPClient(cfg *config.Config) *http.Client {
	return &http.Client{Timeout: time.Duration(cfg.CalendarHTTPTimeoutSec) * time.Second}
}

func newOAuthClient(cfg *config.Config, httpClient *http.Client) *calendar.OAuthClient {
	return calendar.NewOAuthClient(calendar.OAuthConfig{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURL:  cfg.GoogleRedirectURL,
		AuthURL:      cfg.GoogleAuthURL,
		TokenURL:     cfg.GoogleTokenURL,
	}, httpClient)
}

// NewCalendarSyncService wires the sync worker against the database and the calendar provider
func NewCalendarSyncService(db *gorm.DB, cfg *config.Config) *service.CalendarSyncService {
	httpClient := calendarHTTPClient(cfg)
	return service.NewCalendarSyncService(
		repository.NewDeliverableRepository(db),
		repository.NewCalendarConnectionRepository(db),
		calendar.NewClient(cfg.GoogleCalendarBaseURL, httpClient),
		newOAuthClient(cfg, httpClient),
	)
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Prometheus())

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	partnerRepo := repository.NewPartnerRepository(db)
	dealRepo := repository.NewDealRepository(db)
	deliverableRepo := repository.NewDeliverableRepository(db)
	ideaRepo := repository.NewIdeaRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	connectionRepo := repository.NewCalendarConnectionRepository(db)

	// Initialize auth
	authService, err := auth.NewAuthService(cfg.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Calendar provider; the consent flow stays disabled without client credentials
	httpClient := calendarHTTPClient(cfg)
	oauthClient := newOAuthClient(cfg, httpClient)
	var consent service.CalendarOAuthInterface
	if cfg.HasGoogleCredentials() {
		consent = oauthClient
	} else {
		logrus.Warn("GOOGLE_CLIENT_ID or GOOGLE_CLIENT_SECRET not set, calendar connect is disabled")
	}

	// Initialize services
	partnerService := service.NewPartnerService(partnerRepo, validator)
	dealService := service.NewDealService(dealRepo, partnerRepo, validator)
	deliverableService := service.NewDeliverableService(deliverableRepo, dealRepo, validator)
	ideaService := service.NewIdeaService(ideaRepo, cfg.StageScheme(), validator)
	expenseService := service.NewExpenseService(expenseRepo, validator)
	dashboardService := service.NewDashboardService(dealRepo, deliverableRepo, expenseRepo)
	reportService := service.NewReportService(dealRepo)
	profileService := service.NewProfileService(profileRepo, validator)
	connectionService := service.NewCalendarConnectionService(connectionRepo, consent, auth.NewStateSigner(cfg.JWTSecret))
	syncService := service.NewCalendarSyncService(
		deliverableRepo,
		connectionRepo,
		calendar.NewClient(cfg.GoogleCalendarBaseURL, httpClient),
		oauthClient,
	)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, Version, cfg.HasGoogleCredentials())
	partnerHandler := handlers.NewPartnerHandler(partnerService)
	dealHandler := handlers.NewDealHandler(dealService, reportService)
	deliverableHandler := handlers.NewDeliverableHandler(deliverableService)
	ideaHandler := handlers.NewIdeaHandler(ideaService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	profileHandler := handlers.NewProfileHandler(profileService)
	calendarHandler := handlers.NewCalendarHandler(connectionService, syncService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Prometheus scrape endpoint
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Helper endpoint for token validation
	router.POST("/api/auth/validate", authHandler.ValidateToken)

	v1 := router.Group("/api/v1")

	// Public routes: the partner report and the provider redirect
	public := v1.Group("")
	{
		public.GET("/public/reports/:id",
			middleware.RateLimit(cfg.ReportRateLimitRPS, cfg.ReportRateLimitBurst),
			dealHandler.GetReport)
		public.GET("/calendar/google/callback", calendarHandler.Callback)
	}

	// Everything else requires a session token
	protected := v1.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		partners := protected.Group("/partners")
		{
			partners.GET("", partnerHandler.ListPartners)
			partners.POST("", partnerHandler.CreatePartner)
			partners.DELETE("/:id", partnerHandler.DeletePartner)
		}

		deals := protected.Group("/deals")
		{
			deals.GET("", dealHandler.ListDeals)
			deals.POST("", dealHandler.CreateDeal)
			deals.GET("/:id", dealHandler.GetDeal)
			deals.PATCH("/:id/status", dealHandler.UpdateDealStatus)
			deals.DELETE("/:id", dealHandler.DeleteDeal)
			deals.POST("/:id/deliverables", deliverableHandler.CreateDeliverable)
		}

		deliverables := protected.Group("/deliverables")
		{
			deliverables.POST("/:id/toggle", deliverableHandler.ToggleDeliverable)
			deliverables.PATCH("/:id/status", deliverableHandler.UpdateDeliverableStatus)
			deliverables.DELETE("/:id", deliverableHandler.DeleteDeliverable)
		}

		ideas := protected.Group("/ideas")
		{
			ideas.GET("", ideaHandler.ListIdeas)
			ideas.POST("", ideaHandler.CreateIdea)
			ideas.GET("/board", ideaHandler.GetBoard)
			ideas.POST("/board/moves", ideaHandler.MoveCard)
			ideas.PUT("/:id", ideaHandler.UpdateIdea)
			ideas.PATCH("/:id/status", ideaHandler.UpdateIdeaStatus)
			ideas.DELETE("/:id", ideaHandler.DeleteIdea)
		}

		expenses := protected.Group("/expenses")
		{
			expenses.GET("", expenseHandler.ListExpenses)
			expenses.POST("", expenseHandler.CreateExpense)
			expenses.DELETE("/:id", expenseHandler.DeleteExpense)
		}

		protected.GET("/dashboard", dashboardHandler.GetOverview)
		protected.GET("/finance", dashboardHandler.GetFinance)

		profile := protected.Group("/profile")
		{
			profile.GET("", profileHandler.GetProfile)
			profile.PUT("", profileHandler.UpdateProfile)
			profile.GET("/subscription", profileHandler.GetSubscription)
		}

		cal := protected.Group("/calendar")
		{
			cal.GET("", deliverableHandler.ListCalendar)
			cal.GET("/google/connect", calendarHandler.GetConnectURL)
			cal.GET("/google/status", calendarHandler.GetStatus)
			cal.DELETE("/google", calendarHandler.Disconnect)
			cal.POST("/sync", calendarHandler.Sync)
		}
	}

	return router, nil
}
