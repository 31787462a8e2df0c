package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/platformbuilds/athlos-core/internal/api/handlers"
	"github.com/platformbuilds/athlos-core/internal/api/middleware"
	"github.com/platformbuilds/athlos-core/internal/auth"
	"github.com/platformbuilds/athlos-core/internal/config"
	"github.com/platformbuilds/athlos-core/internal/repo"
	"github.com/platformbuilds/athlos-core/internal/services"
	"github.com/platformbuilds/athlos-core/pkg/logger"
)

type Server struct {
	config     *config.Config
	logger     logger.Logger
	store      *repo.Store
	tokens     *auth.TokenService
	router     *gin.Engine
	httpServer *http.Server
}

func NewServer(cfg *config.Config, log logger.Logger, store *repo.Store, tokens *auth.TokenService) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	server := &Server{
		config: cfg,
		logger: log,
		store:  store,
		tokens: tokens,
		router: gin.New(),
	}

	server.setupMiddleware()
	server.setupRoutes()

	return server
}

func (s *Server) setupMiddleware() {
	s.router.Use(gin.Recovery())
	s.router.Use(middleware.CORSMiddleware(s.config.CORS))
	s.router.Use(middleware.RequestLogger(s.logger))
	s.router.Use(middleware.MetricsMiddleware())
}

func (s *Server) setupRoutes() {
	hasher := auth.NewPasswordHasher()

	authService := services.NewAuthService(s.store, s.tokens, hasher, s.logger)
	institutionService := services.NewInstitutionService(s.store, s.logger)
	sportService := services.NewSportService(s.store, s.logger)
	athleteService := services.NewAthleteService(s.store, s.logger)
	teamService := services.NewTeamService(s.store, s.logger)
	rosterService := services.NewRosterService(s.store, s.logger)
	sessionService := services.NewSessionService(s.store, s.logger)
	attendanceService := services.NewAttendanceService(s.store, s.logger)
	assessmentService := services.NewAssessmentService(s.store, s.logger)
	injuryService := services.NewInjuryService(s.store, s.logger)

	healthHandler := handlers.NewHealthHandler(s.store, s.logger)
	s.router.GET("/health", healthHandler.HealthCheck)
	s.router.GET("/ready", healthHandler.ReadinessCheck)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := s.router.Group("/api/v1")

	// Public auth endpoints
	authHandler := handlers.NewAuthHandler(authService)
	v1.POST("/auth/login", authHandler.Login)
	v1.POST("/auth/register", authHandler.Register)

	// Everything else requires a verified bearer token.
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(s.tokens, s.store, s.logger))

	institutionHandler := handlers.NewInstitutionHandler(institutionService)
	protected.POST("/institutions", institutionHandler.Create)
	protected.GET("/institutions", institutionHandler.List)
	protected.GET("/institutions/:id", institutionHandler.Get)
	protected.DELETE("/institutions/:id", institutionHandler.Delete)

	sportHandler := handlers.NewSportHandler(sportService)
	protected.POST("/sports", sportHandler.Create)
	protected.GET("/sports", sportHandler.List)

	athleteHandler := handlers.NewAthleteHandler(athleteService)
	protected.POST("/athletes", athleteHandler.Create)
	protected.GET("/athletes", athleteHandler.List)

	teamHandler := handlers.NewTeamHandler(teamService)
	protected.POST("/teams", teamHandler.Create)
	protected.GET("/teams", teamHandler.List)

	rosterHandler := handlers.NewRosterHandler(rosterService)
	protected.POST("/rosters", rosterHandler.Create)
	protected.GET("/rosters", rosterHandler.List)

	sessionHandler := handlers.NewSessionHandler(sessionService)
	protected.POST("/sessions", sessionHandler.Create)
	protected.GET("/sessions", sessionHandler.List)

	attendanceHandler := handlers.NewAttendanceHandler(attendanceService)
	protected.POST("/attendance", attendanceHandler.Create)
	protected.GET("/attendance", attendanceHandler.List)

	assessmentHandler := handlers.NewAssessmentHandler(assessmentService)
	protected.POST("/assessment-types", assessmentHandler.CreateType)
	protected.GET("/assessment-types", assessmentHandler.ListTypes)
	protected.POST("/assessments", assessmentHandler.CreateResult)
	protected.GET("/assessments", assessmentHandler.ListResults)

	injuryHandler := handlers.NewInjuryHandler(injuryService)
	protected.POST("/injuries", injuryHandler.Create)
	protected.GET("/injuries", injuryHandler.List)
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", "port", s.config.Port)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(shutdownCtx)
}

// Router exposes the gin engine for tests.
func (s *Server) Router() http.Handler { return s.router }
