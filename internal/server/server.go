package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dailytodo/internal/auth"
	"dailytodo/internal/config"
	"dailytodo/internal/export"
	"dailytodo/internal/handler"
	"dailytodo/internal/middleware"
	"dailytodo/internal/repository"
	"dailytodo/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Config *config.Config
}

// Handlers groups everything NewRouter mounts.
type Handlers struct {
	Auth      *handler.AuthHandler
	Tasks     *handler.TaskHandler
	DailyLogs *handler.DailyLogHandler
}

func Init(ctx context.Context, cfg *config.Config) (*Server, error) {
	db, err := repository.NewDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("❌ failed to connect to DB: %w", err)
	}
	log.Printf("✅ Connected to %s database", cfg.DBDriver)

	if cfg.GoogleClientID == "" {
		log.Println("⚠️  GOOGLE_CLIENT_ID is not set, Google sign-in will reject every token")
	}
	verifier, err := auth.NewGoogleVerifier(ctx, cfg.GoogleClientID)
	if err != nil {
		return nil, fmt.Errorf("❌ failed to init Google verifier: %w", err)
	}
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiry)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	dailyLogRepo := repository.NewDailyLogRepository(db)

	// Initialize services
	authService := service.NewAuthService(verifier, userRepo, tokens)
	taskService := service.NewTaskService(userRepo)
	taskLogService := service.NewTaskLogService(dailyLogRepo, cfg.UpsertRetries)
	renderer := export.NewPDFRenderer()

	r := NewRouter(Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Tasks:     handler.NewTaskHandler(taskService, authService, renderer),
		DailyLogs: handler.NewDailyLogHandler(taskLogService, authService, renderer),
	}, tokens)

	return &Server{
		Engine: r,
		DB:     db,
		Config: cfg,
	}, nil
}

func NewRouter(h Handlers, tokens middleware.TokenParser) *gin.Engine {
	r := gin.Default()

	// Public routes
	r.GET("/health", handler.Health)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.POST("/api/auth/google/login", h.Auth.GoogleLogin)

	// Protected routes - require authentication
	api := r.Group("/api")
	api.Use(middleware.JWTAuthMiddleware(tokens))
	{
		api.GET("/users/me", h.Auth.Me)

		// Flat task list
		api.GET("/tasks", h.Tasks.List)
		api.POST("/tasks", h.Tasks.Create)
		api.GET("/tasks/export", h.Tasks.Export)
		api.PUT("/tasks/:id", h.Tasks.Update)
		api.DELETE("/tasks/:id", h.Tasks.Delete)

		// Daily log
		api.GET("/days/:day/tasks", h.DailyLogs.List)
		api.POST("/days/:day/tasks", h.DailyLogs.Create)
		api.GET("/days/:day/tasks/export", h.DailyLogs.Export)
		api.PUT("/days/:day/tasks/:id", h.DailyLogs.Update)
		api.DELETE("/days/:day/tasks/:id", h.DailyLogs.Delete)
	}
	return r
}

// Handler wraps the engine with the CORS policy from the config.
func (s *Server) Handler() http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   s.Config.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
	})
	return c.Handler(s.Engine)
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Handler(),
	}

	go func() {
		log.Printf("🚀 Server running on port %s\n", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %s", err)
	}

	if sqlDB, err := s.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("⚠️  Failed to close database: %s", err)
		}
	}

	log.Println("✅ Server exited properly")
}
