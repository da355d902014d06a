package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/resumecraft/resume-builder-api/internal/api/handler"
	"github.com/resumecraft/resume-builder-api/internal/api/middleware"
	"github.com/resumecraft/resume-builder-api/internal/core/service"
	"github.com/resumecraft/resume-builder-api/internal/infrastructure/config"
	mongodb "github.com/resumecraft/resume-builder-api/internal/infrastructure/db/mongo"
	redisdb "github.com/resumecraft/resume-builder-api/internal/infrastructure/db/redis"
	"github.com/resumecraft/resume-builder-api/internal/infrastructure/google"
	"github.com/resumecraft/resume-builder-api/internal/render"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	// The resume editor posts embedded images as data URLs.
	e.Use(echomiddleware.BodyLimit("50M"))
	e.Use(echoprometheus.NewMiddleware("resumebuilder"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	resumeRepo := mongodb.NewResumeRepository(db)
	artifacts := redisdb.NewArtifactStore(rdb)
	verifier := google.NewVerifier(cfg.Google.ClientID, log)

	sessionSecret := cfg.Google.ClientSecret
	authService := service.NewAuthService(verifier, userRepo, resumeRepo, sessionSecret, 24*time.Hour, log)
	resumeService := service.NewResumeService(userRepo, resumeRepo, log)
	renderService := service.NewRenderService(render.NewPDFRenderer(), artifacts, 300*time.Second, log)

	authHandler := handler.NewAuthHandler(authService, userRepo)
	resumeHandler := handler.NewResumeHandler(resumeService)
	pdfHandler := handler.NewPDFHandler(renderService)
	authMiddleware := middleware.Auth(sessionSecret)

	// --- Auth routes ---
	e.POST("/signup", authHandler.Signup)
	e.POST("/login", authHandler.Login)
	e.GET("/me", authHandler.Me, authMiddleware)

	// --- Resume routes ---
	// Both look the user up by the posted email, not the session token,
	// so tokens issued on other devices keep working.
	e.POST("/save", resumeHandler.Save)
	e.POST("/get-resume", resumeHandler.Get)

	// --- PDF routes ---
	e.POST("/create-pdf", pdfHandler.Create)
	e.GET("/fetch-pdf", pdfHandler.Fetch)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Static assets + greeting ---
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Hello from 'Resume Builder' Web App")
	})
	e.Static("/", cfg.PublicDir)

	return e
}
