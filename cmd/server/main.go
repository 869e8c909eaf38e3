package main

import (
	"context"
	"log"
	"net/http"

	"cinelog/docs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"cinelog/internal/auth"
	"cinelog/internal/cache"
	"cinelog/internal/config"
	"cinelog/internal/db"
	"cinelog/internal/handler"
	"cinelog/internal/model"
	"cinelog/internal/repository"
	"cinelog/internal/router"
	"cinelog/internal/service"
	"cinelog/internal/tmdb"
	"cinelog/internal/web"
)

// @title Cinelog API
// @version 1.0
// @description Movie catalog API with JWT authentication and TMDB import.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}
	log.Printf("Swagger documentation available at: http://%s/swagger/index.html", docs.SwaggerInfo.Host)

	e := echo.New()
	e.Use(middleware.RequestID())

	renderer, err := web.NewRenderer()
	if err != nil {
		log.Fatalf("parse templates: %v", err)
	}
	e.Renderer = renderer

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Movie{},
		&model.Rating{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	movieRepo := repository.NewMovieRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	userService := service.NewUserService(userRepo)
	movieService := service.NewMovieService(movieRepo, cacheClient)
	tmdbClient := tmdb.NewClient(cfg.TMDBBaseURL, cfg.TMDBAPIKey)
	importService := service.NewImportService(movieRepo, tmdbClient, cfg.TMDBImageBase, cacheClient)

	// Ensure an administrator account exists
	if err := authService.EnsureAdmin(context.Background(), cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatalf("bootstrap admin: %v", err)
	}

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	movieHandler := handler.NewMovieHandler(movieService)
	userHandler := handler.NewUserHandler(userService)
	importHandler := handler.NewImportHandler(importService)
	pageHandler := handler.NewPageHandler()

	// Register routes
	router.Register(
		e,
		jwtService,
		authHandler,
		movieHandler,
		userHandler,
		importHandler,
		pageHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
