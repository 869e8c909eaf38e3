package main

import (
	"context"
	"flag"
	"log"

	"cinelog/internal/cache"
	"cinelog/internal/config"
	"cinelog/internal/db"
	"cinelog/internal/model"
	"cinelog/internal/repository"
	"cinelog/internal/service"
	"cinelog/internal/tmdb"
)

func main() {
	page := flag.Int("page", 1, "TMDB popular movies page to import")
	flag.Parse()

	log.Println("Starting catalog import...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.Movie{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	movieRepo := repository.NewMovieRepository(gormDB)
	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	tmdbClient := tmdb.NewClient(cfg.TMDBBaseURL, cfg.TMDBAPIKey)
	importService := service.NewImportService(movieRepo, tmdbClient, cfg.TMDBImageBase, cacheClient)

	added, err := importService.ImportPopular(context.Background(), *page)
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}

	log.Printf("Import completed: %d movies added from page %d", added, *page)
}
