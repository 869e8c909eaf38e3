package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"cinelog/internal/cache"
	apperrors "cinelog/internal/errors"
	"cinelog/internal/model"
	"cinelog/internal/repository"
)

const (
	movieListCacheKey = "movies:all"
	movieListCacheTTL = 5 * time.Minute
)

// MovieInput carries catalog fields for create and partial update. Nil
// pointers on update mean "keep the stored value".
type MovieInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	PosterURL   *string `json:"poster_url"`
	TMDBID      *int64  `json:"tmdb_id"`
}

// MovieService exposes catalog operations.
type MovieService interface {
	ListMovies(ctx context.Context) ([]model.Movie, error)
	SearchMovies(ctx context.Context, query string) ([]model.Movie, error)
	CreateMovie(ctx context.Context, in MovieInput) (*model.Movie, error)
	UpdateMovie(ctx context.Context, id uint, in MovieInput) (*model.Movie, error)
	DeleteMovie(ctx context.Context, id uint) (title string, err error)
}

type movieService struct {
	repo  repository.MovieRepository
	cache *cache.Client
}

// NewMovieService builds a MovieService with repository and cache.
func NewMovieService(repo repository.MovieRepository, cache *cache.Client) MovieService {
	return &movieService{repo: repo, cache: cache}
}

// ListMovies returns the full catalog, served from cache when warm.
func (s *movieService) ListMovies(ctx context.Context) ([]model.Movie, error) {
	if data, _ := s.cache.Get(ctx, movieListCacheKey); data != nil {
		var cached []model.Movie
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	movies, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	if movies == nil {
		// an empty catalog must serialize as [], never null
		movies = []model.Movie{}
	}

	if payload, err := json.Marshal(movies); err == nil {
		_ = s.cache.Set(ctx, movieListCacheKey, payload, movieListCacheTTL)
	}
	return movies, nil
}

// SearchMovies matches the query against title or description. An empty
// query returns an empty list, not the whole catalog.
func (s *movieService) SearchMovies(ctx context.Context, query string) ([]model.Movie, error) {
	if strings.TrimSpace(query) == "" {
		return []model.Movie{}, nil
	}
	movies, err := s.repo.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search movies: %w", err)
	}
	if movies == nil {
		movies = []model.Movie{}
	}
	return movies, nil
}

// CreateMovie adds a catalog entry, rejecting duplicate TMDB ids.
func (s *movieService) CreateMovie(ctx context.Context, in MovieInput) (*model.Movie, error) {
	if in.Title == nil || *in.Title == "" ||
		in.Description == nil || *in.Description == "" ||
		in.TMDBID == nil {
		return nil, apperrors.ErrMissingFields
	}

	existing, err := s.repo.FindByTMDBID(ctx, *in.TMDBID)
	if err == nil && existing != nil {
		return nil, apperrors.ErrMovieExists
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check tmdb id: %w", err)
	}

	movie := &model.Movie{
		Title:       *in.Title,
		Description: *in.Description,
		TMDBID:      *in.TMDBID,
	}
	if in.PosterURL != nil {
		movie.PosterURL = *in.PosterURL
	}

	if err := s.repo.Create(ctx, movie); err != nil {
		return nil, fmt.Errorf("create movie: %w", err)
	}

	_ = s.cache.Delete(ctx, movieListCacheKey)
	return movie, nil
}

// UpdateMovie applies a partial update; omitted fields keep their values.
func (s *movieService) UpdateMovie(ctx context.Context, id uint, in MovieInput) (*model.Movie, error) {
	movie, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrMovieNotFound
		}
		return nil, fmt.Errorf("find movie: %w", err)
	}

	if in.Title != nil {
		movie.Title = *in.Title
	}
	if in.Description != nil {
		movie.Description = *in.Description
	}
	if in.PosterURL != nil {
		movie.PosterURL = *in.PosterURL
	}

	if err := s.repo.Update(ctx, movie); err != nil {
		return nil, fmt.Errorf("update movie: %w", err)
	}

	_ = s.cache.Delete(ctx, movieListCacheKey)
	return movie, nil
}

// DeleteMovie removes a catalog entry and reports its title.
func (s *movieService) DeleteMovie(ctx context.Context, id uint) (string, error) {
	movie, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", apperrors.ErrMovieNotFound
		}
		return "", fmt.Errorf("find movie: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return "", fmt.Errorf("delete movie: %w", err)
	}

	_ = s.cache.Delete(ctx, movieListCacheKey)
	return movie.Title, nil
}
