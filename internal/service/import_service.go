package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"cinelog/internal/cache"
	apperrors "cinelog/internal/errors"
	"cinelog/internal/model"
	"cinelog/internal/repository"
	"cinelog/internal/tmdb"
)

// PopularFetcher is the slice of the TMDB client the import needs.
type PopularFetcher interface {
	Popular(ctx context.Context, page int) ([]tmdb.MovieItem, error)
}

// ImportService reconciles TMDB popular movies into the catalog.
type ImportService interface {
	ImportPopular(ctx context.Context, page int) (added int, err error)
}

type importService struct {
	repo      repository.MovieRepository
	fetcher   PopularFetcher
	imageBase string
	cache     *cache.Client
}

// NewImportService builds an ImportService. imageBase is prefixed to TMDB
// poster path fragments.
func NewImportService(repo repository.MovieRepository, fetcher PopularFetcher, imageBase string, cache *cache.Client) ImportService {
	return &importService{
		repo:      repo,
		fetcher:   fetcher,
		imageBase: imageBase,
		cache:     cache,
	}
}

// ImportPopular fetches one page of popular movies and stages every item
// whose TMDB id is not yet in the catalog, committing the batch at the end.
// Re-running over the same upstream page adds nothing.
func (s *importService) ImportPopular(ctx context.Context, page int) (int, error) {
	items, err := s.fetcher.Popular(ctx, page)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", apperrors.ErrUpstream, err)
	}

	staged := make([]model.Movie, 0, len(items))
	for _, item := range items {
		existing, err := s.repo.FindByTMDBID(ctx, item.ID)
		if err == nil && existing != nil {
			continue
		}
		if err != nil && err != gorm.ErrRecordNotFound {
			return 0, fmt.Errorf("check tmdb id %d: %w", item.ID, err)
		}

		movie := model.Movie{
			Title:       item.Title,
			Description: item.Overview,
			TMDBID:      item.ID,
		}
		if item.PosterPath != "" {
			movie.PosterURL = s.imageBase + item.PosterPath
		}
		staged = append(staged, movie)
	}

	if err := s.repo.CreateBatch(ctx, staged); err != nil {
		return 0, fmt.Errorf("save movies: %w", err)
	}

	if len(staged) > 0 {
		_ = s.cache.Delete(ctx, movieListCacheKey)
	}
	return len(staged), nil
}
