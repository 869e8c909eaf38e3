package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"cinelog/internal/model"
)

// MovieRepository defines catalog persistence operations.
type MovieRepository interface {
	Create(ctx context.Context, movie *model.Movie) error
	Update(ctx context.Context, movie *model.Movie) error
	FindByID(ctx context.Context, id uint) (*model.Movie, error)
	FindByTMDBID(ctx context.Context, tmdbID int64) (*model.Movie, error)
	List(ctx context.Context) ([]model.Movie, error)
	Search(ctx context.Context, query string) ([]model.Movie, error)
	Delete(ctx context.Context, id uint) error
	CreateBatch(ctx context.Context, movies []model.Movie) error
}

type movieRepository struct {
	db *gorm.DB
}

// NewMovieRepository builds a GORM-backed repository.
func NewMovieRepository(db *gorm.DB) MovieRepository {
	return &movieRepository{db: db}
}

func (r *movieRepository) Create(ctx context.Context, movie *model.Movie) error {
	return r.db.WithContext(ctx).Create(movie).Error
}

func (r *movieRepository) Update(ctx context.Context, movie *model.Movie) error {
	return r.db.WithContext(ctx).Save(movie).Error
}

func (r *movieRepository) FindByID(ctx context.Context, id uint) (*model.Movie, error) {
	var movie model.Movie
	if err := r.db.WithContext(ctx).First(&movie, id).Error; err != nil {
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) FindByTMDBID(ctx context.Context, tmdbID int64) (*model.Movie, error) {
	var movie model.Movie
	if err := r.db.WithContext(ctx).Where("tmdb_id = ?", tmdbID).First(&movie).Error; err != nil {
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) List(ctx context.Context) ([]model.Movie, error) {
	movies := make([]model.Movie, 0)
	if err := r.db.WithContext(ctx).Find(&movies).Error; err != nil {
		return nil, err
	}
	return movies, nil
}

// Search matches the query case-insensitively against title or description.
func (r *movieRepository) Search(ctx context.Context, query string) ([]model.Movie, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	movies := make([]model.Movie, 0)
	if err := r.db.WithContext(ctx).
		Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern).
		Find(&movies).Error; err != nil {
		return nil, err
	}
	return movies, nil
}

func (r *movieRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Movie{}, id).Error
}

// CreateBatch inserts all movies in one transaction so a partially failed
// import never leaves half a page behind.
func (r *movieRepository) CreateBatch(ctx context.Context, movies []model.Movie) error {
	if len(movies) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&movies).Error
	})
}
