package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "cinelog/internal/errors"
	"cinelog/internal/model"
	"cinelog/internal/tmdb"
)

// MockPopularFetcher is a mock implementation of PopularFetcher.
type MockPopularFetcher struct {
	mock.Mock
}

func (m *MockPopularFetcher) Popular(ctx context.Context, page int) ([]tmdb.MovieItem, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tmdb.MovieItem), args.Error(1)
}

const testImageBase = "https://image.tmdb.org/t/p/w500"

func TestImportService_ImportPopular(t *testing.T) {
	items := []tmdb.MovieItem{
		{ID: 100, Title: "Known", Overview: "already in catalog", PosterPath: "/known.jpg"},
		{ID: 200, Title: "Fresh", Overview: "new arrival", PosterPath: "/fresh.jpg"},
	}

	t.Run("skips entries whose tmdb id exists", func(t *testing.T) {
		mockRepo := new(MockMovieRepository)
		fetcher := new(MockPopularFetcher)
		fetcher.On("Popular", mock.Anything, 1).Return(items, nil)
		mockRepo.On("FindByTMDBID", mock.Anything, int64(100)).Return(&model.Movie{TMDBID: 100}, nil)
		mockRepo.On("FindByTMDBID", mock.Anything, int64(200)).Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("CreateBatch", mock.Anything, mock.MatchedBy(func(movies []model.Movie) bool {
			return len(movies) == 1 &&
				movies[0].TMDBID == 200 &&
				movies[0].Title == "Fresh" &&
				movies[0].Description == "new arrival" &&
				movies[0].PosterURL == testImageBase+"/fresh.jpg"
		})).Return(nil)

		svc := NewImportService(mockRepo, fetcher, testImageBase, noCache)
		added, err := svc.ImportPopular(context.Background(), 1)

		assert.NoError(t, err)
		assert.Equal(t, 1, added)
		mockRepo.AssertExpectations(t)
	})

	t.Run("rerun over the same page adds nothing", func(t *testing.T) {
		mockRepo := new(MockMovieRepository)
		fetcher := new(MockPopularFetcher)
		fetcher.On("Popular", mock.Anything, 1).Return(items, nil)
		mockRepo.On("FindByTMDBID", mock.Anything, int64(100)).Return(&model.Movie{TMDBID: 100}, nil)
		mockRepo.On("FindByTMDBID", mock.Anything, int64(200)).Return(&model.Movie{TMDBID: 200}, nil)
		mockRepo.On("CreateBatch", mock.Anything, mock.MatchedBy(func(movies []model.Movie) bool {
			return len(movies) == 0
		})).Return(nil)

		svc := NewImportService(mockRepo, fetcher, testImageBase, noCache)
		added, err := svc.ImportPopular(context.Background(), 1)

		assert.NoError(t, err)
		assert.Equal(t, 0, added)
	})

	t.Run("missing poster path leaves poster url empty", func(t *testing.T) {
		mockRepo := new(MockMovieRepository)
		fetcher := new(MockPopularFetcher)
		fetcher.On("Popular", mock.Anything, 1).Return([]tmdb.MovieItem{
			{ID: 300, Title: "No poster", Overview: "plain"},
		}, nil)
		mockRepo.On("FindByTMDBID", mock.Anything, int64(300)).Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("CreateBatch", mock.Anything, mock.MatchedBy(func(movies []model.Movie) bool {
			return len(movies) == 1 && movies[0].PosterURL == ""
		})).Return(nil)

		svc := NewImportService(mockRepo, fetcher, testImageBase, noCache)
		added, err := svc.ImportPopular(context.Background(), 1)

		assert.NoError(t, err)
		assert.Equal(t, 1, added)
	})

	t.Run("upstream failure is reported without mutation", func(t *testing.T) {
		mockRepo := new(MockMovieRepository)
		fetcher := new(MockPopularFetcher)
		fetcher.On("Popular", mock.Anything, 1).Return(nil, errors.New("connection refused"))

		svc := NewImportService(mockRepo, fetcher, testImageBase, noCache)
		added, err := svc.ImportPopular(context.Background(), 1)

		assert.ErrorIs(t, err, apperrors.ErrUpstream)
		assert.Zero(t, added)
		mockRepo.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
	})
}
