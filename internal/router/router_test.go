package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinelog/internal/auth"
	apperrors "cinelog/internal/errors"
	"cinelog/internal/handler"
	"cinelog/internal/model"
	"cinelog/internal/service"
	"cinelog/internal/web"
)

// Stub services: just enough behavior to drive the middleware chain.

type stubAuthService struct{}

func (stubAuthService) Register(ctx context.Context, username, password string) (*model.User, error) {
	return &model.User{Username: username}, nil
}

func (stubAuthService) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	return "", nil, apperrors.ErrInvalidCredentials
}

func (stubAuthService) EnsureAdmin(ctx context.Context, username, password string) error {
	return nil
}

type stubMovieService struct{}

func (stubMovieService) ListMovies(ctx context.Context) ([]model.Movie, error) {
	return []model.Movie{}, nil
}

func (stubMovieService) SearchMovies(ctx context.Context, query string) ([]model.Movie, error) {
	return []model.Movie{}, nil
}

func (stubMovieService) CreateMovie(ctx context.Context, in service.MovieInput) (*model.Movie, error) {
	return &model.Movie{}, nil
}

func (stubMovieService) UpdateMovie(ctx context.Context, id uint, in service.MovieInput) (*model.Movie, error) {
	return &model.Movie{}, nil
}

func (stubMovieService) DeleteMovie(ctx context.Context, id uint) (string, error) {
	return "stub", nil
}

type stubUserService struct{}

func (stubUserService) ListUsers(ctx context.Context) ([]service.UserSummary, error) {
	return []service.UserSummary{}, nil
}

func (stubUserService) DeleteUser(ctx context.Context, requesterID, targetID uint) error {
	if requesterID == targetID {
		return apperrors.ErrSelfDelete
	}
	return nil
}

func (stubUserService) UpdatePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error {
	return nil
}

type stubImportService struct{}

func (stubImportService) ImportPopular(ctx context.Context, page int) (int, error) {
	return 0, nil
}

func newTestServer(t *testing.T) (*echo.Echo, *auth.JWTService) {
	t.Helper()

	e := echo.New()
	renderer, err := web.NewRenderer()
	require.NoError(t, err)
	e.Renderer = renderer

	jwtService := auth.NewJWTService("test-secret")
	Register(
		e,
		jwtService,
		handler.NewAuthHandler(stubAuthService{}),
		handler.NewMovieHandler(stubMovieService{}),
		handler.NewUserHandler(stubUserService{}),
		handler.NewImportHandler(stubImportService{}),
		handler.NewPageHandler(),
	)
	return e, jwtService
}

func doRequest(e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRouteProtection(t *testing.T) {
	e, jwtService := newTestServer(t)

	adminToken, err := jwtService.GenerateToken(1, "admin", true)
	require.NoError(t, err)
	userToken, err := jwtService.GenerateToken(2, "alice", false)
	require.NoError(t, err)

	tests := []struct {
		name     string
		method   string
		path     string
		token    string
		body     string
		wantCode int
	}{
		{"catalog listing is public", http.MethodGet, "/movies", "", "", http.StatusOK},
		{"catalog search is public", http.MethodGet, "/movies/search?query=x", "", "", http.StatusOK},
		{"create movie without token", http.MethodPost, "/movies", "", `{"title":"X"}`, http.StatusUnauthorized},
		{"create movie as non-admin", http.MethodPost, "/movies", userToken, `{"title":"X"}`, http.StatusForbidden},
		{"create movie as admin", http.MethodPost, "/movies", adminToken, `{"title":"X","description":"d","tmdb_id":1}`, http.StatusOK},
		{"delete movie as non-admin", http.MethodDelete, "/movies/1", userToken, "", http.StatusForbidden},
		{"user listing as non-admin", http.MethodGet, "/api/users", userToken, "", http.StatusForbidden},
		{"user listing as admin", http.MethodGet, "/api/users", adminToken, "", http.StatusOK},
		{"admin deletes someone else", http.MethodDelete, "/users/2", adminToken, "", http.StatusOK},
		{"admin deletes own account", http.MethodDelete, "/users/1", adminToken, "", http.StatusBadRequest},
		{"populate without token", http.MethodPost, "/populate", "", "", http.StatusUnauthorized},
		{"populate as non-admin", http.MethodPost, "/populate", userToken, "", http.StatusForbidden},
		{"populate as admin", http.MethodPost, "/populate", adminToken, "", http.StatusOK},
		{"password update without token", http.MethodPut, "/password-update", "", "", http.StatusUnauthorized},
		{"password update with token", http.MethodPut, "/password-update", userToken, `{"current_password":"a","new_password":"b"}`, http.StatusOK},
		{"settings page requires identity", http.MethodGet, "/settings", "", "", http.StatusUnauthorized},
		{"settings page with identity", http.MethodGet, "/settings", userToken, "", http.StatusOK},
		{"users page as non-admin", http.MethodGet, "/users", userToken, "", http.StatusForbidden},
		{"users page as admin", http.MethodGet, "/users", adminToken, "", http.StatusOK},
		{"login page is public", http.MethodGet, "/", "", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(e, tt.method, tt.path, tt.token, tt.body)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestOptionalIdentityProceedsAnonymous(t *testing.T) {
	e, jwtService := newTestServer(t)

	t.Run("no token", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/home", "", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/home", "garbage", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("valid token personalizes", func(t *testing.T) {
		token, err := jwtService.GenerateToken(2, "alice", false)
		require.NoError(t, err)
		rec := doRequest(e, http.MethodGet, "/home", token, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "alice")
	})
}
