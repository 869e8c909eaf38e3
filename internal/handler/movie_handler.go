package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"cinelog/internal/errors"
	"cinelog/internal/service"
)

// MovieHandler handles catalog endpoints.
type MovieHandler struct {
	svc service.MovieService
}

// NewMovieHandler creates a new movie handler.
func NewMovieHandler(svc service.MovieService) *MovieHandler {
	return &MovieHandler{svc: svc}
}

// ListMovies godoc
// @Summary List all catalog entries
// @Tags movies
// @Produce json
// @Success 200 {array} model.Movie
// @Router /movies [get]
func (h *MovieHandler) ListMovies(c echo.Context) error {
	movies, err := h.svc.ListMovies(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, movies)
}

// SearchMovies godoc
// @Summary Search catalog entries by title or description
// @Tags movies
// @Produce json
// @Param query query string false "Substring to match"
// @Success 200 {array} model.Movie
// @Router /movies/search [get]
func (h *MovieHandler) SearchMovies(c echo.Context) error {
	movies, err := h.svc.SearchMovies(c.Request().Context(), c.QueryParam("query"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, movies)
}

// CreateMovie godoc
// @Summary Add a catalog entry
// @Tags movies
// @Accept json
// @Produce json
// @Param request body service.MovieInput true "Movie fields"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /movies [post]
func (h *MovieHandler) CreateMovie(c echo.Context) error {
	var in service.MovieInput
	if err := c.Bind(&in); err != nil {
		return respondError(c, errors.ErrMissingFields)
	}

	if _, err := h.svc.CreateMovie(c.Request().Context(), in); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Movie added",
	})
}

// UpdateMovie godoc
// @Summary Partially update a catalog entry
// @Tags movies
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Param request body service.MovieInput true "Fields to change"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /movies/{id} [put]
func (h *MovieHandler) UpdateMovie(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return respondError(c, errors.ErrMissingFields)
	}

	var in service.MovieInput
	if err := c.Bind(&in); err != nil {
		return respondError(c, errors.ErrMissingFields)
	}

	if _, err := h.svc.UpdateMovie(c.Request().Context(), uint(id), in); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Movie updated successfully",
	})
}

// DeleteMovie godoc
// @Summary Delete a catalog entry
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /movies/{id} [delete]
func (h *MovieHandler) DeleteMovie(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return respondError(c, errors.ErrMissingFields)
	}

	title, err := h.svc.DeleteMovie(c.Request().Context(), uint(id))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Movie '%s' deleted", title),
	})
}
