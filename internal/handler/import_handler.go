package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"cinelog/internal/service"
)

// ImportHandler handles the catalog import endpoint.
type ImportHandler struct {
	svc service.ImportService
}

// NewImportHandler creates a new import handler.
func NewImportHandler(svc service.ImportService) *ImportHandler {
	return &ImportHandler{svc: svc}
}

// Populate godoc
// @Summary Import popular movies from TMDB
// @Tags movies
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /populate [post]
func (h *ImportHandler) Populate(c echo.Context) error {
	added, err := h.svc.ImportPopular(c.Request().Context(), 1)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": fmt.Sprintf("%d movies added from TMDb", added),
		"added":   added,
	})
}
