package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// PageHandler serves the HTML page shells. Templates only personalize
// display; all data flows through the JSON API.
type PageHandler struct{}

// NewPageHandler creates a new page handler.
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

type pageData struct {
	Username string
	IsAdmin  bool
}

// pageContext derives template data from the request identity, anonymous
// when no valid token is present.
func pageContext(c echo.Context) pageData {
	claims := CurrentClaims(c)
	if claims == nil {
		return pageData{}
	}
	return pageData{Username: claims.Username, IsAdmin: claims.IsAdmin}
}

// Index serves the login shell.
func (h *PageHandler) Index(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", pageContext(c))
}

// Signup serves the registration shell.
func (h *PageHandler) Signup(c echo.Context) error {
	return c.Render(http.StatusOK, "signup.html", pageContext(c))
}

// Home serves the landing shell, personalized when a token is present.
func (h *PageHandler) Home(c echo.Context) error {
	return c.Render(http.StatusOK, "home.html", pageContext(c))
}

// Settings serves the account settings shell.
func (h *PageHandler) Settings(c echo.Context) error {
	return c.Render(http.StatusOK, "settings.html", pageContext(c))
}

// Users serves the user management shell, or the unauthorized shell for
// non-admins.
func (h *PageHandler) Users(c echo.Context) error {
	data := pageContext(c)
	if !data.IsAdmin {
		return c.Render(http.StatusForbidden, "unauthorized.html", data)
	}
	return c.Render(http.StatusOK, "users.html", data)
}

// Movies serves the catalog browsing shell.
func (h *PageHandler) Movies(c echo.Context) error {
	return c.Render(http.StatusOK, "movies.html", pageContext(c))
}
