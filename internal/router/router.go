package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"cinelog/internal/auth"
	apperrors "cinelog/internal/errors"
	"cinelog/internal/handler"
)

// Register wires routes and middleware. Route protection has three tiers:
// required identity, optional identity (anonymous on a missing or bad
// token), and required identity plus the admin role.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	movieHandler *handler.MovieHandler,
	userHandler *handler.UserHandler,
	importHandler *handler.ImportHandler,
	pageHandler *handler.PageHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	requireJWT := echojwt.WithConfig(echojwt.Config{
		ParseTokenFunc: parseToken(jwtService),
	})

	optionalJWT := echojwt.WithConfig(echojwt.Config{
		ParseTokenFunc:         parseToken(jwtService),
		ContinueOnIgnoredError: true,
		ErrorHandler: func(c echo.Context, err error) error {
			// proceed anonymous
			return nil
		},
	})

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Page shells
	e.GET("/", pageHandler.Index)
	e.GET("/signup", pageHandler.Signup)
	e.GET("/moviepage", pageHandler.Movies, optionalJWT)
	e.GET("/home", pageHandler.Home, optionalJWT)
	e.GET("/settings", pageHandler.Settings, requireJWT)
	e.GET("/users", pageHandler.Users, requireJWT)

	// Public API
	e.POST("/login", authHandler.Login)
	e.POST("/register", authHandler.Register)
	e.GET("/movies", movieHandler.ListMovies)
	e.GET("/movies/search", movieHandler.SearchMovies)

	// Authenticated, any role
	e.PUT("/password-update", userHandler.UpdatePassword, requireJWT)

	// Admin only
	e.POST("/movies", movieHandler.CreateMovie, requireJWT, RequireAdmin)
	e.PUT("/movies/:id", movieHandler.UpdateMovie, requireJWT, RequireAdmin)
	e.DELETE("/movies/:id", movieHandler.DeleteMovie, requireJWT, RequireAdmin)
	e.GET("/api/users", userHandler.ListUsers, requireJWT, RequireAdmin)
	e.DELETE("/users/:id", userHandler.DeleteUser, requireJWT, RequireAdmin)
	e.POST("/populate", importHandler.Populate, requireJWT, RequireAdmin)
}

// parseToken adapts JWTService to the echo-jwt contract; the returned claims
// end up under the "user" context key.
func parseToken(jwtService *auth.JWTService) func(c echo.Context, tokenString string) (interface{}, error) {
	return func(c echo.Context, tokenString string) (interface{}, error) {
		return jwtService.ValidateToken(tokenString)
	}
}

// RequireAdmin rejects requests whose verified claims lack the admin flag.
// Must run after the JWT middleware.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get("user").(*auth.Claims)
		if !ok {
			httpErr := apperrors.MapErrorToHTTP(apperrors.ErrInvalidCredentials)
			return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
		}
		if !claims.IsAdmin {
			httpErr := apperrors.MapErrorToHTTP(apperrors.ErrAdminOnly)
			return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
		}
		return next(c)
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
