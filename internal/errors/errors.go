package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrMissingFields is returned when required request fields are absent.
	ErrMissingFields = errors.New("missing required fields")
	// ErrInvalidCredentials is returned when username or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUsernameTaken is returned when registering an already used username.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrWrongPassword is returned when the current password does not verify.
	ErrWrongPassword = errors.New("current password is incorrect")
	// ErrUserNotFound is returned when a user id does not resolve.
	ErrUserNotFound = errors.New("user not found")
	// ErrSelfDelete is returned when an admin targets their own account.
	ErrSelfDelete = errors.New("cannot delete your own account")
	// ErrMovieNotFound is returned when a movie id does not resolve.
	ErrMovieNotFound = errors.New("movie not found")
	// ErrMovieExists is returned when a TMDB id is already in the catalog.
	ErrMovieExists = errors.New("movie already exists")
	// ErrAdminOnly is returned when a non-admin calls an admin operation.
	ErrAdminOnly = errors.New("admin access required")
	// ErrUpstream is returned when the metadata provider call fails.
	ErrUpstream = errors.New("failed to fetch data from TMDb")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Duplicate-key conflicts
// map to 400, matching the rest of the validation family.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrMissingFields):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "MISSING_FIELDS")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrUsernameTaken):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "USERNAME_TAKEN")
	case errors.Is(err, ErrWrongPassword):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "WRONG_PASSWORD")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrSelfDelete):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "SELF_DELETE")
	case errors.Is(err, ErrMovieNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "MOVIE_NOT_FOUND")
	case errors.Is(err, ErrMovieExists):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "MOVIE_EXISTS")
	case errors.Is(err, ErrAdminOnly):
		return NewHTTPError(http.StatusForbidden, err.Error(), "ADMIN_ONLY")
	case errors.Is(err, ErrUpstream):
		return NewHTTPError(http.StatusInternalServerError, err.Error(), "TMDB_UPSTREAM")
	default:
		return NewHTTPError(http.StatusInternalServerError, err.Error(), "INTERNAL_ERROR")
	}
}
