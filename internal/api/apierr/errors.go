package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/tourneyview/internal/model"
	"github.com/mcoot/tourneyview/internal/services/dashboard"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeAdminRequired      = "ADMIN_REQUIRED"
	CodeNameRequired       = "NAME_REQUIRED"
	CodeInvalidStatus      = "INVALID_STATUS"
	CodePlayerNotFound     = "PLAYER_NOT_FOUND"
	CodeMatchNotFound      = "MATCH_NOT_FOUND"
	CodeSamePlayer         = "SAME_PLAYER"
	CodeInvalidRound       = "INVALID_ROUND"
	CodeInvalidWinner      = "INVALID_WINNER"
	CodeNotFound           = "NOT_FOUND"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, dashboard.ErrNotAdmin):
		return &httpError{http.StatusForbidden, APIError{CodeAdminRequired, "Admin login required"}}

	// Map model errors
	case errors.Is(err, model.ErrNameRequired):
		return &httpError{http.StatusBadRequest, APIError{CodeNameRequired, "Name is required"}}
	case errors.Is(err, model.ErrInvalidStatus):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidStatus, "Status must be Upcoming, Ongoing or Finished"}}
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrMatchNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeMatchNotFound, "Match not found"}}
	case errors.Is(err, model.ErrSamePlayer):
		return &httpError{http.StatusBadRequest, APIError{CodeSamePlayer, "A player cannot play themselves"}}
	case errors.Is(err, model.ErrInvalidRound):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRound, "Round must be at least 1"}}
	case errors.Is(err, model.ErrInvalidWinner):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidWinner, "Winner must be one of the match players"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInvalidCredentialsError is returned for a rejected login
func NewInvalidCredentialsError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeInvalidCredentials, "Invalid username or password"}}
}

// NewAdminRequiredError is returned for writes without an admin session
func NewAdminRequiredError() error {
	return &httpError{http.StatusForbidden, APIError{CodeAdminRequired, "Admin login required"}}
}

// NewNotFoundError is returned for unknown API routes
func NewNotFoundError() error {
	return &httpError{http.StatusNotFound, APIError{CodeNotFound, "Not found"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
