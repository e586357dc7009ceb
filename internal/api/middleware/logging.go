package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/tourneyview/internal/middleware"
)

// Logging creates request logging middleware for the API
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Logging(logger.With(slog.String("surface", "api")))
}

// RequestID tags API requests with a correlation id
func RequestID() func(http.Handler) http.Handler {
	return middleware.RequestID()
}
