package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/tourneyview/internal/middleware"
)

// Logging creates logging middleware for the web interface
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Logging(logger)
}

// RequestID tags web requests with a correlation id
func RequestID() func(http.Handler) http.Handler {
	return middleware.RequestID()
}
