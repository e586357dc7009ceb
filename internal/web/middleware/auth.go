package middleware

import (
	"net/http"

	"github.com/mcoot/tourneyview/internal/services/viewctl"
)

type contextKey string

// AdminChecker reports whether the admin is logged in
type AdminChecker interface {
	IsAdminLoggedIn() bool
}

var _ AdminChecker = (*viewctl.Controller)(nil)

// RequireAdmin sends logged-out requests back to / with an error flash
func RequireAdmin(checker AdminChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !checker.IsAdminLoggedIn() {
				SetFlash(w, "error", "Admin login required")
				http.Redirect(w, r, "/", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
