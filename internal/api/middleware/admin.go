package middleware

import (
	"net/http"

	"github.com/mcoot/tourneyview/internal/api/apierr"
)

// AdminChecker reports whether the admin is logged in
type AdminChecker interface {
	IsAdminLoggedIn() bool
}

// RequireAdmin rejects requests with 403 ADMIN_REQUIRED when logged out
func RequireAdmin(checker AdminChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !checker.IsAdminLoggedIn() {
				apierr.WriteError(w, apierr.NewAdminRequiredError())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
