package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/mcoot/tourneyview/internal/model"
	"github.com/mcoot/tourneyview/internal/services/viewctl"
	"github.com/mcoot/tourneyview/internal/web/middleware"
	"github.com/mcoot/tourneyview/internal/web/templates/pages"
)

// SessionHandler handles login, logout and navigation
type SessionHandler struct {
	controller *viewctl.Controller
	logger     *slog.Logger
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(controller *viewctl.Controller, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		controller: controller,
		logger:     logger,
	}
}

// Login handles the admin login form
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderLoginError(w, r, "Invalid form data", "")
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")

	if !h.controller.Login(r.Context(), username, password) {
		h.renderLoginError(w, r, "Invalid username or password", username)
		return
	}

	middleware.SetFlash(w, "success", "Welcome back, "+username+"!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout clears the admin session and shows the login screen
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.controller.Logout(r.Context())
	middleware.SetFlash(w, "info", "You have been logged out")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Navigate switches the requested view. Any value is accepted; the
// screen derivation decides what is actually shown.
func (h *SessionHandler) Navigate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, "error", "Invalid form data")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	h.controller.Navigate(model.View(strings.TrimSpace(r.FormValue("view"))))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *SessionHandler) renderLoginError(w http.ResponseWriter, r *http.Request, errorMsg, username string) {
	state := h.controller.State()
	pd := pageData(r, state, h.controller.Tournament())
	pd.Title = "Admin Login"

	render(w, r, http.StatusUnauthorized, pages.Login(pages.LoginData{
		PageData: pd,
		Username: username,
		Error:    errorMsg,
	}))
}
