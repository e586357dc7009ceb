package handler

import (
	"net/http"
	"strings"

	"github.com/mcoot/tourneyview/internal/api/apierr"
	"github.com/mcoot/tourneyview/internal/api/request"
	"github.com/mcoot/tourneyview/internal/api/response"
	"github.com/mcoot/tourneyview/internal/model"
	"github.com/mcoot/tourneyview/internal/services/viewctl"
)

// SessionHandler handles session endpoints
type SessionHandler struct {
	controller *viewctl.Controller
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(controller *viewctl.Controller) *SessionHandler {
	return &SessionHandler{
		controller: controller,
	}
}

// Get handles GET /api/v1/session
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.SessionFromState(h.controller.State()))
}

// Login handles POST /api/v1/session/login
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := decodeJSON(r, &req, false); err != nil {
		WriteError(w, err)
		return
	}

	if !h.controller.Login(r.Context(), req.Username, req.Password) {
		WriteError(w, apierr.NewInvalidCredentialsError())
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromState(h.controller.State()))
}

// Logout handles POST /api/v1/session/logout
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.controller.Logout(r.Context())
	response.JSON(w, http.StatusOK, response.SessionFromState(h.controller.State()))
}

// SetView handles PUT /api/v1/session/view. Unknown views are stored as
// given and render as the player screen.
func (h *SessionHandler) SetView(w http.ResponseWriter, r *http.Request) {
	var req request.SetViewRequest
	if err := decodeJSON(r, &req, false); err != nil {
		WriteError(w, err)
		return
	}

	view := strings.TrimSpace(req.View)
	if view == "" {
		WriteError(w, NewInvalidRequestError("view is required"))
		return
	}

	h.controller.Navigate(model.View(view))
	response.JSON(w, http.StatusOK, response.SessionFromState(h.controller.State()))
}
