package handler

import (
	"net/http"

	"github.com/mcoot/tourneyview/internal/web/sse"
)

// EventsHandler serves the live update stream
type EventsHandler struct {
	hub *sse.Hub
}

// NewEventsHandler creates a new EventsHandler
func NewEventsHandler(hub *sse.Hub) *EventsHandler {
	return &EventsHandler{hub: hub}
}

// Stream holds the connection open and forwards tournament-updated events
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	sse.ServeSSE(w, r, h.hub)
}
