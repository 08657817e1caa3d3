package api

import (
	"net/http"

	"github.com/erazemk/kultur/internal/catalog"
	"github.com/erazemk/kultur/internal/model"
)

// EventsHandler serves the events catalog.
type EventsHandler struct {
	Events *catalog.Events
	Places *catalog.Places
}

// List handles GET /api/events.
func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, orEmpty(h.Events.Upcoming()))
}

// Get handles GET /api/events/{id}. The event's place is included when it resolves.
func (h *EventsHandler) Get(w http.ResponseWriter, r *http.Request) {
	event, ok := h.Events.ByID(r.PathValue("id"))
	if !ok {
		jsonError(w, http.StatusNotFound, "event not found")
		return
	}

	var place *model.Place
	if p, ok := h.Places.ByID(event.PlaceID); ok {
		place = &p
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"event": event,
		"place": place,
	})
}
