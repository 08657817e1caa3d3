package api

import (
	"net/http"

	"github.com/erazemk/kultur/internal/catalog"
)

// PlacesHandler serves the places catalog.
type PlacesHandler struct {
	Places *catalog.Places
	Events *catalog.Events
}

// List handles GET /api/places. q filters by name or type.
func (h *PlacesHandler) List(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, orEmpty(h.Places.Search(r.URL.Query().Get("q"))))
}

// Get handles GET /api/places/{id}.
func (h *PlacesHandler) Get(w http.ResponseWriter, r *http.Request) {
	place, ok := h.Places.ByID(r.PathValue("id"))
	if !ok {
		jsonError(w, http.StatusNotFound, "place not found")
		return
	}
	jsonResponse(w, http.StatusOK, place)
}

// ListEvents handles GET /api/places/{id}/events.
func (h *PlacesHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, ok := h.Places.ByID(id); !ok {
		jsonError(w, http.StatusNotFound, "place not found")
		return
	}
	jsonResponse(w, http.StatusOK, orEmpty(h.Events.AtPlace(id)))
}
