package api

import (
	"log/slog"
	"net/http"

	"github.com/erazemk/kultur/internal/app"
)

// FavoritesHandler handles the saved-items endpoints.
type FavoritesHandler struct {
	App *app.App
}

func (h *FavoritesHandler) storeError(w http.ResponseWriter, op string, err error) {
	slog.Error("favorites store failed", "op", op, "error", err)
	jsonError(w, http.StatusInternalServerError, "favorites store unavailable")
}

// List handles GET /api/favorites.
func (h *FavoritesHandler) List(w http.ResponseWriter, r *http.Request) {
	ids, err := h.App.Favorites.AllIDs(r.Context())
	if err != nil {
		h.storeError(w, "list", err)
		return
	}
	jsonResponse(w, http.StatusOK, orEmpty(ids))
}

// Items handles GET /api/saved, the favorites resolved to culture items.
func (h *FavoritesHandler) Items(w http.ResponseWriter, r *http.Request) {
	items, err := h.App.SavedItems(r.Context())
	if err != nil {
		h.storeError(w, "items", err)
		return
	}
	jsonResponse(w, http.StatusOK, orEmpty(items))
}

// Get handles GET /api/favorites/{id}.
func (h *FavoritesHandler) Get(w http.ResponseWriter, r *http.Request) {
	fav, err := h.App.Favorites.IsFavorite(r.Context(), r.PathValue("id"))
	if err != nil {
		h.storeError(w, "check", err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]bool{"favorite": fav})
}

// Add handles PUT /api/favorites/{id}. Ids are not checked against the catalog.
func (h *FavoritesHandler) Add(w http.ResponseWriter, r *http.Request) {
	if err := h.App.Favorites.Add(r.Context(), r.PathValue("id")); err != nil {
		h.storeError(w, "add", err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]bool{"favorite": true})
}

// Remove handles DELETE /api/favorites/{id}.
func (h *FavoritesHandler) Remove(w http.ResponseWriter, r *http.Request) {
	if err := h.App.Favorites.Remove(r.Context(), r.PathValue("id")); err != nil {
		h.storeError(w, "remove", err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]bool{"favorite": false})
}

// Toggle handles POST /api/favorites/{id}/toggle.
func (h *FavoritesHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	fav, err := h.App.Favorites.Toggle(r.Context(), r.PathValue("id"))
	if err != nil {
		h.storeError(w, "toggle", err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]bool{"favorite": fav})
}
