package api

import (
	"net/http"
	"strings"

	"github.com/erazemk/kultur/internal/catalog"
	"github.com/erazemk/kultur/internal/model"
)

// CultureHandler serves the culture catalog.
type CultureHandler struct {
	Culture *catalog.Culture
}

// List handles GET /api/culture. A category parameter filters
// case-insensitively; q searches titles, summaries and tags.
func (h *CultureHandler) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	query := r.URL.Query().Get("q")

	var items []model.CultureItem
	switch {
	case category != "" && query != "":
		for _, it := range h.Culture.Search(query) {
			if strings.EqualFold(it.Category, category) {
				items = append(items, it)
			}
		}
	case category != "":
		items = h.Culture.ByCategory(category)
	case query != "":
		items = h.Culture.Search(query)
	default:
		items = h.Culture.All()
	}
	jsonResponse(w, http.StatusOK, orEmpty(items))
}

// Categories handles GET /api/culture/categories.
func (h *CultureHandler) Categories(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, orEmpty(h.Culture.Categories()))
}

// Get handles GET /api/culture/{id}.
func (h *CultureHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, ok := h.Culture.ByID(r.PathValue("id"))
	if !ok {
		jsonError(w, http.StatusNotFound, "culture item not found")
		return
	}
	jsonResponse(w, http.StatusOK, item)
}
