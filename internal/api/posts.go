package api

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"

	"github.com/erazemk/kultur/internal/catalog"
	"github.com/erazemk/kultur/internal/imaging"
)

// PostsHandler handles user-submitted stories and their cover images.
type PostsHandler struct {
	Culture *catalog.Culture
	Covers  *catalog.Covers
}

// List handles GET /api/posts.
func (h *PostsHandler) List(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, orEmpty(h.Culture.Posts()))
}

// Create handles POST /api/posts.
func (h *PostsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req catalog.PostInput
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.Culture.AddPost(req)
	if errors.Is(err, catalog.ErrInvalidPost) {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		slog.Error("failed to add post", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to add post")
		return
	}

	editor := ""
	if claims := GetClaims(r.Context()); claims != nil {
		editor = claims.Editor
	}
	slog.Info("story submitted", "id", item.ID, "category", item.Category, "editor", editor)
	jsonResponse(w, http.StatusCreated, item)
}

// UploadCover handles PUT /api/posts/{id}/cover.
func (h *PostsHandler) UploadCover(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, ok := h.Culture.ByID(id); !ok {
		jsonError(w, http.StatusNotFound, "post not found")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, imaging.MaxUploadBytes+(1<<10))
	if err := r.ParseMultipartForm(imaging.MaxUploadBytes); err != nil {
		jsonError(w, http.StatusBadRequest, "file too large or invalid multipart form")
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "image file required")
		return
	}
	defer file.Close()

	img, err := imaging.Cover(file)
	switch {
	case errors.Is(err, imaging.ErrUnsupportedFormat), errors.Is(err, imaging.ErrTooLarge):
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		jsonError(w, http.StatusBadRequest, "invalid image")
		return
	}

	ref := "/api/posts/" + id + "/cover"
	if !h.Culture.SetCover(id, ref) {
		jsonError(w, http.StatusBadRequest, "only submitted stories can have an uploaded cover")
		return
	}
	h.Covers.Put(id, catalog.Cover{Data: img.Data, MIME: img.MIME})

	jsonResponse(w, http.StatusOK, map[string]any{
		"cover_image": ref,
		"width":       img.Width,
		"height":      img.Height,
	})
}

// GetCover handles GET /api/posts/{id}/cover. size=thumb returns a square thumbnail.
func (h *PostsHandler) GetCover(w http.ResponseWriter, r *http.Request) {
	cover, ok := h.Covers.Get(r.PathValue("id"))
	if !ok {
		jsonError(w, http.StatusNotFound, "no cover")
		return
	}

	data, mime := cover.Data, cover.MIME
	if r.URL.Query().Get("size") == "thumb" {
		thumb, err := imaging.Thumbnail(bytes.NewReader(data))
		if err != nil {
			slog.Error("failed to build thumbnail", "error", err)
			jsonError(w, http.StatusInternalServerError, "failed to build thumbnail")
			return
		}
		data, mime = thumb.Data, thumb.MIME
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if _, err := w.Write(data); err != nil {
		slog.Error("failed to write cover response", "error", err)
	}
}
