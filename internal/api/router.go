package api

import (
	"net/http"

	"github.com/erazemk/kultur/internal/app"
)

// NewRouter creates the API router with all endpoints registered. Reads are
// public; writes need an editor token.
func NewRouter(a *app.App) http.Handler {
	mux := http.NewServeMux()

	cultureHandler := &CultureHandler{Culture: a.Culture}
	postsHandler := &PostsHandler{Culture: a.Culture, Covers: a.Covers}
	placesHandler := &PlacesHandler{Places: a.Places, Events: a.Events}
	eventsHandler := &EventsHandler{Events: a.Events, Places: a.Places}
	favoritesHandler := &FavoritesHandler{App: a}
	authHandler := &AuthHandler{DB: a.DB}

	authMW := AuthMiddleware(a.TokenSecret, a.DB)

	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusOK, map[string]bool{"ok": true})
	})

	// Culture stories.
	mux.HandleFunc("GET /api/culture", cultureHandler.List)
	mux.HandleFunc("GET /api/culture/categories", cultureHandler.Categories)
	mux.HandleFunc("GET /api/culture/{id}", cultureHandler.Get)

	// User submissions.
	mux.HandleFunc("GET /api/posts", postsHandler.List)
	mux.Handle("POST /api/posts", authMW(http.HandlerFunc(postsHandler.Create)))
	mux.Handle("PUT /api/posts/{id}/cover", authMW(http.HandlerFunc(postsHandler.UploadCover)))
	mux.HandleFunc("GET /api/posts/{id}/cover", postsHandler.GetCover)

	// Places and events.
	mux.HandleFunc("GET /api/places", placesHandler.List)
	mux.HandleFunc("GET /api/places/{id}", placesHandler.Get)
	mux.HandleFunc("GET /api/places/{id}/events", placesHandler.ListEvents)
	mux.HandleFunc("GET /api/events", eventsHandler.List)
	mux.HandleFunc("GET /api/events/{id}", eventsHandler.Get)

	// Favorites.
	mux.HandleFunc("GET /api/favorites", favoritesHandler.List)
	mux.HandleFunc("GET /api/favorites/{id}", favoritesHandler.Get)
	mux.HandleFunc("GET /api/saved", favoritesHandler.Items)
	mux.Handle("PUT /api/favorites/{id}", authMW(http.HandlerFunc(favoritesHandler.Add)))
	mux.Handle("DELETE /api/favorites/{id}", authMW(http.HandlerFunc(favoritesHandler.Remove)))
	mux.Handle("POST /api/favorites/{id}/toggle", authMW(http.HandlerFunc(favoritesHandler.Toggle)))

	// Editor session.
	mux.Handle("GET /api/auth/me", authMW(http.HandlerFunc(authHandler.Me)))
	mux.Handle("POST /api/auth/logout", authMW(http.HandlerFunc(authHandler.Logout)))

	return mux
}
