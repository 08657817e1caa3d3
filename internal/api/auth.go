package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/erazemk/kultur/internal/store"
)

// AuthHandler handles editor token endpoints. Tokens are issued by the CLI.
type AuthHandler struct {
	DB *sql.DB
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	jsonResponse(w, http.StatusOK, map[string]any{
		"editor":     claims.Editor,
		"expires_at": claims.ExpiresAt.Time,
	})
}

// Logout handles POST /api/auth/logout by revoking the presented token.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	if err := store.RevokeToken(r.Context(), h.DB, claims.ID, claims.ExpiresAt.Time); err != nil {
		slog.Error("failed to revoke token", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to revoke token")
		return
	}

	slog.Info("editor token revoked", "editor", claims.Editor)
	jsonResponse(w, http.StatusOK, map[string]string{"message": "token revoked"})
}
