package http

import (
	"database/sql"
	"net/http"

	"fastlane-backend/internal/apperrors"
)

type HealthHandler struct {
	db *sql.DB
}

func NewHealthHandler(db *sql.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *HealthHandler) Database(w http.ResponseWriter, r *http.Request) {
	if err := h.db.PingContext(r.Context()); err != nil {
		writeError(w, apperrors.Wrap(apperrors.Unexpected, err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"database": "ok"})
}
