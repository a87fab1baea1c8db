package handlers

import (
	"net/http"

	"go_speak_review/internal/middleware"

	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health はDB接続を確認します (GET /health)
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	sqlDB, err := h.db.DB()
	if err != nil {
		logger.Error("Health check failed: could not get DB object", "error", err)
		http.Error(w, "Health check failed", http.StatusInternalServerError)
		return
	}
	if err := sqlDB.PingContext(r.Context()); err != nil {
		logger.Error("Health check failed: could not ping DB", "error", err)
		http.Error(w, "Health check failed", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
