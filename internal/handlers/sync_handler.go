package handlers

import (
	"log/slog"
	"net/http"

	"go_speak_review/internal/middleware"
	"go_speak_review/internal/service"
	"go_speak_review/internal/webutil"
)

type SyncHandler struct {
	service service.SyncService
}

func NewSyncHandler(s service.SyncService) *SyncHandler {
	return &SyncHandler{service: s}
}

// SyncReviewItems は使用統計から復習アイテムを同期します (POST /reviews/sync)
// プロフィール再計算の後に呼ばれる
func (h *SyncHandler) SyncReviewItems(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "SyncReviewItems"))

	speakerID, err := middleware.GetSpeakerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	result, err := h.service.SyncReviewItems(r.Context(), speakerID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}
