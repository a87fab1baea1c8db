// internal/handlers/review_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_speak_review/internal/middleware"
	"go_speak_review/internal/model"
	"go_speak_review/internal/service"
	"go_speak_review/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	service service.ReviewService
}

func NewReviewHandler(s service.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: s}
}

// GetDueItems は復習期限を迎えたアイテムを返します (GET /reviews/due?limit=N)
func (h *ReviewHandler) GetDueItems(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetDueItems"))

	speakerID, err := middleware.GetSpeakerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	limit, err := webutil.QueryInt(r, "limit", 0)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	items, err := h.service.GetDueItems(r.Context(), speakerID, limit)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if items == nil {
		items = []*model.DueItemResponse{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, items, logger)
}

// GetReviewStats は復習統計を返します (GET /reviews/stats)
func (h *ReviewHandler) GetReviewStats(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetReviewStats"))

	speakerID, err := middleware.GetSpeakerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	stats, err := h.service.GetReviewStats(r.Context(), speakerID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, stats, logger)
}

// SubmitRating は評価を記録し、更新後のアイテムを返します (POST /reviews/{item_id}/rating)
func (h *ReviewHandler) SubmitRating(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "SubmitRating"))

	speakerID, err := middleware.GetSpeakerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	itemID, err := uuid.Parse(chi.URLParam(r, "item_id"))
	if err != nil {
		webutil.HandleError(w, logger, model.NewAppError(model.CodeValidation, "アイテムIDの形式が正しくありません。", "item_id", model.ErrInvalidInput))
		return
	}

	var req model.SubmitRatingRequest
	if err := webutil.DecodeJSONBody(w, r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	item, err := h.service.RecordReview(r.Context(), speakerID, itemID, *req.Rating)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Rating submitted", slog.String("item_id", itemID.String()), slog.String("rating", req.Rating.String()))
	webutil.RespondWithJSON(w, http.StatusOK, item, logger)
}
