// internal/middleware/dev_auth.go
package middleware

import (
	"net/http"

	"go_speak_review/internal/model"
	"go_speak_review/internal/webutil"

	"github.com/google/uuid"
)

// SpeakerIDHeader は開発時にスピーカーIDを渡すヘッダー
const SpeakerIDHeader = "X-Speaker-ID"

// DevSpeakerContextMiddleware は開発時用ミドルウェアです (auth.enabled=false の場合に使用)。
// X-Speaker-ID ヘッダーからUUIDを抽出し、コンテキストに設定します。
func DevSpeakerContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		raw := r.Header.Get(SpeakerIDHeader)
		if raw == "" {
			logger.Warn("[DEV AUTH] X-Speaker-ID header missing")
			webutil.HandleError(w, logger, model.NewAppError(model.CodeUnauthorized, "[DEV] X-Speaker-IDヘッダーが必要です。", "", model.ErrForbidden))
			return
		}

		speakerID, err := uuid.Parse(raw)
		if err != nil || speakerID == uuid.Nil {
			logger.Warn("[DEV AUTH] Invalid X-Speaker-ID format", "value", raw)
			webutil.HandleError(w, logger, model.NewAppError(model.CodeUnauthorized, "[DEV] X-Speaker-IDの形式が正しくありません。", "", model.ErrForbidden))
			return
		}

		logger.Debug("[DEV AUTH] Speaker ID set to context (no validation)", "speaker_id", speakerID.String())
		next.ServeHTTP(w, r.WithContext(withSpeaker(r.Context(), speakerID)))
	})
}
