package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go_speak_review/internal/config"
	"go_speak_review/internal/model"
	"go_speak_review/internal/webutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var errUnexpectedSigningMethod = errors.New("unexpected signing method")

// JWTAuthMiddleware は Authorization ヘッダーの Bearer トークンを検証し、
// sub クレーム (スピーカーID) をコンテキストにセットします
// トークンの発行は別サービスが担当する
func JWTAuthMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("JWT auth failed: Authorization header missing")
				webutil.HandleError(w, logger, model.NewAppError(model.CodeUnauthorized, "Authorizationヘッダーが必要です。", "", model.ErrForbidden))
				return
			}

			// "Bearer {token}" の形式を検証
			headerParts := strings.Split(authHeader, " ")
			if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
				logger.Warn("JWT auth failed: Invalid Authorization header format")
				webutil.HandleError(w, logger, model.NewAppError(model.CodeUnauthorized, "Authorizationヘッダーの形式が正しくありません。", "", model.ErrForbidden))
				return
			}

			// 署名と有効期限(exp)を検証
			token, err := jwt.Parse(headerParts[1], func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errUnexpectedSigningMethod
				}
				return []byte(cfg.JWT.SecretKey), nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || !token.Valid {
				logger.Warn("JWT auth failed: Invalid token", "error", err)
				webutil.HandleError(w, logger, model.NewAppError(model.CodeUnauthorized, "トークンが無効です。", "", model.ErrForbidden))
				return
			}

			subject, err := token.Claims.GetSubject()
			if err != nil || subject == "" {
				logger.Warn("JWT auth failed: Subject (sub) claim missing", "error", err)
				webutil.HandleError(w, logger, model.NewAppError(model.CodeUnauthorized, "トークンにスピーカー情報が含まれていません。", "", model.ErrForbidden))
				return
			}

			speakerID, err := uuid.Parse(subject)
			if err != nil {
				logger.Warn("JWT auth failed: Invalid subject (sub) format", "subject", subject, "error", err)
				webutil.HandleError(w, logger, model.NewAppError(model.CodeUnauthorized, "トークンのスピーカー情報が不正です。", "", model.ErrForbidden))
				return
			}

			next.ServeHTTP(w, r.WithContext(withSpeaker(r.Context(), speakerID)))
		})
	}
}

// withSpeaker はスピーカーIDとスピーカー付きロガーをコンテキストにセットします
func withSpeaker(ctx context.Context, speakerID uuid.UUID) context.Context {
	ctx = context.WithValue(ctx, model.SpeakerIDKey, speakerID)
	recordSpeaker(ctx, speakerID)
	return WithLogger(ctx, GetLogger(ctx).With("speaker_id", speakerID.String()))
}

func GetSpeakerIDFromContext(ctx context.Context) (uuid.UUID, error) {
	value, ok := ctx.Value(model.SpeakerIDKey).(uuid.UUID)
	if !ok || value == uuid.Nil {
		// 認証ミドルウェアが正しく動作していない等の内部エラー
		return uuid.Nil, model.NewAppError(model.CodeInternalServer, "コンテキストからスピーカー情報を取得できませんでした。", "", model.ErrInternalServer)
	}
	return value, nil
}
