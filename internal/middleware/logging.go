package middleware

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// logCtxKey はコンテキストにロガーを格納するためのキーです。
type logCtxKey struct{}

// accessCtxKey はアクセスログ用のリクエスト情報を格納するキーです。
type accessCtxKey struct{}

// sensitiveHeaders はログ出力時に値をマスキングするヘッダー名のリストです (小文字で定義)。
var sensitiveHeaders = map[string]bool{
	"authorization": true,
	"cookie":        true,
	"set-cookie":    true,
	"x-api-key":     true,
	"x-csrf-token":  true,
	"x-speaker-id":  true, // 開発用認証ではこれ自体が資格情報
}

// accessInfo は下流のミドルウェアが判明させた情報を完了ログへ渡すための入れ物です。
// 認証は LoggingMiddleware より内側で行われるため、値はポインタ経由で書き戻します。
type accessInfo struct {
	speakerID uuid.UUID
}

// recordSpeaker は完了ログに載せるスピーカーIDを記録します。
// LoggingMiddleware を通っていないコンテキストでは何もしません。
func recordSpeaker(ctx context.Context, speakerID uuid.UUID) {
	if info, ok := ctx.Value(accessCtxKey{}).(*accessInfo); ok {
		info.speakerID = speakerID
	}
}

// LoggingMiddleware はリクエストごとのロガーを用意し、完了時にアクセスログを1行出力します。
// デバッグレベルのときだけヘッダーとボディの詳細を出力します。
func LoggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			startTime := time.Now()
			debug := logger.Enabled(r.Context(), slog.LevelDebug)

			info := &accessInfo{}
			requestLogger := logger.With("req_id", middleware.GetReqID(r.Context()))
			ctx := context.WithValue(r.Context(), accessCtxKey{}, info)
			r = r.WithContext(WithLogger(ctx, requestLogger))

			requestLogger.Debug("Request started",
				"method", r.Method,
				"path", r.URL.Path,
				"remote_addr", r.RemoteAddr,
			)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			var reqBody []byte
			var respBody *bytes.Buffer
			if debug {
				if r.Body != nil {
					reqBody, _ = io.ReadAll(r.Body)
					r.Body = io.NopCloser(bytes.NewReader(reqBody))
				}
				respBody = new(bytes.Buffer)
				ww.Tee(respBody)
			}

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			logLevel := slog.LevelInfo
			switch {
			case status >= 500:
				logLevel = slog.LevelError
			case status >= 400:
				logLevel = slog.LevelWarn
			}

			attrs := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"latency_ms", float64(time.Since(startTime).Nanoseconds()) / 1e6,
				"bytes_out", ww.BytesWritten(),
			}
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				attrs = append(attrs, "route", rctx.RoutePattern())
			}
			if info.speakerID != uuid.Nil {
				attrs = append(attrs, "speaker_id", info.speakerID.String())
			}
			requestLogger.Log(r.Context(), logLevel, "Request completed", attrs...)

			if debug {
				requestLogger.Debug("Request detail",
					"headers", formatHeaders(r.Header),
					"body", string(reqBody),
				)
				requestLogger.Debug("Response detail",
					"status", status,
					"headers", formatHeaders(ww.Header()),
					"body", respBody.String(),
				)
			}
		})
	}
}

// WithLogger はロガーを格納したコンテキストを返します。
// HTTP以外 (ワーカーやCLI) から呼ぶ場合もこれでロガーを渡します。
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, logCtxKey{}, logger)
}

// GetLogger はコンテキストから slog.Logger を取得します。
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(logCtxKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// formatHeaders はヘッダー情報をログ出力用に整形・マスキングするヘルパー関数
func formatHeaders(headers http.Header) map[string]string {
	result := make(map[string]string, len(headers))
	for key, values := range headers {
		if sensitiveHeaders[strings.ToLower(key)] {
			result[key] = "[SENSITIVE]"
			continue
		}
		result[key] = strings.Join(values, ", ")
	}
	return result
}
