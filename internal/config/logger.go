package config

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// NewLogger は APP_ENV に応じたハンドラでロガーを生成します
// dev の場合は tint、それ以外は JSON
func NewLogger(w io.Writer, level *slog.LevelVar) *slog.Logger {
	var handler slog.Handler
	if strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		handler = tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.RFC3339,
		})
	} else {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:     level,
			AddSource: true,
		})
	}
	return slog.New(handler)
}

// NewLevelVar は log.level からレベル変数を生成します。不明な値の場合は ok=false (Info)
func NewLevelVar(raw string) (*slog.LevelVar, bool) {
	level, ok := ParseLogLevel(raw)
	levelVar := new(slog.LevelVar)
	levelVar.Set(level)
	return levelVar, ok
}
