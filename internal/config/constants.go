// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "speak-review"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort          = ":8080"
	DefaultLogLevel            = "info"
	DefaultAppReviewLimit      = 20
	DefaultLocale              = "en"
	DefaultSyncMinOccurrences  = 2
	DefaultRatingRatePerSecond = 5.0
	DefaultRatingBurst         = 10
	DefaultAuthEnabled         = true
	DefaultSyncEnabled         = false
	DefaultSyncInterval        = 15 * time.Minute
	DefaultSyncLookback        = 24 * time.Hour
)

// MinSyncOccurrences は同期対象とする最小出現回数の下限
const MinSyncOccurrences = 2
