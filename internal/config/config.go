// internal/config/config.go
package config

import (
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		URL             string        `mapstructure:"url"`
		MaxOpenConns    int           `mapstructure:"max_open_conns"`
		MaxIdleConns    int           `mapstructure:"max_idle_conns"`
		ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	} `mapstructure:"database"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	App struct {
		ReviewLimit         int     `mapstructure:"review_limit"`
		Locale              string  `mapstructure:"locale"`
		SyncMinOccurrences  int     `mapstructure:"sync_min_occurrences"`
		RatingRatePerSecond float64 `mapstructure:"rating_rate_per_second"`
		RatingBurst         int     `mapstructure:"rating_burst"`
	} `mapstructure:"app"`
	Auth struct {
		Enabled bool `mapstructure:"enabled"`
	} `mapstructure:"auth"`
	JWT struct {
		SecretKey string `mapstructure:"secret_key"`
	} `mapstructure:"jwt"`
	CORS struct {
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	} `mapstructure:"cors"`
	Sync struct {
		Enabled  bool          `mapstructure:"enabled"`
		Interval time.Duration `mapstructure:"interval"`
		Lookback time.Duration `mapstructure:"lookback"`
	} `mapstructure:"sync"`
	SRS struct {
		// 空の場合は既定の重みを使用
		Weights []float64 `mapstructure:"weights"`
	} `mapstructure:"srs"`
}

var Cfg Config

func setDefaults(v *viper.Viper) {
	// AutomaticEnv は既知のキーにしか効かないため、空値でも登録しておく
	v.SetDefault("database.url", "")
	v.SetDefault("database.max_open_conns", 0)
	v.SetDefault("database.max_idle_conns", 0)
	v.SetDefault("database.conn_max_lifetime", 0)
	v.SetDefault("jwt.secret_key", "")
	v.SetDefault("cors.allowed_origins", []string{})
	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("app.review_limit", DefaultAppReviewLimit)
	v.SetDefault("app.locale", DefaultLocale)
	v.SetDefault("app.sync_min_occurrences", DefaultSyncMinOccurrences)
	v.SetDefault("app.rating_rate_per_second", DefaultRatingRatePerSecond)
	v.SetDefault("app.rating_burst", DefaultRatingBurst)
	v.SetDefault("auth.enabled", DefaultAuthEnabled)
	v.SetDefault("sync.enabled", DefaultSyncEnabled)
	v.SetDefault("sync.interval", DefaultSyncInterval)
	v.SetDefault("sync.lookback", DefaultSyncLookback)
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"Authorization", "Content-Type", "X-Speaker-ID", "X-Request-ID"})
}

// LoadConfig は path 配下の config.yaml と APP_ 接頭辞の環境変数から設定を読み込みます
func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	// 例: APP_DATABASE_URL, APP_AUTH_ENABLED
	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	setDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}
	Cfg.normalize()

	if Cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Review Limit: %d", Cfg.App.ReviewLimit)
	log.Printf("Auth Enabled: %t", Cfg.Auth.Enabled)
	log.Printf("Sync Worker Enabled: %t (interval %s)", Cfg.Sync.Enabled, Cfg.Sync.Interval)

	return nil
}

// normalize は範囲外の値を既定値に戻します
func (c *Config) normalize() {
	if c.Server.Port == "" {
		c.Server.Port = DefaultServerPort
	}
	if c.App.ReviewLimit <= 0 {
		c.App.ReviewLimit = DefaultAppReviewLimit
	}
	if c.App.Locale == "" {
		c.App.Locale = DefaultLocale
	}
	// 1回だけの誤りは復習対象にしない
	if c.App.SyncMinOccurrences < MinSyncOccurrences {
		c.App.SyncMinOccurrences = MinSyncOccurrences
	}
	if c.App.RatingBurst <= 0 {
		c.App.RatingBurst = DefaultRatingBurst
	}
	if c.Sync.Interval <= 0 {
		c.Sync.Interval = DefaultSyncInterval
	}
	if c.Sync.Lookback <= 0 {
		c.Sync.Lookback = DefaultSyncLookback
	}
}

// ParseLogLevel は設定値の文字列を slog.Level に変換します。不明な値は Info
func ParseLogLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// WatchLogLevel は設定ファイルの変更を監視し、log.level の変更を levelVar に反映します
func WatchLogLevel(levelVar *slog.LevelVar, logger *slog.Logger) {
	viper.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		raw := viper.GetString("log.level")
		level, ok := ParseLogLevel(raw)
		if !ok {
			logger.Warn("Ignoring unknown log level from config change", "level", raw, "file", e.Name)
			return
		}
		if levelVar.Level() != level {
			levelVar.Set(level)
			logger.Info("Log level changed", "level", level.String(), "file", e.Name)
		}
	})
	viper.WatchConfig()
}
