package repository

import (
	"log/slog"
	"os"
	"strings"
	"time"

	slogGorm "github.com/orandin/slog-gorm" // slogGormはエイリアス
	"gorm.io/driver/postgres"               // postgresドライバ
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// PoolConfig はコネクションプールの設定
type PoolConfig struct {
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

// DefaultPoolConfig は設定ファイルに値がない場合のプール設定
var DefaultPoolConfig = PoolConfig{
	MaxIdleConns:    10,
	MaxOpenConns:    100,
	ConnMaxLifetime: time.Hour,
}

// NewGormLogger は slog を利用する GORM Logger を作成します
func NewGormLogger(appLogger *slog.Logger) gormlogger.Interface {
	// APP_ENV=dev の場合は全SQLを出力
	gormLogLevel := gormlogger.Warn
	if strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		gormLogLevel = gormlogger.Info
	}

	slogGormLogger := slogGorm.New(
		slogGorm.WithHandler(appLogger.Handler()),
		slogGorm.WithTraceAll(),
		slogGorm.WithSlowThreshold(500*time.Millisecond), // 遅いクエリの閾値
	)
	return slogGormLogger.LogMode(gormLogLevel)
}

// NewDB はPostgreSQLへの接続を確立します
func NewDB(databaseURL string, pool PoolConfig, appLogger *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: NewGormLogger(appLogger),
		// 一意制約違反を gorm.ErrDuplicatedKey に変換
		TranslateError: true,
	})
	if err != nil {
		appLogger.Error("Failed to connect to database with GORM", slog.Any("error", err))
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		appLogger.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		return nil, err
	}

	// Pingで接続確認
	if err = sqlDB.Ping(); err != nil {
		appLogger.Error("Error pinging database", slog.Any("error", err))
		sqlDB.Close() // Ping失敗時はここでClose
		return nil, err
	}

	if pool.MaxIdleConns <= 0 {
		pool.MaxIdleConns = DefaultPoolConfig.MaxIdleConns
	}
	if pool.MaxOpenConns <= 0 {
		pool.MaxOpenConns = DefaultPoolConfig.MaxOpenConns
	}
	if pool.ConnMaxLifetime <= 0 {
		pool.ConnMaxLifetime = DefaultPoolConfig.ConnMaxLifetime
	}
	sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
	sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(pool.ConnMaxLifetime)

	appLogger.Info("Database connection established with GORM",
		slog.Int("max_open_conns", pool.MaxOpenConns),
		slog.Int("max_idle_conns", pool.MaxIdleConns),
	)
	return db, nil
}
