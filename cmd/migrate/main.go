// cmd/migrate/main.go
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"go_speak_review/internal/config"
	"go_speak_review/internal/repository"
)

// 使い方: migrate [-config dir] up|down|version|force N
func main() {
	configPath := flag.String("config", "configs", "config.yaml を含むディレクトリ")
	flag.Parse()

	if err := config.LoadConfig(*configPath); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}
	levelVar, _ := config.NewLevelVar(config.Cfg.Log.Level)
	logger := config.NewLogger(os.Stderr, levelVar)

	if err := run(flag.Args(), config.Cfg.Database.URL, logger); err != nil {
		logger.Error("Migration command failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(args []string, databaseURL string, logger *slog.Logger) error {
	if len(args) == 0 {
		return fmt.Errorf("command is required: up|down|version|force N")
	}
	if databaseURL == "" {
		return fmt.Errorf("database url is not configured (APP_DATABASE_URL)")
	}

	migrator, err := repository.NewMigrator(databaseURL, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := migrator.Close(); err != nil {
			logger.Warn("Error closing migrator", slog.Any("error", err))
		}
	}()

	switch args[0] {
	case "up":
		return migrator.Up()
	case "down":
		return migrator.Down()
	case "version":
		version, dirty, err := migrator.Version()
		if err != nil {
			return err
		}
		fmt.Printf("version=%d dirty=%t\n", version, dirty)
		return nil
	case "force":
		if len(args) < 2 {
			return fmt.Errorf("force requires a version")
		}
		var version int
		if _, err := fmt.Sscanf(args[1], "%d", &version); err != nil {
			return fmt.Errorf("invalid version %q: %w", args[1], err)
		}
		return migrator.Force(version)
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}
