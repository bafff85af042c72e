package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/kdimtricp/reelmatch/internal/config"
	"github.com/kdimtricp/reelmatch/internal/database"
	"github.com/kdimtricp/reelmatch/internal/logging"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to YAML config file")
		command    = flag.String("cmd", "up", "Migration command: up, down, status, version, reset")
	)
	flag.Parse()

	cfg, err := config.LoadUnvalidated(*configPath)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: "console"})

	ctx := context.Background()

	db, err := database.NewDB(ctx, database.ConfigFrom(cfg.Database))
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	migrator := database.NewMigrator(db)
	if err := migrator.Initialize(); err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize migrator")
	}

	switch *command {
	case "up":
		err = migrator.Up(ctx)
	case "down":
		err = migrator.Down(ctx)
	case "status":
		err = migrator.Status(ctx)
	case "version":
		var version int64
		version, err = migrator.Version(ctx)
		if err == nil {
			fmt.Printf("Database version: %d\n", version)
		}
	case "reset":
		err = migrator.Reset(ctx)
	default:
		fmt.Printf("Unknown command: %s\n", *command)
		fmt.Println("Available commands: up, down, status, version, reset")
		os.Exit(1)
	}
	if err != nil {
		logging.Fatal().Err(err).Str("cmd", *command).Msg("Migration command failed")
	}
}
