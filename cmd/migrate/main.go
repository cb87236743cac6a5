package main

import (
	"flag"
	"log"

	"vocab-quiz/internal/config"
	"vocab-quiz/internal/database"
	"vocab-quiz/internal/logger"

	"go.uber.org/zap"
)

func main() {
	command := flag.String("command", "up", "migration command: up, down or version")
	steps := flag.Int("steps", 1, "number of migrations to roll back with -command=down")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer logger.Sync()

	db, err := database.NewSQLiteDB(cfg.Vocabulary.SQLitePath)
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	switch *command {
	case "up":
		err = database.RunMigrations(db.DB)
	case "down":
		err = database.RollbackMigrations(db.DB, *steps)
	case "version":
		var (
			version uint
			dirty   bool
		)
		version, dirty, err = database.MigrationVersion(db.DB)
		if err == nil {
			l.Info("Current migration version", zap.Uint("version", version), zap.Bool("dirty", dirty))
		}
	default:
		l.Fatal("Unknown migration command", zap.String("command", *command))
	}
	if err != nil {
		l.Fatal("Migration command failed", zap.String("command", *command), zap.Error(err))
	}
}
