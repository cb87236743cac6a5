package main

import (
	"context"
	"log"

	"vocab-quiz/internal/config"
	"vocab-quiz/internal/database"
	"vocab-quiz/internal/domain"
	"vocab-quiz/internal/logger"
	"vocab-quiz/internal/repository"

	"go.uber.org/zap"
)

// Seeder copies the JSON vocabulary documents into the SQLite store.
type Seeder struct {
	source    domain.VocabularyRepository
	target    domain.VocabularyWriter
	txManager domain.TransactionManager
	logger    *zap.Logger
}

func NewSeeder(source domain.VocabularyRepository, target domain.VocabularyWriter, txManager domain.TransactionManager, logger *zap.Logger) *Seeder {
	return &Seeder{
		source:    source,
		target:    target,
		txManager: txManager,
		logger:    logger,
	}
}

// SeedAll replaces every lesson set. Each set is written in its own transaction.
func (s *Seeder) SeedAll(ctx context.Context) error {
	for _, set := range domain.LessonSets {
		vocab, err := s.source.LoadSet(ctx, set)
		if err != nil {
			s.logger.Error("Failed to read lesson set", zap.String("lesson_set", string(set)), zap.Error(err))
			return err
		}

		err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
			return s.target.ReplaceSet(txCtx, set, vocab)
		})
		if err != nil {
			s.logger.Error("Failed to seed lesson set", zap.String("lesson_set", string(set)), zap.Error(err))
			return err
		}

		s.logger.Info("Seeded lesson set",
			zap.String("lesson_set", string(set)),
			zap.Int("categories", len(vocab.Categories)),
			zap.Int("entries", len(vocab.Flatten())),
		)
	}
	return nil
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	db, err := database.NewSQLiteDB(cfg.Vocabulary.SQLitePath)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.RunMigrations(db.DB); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	source := repository.NewFileVocabularyRepository(map[domain.LessonSet]string{
		domain.LessonBeginner: cfg.Vocabulary.BeginnerPath,
		domain.LessonAdvanced: cfg.Vocabulary.AdvancedPath,
	})
	seeder := NewSeeder(
		source,
		repository.NewSQLVocabularyRepository(db),
		repository.NewTransactionManagerAdapter(db),
		appLogger,
	)

	appLogger.Info("Starting vocabulary seeding", zap.String("sqlite_path", cfg.Vocabulary.SQLitePath))
	if err := seeder.SeedAll(context.Background()); err != nil {
		appLogger.Fatal("Vocabulary seeding failed", zap.Error(err))
	}
	appLogger.Info("Vocabulary seeding completed successfully")
}
