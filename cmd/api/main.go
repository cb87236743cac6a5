// @title Vocab Quiz API
// @version 1.0
// @description Korean and Sinhalese flashcard quiz sessions.
// @host localhost:8090
// @BasePath /api
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "vocab-quiz/cmd/api/docs"
	"vocab-quiz/internal/adapter"
	"vocab-quiz/internal/cache"
	"vocab-quiz/internal/config"
	"vocab-quiz/internal/database"
	"vocab-quiz/internal/domain"
	"vocab-quiz/internal/handler"
	"vocab-quiz/internal/logger"
	"vocab-quiz/internal/middleware"
	"vocab-quiz/internal/repository"
	"vocab-quiz/internal/service"
	"vocab-quiz/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		logger.Get().Info("HTTP Request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)
		return err
	}
}

// newVocabularyRepository returns the configured vocabulary source and a
// cleanup func for any resources it opened.
func newVocabularyRepository(cfg *config.Config) (domain.VocabularyRepository, func(), error) {
	if cfg.Vocabulary.Source != "sqlite" {
		return repository.NewFileVocabularyRepository(map[domain.LessonSet]string{
			domain.LessonBeginner: cfg.Vocabulary.BeginnerPath,
			domain.LessonAdvanced: cfg.Vocabulary.AdvancedPath,
		}), func() {}, nil
	}

	db, err := database.NewSQLiteDB(cfg.Vocabulary.SQLitePath)
	if err != nil {
		return nil, nil, err
	}
	if err := database.RunMigrations(db.DB); err != nil {
		db.Close()
		return nil, nil, err
	}
	return repository.NewSQLVocabularyRepository(db), func() { db.Close() }, nil
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	vocabRepo, closeRepo, err := newVocabularyRepository(cfg)
	if err != nil {
		appLogger.Fatal("Failed to open vocabulary source", zap.String("source", cfg.Vocabulary.Source), zap.Error(err))
	}
	defer closeRepo()

	catalog := service.NewVocabularyCatalog(vocabRepo)
	if err := catalog.Load(ctx); err != nil {
		appLogger.Fatal("Failed to load vocabulary", zap.Error(err))
	}

	var cacheAdapter domain.Cache
	if cfg.RedisEnabled() {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			appLogger.Warn("Redis unavailable; session summaries will not be cached", zap.Error(err))
		} else {
			defer redisClient.Close()
			cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
			appLogger.Info("Successfully connected to Redis", zap.String("address", cfg.Redis.Address))
		}
	}

	summaries := service.NewSummaryCacheService(cacheAdapter, cfg.Quiz.SummaryTTL)
	quizService := service.NewQuizService(catalog, summaries, cacheAdapter, cfg)
	quizHandler := handler.NewQuizHandler(quizService, validation.NewValidator())

	go quizService.RunJanitor(ctx, cfg.Quiz.SweepInterval)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
		MaxAge:       300,
	}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)
	quizHandler.RegisterRoutes(app.Group("/api"))

	go func() {
		appLogger.Info("Starting server",
			zap.Int("port", cfg.Server.Port),
			zap.String("env", cfg.Logger.Env),
			zap.String("vocabulary_source", cfg.Vocabulary.Source),
		)
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Error("Server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
		os.Exit(1)
	}
	appLogger.Info("Server exited gracefully")
}
