package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/go-telegram/bot"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/Freeeeeet/tutorhub_bot/internal/app"
	"github.com/Freeeeeet/tutorhub_bot/internal/config"
	"github.com/Freeeeeet/tutorhub_bot/internal/controller"
	"github.com/Freeeeeet/tutorhub_bot/internal/docstore"
	"github.com/Freeeeeet/tutorhub_bot/internal/media"
	"github.com/Freeeeeet/tutorhub_bot/internal/repository"
	"github.com/Freeeeeet/tutorhub_bot/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	logger.Sugar().Infow("Starting tutorhub bot",
		"environment", cfg.Environment,
		"token_length", len(cfg.TelegramToken))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		logger.Fatal("Failed to create database pool", zap.Error(err))
	}
	defer pool.Close()

	migrator, err := app.NewMigrator(pool, cfg.MigrationsPath)
	if err != nil {
		logger.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
	migrator.Close()

	store := docstore.NewPostgres(pool)
	tutorRepo := repository.NewTutorRepository(store)
	jobRepo := repository.NewJobRepository(store)
	parentRepo := repository.NewParentRepository(store)

	parentService := service.NewParentService(parentRepo, logger)
	directoryService := service.NewDirectoryService(tutorRepo, jobRepo, logger)
	hireService := service.NewHireService(parentRepo, logger)
	historyService := service.NewHistoryService(jobRepo, parentRepo, logger)

	mediaResolver := media.NewResolver(cfg.MediaBaseURL)

	botInstance, err := bot.New(cfg.TelegramToken)
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	botController := controller.NewBotController(
		botInstance,
		parentService,
		directoryService,
		hireService,
		historyService,
		mediaResolver,
		logger,
	)

	if err := botController.RegisterHandlers(ctx); err != nil {
		logger.Fatal("Failed to register handlers", zap.Error(err))
	}

	refresher := app.NewRefresher(directoryService, logger)
	refresher.Start(ctx)
	defer refresher.Stop()

	if err := botController.Start(ctx); err != nil {
		logger.Fatal("Bot stopped with error", zap.Error(err))
	}

	logger.Info("Bot shut down")
}
