package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DanRulev/moviebot.git/internal/bot"
	"github.com/DanRulev/moviebot.git/internal/catalog"
	"github.com/DanRulev/moviebot.git/internal/client"
	"github.com/DanRulev/moviebot.git/internal/config"
	"github.com/DanRulev/moviebot.git/internal/locale"
	"github.com/DanRulev/moviebot.git/internal/metrics"
	"github.com/DanRulev/moviebot.git/internal/models"
	"github.com/DanRulev/moviebot.git/internal/repository"
	"github.com/DanRulev/moviebot.git/internal/service"
	"github.com/DanRulev/moviebot.git/internal/storage/cache"
	"github.com/DanRulev/moviebot.git/internal/storage/db"
	"github.com/DanRulev/moviebot.git/internal/storage/transient"

	"go.uber.org/zap"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func main() {
	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := setupLogger(cfg.Env)
	defer logger.Sync()

	db, err := db.InitDB(cfg.DB)
	if err != nil {
		logger.Fatal("failed init db", zap.Error(err))
	}
	defer db.Close()

	repos := repository.NewRepository(db)

	store, err := transient.New(cfg.Audio.Dir)
	if err != nil {
		logger.Fatal("failed init audio dir", zap.Error(err))
	}
	if removed, err := store.Purge(); err != nil {
		logger.Warn("failed to purge stale narrations", zap.Error(err))
	} else if removed > 0 {
		logger.Info("stale narrations removed", zap.Int("count", removed), zap.String("dir", store.Dir()))
	}

	texts, err := locale.New()
	if err != nil {
		logger.Fatal("invalid translations", zap.Error(err))
	}

	movies, err := catalog.New(texts)
	if err != nil {
		logger.Fatal("invalid genre catalog", zap.Error(err))
	}

	clients := client.InitClients(
		client.NewHubAPI(cfg.Models.HubURL, cfg.Models.Revision, cfg.Models.Token),
		client.NewSpeechAPI(store),
	)
	services := service.InitServices(clients, repos, movies, store, service.Options{
		Artifacts:       cfg.Models.Artifacts,
		ModelCacheDir:   cfg.Models.CacheDir,
		LocalizedGenres: cfg.UI.LocalizedGenres,
	}, logger)
	cache := cache.NewCache()

	if cfg.Metrics.Addr != "" {
		srv := metrics.NewServer(cfg.Metrics.Addr)
		go func() {
			if err := srv.ListenAndServe(); err != nil {
				logger.Error("metrics server stopped", zap.Error(err))
			}
		}()
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(ctx)
		}()
	}

	handler, err := bot.NewTelegramAPI(cfg.BotToken, cfg.Env, services, texts, cache, bot.Options{
		Timeout:         cfg.App.Timeout,
		DefaultLanguage: models.Language(cfg.UI.DefaultLanguage),
	}, logger)
	if err != nil {
		logger.Fatal(err.Error())
		return
	}

	// warm the artifact cache so the first /start does not wait for the download
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		if _, err := services.EnsureModels(ctx); err != nil {
			logger.Warn("models not ready at startup", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-stop
		logger.Info("shutting down")
		handler.Stop()
	}()

	handler.Start()
}
