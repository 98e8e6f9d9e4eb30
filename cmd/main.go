package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/DanRulev/vocabquiz/internal/api"
	"github.com/DanRulev/vocabquiz/internal/bot"
	"github.com/DanRulev/vocabquiz/internal/config"
	"github.com/DanRulev/vocabquiz/internal/repository"
	"github.com/DanRulev/vocabquiz/internal/service"
	"github.com/DanRulev/vocabquiz/internal/storage/db"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"go.uber.org/zap"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == config.EnvDevelopment {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

// setupBot returns nil when no token is configured.
func setupBot(cfg *config.Config, stats bot.StatsSI, logger *zap.Logger) (*bot.TelegramAPI, error) {
	if cfg.BotToken == "" {
		logger.Warn("BOT_TOKEN is empty, telegram bot disabled")
		return nil, nil
	}

	return bot.NewTelegramAPI(cfg, stats, logger)
}

func main() {
	cfg, err := config.Init(os.Args[1:])
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := setupLogger(cfg.Env)
	defer logger.Sync() //nolint:errcheck

	database, err := db.InitDB(cfg.DB)
	if err != nil {
		logger.Fatal("failed init db", zap.Error(err))
	}
	defer database.Close()

	repos := repository.NewRepository(repository.TxDB{DB: database})
	services := service.InitServices(repos, logger)

	handler, err := setupBot(cfg, services, logger)
	if err != nil {
		database.Close()
		logger.Fatal("failed init telegram bot", zap.Error(err))
	}

	if cfg.Env != config.EnvDevelopment {
		gin.SetMode(gin.ReleaseMode)
	}

	server := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      api.NewAPI(cfg.HTTP, services, database, logger).Handler(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", zap.String("addr", cfg.HTTP.Addr), zap.String("driver", cfg.DB.Driver))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server")
		return server.Shutdown(shutdownCtx)
	})

	if handler != nil {
		g.Go(func() error {
			return handler.Start(gctx)
		})
	}

	if err := g.Wait(); err != nil {
		logger.Error("stopped with error", zap.Error(err))
	}

	logger.Info("bye")
}
