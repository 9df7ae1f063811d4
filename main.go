package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"edu-manage/config"
	"edu-manage/controller"
	"edu-manage/store"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, using system environment variables")
	}

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := store.Connect(ctx, cfg.MongoURI, cfg.DBName)
	if err != nil {
		cancel()
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	if err := db.EnsureIndexes(ctx); err != nil {
		cancel()
		log.Fatal().Err(err).Msg("failed to create indexes")
	}
	cancel()

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: controller.NewRouter(db),
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server is running")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	if err := db.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("store close failed")
	}
}
