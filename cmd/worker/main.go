package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Xenn-00/arbeitsplatz-meister/internal/config"
	"github.com/Xenn-00/arbeitsplatz-meister/internal/db"
	"github.com/Xenn-00/arbeitsplatz-meister/internal/worker"
	worker_handler "github.com/Xenn-00/arbeitsplatz-meister/internal/worker/handlers"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg := config.LoadConfig()
	if cfg == nil {
		log.Fatal().Msg("Konfiguration konnte nicht geladen werden")
	}

	dbPool, err := db.ConnectPool(context.Background(), cfg.DATABASE.Postgres.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("Postgres nicht verfügbar")
	}
	defer dbPool.Close()

	redisPool, err := db.RedisPool(cfg.DATABASE.Redis.Addr, cfg.DATABASE.Redis.Password, cfg.DATABASE.Redis.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("Redis nicht verfügbar")
	}
	defer redisPool.Close()

	handler := worker_handler.NewWorkerHandler(dbPool)

	server := worker.NewWorkerServer(redisPool, cfg.WORKER.Concurrency)
	mux := asynq.NewServeMux()
	worker.RegisterWorkerHandlers(mux, handler)

	scheduler := worker.NewScheduler(redisPool)
	if err := worker.RegisterCronJobs(scheduler, cfg.WORKER.OverdueCron); err != nil {
		log.Fatal().Err(err).Msg("Cron-Jobs konnten nicht registriert werden")
	}

	log.Info().Int("concurrency", cfg.WORKER.Concurrency).Msg("Starting worker server...")
	if err := server.Start(mux); err != nil {
		log.Fatal().Err(err).Msg("worker server konnte nicht starten")
	}
	log.Info().Str("overdue_cron", cfg.WORKER.OverdueCron).Msg("Starting scheduler...")
	if err := scheduler.Start(); err != nil {
		server.Shutdown()
		log.Fatal().Err(err).Msg("scheduler konnte nicht starten")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	<-ctx.Done()
	stop()
	log.Info().Msg("received shutdown signal")

	scheduler.Shutdown()
	server.Shutdown()
	log.Info().Msg("worker shutdown complete")
}
