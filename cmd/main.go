package main

// Einstiegspunkt der API von arbeitsplatz-meister: Konfiguration laden, Postgres und Redis
// verbinden, Fiber mit Middleware und Routern aufsetzen und bei SIGINT/SIGTERM sauber beenden.

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Xenn-00/arbeitsplatz-meister/internal/config"
	"github.com/Xenn-00/arbeitsplatz-meister/internal/db"
	"github.com/Xenn-00/arbeitsplatz-meister/internal/i18n"
	"github.com/Xenn-00/arbeitsplatz-meister/internal/middleware"
	"github.com/Xenn-00/arbeitsplatz-meister/internal/routers"
	"github.com/Xenn-00/arbeitsplatz-meister/internal/utils"
	json "github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	i18nSvc := i18n.NewInitI18nService()

	cfg := config.LoadConfig()
	if cfg == nil {
		log.Fatal().Msg("Konfiguration konnte nicht geladen werden")
	}
	if cfg.APP.State == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	dbPool, err := db.ConnectPool(context.Background(), cfg.DATABASE.Postgres.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("Postgres nicht verfügbar")
	}
	redisPool, err := db.RedisPool(cfg.DATABASE.Redis.Addr, cfg.DATABASE.Redis.Password, cfg.DATABASE.Redis.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("Redis nicht verfügbar")
	}

	paseto, err := utils.NewPasetoMaker(cfg.APP_SECRET.Paseto.HexKey)
	if err != nil {
		log.Fatal().Err(err).Msg("PASETO-Schlüssel ungültig")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.APP.Name,
		ErrorHandler: middleware.ErrorHandlerMiddleware(i18nSvc),
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
	})
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.AcceptLanguageMiddleware())
	app.Use(middleware.LoggerMiddleware())

	routers.SetupRoutes(app, cfg, dbPool, redisPool, i18nSvc, paseto)

	go func() {
		log.Info().Msgf("Starte %s auf Port %s", cfg.APP.Name, cfg.APP.Port)
		if err := app.Listen(fmt.Sprintf(":%s", cfg.APP.Port)); err != nil {
			log.Fatal().Err(err).Msg("Der Server konnte nicht gestartet werden")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	<-ctx.Done()
	stop()
	log.Warn().Msg("Shutdown-Signal empfangen... Vorbereitung zum Herunterfahren.")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("Beim Herunterfahren ist ein Fehler aufgetreten")
	}

	redisPool.Close()
	dbPool.Close()
	log.Info().Msg("Server ordnungsgemäß heruntergefahren.")
}
