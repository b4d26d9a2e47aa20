package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Xenn-00/arbeitsplatz-meister/internal/config"
	"github.com/Xenn-00/arbeitsplatz-meister/internal/db"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "apm-admin",
	Short:         "Betriebswerkzeuge für arbeitsplatz-meister",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	rootCmd.AddCommand(migrateCmd(), tokenCmd(), settingsCmd())
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Befehl fehlgeschlagen")
		os.Exit(1)
	}
}

func loadConfig() (*config.AppConfig, error) {
	cfg := config.LoadConfig()
	if cfg == nil {
		return nil, fmt.Errorf("application.yaml konnte nicht geladen werden")
	}
	return cfg, nil
}

func withPostgres(ctx context.Context, fn func(cfg *config.AppConfig, pool *pgxpool.Pool) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	pool, err := db.ConnectPool(ctx, cfg.DATABASE.Postgres.DSN)
	if err != nil {
		return err
	}
	defer pool.Close()
	return fn(cfg, pool)
}

func withRedis(fn func(cfg *config.AppConfig, rdb *redis.Client) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	rdb, err := db.RedisPool(cfg.DATABASE.Redis.Addr, cfg.DATABASE.Redis.Password, cfg.DATABASE.Redis.DB)
	if err != nil {
		return err
	}
	defer rdb.Close()
	return fn(cfg, rdb)
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Ausstehende SQL-Migrationen anwenden",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPostgres(cmd.Context(), func(cfg *config.AppConfig, pool *pgxpool.Pool) error {
				applied, err := db.Migrate(cmd.Context(), pool)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d Migration(en) angewendet\n", applied)
				return nil
			})
		},
	}
}
