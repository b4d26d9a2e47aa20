package main

import (
	"fmt"
	"time"

	"github.com/Xenn-00/arbeitsplatz-meister/internal/abstraction/cache"
	"github.com/Xenn-00/arbeitsplatz-meister/internal/config"
	"github.com/Xenn-00/arbeitsplatz-meister/internal/utils"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

func tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Bearer-Tokens ausstellen und widerrufen",
	}
	cmd.AddCommand(tokenIssueCmd(), tokenRevokeCmd())
	return cmd
}

func tokenIssueCmd() *cobra.Command {
	var (
		userID string
		email  string
		ttl    time.Duration
	)
	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Token für eine Auth-User-ID ausstellen",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			maker, err := utils.NewPasetoMaker(cfg.APP_SECRET.Paseto.HexKey)
			if err != nil {
				return err
			}

			jti, err := uuid.NewV7()
			if err != nil {
				return err
			}
			token, exp := maker.CreateToken(userID, email, jti.String(), ttl)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "token: %s\n", token)
			fmt.Fprintf(out, "jti:   %s\n", jti)
			fmt.Fprintf(out, "exp:   %s\n", exp.Format(time.RFC3339))
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "Auth-User-ID (sub)")
	cmd.Flags().StringVar(&email, "email", "", "E-Mail des Mitarbeiters")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "Gültigkeit")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func tokenRevokeCmd() *cobra.Command {
	var (
		jti string
		ttl time.Duration
	)
	cmd := &cobra.Command{
		Use:   "revoke",
		Short: "Token-ID auf die Widerrufsliste setzen",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRedis(func(cfg *config.AppConfig, rdb *redis.Client) error {
				revoked := cache.NewRedisCache(rdb)
				if err := revoked.Set(cmd.Context(), utils.RevokedTokenKey(jti), true, ttl); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s widerrufen bis %s\n", jti, time.Now().Add(ttl).Format(time.RFC3339))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&jti, "jti", "", "Token-ID")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "so lange wie die Restlaufzeit des Tokens")
	_ = cmd.MarkFlagRequired("jti")
	return cmd
}
