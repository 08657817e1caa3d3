package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/erazemk/kultur/internal/auth"
	"github.com/erazemk/kultur/internal/db"
	"github.com/erazemk/kultur/internal/store"
)

func tokenCmd() *cobra.Command {
	var (
		editor string
		ttl    time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an editor token for the write endpoints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if ttl == 0 {
				ttl = cfg.Token.TTL
			}

			secret := cfg.Token.Secret
			if secret == "" {
				database, err := db.Open(cfg.DBPath)
				if err != nil {
					return err
				}
				defer database.Close()
				if err := db.EnsureSchema(database); err != nil {
					return err
				}
				secret, err = store.GetTokenSecret(context.Background(), database)
				if err != nil {
					return err
				}
			}

			token, err := auth.GenerateToken(secret, editor, ttl)
			if err != nil {
				return fmt.Errorf("issuing token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVarP(&editor, "editor", "e", "", "editor name recorded in the token")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (default: config token.ttl)")
	cmd.MarkFlagRequired("editor")
	return cmd
}
