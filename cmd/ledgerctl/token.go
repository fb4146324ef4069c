package main

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mmynk/expensetracker/internal/auth"
)

func newTokenCmd() *cobra.Command {
	var (
		secret string
		ttl    time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token SUBJECT",
		Short: "Mint a bearer token for a server with AUTH_SECRET set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if secret == "" {
				return errors.New("--secret or AUTH_SECRET is required")
			}
			token, err := auth.NewJWTManager(secret, ttl).Generate(args[0])
			if err != nil {
				return err
			}
			printf(cmd.OutOrStdout(), "%s\n", token)
			return nil
		},
	}
	cmd.Flags().StringVar(&secret, "secret", os.Getenv("AUTH_SECRET"), "signing secret shared with the server")
	cmd.Flags().DurationVar(&ttl, "ttl", 30*24*time.Hour, "token lifetime")
	return cmd
}
