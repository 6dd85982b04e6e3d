package main

import (
	"context"
	"fmt"
	"time"

	"yelpcamp/internal/config"
	"yelpcamp/internal/session"
	"yelpcamp/pkg/domain"
	"yelpcamp/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// tokenCommand constructs the 'token' subcommand that issues a session token
// for a given user ID using the configured private key.
func tokenCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issues a session token for given user ID",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			subject, _ := cmd.Flags().GetString("user")
			TTL, _ := cmd.Flags().GetDuration("ttl")

			userID, err := uuid.Parse(subject)
			if err != nil {
				logger.Fatal(ctx, "user must be a UUID", zap.Error(err))
			}

			issuer, err := session.NewIssuer(session.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not create session issuer", zap.Error(err))
			}

			signed, err := issuer.IssueWithTTL(domain.UserID(userID), TTL)
			if err != nil {
				logger.Fatal(ctx, "could not issue session", zap.Error(err))
			}

			fmt.Println(signed) //nolint: forbidigo
		},
	}

	cmd.Flags().String("user", "", "ID of the user the session is issued for")
	cmd.Flags().Duration("ttl", 24*time.Hour, "Token TTL (e.g., 30s, 15m, 1h)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
