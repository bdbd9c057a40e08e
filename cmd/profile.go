package main

import (
	"context"
	"encoding/json"
	"fmt"

	"breachcheck/internal/config"
	"breachcheck/pkg/domain"
	"breachcheck/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// profileCommand groups profile maintenance subcommands. Profiles are owned by
// the account system; this command seeds them for local use.
func profileCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manages user profiles",
	}

	create := &cobra.Command{
		Use:   "create",
		Short: "Creates the profile of a user unless it already exists",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			rawID, _ := cmd.Flags().GetString("user-id")
			name, _ := cmd.Flags().GetString("name")

			id, err := uuid.Parse(rawID)
			if err != nil {
				logger.Fatal(ctx, "invalid user id", zap.Error(err))
			}
			userID := domain.UserID(id)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			profile, err := strg.ProfileByUserID(ctx, userID)
			if err != nil {
				logger.Fatal(ctx, "could not get profile", zap.Error(err))
			}
			if profile == nil {
				profile, err = strg.CreateProfile(ctx, domain.Profile{UserID: userID, DisplayName: name})
				if err != nil {
					logger.Fatal(ctx, "could not create profile", zap.Error(err))
				}
				logger.Info(ctx, "profile created", zap.Stringer("profileID", profile.ID))
			}

			out, err := json.MarshalIndent(profile, "", "  ")
			if err != nil {
				logger.Fatal(ctx, "could not encode profile", zap.Error(err))
			}
			fmt.Println(string(out)) //nolint: forbidigo
		},
	}
	create.Flags().String("user-id", "", "Owner user ID (JWT subject)")
	create.Flags().String("name", "", "Display name")
	_ = create.MarkFlagRequired("user-id")

	cmd.AddCommand(create)

	return cmd
}
