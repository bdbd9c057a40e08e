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

// searchReport is a stored search request together with everything it persisted.
type searchReport struct {
	Request          *domain.SearchRequest     `json:"request"`
	Results          []domain.BreachResult     `json:"results"`
	PasswordAnalysis []domain.PasswordAnalysis `json:"passwordAnalysis"`
}

func searchCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Inspects stored breach searches",
	}

	show := &cobra.Command{
		Use:   "show [search request id]",
		Short: "Prints a search request with its breach results and password analyses",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			id, err := uuid.Parse(args[0])
			if err != nil {
				logger.Fatal(ctx, "invalid search request id", zap.Error(err))
			}
			reqID := domain.SearchRequestID(id)
			ctx = logger.WithFields(ctx, zap.Stringer("searchRequestID", reqID))

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			req, err := strg.SearchRequestByID(ctx, reqID)
			if err != nil {
				logger.Fatal(ctx, "could not get search request", zap.Error(err))
			}
			if req == nil {
				logger.Fatal(ctx, "search request not found")
			}

			report := searchReport{Request: req}
			if report.Results, err = strg.BreachResultsBySearchRequest(ctx, reqID); err != nil {
				logger.Fatal(ctx, "could not get breach results", zap.Error(err))
			}
			if report.PasswordAnalysis, err = strg.PasswordAnalysesBySearchRequest(ctx, reqID); err != nil {
				logger.Fatal(ctx, "could not get password analyses", zap.Error(err))
			}

			out, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				logger.Fatal(ctx, "could not encode search request", zap.Error(err))
			}
			fmt.Println(string(out)) //nolint: forbidigo
		},
	}

	cmd.AddCommand(show)

	return cmd
}
