package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vfg2006/influencer-match-api/internal/domain"
	"github.com/vfg2006/influencer-match-api/pkg/utils"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search, score and record influencers for a product",
	RunE:  runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringP("offering", "o", "", "product id to search influencers for")
	searchCmd.Flags().IntP("max-results", "n", 0, "maximum number of channels to evaluate (default from config)")
	searchCmd.Flags().Float64("min-fit-score", -1, "minimum fit score between 0 and 1 (default from config)")
}

func runSearch(cmd *cobra.Command, _ []string) error {
	offeringID, _ := cmd.Flags().GetString("offering")
	if offeringID == "" {
		return errors.New("--offering is required")
	}

	maxResults, _ := cmd.Flags().GetInt("max-results")
	request := domain.SearchRequest{OfferingID: offeringID, MaxResults: maxResults}

	if minFitScore, _ := cmd.Flags().GetFloat64("min-fit-score"); minFitScore >= 0 {
		if minFitScore > 1 {
			return errors.New("--min-fit-score must be between 0 and 1")
		}
		request.MinFitScore = &minFitScore
	}

	application, err := loadApp(cmd.Context())
	if err != nil {
		return err
	}
	defer application.Close()

	results, err := application.Services.Searcher.Search(cmd.Context(), request)
	if err != nil {
		// busca interrompida ainda mostra as partidas já gravadas
		if errors.Is(err, context.Canceled) && len(results) > 0 {
			fmt.Fprintln(cmd.OutOrStdout(), utils.PrettyJson(results))
		}
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), utils.PrettyJson(results))
	return nil
}
