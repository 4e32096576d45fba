package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mberetvas/FoodScraper/log"
)

var rootCmd = &cobra.Command{
	Use:   "foodscraper",
	Short: "foodscraper scrapes recipes from supported websites into JSON files.",
}

var output *string

func init() {
	output = rootCmd.PersistentFlags().StringP("output", "o", ".", "The directory to write recipe JSON files to.")
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger := log.NewLogger("main")
		logger.Fatal().Err(err).Msg("Command failed")
	}
}
