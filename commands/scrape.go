package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/mberetvas/FoodScraper/config"
	"github.com/mberetvas/FoodScraper/fetch"
	"github.com/mberetvas/FoodScraper/log"
	"github.com/mberetvas/FoodScraper/pipeline"
	"github.com/mberetvas/FoodScraper/scrape"
	"github.com/mberetvas/FoodScraper/store"
)

var (
	selectorFile *string
	timeout      *time.Duration
)

func init() {
	selectorFile = scrapeCmd.Flags().String("selectors", "", "A json5 file with selector overrides, merged over the built-in sites.")
	timeout = scrapeCmd.Flags().Duration("timeout", fetch.DefaultTimeout, "The HTTP timeout for the page fetch.")
	rootCmd.AddCommand(scrapeCmd)
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape <url> [-o <dir>] [--selectors <path/to/selectors.json5>]",
	Short: "Scrapes a recipe page and writes the extracted recipe to a JSON file.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logger := log.NewLogger("scrape")

		sites, err := config.LoadSites(*selectorFile)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to load selectors")
		}

		registry, err := scrape.NewDefaultRegistry(sites)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to build site registry")
		}

		p := pipeline.New(
			fetch.NewFetcher(*timeout),
			registry,
			store.NewFileStore(*output),
		)

		path, err := p.Run(cmd.Context(), args[0])
		if err != nil {
			logger.Fatal().Err(err).Str("url", args[0]).Msg("Failed to scrape recipe")
		}

		logger.Info().Str("path", path).Msg("Recipe written")
	},
}
