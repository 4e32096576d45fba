package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mberetvas/FoodScraper/log"
	"github.com/mberetvas/FoodScraper/store"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list [-o <dir>]",
	Short: "Lists the recipe JSON files in the output directory.",
	Run: func(cmd *cobra.Command, args []string) {
		logger := log.NewLogger("list")

		files, err := store.NewFileStore(*output).List()
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to list recipes")
		}

		for _, file := range files {
			fmt.Println(file)
		}
	},
}
