package cmd

import (
	"github.com/spf13/cobra"

	"github.com/s0up4200/highton/highrise"
)

// categoriesCmd lists task or deal categories
var categoriesCmd = &cobra.Command{
	Use:               "categories task|deal",
	Short:             "List task or deal categories",
	Args:              cobra.ExactArgs(1),
	ValidArgs:         []string{string(highrise.CategoryTask), string(highrise.CategoryDeal)},
	PersistentPreRunE: initializeApp,
	RunE:              runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(cmd *cobra.Command, args []string) error {
	kind, err := highrise.ParseCategoryKind(args[0])
	if err != nil {
		return err
	}

	categories, err := client.GetCategories(cmd.Context(), kind)
	if err != nil {
		return err
	}
	logger.Debug().Str("kind", string(kind)).Int("count", len(categories)).Msg("Fetched categories")

	return renderCategories(cmd.OutOrStdout(), cfg.Output.Format, categories)
}
