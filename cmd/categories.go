package cmd

import (
	"github.com/huangsam/pricedash/core"
	"github.com/spf13/cobra"
)

// categoriesCmd lists what the category filter can choose from.
var categoriesCmd = &cobra.Command{
	Use:   "categories [data-path]",
	Short: "List the product categories of the dataset.",
	Long: `List every category of the dataset in the order it first appears.

These are the values accepted by --category. Without --category, every
category is selected.

Examples:
  # List categories of the default products.csv
  pricedash categories

  # List categories of a dataset stored in SQLite
  pricedash categories --source sqlite`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		openAndExecute("Cannot list categories", core.ExecuteCategories)
	},
}
