package cmd

import (
	"github.com/huangsam/pricedash/core"
	"github.com/spf13/cobra"
)

// productsCmd searches the products that pass the filters.
var productsCmd = &cobra.Command{
	Use:   "products [data-path]",
	Short: "Search products by category and name.",
	Long: `List the products that pass the category and query filters.

The query is a case-sensitive substring match on the product name. An empty
--category value selects no category, so nothing matches.

Examples:
  # All products in the Food category
  pricedash products --category Food

  # Products whose name contains "Noodle"
  pricedash products --query Noodle`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		openAndExecute("Cannot search products", core.ExecuteProducts)
	},
}
