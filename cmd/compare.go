package cmd

import (
	"github.com/huangsam/pricedash/core"
	"github.com/spf13/cobra"
)

// compareCmd focused on side-by-side price comparisons.
var compareCmd = &cobra.Command{
	Use:   "compare [data-path]",
	Short: "Compare the price history of up to 3 products.",
	Long: `Compare the yearly prices of up to 3 products side by side.

Products are picked with --product and must pass the category and query filters.
Only the first 3 distinct products are kept; extra ones are ignored with a warning.
Years where a product has no observation are shown as '-'.

Examples:
  # Compare rice and instant noodles
  pricedash compare --product "Rice,Instant Noodles"

  # Compare within a category only
  pricedash compare --category Drink --product Milk,Juice

  # Export the comparison in long form for a spreadsheet
  pricedash compare --product Rice,Milk --output csv --output-file compare.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		openAndExecute("Cannot compare prices", core.ExecuteCompare)
	},
}
