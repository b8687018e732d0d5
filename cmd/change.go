package cmd

import (
	"github.com/huangsam/pricedash/core"
	"github.com/spf13/cobra"
)

// changeCmd shows the year-over-year change of the main product.
var changeCmd = &cobra.Command{
	Use:   "change [data-path]",
	Short: "Show the year-over-year price change of the main product.",
	Long: `Show the percent change of the main product's price from one observation to the next.

The main product is the first one given with --product. A year whose previous
price was zero has no defined change and is shown as 'n/a' (null in JSON).

Examples:
  # Yearly change of rice as a bar chart
  pricedash change --product Rice

  # Same data as JSON
  pricedash change --product Rice --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		openAndExecute("Cannot compute price change", core.ExecuteChange)
	},
}
