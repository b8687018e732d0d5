package cmd

import (
	"github.com/huangsam/pricedash/core"
	"github.com/spf13/cobra"
)

// trendCmd classifies the overall movement of the main product.
var trendCmd = &cobra.Command{
	Use:   "trend [data-path]",
	Short: "Classify the overall price trend of the main product.",
	Long: `Compare the first and last observed price of the main product and label the
movement as increase, decrease or stable, with a short economic reading.

Intermediate years do not affect the label.

Examples:
  # Trend of milk prices
  pricedash trend --product Milk`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		openAndExecute("Cannot classify trend", core.ExecuteTrend)
	},
}
