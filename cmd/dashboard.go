package cmd

import (
	"github.com/huangsam/pricedash/core"
	"github.com/spf13/cobra"
)

// dashboardCmd prints every view at once.
var dashboardCmd = &cobra.Command{
	Use:   "dashboard [data-path]",
	Short: "Show comparison, change, trend and export views together.",
	Long: `Render the whole dashboard for the current selection in one go.

Sections appear in order: price comparison, price change, trend and export.
Without --product a placeholder asks you to select a product.

Examples:
  # Full dashboard for rice against noodles
  pricedash dashboard --category Food --product "Rice,Instant Noodles"

  # Full view as JSON for scripting
  pricedash dashboard --product Rice --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		openAndExecute("Cannot build dashboard", core.ExecuteDashboard)
	},
}
