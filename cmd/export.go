package cmd

import (
	"github.com/huangsam/pricedash/core"
	"github.com/spf13/cobra"
)

// exportCmd saves the selected records.
var exportCmd = &cobra.Command{
	Use:   "export [data-path]",
	Short: "Export the records of the selected products.",
	Long: `Write the filtered records of the selected products to a file.

The format follows --output: csv (default), json, parquet or xlsx. Without
--output-file the records go to selected_product_price.<format>. Use
--output-file - to write to stdout.

Examples:
  # Save rice and milk prices as CSV
  pricedash export --product Rice,Milk

  # Save them as a spreadsheet
  pricedash export --product Rice,Milk --output xlsx --output-file prices.xlsx`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		openAndExecute("Cannot export selection", core.ExecuteExport)
	},
}
