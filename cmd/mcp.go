package cmd

import (
	"github.com/huangsam/pricedash/internal/contract"
	"github.com/huangsam/pricedash/internal/dataset"
	"github.com/huangsam/pricedash/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp [data-path]",
	Short: "Start the Pricedash MCP server",
	Long: `Launch an MCP server on stdio that allows AI agents to explore the price dataset via standard tools:
list_categories, search_products, compare_prices, price_change, price_trend and export_selection.

The dataset flags (--data, --source, --source-connect, --table) pick the dataset,
and the selection flags act as defaults that tool arguments override.`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		src, err := dataset.NewSource(rootCtx, cfg)
		if err != nil {
			contract.LogFatal("Cannot open dataset", err)
		}
		defer dataset.CloseSource(src)
		return mcp.StartMCPServer(rootCtx, cfg, src, version)
	},
}
