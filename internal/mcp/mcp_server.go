// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/pricedash/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the pricedash MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, src contract.DatasetSource, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"Pricedash Price History Server",
		version,
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		src:     src,
	}

	categoryOpt := mcp.WithString("category", mcp.Description("Comma-separated categories to include. Defaults to every category."))
	queryOpt := mcp.WithString("query", mcp.Description("Case-sensitive substring a product name must contain."))

	// --- 1. Tool: list_categories ---
	s.AddTool(mcp.NewTool("list_categories",
		mcp.WithDescription("List every product category in the price dataset, in dataset order."),
	), h.handleListCategories)

	// --- 2. Tool: search_products ---
	s.AddTool(mcp.NewTool("search_products",
		mcp.WithDescription("Find products by category and name substring, with their observation counts and year ranges."),
		categoryOpt,
		queryOpt,
	), h.handleSearchProducts)

	// --- 3. Tool: compare_prices ---
	s.AddTool(mcp.NewTool("compare_prices",
		mcp.WithDescription("Return the year-ordered price series of up to 3 products for side-by-side comparison."),
		mcp.WithString("products", mcp.Description("Comma-separated product names. Only the first 3 distinct names are used."), mcp.Required()),
		categoryOpt,
		queryOpt,
	), h.handleComparePrices)

	// --- 4. Tool: price_change ---
	s.AddTool(mcp.NewTool("price_change",
		mcp.WithDescription("Return the year-over-year percent change of a product's price. A null percent means the previous price was zero."),
		mcp.WithString("product", mcp.Description("Product name."), mcp.Required()),
		categoryOpt,
	), h.handlePriceChange)

	// --- 5. Tool: price_trend ---
	s.AddTool(mcp.NewTool("price_trend",
		mcp.WithDescription("Classify a product's price movement between its first and last observation as increase, decrease or stable. The trend is null when the product has no observations."),
		mcp.WithString("product", mcp.Description("Product name."), mcp.Required()),
		categoryOpt,
	), h.handlePriceTrend)

	// --- 6. Tool: export_selection ---
	s.AddTool(mcp.NewTool("export_selection",
		mcp.WithDescription("Export the price records of the selected products as CSV (Category,Product,Year,Price) or JSON."),
		mcp.WithString("products", mcp.Description("Comma-separated product names. Only the first 3 distinct names are used."), mcp.Required()),
		mcp.WithString("format", mcp.Description("Export format. Defaults to 'csv'."), mcp.Enum("csv", "json")),
		categoryOpt,
		queryOpt,
	), h.handleExportSelection)

	return s
}

// StartMCPServer starts the pricedash MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, src contract.DatasetSource, version string) error {
	s := NewMCPServer(baseCfg, src, version)
	return server.ServeStdio(s)
}
