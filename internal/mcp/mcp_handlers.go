package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/huangsam/pricedash/core"
	"github.com/huangsam/pricedash/internal/contract"
	"github.com/huangsam/pricedash/internal/outwriter"
	"github.com/huangsam/pricedash/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	src     contract.DatasetSource
}

// compareResponse is the payload of compare_prices.
type compareResponse struct {
	Selected []string            `json:"selected"`
	Series   []schema.TimeSeries `json:"series"`
}

// trendResponse is the payload of price_trend.
type trendResponse struct {
	Trend     *schema.TrendSummary `json:"trend"`
	Narrative string               `json:"narrative,omitempty"`
}

// configFor applies the shared selection arguments on top of the base config.
func (h *toolHandler) configFor(request mcp.CallToolRequest, productsArg string) *contract.Config {
	cfg := h.baseCfg.Clone()
	if c := request.GetString("category", ""); c != "" {
		cfg.Categories = contract.SplitList(c)
	}
	if q := strings.TrimSpace(request.GetString("query", "")); q != "" {
		cfg.Query = q
	}
	cfg.Products = nil
	if productsArg != "" {
		cfg.Products = contract.SplitList(request.GetString(productsArg, ""))
	}
	return cfg
}

// dashboard derives the view for a tool call, requiring a product selection when asked to.
func (h *toolHandler) dashboard(ctx context.Context, cfg *contract.Config, needSelection bool) (schema.DashboardView, *mcp.CallToolResult) {
	if needSelection && len(cfg.Products) == 0 {
		return schema.DashboardView{}, mcp.NewToolResultError(outwriter.PlaceholderText)
	}
	view, err := core.GetDashboardResults(core.WithSuppressHeader(ctx), cfg, h.src)
	if err != nil {
		return schema.DashboardView{}, mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err))
	}
	return view, nil
}

func toolResultJSON(v any) *mcp.CallToolResult {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err))
	}
	return mcp.NewToolResultText(string(jsonData))
}

func (h *toolHandler) handleListCategories(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	view, errResult := h.dashboard(ctx, h.configFor(request, ""), false)
	if errResult != nil {
		return errResult, nil
	}
	return toolResultJSON(view.Categories), nil
}

func (h *toolHandler) handleSearchProducts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	view, errResult := h.dashboard(ctx, h.configFor(request, ""), false)
	if errResult != nil {
		return errResult, nil
	}
	return toolResultJSON(core.SummarizeProducts(view.Filtered)), nil
}

func (h *toolHandler) handleComparePrices(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	view, errResult := h.dashboard(ctx, h.configFor(request, "products"), true)
	if errResult != nil {
		return errResult, nil
	}
	return toolResultJSON(compareResponse{Selected: view.Selected, Series: view.Series}), nil
}

func (h *toolHandler) handlePriceChange(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	view, errResult := h.dashboard(ctx, h.configFor(request, "product"), true)
	if errResult != nil {
		return errResult, nil
	}
	return toolResultJSON(view.Change), nil
}

func (h *toolHandler) handlePriceTrend(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	view, errResult := h.dashboard(ctx, h.configFor(request, "product"), true)
	if errResult != nil {
		return errResult, nil
	}
	return toolResultJSON(trendResponse{Trend: view.Trend, Narrative: view.Narrative}), nil
}

func (h *toolHandler) handleExportSelection(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	view, errResult := h.dashboard(ctx, h.configFor(request, "products"), true)
	if errResult != nil {
		return errResult, nil
	}

	var buf bytes.Buffer
	var err error
	switch format := request.GetString("format", string(schema.CSVOut)); schema.OutputMode(format) {
	case schema.CSVOut:
		err = outwriter.WriteExportCSV(&buf, view.Export)
	case schema.JSONOut:
		err = outwriter.WriteExportJSON(&buf, view.Export)
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unsupported export format: %s", format)), nil
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("export failed: %v", err)), nil
	}
	return mcp.NewToolResultText(buf.String()), nil
}
