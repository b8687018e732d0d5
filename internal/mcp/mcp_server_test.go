package mcp_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/huangsam/pricedash/internal/contract"
	mcp_internal "github.com/huangsam/pricedash/internal/mcp"
	"github.com/huangsam/pricedash/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var sampleRecords = []schema.PriceRecord{
	{Category: "Food", Product: "Rice", Year: 2020, Price: 1000},
	{Category: "Food", Product: "Rice", Year: 2021, Price: 1100},
	{Category: "Food", Product: "Instant Noodles", Year: 2020, Price: 800},
	{Category: "Food", Product: "Instant Noodles", Year: 2021, Price: 850},
	{Category: "Drink", Product: "Milk", Year: 2020, Price: 2500},
	{Category: "Drink", Product: "Milk", Year: 2021, Price: 2400},
	{Category: "Household", Product: "Tissue", Year: 2020, Price: 0},
	{Category: "Household", Product: "Tissue", Year: 2021, Price: 50},
}

func newTestServer(t *testing.T) (*contract.MockDatasetSource, func(name string, args map[string]any) *mcp.CallToolResult) {
	t.Helper()
	src := &contract.MockDatasetSource{}
	src.On("Load", mock.Anything).Return(sampleRecords, nil).Maybe()
	src.On("Describe").Return("mock").Maybe()

	s := mcp_internal.NewMCPServer(&contract.Config{Precision: 1}, src, "test")
	call := func(name string, args map[string]any) *mcp.CallToolResult {
		tool := s.GetTool(name)
		require.NotNil(t, tool, "Tool %s should exist", name)
		res, err := tool.Handler(context.Background(), mcp.CallToolRequest{
			Params: mcp.CallToolParams{Name: name, Arguments: args},
		})
		require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
		require.NotNil(t, res)
		return res
	}
	return src, call
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestMCPServerHandlers_ValidationErrors(t *testing.T) {
	_, call := newTestServer(t)

	for _, name := range []string{"compare_prices", "export_selection"} {
		t.Run(name+" without products", func(t *testing.T) {
			res := call(name, map[string]any{"products": " , "})
			assert.True(t, res.IsError, "The response should indicate an error state")
			assert.Contains(t, resultText(t, res), "Select at least one product")
		})
	}

	t.Run("export_selection bad format", func(t *testing.T) {
		res := call("export_selection", map[string]any{"products": "Rice", "format": "xml"})
		assert.True(t, res.IsError)
		assert.Contains(t, resultText(t, res), "unsupported export format")
	})
}

func TestMCPServerHandlers_LoadFailure(t *testing.T) {
	src := &contract.MockDatasetSource{}
	src.On("Load", mock.Anything).Return(nil, errors.New("disk gone"))
	src.On("Describe").Return("mock")

	s := mcp_internal.NewMCPServer(&contract.Config{}, src, "test")
	res, err := s.GetTool("list_categories").Handler(context.Background(), mcp.CallToolRequest{})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "disk gone")
}

func TestMCPServerHandlers_Results(t *testing.T) {
	_, call := newTestServer(t)

	t.Run("list_categories", func(t *testing.T) {
		res := call("list_categories", nil)
		require.False(t, res.IsError)
		var categories []string
		require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &categories))
		assert.Equal(t, []string{"Food", "Drink", "Household"}, categories)
	})

	t.Run("search_products", func(t *testing.T) {
		res := call("search_products", map[string]any{"category": "Food", "query": "Ri"})
		require.False(t, res.IsError)
		var products []schema.ProductSummary
		require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &products))
		require.Len(t, products, 1)
		assert.Equal(t, schema.ProductSummary{Product: "Rice", Category: "Food", Observations: 2, FirstYear: 2020, LastYear: 2021}, products[0])
	})

	t.Run("compare_prices keeps three products", func(t *testing.T) {
		res := call("compare_prices", map[string]any{"products": "Rice, Milk, Tissue, Instant Noodles"})
		require.False(t, res.IsError)
		var payload struct {
			Selected []string            `json:"selected"`
			Series   []schema.TimeSeries `json:"series"`
		}
		require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &payload))
		assert.Equal(t, []string{"Rice", "Milk", "Tissue"}, payload.Selected)
		require.Len(t, payload.Series, 3)
		assert.Equal(t, []schema.SeriesPoint{{Year: 2020, Price: 1000}, {Year: 2021, Price: 1100}}, payload.Series[0].Points)
	})

	t.Run("price_change with zero base", func(t *testing.T) {
		res := call("price_change", map[string]any{"product": "Tissue"})
		require.False(t, res.IsError)
		assert.Contains(t, resultText(t, res), `"percent": null`)
	})

	t.Run("price_trend unknown product", func(t *testing.T) {
		res := call("price_trend", map[string]any{"product": "Bread"})
		require.False(t, res.IsError)
		assert.JSONEq(t, `{"trend": null}`, resultText(t, res))
	})

	t.Run("search_products trims query", func(t *testing.T) {
		res := call("search_products", map[string]any{"category": "Food", "query": "  Ri  "})
		require.False(t, res.IsError)
		var products []schema.ProductSummary
		require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &products))
		require.Len(t, products, 1)
		assert.Equal(t, "Rice", products[0].Product)
	})

	t.Run("price_trend", func(t *testing.T) {
		res := call("price_trend", map[string]any{"product": "Milk"})
		require.False(t, res.IsError)
		var payload struct {
			Trend     schema.TrendSummary `json:"trend"`
			Narrative string              `json:"narrative"`
		}
		require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &payload))
		assert.Equal(t, schema.DecreaseTrend, payload.Trend.Label)
		assert.InDelta(t, -100.0, payload.Trend.Delta, 1e-9)
		assert.NotEmpty(t, payload.Narrative)
	})

	t.Run("export_selection csv", func(t *testing.T) {
		res := call("export_selection", map[string]any{"products": "Rice"})
		require.False(t, res.IsError)
		assert.Equal(t, "Category,Product,Year,Price\nFood,Rice,2020,1000\nFood,Rice,2021,1100\n", resultText(t, res))
	})

	t.Run("export_selection json respects category filter", func(t *testing.T) {
		res := call("export_selection", map[string]any{"products": "Rice", "category": "Drink", "format": "json"})
		require.False(t, res.IsError)
		assert.JSONEq(t, "[]", resultText(t, res))
	})
}
