package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/huangsam/pricedash/internal/contract"
	"github.com/huangsam/pricedash/internal/parquet"
	"github.com/huangsam/pricedash/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// testConfig returns a plain-text config with a fixed width.
func testConfig() *contract.Config {
	return &contract.Config{Output: schema.TextOut, Precision: 1, Width: 100}
}

// riceMilkView is a dashboard view selecting Rice (main) and Milk.
func riceMilkView() schema.DashboardView {
	records := []schema.PriceRecord{
		{Category: "Food", Product: "Rice", Year: 2020, Price: 1000},
		{Category: "Food", Product: "Rice", Year: 2021, Price: 1100},
		{Category: "Drink", Product: "Milk", Year: 2020, Price: 2500},
		{Category: "Drink", Product: "Milk", Year: 2021, Price: 2400},
	}
	trend := schema.TrendSummary{
		Product: "Rice",
		First:   schema.SeriesPoint{Year: 2020, Price: 1000},
		Last:    schema.SeriesPoint{Year: 2021, Price: 1100},
		Delta:   100,
		Label:   schema.IncreaseTrend,
	}
	return schema.DashboardView{
		Categories: []string{"Food", "Drink"},
		Selection:  schema.Selection{Categories: []string{"Food", "Drink"}, Products: []string{"Rice", "Milk"}},
		Filtered:   schema.FilterResult{Records: records, Products: []string{"Rice", "Milk"}},
		Selected:   []string{"Rice", "Milk"},
		Series: []schema.TimeSeries{
			{Product: "Rice", Points: []schema.SeriesPoint{{Year: 2020, Price: 1000}, {Year: 2021, Price: 1100}}},
			{Product: "Milk", Points: []schema.SeriesPoint{{Year: 2020, Price: 2500}, {Year: 2021, Price: 2400}}},
		},
		Change:    schema.ChangeSeries{Product: "Rice", Points: []schema.ChangePoint{{Year: 2021, Percent: 10}}},
		Trend:     &trend,
		Narrative: "Rice rose by 100 in total between 2020 and 2021.",
		Export:    records,
	}
}

// emptyView is a dashboard view with no product selected.
func emptyView() schema.DashboardView {
	return schema.DashboardView{
		Categories: []string{"Food"},
		Selection:  schema.Selection{Categories: []string{"Food"}},
		Filtered:   schema.FilterResult{Records: []schema.PriceRecord{}, Products: []string{}},
		Selected:   []string{},
		Series:     []schema.TimeSeries{},
		Change:     schema.ChangeSeries{Points: []schema.ChangePoint{}},
		Export:     []schema.PriceRecord{},
	}
}

func TestWriteComparisonTable(t *testing.T) {
	fmtFloat, _ := createFormatters(1)

	t.Run("pivot by year", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeComparisonTable(&buf, riceMilkView(), testConfig(), fmtFloat))
		out := buf.String()
		assert.Contains(t, strings.ToUpper(out), "RICE")
		assert.Contains(t, strings.ToUpper(out), "MILK")
		assert.Contains(t, out, "1100.0")
		assert.Contains(t, out, "2400.0")
		assert.Contains(t, out, "Comparing 2 products over 2 years")
	})

	t.Run("empty series draws nothing", func(t *testing.T) {
		view := riceMilkView()
		view.Selected = append(view.Selected, "Eggs")
		view.Series = append(view.Series, schema.TimeSeries{Product: "Eggs", Points: []schema.SeriesPoint{}})

		var buf bytes.Buffer
		require.NoError(t, writeComparisonTable(&buf, view, testConfig(), fmtFloat))
		assert.Contains(t, buf.String(), "Comparing 2 products")
		assert.Contains(t, buf.String(), "No price observations for Eggs")
	})

	t.Run("placeholder without selection", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeComparisonTable(&buf, emptyView(), testConfig(), fmtFloat))
		assert.Equal(t, PlaceholderText+"\n", buf.String())
	})
}

func TestFormatYearCell(t *testing.T) {
	fmtFloat, _ := createFormatters(0)
	ts := schema.TimeSeries{Product: "Rice", Points: []schema.SeriesPoint{
		{Year: 2020, Price: 1000}, {Year: 2020, Price: 1050}, {Year: 2021, Price: 1100},
	}}
	assert.Equal(t, "1000 / 1050", formatYearCell(ts, 2020, fmtFloat))
	assert.Equal(t, "1100", formatYearCell(ts, 2021, fmtFloat))
	assert.Equal(t, "-", formatYearCell(ts, 2022, fmtFloat))
	assert.Equal(t, []int{2020, 2021}, unionYears([]schema.TimeSeries{ts}))
}

func TestWriteCSVComparison(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeCSVComparison(&buf, riceMilkView().Series))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, []string{"product", "year", "price"}, rows[0])
	assert.Equal(t, []string{"Rice", "2021", "1100"}, rows[2])
}

func TestWriteChangeChart(t *testing.T) {
	_, fmtPercent := createFormatters(1)

	t.Run("bars scale to the largest change", func(t *testing.T) {
		view := riceMilkView()
		view.Change = schema.ChangeSeries{Product: "Rice", Points: []schema.ChangePoint{
			{Year: 2021, Percent: 10},
			{Year: 2022, Percent: -5},
			{Year: 2023, Percent: math.NaN()},
		}}
		cfg := testConfig()
		cfg.Width = 44 // bar width 20

		var buf bytes.Buffer
		require.NoError(t, writeChangeChart(&buf, view, cfg, fmtPercent))
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 4)
		assert.Equal(t, "Year-over-year price change: Rice", lines[0])
		assert.Equal(t, 20, strings.Count(lines[1], barGlyph))
		assert.Contains(t, lines[1], "+10.0%")
		assert.Equal(t, 10, strings.Count(lines[2], barGlyph))
		assert.Contains(t, lines[2], "-5.0%")
		assert.Contains(t, lines[3], "n/a")
		assert.Zero(t, strings.Count(lines[3], barGlyph))
	})

	t.Run("single observation", func(t *testing.T) {
		view := riceMilkView()
		view.Change = schema.ChangeSeries{Product: "Rice", Points: []schema.ChangePoint{}}
		var buf bytes.Buffer
		require.NoError(t, writeChangeChart(&buf, view, testConfig(), fmtPercent))
		assert.Contains(t, buf.String(), "At least two observations")
	})

	t.Run("placeholder without selection", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeChangeChart(&buf, emptyView(), testConfig(), fmtPercent))
		assert.Equal(t, PlaceholderText+"\n", buf.String())
	})
}

func TestBarLength(t *testing.T) {
	assert.Equal(t, 0, barLength(0, 10, 20))
	assert.Equal(t, 0, barLength(5, 0, 20))
	assert.Equal(t, 20, barLength(-10, 10, 20))
	assert.Equal(t, 1, barLength(0.01, 10, 20), "non-zero changes stay visible")
}

func TestWriteCSVChange(t *testing.T) {
	change := schema.ChangeSeries{Product: "Tissue", Points: []schema.ChangePoint{
		{Year: 2021, Percent: math.NaN()},
		{Year: 2022, Percent: 20},
	}}
	var buf bytes.Buffer
	require.NoError(t, writeCSVChange(&buf, change))
	assert.Equal(t, "product,year,percent_change\nTissue,2021,\nTissue,2022,20\n", buf.String())
}

func TestWriteTrendText(t *testing.T) {
	fmtFloat, _ := createFormatters(1)

	t.Run("increase", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeTrendText(&buf, riceMilkView(), testConfig(), fmtFloat))
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "Trend: Rice ▲ Increase", lines[0])
		assert.Equal(t, "2020: 1000.0 → 2021: 1100.0 (+100.0)", lines[1])
		assert.Equal(t, "Rice rose by 100 in total between 2020 and 2021.", lines[2])
	})

	t.Run("selected product without observations", func(t *testing.T) {
		view := riceMilkView()
		view.Selected = []string{"Eggs"}
		view.Trend = nil
		var buf bytes.Buffer
		require.NoError(t, writeTrendText(&buf, view, testConfig(), fmtFloat))
		assert.Equal(t, "No price observations for Eggs\n", buf.String())
	})

	t.Run("placeholder without selection", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeTrendText(&buf, emptyView(), testConfig(), fmtFloat))
		assert.Equal(t, PlaceholderText+"\n", buf.String())
	})
}

func TestWriteJSONTrend(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSONTrend(&buf, riceMilkView()))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "increase", decoded["label"])
	assert.Equal(t, "Rice", decoded["product"])
	assert.Contains(t, decoded["narrative"], "rose by 100")

	buf.Reset()
	require.NoError(t, writeJSONTrend(&buf, emptyView()))
	assert.Equal(t, "null\n", buf.String())
}

func TestWriteCSVTrend(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeCSVTrend(&buf, riceMilkView()))
	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Rice", "2020", "1000", "2021", "1100", "100", "increase"}, rows[1][:7])
}

func TestWriteExportCSV(t *testing.T) {
	t.Run("header and shortest prices", func(t *testing.T) {
		records := []schema.PriceRecord{
			{Category: "Food", Product: "Rice", Year: 2020, Price: 1000},
			{Category: "Food", Product: "Rice", Year: 2021, Price: 1000.5},
		}
		var buf bytes.Buffer
		require.NoError(t, WriteExportCSV(&buf, records))
		assert.Equal(t, "Category,Product,Year,Price\nFood,Rice,2020,1000\nFood,Rice,2021,1000.5\n", buf.String())
	})

	t.Run("empty selection writes only the header", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteExportCSV(&buf, []schema.PriceRecord{}))
		assert.Equal(t, "Category,Product,Year,Price\n", buf.String())
	})

	t.Run("non-ASCII names", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteExportCSV(&buf, []schema.PriceRecord{{Category: "식품", Product: "라면", Year: 2020, Price: 800}}))
		assert.Contains(t, buf.String(), "식품,라면,2020,800")
	})
}

func TestWriteExportJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteExportJSON(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteExportJSON(&buf, riceMilkView().Export[:1]))
	var decoded []schema.PriceRecord
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, riceMilkView().Export[:1], decoded)
}

func TestWriteExportXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteExportXLSX(&buf, riceMilkView().Export))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(exportSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, schema.RecordColumns, rows[0])
	assert.Equal(t, []string{"Food", "Rice", "2021", "1100"}, rows[2])
}

func TestExportPath(t *testing.T) {
	assert.Equal(t, "selected_product_price.csv", ExportPath("", schema.CSVOut))
	assert.Equal(t, "selected_product_price.parquet", ExportPath("", schema.ParquetOut))
	assert.Equal(t, "mine.csv", ExportPath("mine.csv", schema.XLSXOut))
	assert.Equal(t, schema.CSVOut, ExportFormat(schema.TextOut))
	assert.Equal(t, schema.XLSXOut, ExportFormat(schema.XLSXOut))
}

func TestPrintExportFormats(t *testing.T) {
	records := riceMilkView().Export
	dir := t.TempDir()

	t.Run("csv", func(t *testing.T) {
		cfg := testConfig()
		cfg.OutputFile = filepath.Join(dir, "out.csv")
		require.NoError(t, PrintExport(records, cfg))
		content, err := os.ReadFile(cfg.OutputFile)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(content), "Category,Product,Year,Price\n"))
	})

	t.Run("parquet", func(t *testing.T) {
		cfg := testConfig()
		cfg.Output = schema.ParquetOut
		cfg.OutputFile = filepath.Join(dir, "out.parquet")
		require.NoError(t, PrintExport(records, cfg))
		readBack, err := parquet.ReadPriceRecordsFile(cfg.OutputFile)
		require.NoError(t, err)
		assert.Equal(t, records, readBack)
	})
}

func TestWriteDashboardText(t *testing.T) {
	fmtFloat, fmtPercent := createFormatters(1)

	t.Run("tabs in order", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeDashboardText(&buf, riceMilkView(), testConfig(), fmtFloat, fmtPercent))
		out := buf.String()

		compare := strings.Index(out, "── Price comparison ──")
		change := strings.Index(out, "── Price change ──")
		trend := strings.Index(out, "── Trend ──")
		export := strings.Index(out, "── Export ──")
		require.True(t, compare >= 0 && change > compare && trend > change && export > trend, out)
		assert.Contains(t, out, "Selected: Rice, Milk")
		assert.Contains(t, out, "4 records ready as selected_product_price.csv (text/csv)")
	})

	t.Run("placeholder without selection", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeDashboardText(&buf, emptyView(), testConfig(), fmtFloat, fmtPercent))
		assert.Contains(t, buf.String(), PlaceholderText)
		assert.NotContains(t, buf.String(), "── Trend ──")
	})
}

func TestPrintDashboardJSON(t *testing.T) {
	view := riceMilkView()
	view.Change.Points = append(view.Change.Points, schema.ChangePoint{Year: 2022, Percent: math.NaN()})

	cfg := testConfig()
	cfg.Output = schema.JSONOut
	cfg.OutputFile = filepath.Join(t.TempDir(), "dashboard.json")
	require.NoError(t, PrintDashboard(view, cfg))

	content, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"percent": null`)

	var decoded schema.DashboardView
	require.NoError(t, json.Unmarshal(content, &decoded))
	assert.Equal(t, []string{"Rice", "Milk"}, decoded.Selected)
	require.NotNil(t, decoded.Trend)
	assert.Equal(t, schema.IncreaseTrend, decoded.Trend.Label)
	assert.True(t, decoded.Change.Points[1].IsMissing())
}

func TestWriteListings(t *testing.T) {
	t.Run("categories csv", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeCSVCategories(&buf, []string{"Food", "Drink"}))
		assert.Equal(t, "Category\nFood\nDrink\n", buf.String())
	})

	t.Run("categories table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeCategoriesTable(&buf, []string{"Food", "Drink"}))
		assert.Contains(t, buf.String(), "Food")
		assert.Contains(t, buf.String(), "Drink")
	})

	t.Run("products table", func(t *testing.T) {
		products := []schema.ProductSummary{
			{Product: "Rice", Category: "Food", Observations: 2, FirstYear: 2020, LastYear: 2021},
			{Product: "Eggs", Category: "Food", Observations: 1, FirstYear: 2022, LastYear: 2022},
		}
		var buf bytes.Buffer
		require.NoError(t, writeProductsTable(&buf, products, testConfig()))
		assert.Contains(t, buf.String(), "2020-2021")
		assert.Contains(t, buf.String(), "Showing 2 products")
	})

	t.Run("no products", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeProductsTable(&buf, nil, testConfig()))
		assert.Equal(t, "No products match the current filters.\n", buf.String())
	})
}

func TestWriteDatasetStatusTable(t *testing.T) {
	status := schema.DatasetStatus{
		Backend:       schema.SQLiteBackend,
		Location:      "/tmp/prices.db",
		Connected:     true,
		Version:       2,
		TotalRecords:  8,
		TotalProducts: 4,
		Categories:    []string{"Food", "Drink"},
		MinYear:       2020,
		MaxYear:       2021,
	}
	var buf bytes.Buffer
	require.NoError(t, writeDatasetStatusTable(&buf, status))
	out := buf.String()
	assert.Contains(t, out, "/tmp/prices.db")
	assert.Contains(t, out, "Food, Drink")
	assert.Contains(t, out, "2020-2021")
}
