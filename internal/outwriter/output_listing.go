package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/pricedash/internal/contract"
	"github.com/huangsam/pricedash/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintCategories outputs the dataset categories, dispatching based on the output format configured.
func PrintCategories(categories []string, cfg *contract.Config) error {
	var write func(io.Writer) error
	switch cfg.Output {
	case schema.JSONOut:
		write = func(w io.Writer) error { return writeJSON(w, categories) }
	case schema.CSVOut:
		write = func(w io.Writer) error { return writeCSVCategories(w, categories) }
	default:
		write = func(w io.Writer) error { return writeCategoriesTable(w, categories) }
	}
	if err := writeWithFile(cfg.OutputFile, write, "Wrote categories"); err != nil {
		return fmt.Errorf("error writing categories: %w", err)
	}
	return nil
}

// PrintProducts outputs the matching products, dispatching based on the output format configured.
func PrintProducts(products []schema.ProductSummary, cfg *contract.Config) error {
	var write func(io.Writer) error
	switch cfg.Output {
	case schema.JSONOut:
		write = func(w io.Writer) error { return writeJSON(w, products) }
	case schema.CSVOut:
		write = func(w io.Writer) error { return writeCSVProducts(w, products) }
	default:
		write = func(w io.Writer) error { return writeProductsTable(w, products, cfg) }
	}
	if err := writeWithFile(cfg.OutputFile, write, "Wrote products"); err != nil {
		return fmt.Errorf("error writing products: %w", err)
	}
	return nil
}

// writeCSVCategories writes one category per row.
func writeCSVCategories(w io.Writer, categories []string) error {
	return writeCSVWithHeader(w, []string{schema.ColumnCategory}, func(cw *csv.Writer) error {
		for _, c := range categories {
			if err := cw.Write([]string{c}); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeCategoriesTable prints the categories as a numbered table.
func writeCategoriesTable(w io.Writer, categories []string) error {
	if len(categories) == 0 {
		_, err := fmt.Fprintln(w, "The dataset has no categories.")
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"#", schema.ColumnCategory})

	var data [][]string
	for i, c := range categories {
		data = append(data, []string{strconv.Itoa(i + 1), c})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeCSVProducts writes one product summary per row.
func writeCSVProducts(w io.Writer, products []schema.ProductSummary) error {
	header := []string{"product", "category", "observations", "first_year", "last_year"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, p := range products {
			row := []string{
				p.Product,
				p.Category,
				strconv.Itoa(p.Observations),
				strconv.Itoa(p.FirstYear),
				strconv.Itoa(p.LastYear),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeProductsTable prints the matching products with their coverage.
func writeProductsTable(w io.Writer, products []schema.ProductSummary, cfg *contract.Config) error {
	if len(products) == 0 {
		_, err := fmt.Fprintln(w, "No products match the current filters.")
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Product", "Category", "Points", "Years"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	maxWidth := getMaxLabelWidth(cfg, 2)
	var data [][]string
	for _, p := range products {
		data = append(data, []string{
			contract.TruncateText(p.Product, maxWidth),
			contract.TruncateText(p.Category, maxWidth),
			strconv.Itoa(p.Observations),
			formatYearRange(p.FirstYear, p.LastYear),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Showing %d products. Select up to %d with --product to compare them.\n",
		len(products), schema.MaxSelectedProducts)
	return err
}

// formatYearRange prints "2020-2023", or a single year when both ends match.
func formatYearRange(first, last int) string {
	if first == last {
		return strconv.Itoa(first)
	}
	return fmt.Sprintf("%d-%d", first, last)
}
