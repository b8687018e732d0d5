package outwriter

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/huangsam/pricedash/internal/contract"
	"github.com/huangsam/pricedash/schema"
	"github.com/olekukonko/tablewriter"
)

// PrintDatasetStatus outputs the status of a stored dataset.
func PrintDatasetStatus(status schema.DatasetStatus, cfg *contract.Config) error {
	var write func(io.Writer) error
	switch cfg.Output {
	case schema.JSONOut:
		write = func(w io.Writer) error { return writeJSON(w, status) }
	default:
		write = func(w io.Writer) error { return writeDatasetStatusTable(w, status) }
	}
	if err := writeWithFile(cfg.OutputFile, write, "Wrote dataset status"); err != nil {
		return fmt.Errorf("error writing dataset status: %w", err)
	}
	return nil
}

// writeDatasetStatusTable prints the status as a two-column table.
func writeDatasetStatusTable(w io.Writer, status schema.DatasetStatus) error {
	years := "-"
	if status.TotalRecords > 0 {
		years = formatYearRange(status.MinYear, status.MaxYear)
	}
	version := "not migrated"
	if status.Version > 0 {
		version = strconv.FormatUint(uint64(status.Version), 10)
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Property", "Value"})
	data := [][]string{
		{"Backend", string(status.Backend)},
		{"Location", status.Location},
		{"Connected", strconv.FormatBool(status.Connected)},
		{"Schema version", version},
		{"Records", strconv.Itoa(status.TotalRecords)},
		{"Products", strconv.Itoa(status.TotalProducts)},
		{"Categories", strings.Join(status.Categories, ", ")},
		{"Years", years},
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
