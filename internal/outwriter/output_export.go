package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/huangsam/pricedash/internal/contract"
	"github.com/huangsam/pricedash/internal/parquet"
	"github.com/huangsam/pricedash/schema"
	"github.com/xuri/excelize/v2"
)

// StdoutPath makes the export write to standard output instead of a file.
const StdoutPath = "-"

// exportSheetName is the worksheet holding exported records in XLSX files.
const exportSheetName = "Prices"

// PrintExport writes the exported records in the configured format.
// Text output exports CSV. Without --output-file the default export file name is used,
// with the extension of the chosen format.
func PrintExport(records []schema.PriceRecord, cfg *contract.Config) error {
	format := ExportFormat(cfg.Output)
	path := ExportPath(cfg.OutputFile, format)

	var write func(io.Writer) error
	switch format {
	case schema.JSONOut:
		write = func(w io.Writer) error { return WriteExportJSON(w, records) }
	case schema.ParquetOut:
		write = func(w io.Writer) error { return parquet.WritePriceRecords(w, records) }
	case schema.XLSXOut:
		write = func(w io.Writer) error { return WriteExportXLSX(w, records) }
	default:
		write = func(w io.Writer) error { return WriteExportCSV(w, records) }
	}

	if path == StdoutPath {
		path = ""
	}
	msg := fmt.Sprintf("Exported %d records as %s", len(records), format)
	if err := writeWithFile(path, write, msg); err != nil {
		return fmt.Errorf("error writing export: %w", err)
	}
	return nil
}

// ExportFormat maps an output mode to the format used for exports.
func ExportFormat(mode schema.OutputMode) schema.OutputMode {
	switch mode {
	case schema.JSONOut, schema.ParquetOut, schema.XLSXOut:
		return mode
	default:
		return schema.CSVOut
	}
}

// ExportPath returns outputFile, or the default export file name with the format's extension.
func ExportPath(outputFile string, format schema.OutputMode) string {
	if outputFile != "" {
		return outputFile
	}
	base := strings.TrimSuffix(schema.DefaultExportFileName, filepath.Ext(schema.DefaultExportFileName))
	return base + "." + string(format)
}

// WriteExportCSV writes records as UTF-8 CSV with a Category,Product,Year,Price header.
// Prices use their shortest exact form.
func WriteExportCSV(w io.Writer, records []schema.PriceRecord) error {
	return writeCSVWithHeader(w, schema.RecordColumns, func(cw *csv.Writer) error {
		for _, r := range records {
			row := []string{r.Category, r.Product, strconv.Itoa(r.Year), formatPrice(r.Price)}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}

// WriteExportJSON writes records as a JSON array.
func WriteExportJSON(w io.Writer, records []schema.PriceRecord) error {
	if records == nil {
		records = []schema.PriceRecord{}
	}
	return writeJSON(w, records)
}

// WriteExportXLSX writes records to a single-sheet workbook.
func WriteExportXLSX(w io.Writer, records []schema.PriceRecord) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", exportSheetName); err != nil {
		return fmt.Errorf("failed to name worksheet: %w", err)
	}

	header := make([]any, 0, len(schema.RecordColumns))
	for _, col := range schema.RecordColumns {
		header = append(header, col)
	}
	if err := f.SetSheetRow(exportSheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write XLSX header: %w", err)
	}

	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{r.Category, r.Product, r.Year, r.Price}
		if err := f.SetSheetRow(exportSheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write XLSX row %d: %w", i+1, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write XLSX workbook: %w", err)
	}
	return nil
}
