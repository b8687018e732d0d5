package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/huangsam/pricedash/internal/contract"
)

// PlaceholderText is shown in place of the views when no product is selected.
const PlaceholderText = "Select at least one product to compare."

// missingText is shown in tables for a value that could not be computed.
const missingText = "n/a"

// writeWithFile handles the common pattern of opening a file, writing to it, and cleaning up.
// It accepts a writer function that takes an io.Writer and returns an error.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		_, _ = fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeCSVWithHeader handles the common pattern of creating a CSV writer,
// writing a header, and writing data rows.
func writeCSVWithHeader(w io.Writer, header []string, writeRows func(*csv.Writer) error) error {
	csvWriter := csv.NewWriter(w)

	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	if err := writeRows(csvWriter); err != nil {
		return err
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

// createFormatters creates the common formatter closures used across multiple output types.
func createFormatters(precision int) (fmtFloat func(float64) string, fmtPercent func(float64) string) {
	fmtFloat = func(v float64) string {
		return fmt.Sprintf("%.*f", precision, v)
	}
	fmtPercent = func(v float64) string {
		if isMissing(v) {
			return missingText
		}
		return fmt.Sprintf("%+.*f%%", precision, v)
	}
	return fmtFloat, fmtPercent
}

// formatPrice prints a price in its shortest exact form, e.g. 1000 or 1000.5.
func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatCSVPercent prints a percent for CSV output, leaving missing values empty.
func formatCSVPercent(v float64) string {
	if isMissing(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// colorizer returns a print function that colors text only when colors are enabled.
func colorizer(cfg *contract.Config, c *color.Color) func(...any) string {
	if cfg.UseColors {
		return c.SprintFunc()
	}
	return fmt.Sprint
}

// writePlaceholder prints the neutral message shown when nothing is selected.
func writePlaceholder(w io.Writer, cfg *contract.Config) error {
	muted := colorizer(cfg, contract.MutedColor)
	_, err := fmt.Fprintln(w, muted(PlaceholderText))
	return err
}
