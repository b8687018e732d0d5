// Package dataset loads price records from CSV files and SQL tables.
package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/huangsam/pricedash/internal/contract"
	"github.com/huangsam/pricedash/schema"
)

// ErrMissingColumn is returned when a dataset lacks one of the required columns.
var ErrMissingColumn = errors.New("missing required column")

// MissingColumnError lists the required columns absent from a dataset header.
type MissingColumnError struct {
	Columns []string
}

// Error implements the error interface.
func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%s: %s (header must contain %s)",
		ErrMissingColumn, strings.Join(e.Columns, ", "), strings.Join(schema.RecordColumns, ", "))
}

// Unwrap lets callers match with errors.Is(err, ErrMissingColumn).
func (e *MissingColumnError) Unwrap() error {
	return ErrMissingColumn
}

// utf8BOM is stripped from the first header cell when present.
const utf8BOM = "\uFEFF"

// CSVSource loads records from a delimited text file with a header row.
type CSVSource struct {
	Path string
}

var _ contract.DatasetSource = &CSVSource{} // Compile-time check

// NewCSVSource creates a CSV-backed dataset source.
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{Path: path}
}

// Describe implements the DatasetSource interface.
func (s *CSVSource) Describe() string {
	return fmt.Sprintf("%s:%s", schema.CSVBackend, s.Path)
}

// Load implements the DatasetSource interface.
func (s *CSVSource) Load(_ context.Context) ([]schema.PriceRecord, error) {
	file, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset %q: %w", s.Path, err)
	}
	defer func() { _ = file.Close() }()

	records, err := ReadCSV(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %q: %w", s.Path, err)
	}
	return records, nil
}

// ReadCSV parses records from r. The header must name the Category, Product,
// Year and Price columns; they may appear in any order and extra columns are ignored.
func ReadCSV(r io.Reader) ([]schema.PriceRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, &MissingColumnError{Columns: schema.RecordColumns}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	idx, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	records := []schema.PriceRecord{}
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		line, _ := reader.FieldPos(0)
		record, err := parseRow(row, idx)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, record)
	}
	return records, nil
}

// columnIndex holds the position of each required column in a row.
type columnIndex struct {
	category, product, year, price int
}

// resolveColumns maps required column names to header positions.
func resolveColumns(header []string) (columnIndex, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		name = strings.TrimSpace(name)
		if _, dup := positions[name]; !dup {
			positions[name] = i
		}
	}

	var missing []string
	lookup := func(name string) int {
		pos, ok := positions[name]
		if !ok {
			missing = append(missing, name)
			return -1
		}
		return pos
	}
	idx := columnIndex{
		category: lookup(schema.ColumnCategory),
		product:  lookup(schema.ColumnProduct),
		year:     lookup(schema.ColumnYear),
		price:    lookup(schema.ColumnPrice),
	}
	if len(missing) > 0 {
		return columnIndex{}, &MissingColumnError{Columns: missing}
	}
	return idx, nil
}

// parseRow converts one CSV row into a record.
func parseRow(row []string, idx columnIndex) (schema.PriceRecord, error) {
	field := func(pos int) string {
		if pos < len(row) {
			return row[pos]
		}
		return ""
	}

	yearStr := strings.TrimSpace(field(idx.year))
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return schema.PriceRecord{}, fmt.Errorf("invalid %s %q: must be an integer", schema.ColumnYear, yearStr)
	}

	priceStr := strings.TrimSpace(field(idx.price))
	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		return schema.PriceRecord{}, fmt.Errorf("invalid %s %q: must be numeric", schema.ColumnPrice, priceStr)
	}

	return schema.PriceRecord{
		Category: field(idx.category),
		Product:  field(idx.product),
		Year:     year,
		Price:    price,
	}, nil
}
