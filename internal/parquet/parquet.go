// Package parquet provides data structures and functions for exporting selected
// price records to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"
	"os"

	"github.com/huangsam/pricedash/schema"
	"github.com/parquet-go/parquet-go"
)

// PriceRecordRow is one exported price observation.
// Column names match the CSV export header.
type PriceRecordRow struct {
	// Category is the product's category label
	Category string `parquet:"Category,snappy,dict"`

	// Product is the product name
	Product string `parquet:"Product,snappy,dict"`

	// Year is the observation year
	Year int32 `parquet:"Year,snappy"`

	// Price is the observed price
	Price float64 `parquet:"Price,snappy"`
}

// ToRows converts price records into Parquet rows, preserving order.
func ToRows(records []schema.PriceRecord) []PriceRecordRow {
	rows := make([]PriceRecordRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, PriceRecordRow{
			Category: r.Category,
			Product:  r.Product,
			Year:     int32(r.Year),
			Price:    r.Price,
		})
	}
	return rows
}

// FromRows converts Parquet rows back into price records.
func FromRows(rows []PriceRecordRow) []schema.PriceRecord {
	records := make([]schema.PriceRecord, 0, len(rows))
	for _, r := range rows {
		records = append(records, schema.PriceRecord{
			Category: r.Category,
			Product:  r.Product,
			Year:     int(r.Year),
			Price:    r.Price,
		})
	}
	return records
}

// WritePriceRecords encodes records as a Parquet file onto w.
func WritePriceRecords(w io.Writer, records []schema.PriceRecord) error {
	// The schema is automatically derived from the PriceRecordRow struct tags
	writer := parquet.NewGenericWriter[PriceRecordRow](w)

	if _, err := writer.Write(ToRows(records)); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// WritePriceRecordsFile writes records to a Parquet file at outputPath.
func WritePriceRecordsFile(records []schema.PriceRecord, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return WritePriceRecords(file, records)
}

// ReadPriceRecordsFile reads every row of a Parquet file written by WritePriceRecords.
func ReadPriceRecordsFile(path string) ([]schema.PriceRecord, error) {
	rows, err := parquet.ReadFile[PriceRecordRow](path)
	if err != nil {
		return nil, fmt.Errorf("failed to read parquet file: %w", err)
	}
	return FromRows(rows), nil
}
