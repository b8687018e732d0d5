// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/huangsam/pricedash/schema"
)

// DatasetSource produces the ordered price records of a dataset.
// This allows the core views to be tested without a file or database.
type DatasetSource interface {
	// Load reads every record. A missing required column is a fatal load error.
	Load(ctx context.Context) ([]schema.PriceRecord, error)

	// Describe returns a short human-readable location, e.g. "csv:products.csv".
	Describe() string
}

// DatasetStore is a SQL-backed dataset that can be seeded and inspected.
type DatasetStore interface {
	DatasetSource

	// Import appends records to the dataset table in a single transaction.
	Import(ctx context.Context, records []schema.PriceRecord) (int, error)

	// Clear removes every record from the dataset table.
	Clear(ctx context.Context) error

	// GetStatus returns summary information about the stored dataset.
	GetStatus(ctx context.Context) (schema.DatasetStatus, error)

	// Close releases the underlying connection pool.
	Close() error
}
