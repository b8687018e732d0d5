package dataset

import (
	"context"
	"fmt"

	"github.com/huangsam/pricedash/internal/contract"
	"github.com/huangsam/pricedash/schema"
)

// NewSource returns the dataset source selected by the configuration.
// SQL sources hold a connection pool, so callers should close them via CloseSource.
func NewSource(ctx context.Context, cfg *contract.Config) (contract.DatasetSource, error) {
	switch cfg.Source {
	case schema.CSVBackend, "":
		return NewCSVSource(cfg.DataPath), nil
	case schema.SQLiteBackend, schema.MySQLBackend, schema.PostgreSQLBackend:
		return NewStore(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported dataset source: %s", cfg.Source)
	}
}

// NewStore opens the SQL store selected by the configuration.
func NewStore(ctx context.Context, cfg *contract.Config) (contract.DatasetStore, error) {
	if !cfg.Source.IsSQL() {
		return nil, fmt.Errorf("dataset commands need a SQL source (sqlite, mysql, postgresql), got %s", cfg.Source)
	}
	store, err := NewSQLStore(ctx, cfg.Source, cfg.SourceConnect, cfg.Table)
	if err != nil {
		return nil, err
	}
	return store, nil
}

// CloseSource releases resources held by a source, if any.
func CloseSource(src contract.DatasetSource) {
	if store, ok := src.(contract.DatasetStore); ok {
		if err := store.Close(); err != nil {
			contract.LogWarn("Failed to close dataset source", err)
		}
	}
}
