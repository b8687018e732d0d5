package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents where the price dataset is loaded from.
	DatabaseBackend string

	// TrendLabel represents the qualitative direction of a price movement.
	TrendLabel string
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
	XLSXOut    OutputMode = "xlsx"
)

// All dataset backends supported.
const (
	CSVBackend        DatabaseBackend = "csv" // default
	SQLiteBackend     DatabaseBackend = "sqlite"
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
)

// All trend labels supported.
const (
	IncreaseTrend TrendLabel = "increase"
	DecreaseTrend TrendLabel = "decrease"
	StableTrend   TrendLabel = "stable"
)

// Dataset column names, in export order.
const (
	ColumnCategory = "Category"
	ColumnProduct  = "Product"
	ColumnYear     = "Year"
	ColumnPrice    = "Price"
)

// RecordColumns lists the columns of a PriceRecord in their canonical order.
var RecordColumns = []string{ColumnCategory, ColumnProduct, ColumnYear, ColumnPrice}

// MaxSelectedProducts bounds how many products can be compared at once.
const MaxSelectedProducts = 3

// Export defaults for a downloaded selection.
const (
	DefaultExportFileName = "selected_product_price.csv"
	ExportContentType     = "text/csv"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
	XLSXOut:    {},
}

// ValidDatabaseBackends lists all valid dataset backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	CSVBackend:        {},
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
}

// IsSQL reports whether the backend is served by a database/sql driver.
func (b DatabaseBackend) IsSQL() bool {
	switch b {
	case SQLiteBackend, MySQLBackend, PostgreSQLBackend:
		return true
	default:
		return false
	}
}
