package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"strings"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	"github.com/huangsam/pricedash/internal/contract"
	"github.com/huangsam/pricedash/schema"
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "modernc.org/sqlite"             // SQLite driver
)

// SQLStore loads and stores price records in a SQL table.
type SQLStore struct {
	db        *sql.DB
	backend   schema.DatabaseBackend
	connStr   string
	tableName string
}

var _ contract.DatasetStore = &SQLStore{} // Compile-time check

// driverName returns the database/sql driver registered for a backend.
func driverName(backend schema.DatabaseBackend) (string, error) {
	switch backend {
	case schema.SQLiteBackend:
		return "sqlite", nil
	case schema.MySQLBackend:
		return "mysql", nil
	case schema.PostgreSQLBackend:
		return "pgx", nil
	default:
		return "", fmt.Errorf("unsupported dataset backend: %s. Must be sqlite, mysql, or postgresql", backend)
	}
}

// openDB opens and pings a connection pool for the backend.
func openDB(ctx context.Context, backend schema.DatabaseBackend, connStr string) (*sql.DB, error) {
	driver, err := driverName(backend)
	if err != nil {
		return nil, err
	}

	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetDatasetDBFilePath()
	}

	db, err := sql.Open(driver, connStr)
	if err != nil {
		switch backend {
		case schema.MySQLBackend:
			return nil, fmt.Errorf("failed to open MySQL database: %w. Check connection string format: user:password@tcp(host:port)/dbname", err)
		case schema.PostgreSQLBackend:
			return nil, fmt.Errorf("failed to open PostgreSQL database: %w. Check connection string format: host=localhost port=5432 user=postgres dbname=mydb", err)
		default:
			return nil, fmt.Errorf("failed to open SQLite database at %q: %w. Check that the directory is writable", connStr, err)
		}
	}
	if backend == schema.SQLiteBackend {
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database. Check that the server is running and connection parameters are valid: %w", backend, err)
	}
	return db, nil
}

// NewSQLStore opens a dataset table on the given backend.
func NewSQLStore(ctx context.Context, backend schema.DatabaseBackend, connStr, tableName string) (*SQLStore, error) {
	if err := contract.ValidateTableName(tableName); err != nil {
		return nil, err
	}
	db, err := openDB(ctx, backend, connStr)
	if err != nil {
		return nil, err
	}
	return &SQLStore{
		db:        db,
		backend:   backend,
		connStr:   connStr,
		tableName: tableName,
	}, nil
}

// Describe implements the DatasetSource interface.
func (s *SQLStore) Describe() string {
	return fmt.Sprintf("%s:%s", s.backend, s.tableName)
}

// Load implements the DatasetSource interface.
// Rows come back in insertion order so the dataset order is stable.
func (s *SQLStore) Load(ctx context.Context) ([]schema.PriceRecord, error) {
	query := fmt.Sprintf("SELECT category, product, year, price FROM %s ORDER BY id", s.quotedTable())
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query dataset table %s: %w", s.tableName, err)
	}
	defer func() { _ = rows.Close() }()

	records := []schema.PriceRecord{}
	for rows.Next() {
		var r schema.PriceRecord
		if err := rows.Scan(&r.Category, &r.Product, &r.Year, &r.Price); err != nil {
			return nil, fmt.Errorf("failed to scan dataset row: %w", err)
		}
		if math.IsNaN(r.Price) || math.IsInf(r.Price, 0) {
			return nil, fmt.Errorf("invalid %s %v for %s %d in %s: must be numeric",
				schema.ColumnPrice, r.Price, r.Product, r.Year, s.tableName)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate dataset rows: %w", err)
	}
	return records, nil
}

// Import implements the DatasetStore interface.
func (s *SQLStore) Import(ctx context.Context, records []schema.PriceRecord) (int, error) {
	if _, err := s.db.ExecContext(ctx, getCreateTableQuery(s.tableName, s.backend)); err != nil {
		return 0, fmt.Errorf("failed to create table %s: %w", s.tableName, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin import: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := fmt.Sprintf("INSERT INTO %s (category, product, year, price) VALUES (%s)",
		s.quotedTable(), placeholders(s.backend, 4))
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, r := range records {
		if _, err := stmt.ExecContext(ctx, r.Category, r.Product, r.Year, r.Price); err != nil {
			return i, fmt.Errorf("failed to insert record %d (%s %d): %w", i+1, r.Product, r.Year, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit import: %w", err)
	}
	return len(records), nil
}

// Clear implements the DatasetStore interface.
func (s *SQLStore) Clear(ctx context.Context) error {
	query := fmt.Sprintf("DELETE FROM %s", s.quotedTable())
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to clear table %s: %w", s.tableName, err)
	}
	return nil
}

// GetStatus implements the DatasetStore interface.
func (s *SQLStore) GetStatus(ctx context.Context) (schema.DatasetStatus, error) {
	status := schema.DatasetStatus{
		Backend:    s.backend,
		Location:   s.location(),
		Connected:  true,
		Categories: []string{},
	}

	table := s.quotedTable()
	var minYear, maxYear sql.NullInt64
	summary := fmt.Sprintf("SELECT COUNT(*), COUNT(DISTINCT product), MIN(year), MAX(year) FROM %s", table)
	if err := s.db.QueryRowContext(ctx, summary).Scan(&status.TotalRecords, &status.TotalProducts, &minYear, &maxYear); err != nil {
		return status, fmt.Errorf("failed to summarize table %s: %w", s.tableName, err)
	}
	status.MinYear = int(minYear.Int64)
	status.MaxYear = int(maxYear.Int64)
	status.Version = s.schemaVersion(ctx)

	categories := fmt.Sprintf("SELECT category FROM %s GROUP BY category ORDER BY MIN(id)", table)
	rows, err := s.db.QueryContext(ctx, categories)
	if err != nil {
		return status, fmt.Errorf("failed to list categories: %w", err)
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return status, fmt.Errorf("failed to scan category: %w", err)
		}
		status.Categories = append(status.Categories, c)
	}
	return status, rows.Err()
}

// schemaVersion returns the applied migration version, or 0 when migrations never ran.
func (s *SQLStore) schemaVersion(ctx context.Context) uint {
	var version uint
	if err := s.db.QueryRowContext(ctx, "SELECT version FROM schema_migrations LIMIT 1").Scan(&version); err != nil {
		return 0
	}
	return version
}

// Close implements the DatasetStore interface.
func (s *SQLStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// location hides credentials for display.
func (s *SQLStore) location() string {
	switch s.backend {
	case schema.SQLiteBackend:
		if s.connStr == "" {
			return contract.GetDatasetDBFilePath()
		}
		return s.connStr
	case schema.MySQLBackend:
		if at := strings.LastIndex(s.connStr, "@"); at >= 0 {
			return s.connStr[at+1:]
		}
		return s.connStr
	default:
		var kept []string
		for field := range strings.FieldsSeq(s.connStr) {
			if !strings.HasPrefix(field, "password=") {
				kept = append(kept, field)
			}
		}
		return strings.Join(kept, " ")
	}
}

// quotedTable returns the properly quoted table name for the backend.
func (s *SQLStore) quotedTable() string {
	return quoteTableName(s.tableName, s.backend)
}

// quoteTableName returns the properly quoted table name for the given backend.
func quoteTableName(name string, backend schema.DatabaseBackend) string {
	if backend == schema.MySQLBackend {
		return fmt.Sprintf("`%s`", name)
	}
	return fmt.Sprintf("%q", name)
}

// placeholders returns n bind parameters in the backend's syntax.
func placeholders(backend schema.DatabaseBackend, n int) string {
	parts := make([]string, n)
	for i := range parts {
		if backend == schema.PostgreSQLBackend {
			parts[i] = fmt.Sprintf("$%d", i+1)
		} else {
			parts[i] = "?"
		}
	}
	return strings.Join(parts, ", ")
}

// getCreateTableQuery returns the CREATE TABLE query for the given backend.
// It matches the first migration so imports work on unmigrated databases.
func getCreateTableQuery(tableName string, backend schema.DatabaseBackend) string {
	quotedTableName := quoteTableName(tableName, backend)
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id BIGINT AUTO_INCREMENT PRIMARY KEY,
				category VARCHAR(255) NOT NULL,
				product VARCHAR(255) NOT NULL,
				year INT NOT NULL,
				price DOUBLE NOT NULL
			);
		`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id BIGSERIAL PRIMARY KEY,
				category TEXT NOT NULL,
				product TEXT NOT NULL,
				year INT NOT NULL,
				price DOUBLE PRECISION NOT NULL
			);
		`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				category TEXT NOT NULL,
				product TEXT NOT NULL,
				year INTEGER NOT NULL,
				price REAL NOT NULL
			);
		`, quotedTableName)
	}
}
