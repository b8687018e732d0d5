package dataset

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/huangsam/pricedash/schema"
)

//go:embed migrations
var migrationsFS embed.FS

// migrationDir maps a backend to its embedded migrations directory.
var migrationDir = map[schema.DatabaseBackend]string{
	schema.SQLiteBackend:     "migrations/sqlite",
	schema.MySQLBackend:      "migrations/mysql",
	schema.PostgreSQLBackend: "migrations/postgres",
}

// Migrate runs the dataset table migrations and reports progress to w.
// - If targetVersion < 0, it migrates to the latest version.
// - If targetVersion == 0, it rolls back all migrations (to initial state).
// - If targetVersion > 0, it migrates to the specified version.
func Migrate(ctx context.Context, backend schema.DatabaseBackend, connStr string, targetVersion int, w io.Writer) error {
	dir, ok := migrationDir[backend]
	if !ok {
		return fmt.Errorf("migrations are not supported for %s source", backend)
	}

	db, err := openDB(ctx, backend, connStr)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	driver, err := migrationDriver(backend, db)
	if err != nil {
		return err
	}

	sub, err := fs.Sub(migrationsFS, dir)
	if err != nil {
		return fmt.Errorf("failed to access migrations directory: %w", err)
	}
	sourceDriver, err := iofs.New(sub, ".")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "pricedash", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	currentVersion, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get current migration version: %w", err)
	}
	if dirty {
		return fmt.Errorf("database is in a dirty state at version %d. Please fix manually or force version", currentVersion)
	}

	switch {
	case targetVersion < 0:
		err = m.Up()
		if err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("failed to migrate to latest version: %w", err)
		}
		if errors.Is(err, migrate.ErrNoChange) {
			_, _ = fmt.Fprintln(w, "No migration needed. Database is already at the latest version.")
		} else {
			newVersion, _, _ := m.Version()
			_, _ = fmt.Fprintf(w, "Successfully migrated from version %d to version %d\n", currentVersion, newVersion)
		}
	case targetVersion == 0:
		err = m.Down()
		if err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("failed to roll back to version 0: %w", err)
		}
		if errors.Is(err, migrate.ErrNoChange) {
			_, _ = fmt.Fprintln(w, "No migration needed. Database is already at version 0")
		} else {
			_, _ = fmt.Fprintf(w, "Successfully rolled back from version %d to version 0\n", currentVersion)
		}
	default:
		err = m.Migrate(uint(targetVersion))
		if err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("failed to migrate to version %d: %w", targetVersion, err)
		}
		if errors.Is(err, migrate.ErrNoChange) {
			_, _ = fmt.Fprintf(w, "No migration needed. Database is already at version %d\n", targetVersion)
		} else {
			_, _ = fmt.Fprintf(w, "Successfully migrated from version %d to version %d\n", currentVersion, targetVersion)
		}
	}
	return nil
}

// migrationDriver wraps an open connection in the matching migrate driver.
func migrationDriver(backend schema.DatabaseBackend, db *sql.DB) (database.Driver, error) {
	switch backend {
	case schema.SQLiteBackend:
		driver, err := sqlite.WithInstance(db, &sqlite.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to create SQLite migrate driver: %w", err)
		}
		return driver, nil
	case schema.MySQLBackend:
		driver, err := mysql.WithInstance(db, &mysql.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to create MySQL migrate driver: %w", err)
		}
		return driver, nil
	case schema.PostgreSQLBackend:
		driver, err := migratepgx.WithInstance(db, &migratepgx.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL migrate driver: %w", err)
		}
		return driver, nil
	default:
		return nil, fmt.Errorf("unsupported backend: %s", backend)
	}
}
