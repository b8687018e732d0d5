package cmd

import (
	"fmt"
	"os"

	"github.com/huangsam/pricedash/internal/contract"
	"github.com/huangsam/pricedash/internal/dataset"
	"github.com/huangsam/pricedash/internal/outwriter"
	"github.com/huangsam/pricedash/schema"
	"github.com/spf13/cobra"
)

// datasetSetup runs the shared setup and points a csv source at the default SQLite store,
// so --data keeps naming the CSV file to import.
func datasetSetup(cmd *cobra.Command, args []string) error {
	if err := sharedSetup(rootCtx, cmd, args); err != nil {
		return err
	}
	if cfg.Source == schema.CSVBackend {
		cfg.Source = schema.SQLiteBackend
	}
	return nil
}

// openStore opens the configured store or exits.
func openStore() contract.DatasetStore {
	store, err := dataset.NewStore(rootCtx, cfg)
	if err != nil {
		contract.LogFatal("Cannot open dataset store", err)
	}
	return store
}

// closeStore closes the store, logging instead of failing.
func closeStore(store contract.DatasetStore) {
	if err := store.Close(); err != nil {
		contract.LogWarn("Failed to close dataset store", err)
	}
}

// datasetCmd focused on SQL dataset management.
var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Manage a price dataset stored in SQL (SQLite, MySQL or PostgreSQL)",
	Long: `Manage a price dataset stored in a database instead of a CSV file.

Once a table is seeded, every view can read from it with --source.
A csv --source is treated as the default SQLite store (~/.pricedash.db).

Subcommands:
  migrate - Create or upgrade the price_records table
  import  - Copy the records of a CSV file into the table
  clear   - Remove every record from the table
  status  - Show record, product and year counts

Examples:
  # Seed a local SQLite store from products.csv
  pricedash dataset migrate
  pricedash dataset import --data products.csv

  # Use PostgreSQL
  pricedash dataset import --source postgresql --source-connect "host=localhost port=5432 user=postgres dbname=prices"`,
}

// datasetMigrateCmd manages the table schema.
var datasetMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage schema versions of the price_records table.

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  pricedash dataset migrate

  # Migrate to specific version
  pricedash dataset migrate --target-version 1

  # Roll back everything
  pricedash dataset migrate --target-version 0`,
	Args:    cobra.NoArgs,
	PreRunE: datasetSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := dataset.Migrate(rootCtx, cfg.Source, cfg.SourceConnect, cfg.TargetVersion, os.Stdout); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}

// datasetImportCmd seeds the table from a CSV file.
var datasetImportCmd = &cobra.Command{
	Use:   "import [data-path]",
	Short: "Import a CSV dataset into the SQL store",
	Long: `Read a CSV dataset (Category,Product,Year,Price) and append its records to the
configured table in a single transaction. The table is created if needed.

Examples:
  # Import the default products.csv into SQLite
  pricedash dataset import

  # Import into a custom MySQL table
  pricedash dataset import prices.csv --source mysql --source-connect "user:pass@tcp(localhost:3306)/prices" --table prices_2024`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: datasetSetup,
	Run: func(_ *cobra.Command, _ []string) {
		records, err := dataset.NewCSVSource(cfg.DataPath).Load(rootCtx)
		if err != nil {
			contract.LogFatal("Cannot read dataset", err)
		}

		store := openStore()
		n, err := store.Import(rootCtx, records)
		closeStore(store)
		if err != nil {
			contract.LogFatal("Cannot import dataset", err)
		}
		fmt.Printf("Imported %d records from %s into %s\n", n, cfg.DataPath, store.Describe())
	},
}

// datasetClearCmd empties the table.
var datasetClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every record from the SQL store",
	Long: `Delete all records of the configured table. The table itself is kept.

Examples:
  # Clear the local SQLite store
  pricedash dataset clear`,
	Args:    cobra.NoArgs,
	PreRunE: datasetSetup,
	Run: func(_ *cobra.Command, _ []string) {
		store := openStore()
		err := store.Clear(rootCtx)
		closeStore(store)
		if err != nil {
			contract.LogFatal("Cannot clear dataset", err)
		}
		fmt.Printf("Cleared %s\n", store.Describe())
	},
}

// datasetStatusCmd summarizes the stored dataset.
var datasetStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show status of the SQL store",
	Long: `Display the backend, schema version, record and product counts, categories
and year range of the stored dataset.

Examples:
  # Status of the local SQLite store
  pricedash dataset status

  # Status as JSON
  pricedash dataset status --output json`,
	Args:    cobra.NoArgs,
	PreRunE: datasetSetup,
	Run: func(_ *cobra.Command, _ []string) {
		store := openStore()
		status, err := store.GetStatus(rootCtx)
		closeStore(store)
		if err != nil {
			contract.LogFatal("Cannot get dataset status", err)
		}
		if err := outwriter.NewOutWriter().WriteDatasetStatus(status, cfg); err != nil {
			contract.LogFatal("Cannot print dataset status", err)
		}
	},
}
