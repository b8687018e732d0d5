// Package cmd defines the command-line interface for pricedash.
package cmd

import (
	"github.com/huangsam/pricedash/internal/contract"
	"github.com/huangsam/pricedash/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(productsCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(changeCmd)
	rootCmd.AddCommand(trendCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(datasetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(mcpCmd)

	// Add the dataset subcommands to the parent dataset command
	datasetCmd.AddCommand(datasetImportCmd)
	datasetCmd.AddCommand(datasetClearCmd)
	datasetCmd.AddCommand(datasetStatusCmd)
	datasetCmd.AddCommand(datasetMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("data", "d", contract.DefaultDataPath, "Path to the CSV dataset (Category,Product,Year,Price)")
	rootCmd.PersistentFlags().String("source", string(schema.CSVBackend), "Dataset source: csv or sqlite or mysql or postgresql")
	rootCmd.PersistentFlags().String("source-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("table", contract.DefaultTable, "Dataset table for SQL sources")
	rootCmd.PersistentFlags().StringP("category", "c", "", "Comma-separated categories to include (default: all)")
	rootCmd.PersistentFlags().StringP("query", "q", "", "Only keep products whose name contains this text (case-sensitive)")
	rootCmd.PersistentFlags().StringP("product", "p", "", "Comma-separated products to compare; the first one is the main product (max 3)")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet or xlsx")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for percent changes")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no, true/false, 1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of datasetMigrateCmd to Viper
	datasetMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(datasetMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding dataset migrate flags", err)
	}
}
