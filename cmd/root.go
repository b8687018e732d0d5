package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/huangsam/pricedash/core"
	"github.com/huangsam/pricedash/internal/contract"
	"github.com/huangsam/pricedash/internal/dataset"
	"github.com/huangsam/pricedash/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:   "pricedash",
	Short: "Explore consumer goods prices over the years.",
	Long: `Pricedash loads a table of consumer goods prices (Category, Product, Year, Price)
and lets you filter it by category and product name, compare up to 3 products,
follow the year-over-year change of a product, read its overall trend, and export the selection.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Check if a specific config file is provided
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".pricedash") // Name of config file (without extension)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("PRICEDASH")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Set defaults in Viper
	viper.SetDefault("data", contract.DefaultDataPath)
	viper.SetDefault("source", schema.CSVBackend)
	viper.SetDefault("source-connect", "")
	viper.SetDefault("table", contract.DefaultTable)
	viper.SetDefault("precision", contract.DefaultPrecision)
	viper.SetDefault("output", schema.TextOut)
	viper.SetDefault("color", "yes")
	viper.SetDefault("target-version", -1)
}

// sharedSetup unmarshals config and runs validation.
func sharedSetup(_ context.Context, cmd *cobra.Command, args []string) error {
	// 1. Read config file. This merges defaults, file, env, and flags.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, which is fine; we'll use defaults/env/flags.
	}

	// 2. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// 3. Handle what Viper cannot tell apart: an explicit empty category set
	// versus no category flag at all.
	input.CategorySet = cmd.Flags().Changed("category")
	if len(args) == 1 {
		input.Data = args[0]
	}

	// 4. Run all validation and parsing. This populates the global 'cfg' from 'input'.
	return contract.ProcessAndValidate(cfg, input)
}

// sharedSetupWrapper wraps sharedSetup to provide context for Cobra's PreRunE.
func sharedSetupWrapper(cmd *cobra.Command, args []string) error {
	return sharedSetup(rootCtx, cmd, args)
}

// openAndExecute opens the configured dataset source and runs one view against it.
// A load failure is fatal and reported once.
func openAndExecute(action string, executeFunc core.ExecutorFunc) {
	src, err := dataset.NewSource(rootCtx, cfg)
	if err != nil {
		contract.LogFatal("Cannot open dataset", err)
	}
	err = executeFunc(rootCtx, cfg, src)
	dataset.CloseSource(src)
	if err != nil {
		contract.LogFatal(action, err)
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
