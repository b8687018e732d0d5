package contract

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/huangsam/pricedash/schema"
)

// Default values for configuration.
const (
	DefaultDataPath  = "products.csv"
	DefaultTable     = "price_records"
	DefaultPrecision = 1
	MaxPrecision     = 4
)

// tableNamePattern restricts dataset table names to plain SQL identifiers.
var tableNamePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Config holds the runtime configuration for a dashboard interaction.
// This struct is the "final, validated" config.
type Config struct {
	DataPath      string                 // CSV file used by the csv source
	Source        schema.DatabaseBackend // Where records are loaded from
	SourceConnect string                 // Please use env var as this is plaintext
	Table         string                 // Dataset table for SQL sources

	// Categories is nil when every category is selected (the default) and
	// non-nil when the user chose an explicit set, which may be empty.
	Categories []string
	Query      string
	Products   []string

	Output     schema.OutputMode
	OutputFile string
	Precision  int
	Width      int // Terminal width override (0 = auto-detect)
	UseColors  bool

	TargetVersion int // Migration target for dataset migrate (-1 = latest)
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	Data          string `mapstructure:"data"`
	Source        string `mapstructure:"source"`
	SourceConnect string `mapstructure:"source-connect"`
	Table         string `mapstructure:"table"`
	Category      string `mapstructure:"category"`
	Query         string `mapstructure:"query"`
	Product       string `mapstructure:"product"`
	Output        string `mapstructure:"output"`
	OutputFile    string `mapstructure:"output-file"`
	Precision     int    `mapstructure:"precision"`
	Width         int    `mapstructure:"width"`
	Color         string `mapstructure:"color"`

	// CategorySet is true when --category was given explicitly, even as "".
	CategorySet bool `mapstructure:"-"`

	// --- Fields from datasetMigrateCmd.Flags() ---
	TargetVersion int `mapstructure:"target-version"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Categories != nil {
		clone.Categories = slices.Clone(c.Categories)
	}
	if c.Products != nil {
		clone.Products = slices.Clone(c.Products)
	}
	return &clone
}

// SelectionFor resolves the configured selection against the categories a dataset offers.
func (c *Config) SelectionFor(available []string) schema.Selection {
	categories := c.Categories
	if categories == nil {
		categories = available
	}
	return schema.Selection{
		Categories: slices.Clone(categories),
		Query:      c.Query,
		Products:   slices.Clone(c.Products),
	}
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processSource(cfg, input); err != nil {
		return err
	}
	processSelection(cfg, input)
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.CSVBackend, schema.SQLiteBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("source-connect is required when using %s source", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("source-connect is required when using %s source", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// ValidateTableName checks that a table name is a plain SQL identifier.
func ValidateTableName(name string) error {
	if name == "" {
		return fmt.Errorf("table name cannot be empty")
	}
	if !tableNamePattern.MatchString(name) {
		return fmt.Errorf("invalid table name: %s (must match pattern ^[a-zA-Z_][a-zA-Z0-9_]*$)", name)
	}
	return nil
}

// validateSimpleInputs processes and validates the presentation fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	cfg.TargetVersion = input.TargetVersion

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	if input.Precision < 0 || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 0 and %d (received %d)", MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if cfg.Output == "" {
		cfg.Output = schema.TextOut
	}
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet, xlsx", input.Output)
	}

	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}
	return nil
}

// processSource validates where the dataset is loaded from.
func processSource(cfg *Config, input *ConfigRawInput) error {
	cfg.Source = schema.DatabaseBackend(strings.ToLower(strings.TrimSpace(input.Source)))
	if cfg.Source == "" {
		cfg.Source = schema.CSVBackend
	}
	if _, ok := schema.ValidDatabaseBackends[cfg.Source]; !ok {
		return fmt.Errorf("invalid source '%s'. must be csv, sqlite, mysql, postgresql", input.Source)
	}

	cfg.DataPath = strings.TrimSpace(input.Data)
	if cfg.DataPath == "" {
		cfg.DataPath = DefaultDataPath
	}

	cfg.SourceConnect = input.SourceConnect
	if err := ValidateDatabaseConnectionString(cfg.Source, cfg.SourceConnect); err != nil {
		return err
	}

	cfg.Table = input.Table
	if cfg.Table == "" {
		cfg.Table = DefaultTable
	}
	if cfg.Source.IsSQL() {
		if err := ValidateTableName(cfg.Table); err != nil {
			return err
		}
	}
	return nil
}

// processSelection turns the comma-separated selection flags into lists.
// The product query is trimmed the way a search box would trim it.
func processSelection(cfg *Config, input *ConfigRawInput) {
	cfg.Categories = nil
	if input.CategorySet || input.Category != "" {
		cfg.Categories = SplitList(input.Category)
	}
	cfg.Query = strings.TrimSpace(input.Query)
	cfg.Products = SplitList(input.Product)
}

// SplitList splits a comma-separated value, trimming blanks and dropping empty items.
// The result is never nil.
func SplitList(value string) []string {
	out := []string{}
	for part := range strings.SplitSeq(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
