package contract

import (
	"testing"

	"github.com/huangsam/pricedash/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validInput returns a raw input that passes validation with defaults.
func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		Output:    "text",
		Precision: DefaultPrecision,
		Color:     "yes",
	}
}

func TestProcessAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*ConfigRawInput)
		expectError bool
	}{
		{
			name:   "valid minimal config",
			mutate: func(*ConfigRawInput) {},
		},
		{
			name:        "invalid output",
			mutate:      func(in *ConfigRawInput) { in.Output = "pdf" },
			expectError: true,
		},
		{
			name:        "precision too high",
			mutate:      func(in *ConfigRawInput) { in.Precision = 9 },
			expectError: true,
		},
		{
			name:        "negative precision",
			mutate:      func(in *ConfigRawInput) { in.Precision = -1 },
			expectError: true,
		},
		{
			name:        "invalid color",
			mutate:      func(in *ConfigRawInput) { in.Color = "sometimes" },
			expectError: true,
		},
		{
			name:        "negative width",
			mutate:      func(in *ConfigRawInput) { in.Width = -5 },
			expectError: true,
		},
		{
			name:        "invalid source",
			mutate:      func(in *ConfigRawInput) { in.Source = "excel" },
			expectError: true,
		},
		{
			name: "sqlite source without connect",
			mutate: func(in *ConfigRawInput) {
				in.Source = "sqlite"
			},
		},
		{
			name: "mysql source without connect",
			mutate: func(in *ConfigRawInput) {
				in.Source = "mysql"
			},
			expectError: true,
		},
		{
			name: "postgresql source with valid connect",
			mutate: func(in *ConfigRawInput) {
				in.Source = "postgresql"
				in.SourceConnect = "host=localhost port=5432 user=postgres dbname=prices"
			},
		},
		{
			name: "invalid table for sql source",
			mutate: func(in *ConfigRawInput) {
				in.Source = "sqlite"
				in.Table = "prices; DROP TABLE x"
			},
			expectError: true,
		},
		{
			name: "odd table ignored for csv source",
			mutate: func(in *ConfigRawInput) {
				in.Table = "not used-here"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(input)
			cfg := &Config{}
			err := ProcessAndValidate(cfg, input)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProcessAndValidateDefaults(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, &ConfigRawInput{Color: "no"}))

	assert.Equal(t, schema.CSVBackend, cfg.Source)
	assert.Equal(t, DefaultDataPath, cfg.DataPath)
	assert.Equal(t, DefaultTable, cfg.Table)
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.Nil(t, cfg.Categories, "unset categories means all categories")
	assert.Empty(t, cfg.Products)
	assert.False(t, cfg.UseColors)
}

func TestProcessSelection(t *testing.T) {
	t.Run("lists are split and trimmed", func(t *testing.T) {
		input := validInput()
		input.Category = "Food, Drink ,"
		input.Product = "Rice,Milk , Eggs"
		input.Query = "  Ri  "

		cfg := &Config{}
		require.NoError(t, ProcessAndValidate(cfg, input))

		assert.Equal(t, []string{"Food", "Drink"}, cfg.Categories)
		assert.Equal(t, []string{"Rice", "Milk", "Eggs"}, cfg.Products)
		assert.Equal(t, "Ri", cfg.Query)
	})

	t.Run("explicit empty category set is kept", func(t *testing.T) {
		input := validInput()
		input.CategorySet = true

		cfg := &Config{}
		require.NoError(t, ProcessAndValidate(cfg, input))

		assert.NotNil(t, cfg.Categories)
		assert.Empty(t, cfg.Categories)
	})
}

func TestSelectionFor(t *testing.T) {
	available := []string{"Food", "Drink"}

	t.Run("nil categories select everything", func(t *testing.T) {
		cfg := &Config{Products: []string{"Rice"}}
		sel := cfg.SelectionFor(available)
		assert.Equal(t, available, sel.Categories)
		assert.Equal(t, []string{"Rice"}, sel.Products)
	})

	t.Run("explicit categories are kept", func(t *testing.T) {
		cfg := &Config{Categories: []string{}}
		sel := cfg.SelectionFor(available)
		assert.Empty(t, sel.Categories)
	})

	t.Run("selection does not alias config", func(t *testing.T) {
		cfg := &Config{Categories: []string{"Food"}}
		sel := cfg.SelectionFor(available)
		sel.Categories[0] = "Changed"
		assert.Equal(t, "Food", cfg.Categories[0])
	})
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{Categories: []string{"Food"}, Products: []string{"Rice"}, Query: "R"}
	clone := cfg.Clone()
	clone.Categories[0] = "Drink"
	clone.Products[0] = "Milk"

	assert.Equal(t, "Food", cfg.Categories[0])
	assert.Equal(t, "Rice", cfg.Products[0])
	assert.Equal(t, "R", clone.Query)
	assert.Nil(t, (&Config{}).Clone().Categories)
}

func TestValidateDatabaseConnectionString(t *testing.T) {
	assert.NoError(t, ValidateDatabaseConnectionString(schema.CSVBackend, ""))
	assert.NoError(t, ValidateDatabaseConnectionString(schema.SQLiteBackend, ""))
	assert.NoError(t, ValidateDatabaseConnectionString(schema.MySQLBackend, "root:pw@tcp(localhost:3306)/prices"))
	assert.Error(t, ValidateDatabaseConnectionString(schema.MySQLBackend, "root:pw@localhost"))
	assert.Error(t, ValidateDatabaseConnectionString(schema.PostgreSQLBackend, "host=localhost"))
}

func TestValidateTableName(t *testing.T) {
	assert.NoError(t, ValidateTableName("price_records"))
	assert.NoError(t, ValidateTableName("_prices2"))
	assert.Error(t, ValidateTableName(""))
	assert.Error(t, ValidateTableName("2prices"))
	assert.Error(t, ValidateTableName("prices-2024"))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{}, SplitList(""))
	assert.Equal(t, []string{"a", "b"}, SplitList(" a ,, b ,"))
}
