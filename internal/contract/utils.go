package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/pricedash/schema"
)

// Color variables for console output.
var (
	IncreaseColor = color.New(color.FgRed, color.Bold) // IncreaseColor marks rising prices.
	DecreaseColor = color.New(color.FgCyan)            // DecreaseColor marks falling prices.
	StableColor   = color.New(color.FgYellow)          // StableColor marks unchanged prices.
	MutedColor    = color.New(color.Faint)             // MutedColor is for placeholders and missing values.
)

// GetColorLabel returns a colored trend label for console output (table).
func GetColorLabel(label schema.TrendLabel) string {
	text := label.DisplayLabel()
	return TrendColor(label).Sprint(text)
}

// TrendColor returns the console color associated with a trend label.
func TrendColor(label schema.TrendLabel) *color.Color {
	switch label {
	case schema.IncreaseTrend:
		return IncreaseColor
	case schema.DecreaseTrend:
		return DecreaseColor
	default:
		return StableColor
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. It returns os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// LogInfo logs a status message to stderr, keeping stdout for results.
func LogInfo(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
}

// GetDatasetDBFilePath returns the path to the SQLite DB file for dataset storage.
func GetDatasetDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".pricedash.db"
	}
	return filepath.Join(homeDir, ".pricedash.db")
}

// TruncateText truncates a label to a maximum width with an ellipsis suffix.
// Requires maxWidth > 3 to leave room for the ellipsis and at least one character.
func TruncateText(text string, maxWidth int) string {
	runes := []rune(text)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return text
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
