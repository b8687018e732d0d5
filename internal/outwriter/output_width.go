package outwriter

import (
	"os"

	"github.com/huangsam/pricedash/internal/contract"
	"golang.org/x/term"
)

// getTerminalWidth returns the configured width override or the detected terminal width.
func getTerminalWidth(cfg *contract.Config) int {
	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		return cfg.Width
	}

	detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || detectedWidth <= 0 {
		// Fallback to conservative default if terminal size can't be detected
		return 80
	}
	return detectedWidth
}

// getBarWidth calculates how many cells the longest bar of the change chart may use.
func getBarWidth(cfg *contract.Config) int {
	// Reserve space for the year, the percent label and separators
	available := getTerminalWidth(cfg) - 24
	if available < 10 {
		return 10
	}
	if available > 60 {
		return 60
	}
	return available
}

// getMaxLabelWidth calculates the maximum width of a product name in table output.
// Each selected product takes one column next to the year column.
func getMaxLabelWidth(cfg *contract.Config, columns int) int {
	if columns < 1 {
		columns = 1
	}
	// Reserve space for the year column and table borders
	available := (getTerminalWidth(cfg) - 12) / columns
	if available < 8 {
		return 8
	}
	if available > 40 {
		return 40
	}
	return available
}
