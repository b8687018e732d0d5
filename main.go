// main is the entry point for the pricedash CLI.
package main

import (
	"os"

	"github.com/huangsam/pricedash/cmd"
	"github.com/huangsam/pricedash/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogWarn("Command failed", err)
		os.Exit(1)
	}
}
