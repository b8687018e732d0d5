// Package main provides a performance benchmarking tool for the pricedash CLI.
// It generates synthetic price datasets of increasing size and measures how long
// each command takes against a CSV source and a seeded SQLite source, running each
// test multiple times, treating the first successful run as cold and averaging the rest as warm,
// generating CSV output for performance analysis and documentation.
//
// Prerequisites:
// - pricedash binary installed and available in PATH
//
// Usage: go run benchmark/main.go [work-dir]
//
//	work-dir: Directory where synthetic datasets and SQLite stores are written
package main

import (
	"encoding/csv"
	"fmt"
	"math/rand/v2"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (cold run and average of warm runs).
type BenchmarkResult struct {
	Dataset  string
	Source   string
	Command  string
	ColdTime string
	WarmTime string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	WorkDir  string
	Timeout  time.Duration
	Runs     int
	Sizes    map[string]int // dataset name -> products per category
	Years    int
	Commands map[string][]string
}

func main() {
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [work-dir]\n", os.Args[0])
		os.Exit(1)
	}

	config := BenchmarkConfig{
		WorkDir: os.Args[1],
		Timeout: 2 * time.Minute,
		Runs:    4,
		Sizes: map[string]int{
			"small":  10,
			"medium": 500,
			"large":  10000,
		},
		Years: 25,
		Commands: map[string][]string{
			"categories": {"categories"},
			"products":   {"products", "--query", "Product 1"},
			"dashboard":  {"dashboard", "--product", "Product 1,Product 2,Product 3"},
			"export":     {"export", "--product", "Product 1,Product 2", "--output-file", os.DevNull},
		},
	}

	if _, err := exec.LookPath("pricedash"); err != nil {
		fmt.Printf("Prerequisites check failed: pricedash binary not found in PATH\n")
		os.Exit(1)
	}
	if err := os.MkdirAll(config.WorkDir, 0o755); err != nil {
		fmt.Printf("Failed to create work dir: %v\n", err)
		os.Exit(1)
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// runBenchmarks prepares every dataset and times each command against each source.
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d datasets, %v timeout, %d runs\n", len(config.Sizes), config.Timeout, config.Runs)

	for _, name := range []string{"small", "medium", "large"} {
		csvPath := filepath.Join(config.WorkDir, name+".csv")
		dbPath := filepath.Join(config.WorkDir, name+".db")

		n, err := generateDataset(csvPath, config.Sizes[name], config.Years)
		if err != nil {
			fmt.Printf("Failed to generate %s dataset: %v\n", name, err)
			continue
		}
		fmt.Printf("Benchmarking %s dataset (%d records)\n", name, n)

		_ = os.Remove(dbPath)
		seed := exec.Command("pricedash", "dataset", "import", csvPath, "--source", "sqlite", "--source-connect", dbPath)
		if output, err := seed.CombinedOutput(); err != nil {
			fmt.Printf("Warning: failed to seed SQLite: %v\nOutput: %s\n", err, string(output))
			continue
		}

		sources := map[string][]string{
			"csv":    {"--data", csvPath},
			"sqlite": {"--source", "sqlite", "--source-connect", dbPath},
		}
		for _, source := range []string{"csv", "sqlite"} {
			for _, command := range []string{"categories", "products", "dashboard", "export"} {
				args := append(append([]string{}, config.Commands[command]...), sources[source]...)
				args = append(args, "--output", "json")
				results = append(results, runBenchmarkSuite(config, name, source, command, args))
			}
		}
	}

	return results
}

// generateDataset writes a synthetic dataset with four categories and returns its record count.
func generateDataset(path string, productsPerCategory, years int) (int, error) {
	file, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer func() { _ = file.Close() }()

	writer := csv.NewWriter(file)
	if err := writer.Write([]string{"Category", "Product", "Year", "Price"}); err != nil {
		return 0, err
	}

	rng := rand.New(rand.NewPCG(42, 7))
	count := 0
	for _, category := range []string{"Food", "Drink", "Household", "Personal Care"} {
		for p := 1; p <= productsPerCategory; p++ {
			product := fmt.Sprintf("%s Product %d", category, p)
			price := 100 + rng.Float64()*5000
			for y := range years {
				price *= 0.95 + rng.Float64()*0.15
				row := []string{category, product, strconv.Itoa(2000 + y), strconv.FormatFloat(price, 'f', 2, 64)}
				if err := writer.Write(row); err != nil {
					return count, err
				}
				count++
			}
		}
	}
	writer.Flush()
	return count, writer.Error()
}

// runBenchmarkSuite runs one command repeatedly and summarizes its timings.
func runBenchmarkSuite(config BenchmarkConfig, dataset, source, command string, args []string) BenchmarkResult {
	fmt.Printf("  %s on %s (%d runs)\n", command, source, config.Runs)

	coldTime, warmTimes := runBenchmark(config, args)

	coldTimeStr := "TIMEOUT"
	if coldTime > 0 {
		coldTimeStr = fmt.Sprintf("%.3fs", coldTime)
	}
	warmAvg := "TIMEOUT"
	if len(warmTimes) > 0 {
		var sum float64
		for _, t := range warmTimes {
			sum += t
		}
		warmAvg = fmt.Sprintf("%.3fs", sum/float64(len(warmTimes)))
	}

	fmt.Printf("    Cold time: %s, Warm average: %s\n", coldTimeStr, warmAvg)

	return BenchmarkResult{
		Dataset:  dataset,
		Source:   source,
		Command:  command,
		ColdTime: coldTimeStr,
		WarmTime: warmAvg,
	}
}

// runBenchmark executes a pricedash command multiple times and returns cold time and warm times
func runBenchmark(config BenchmarkConfig, args []string) (coldTime float64, warmTimes []float64) {
	var times []float64
	for run := 1; run <= config.Runs; run++ {
		start := time.Now()

		cmd := exec.Command("pricedash", args...)

		done := make(chan error, 1)
		go func() {
			_, err := cmd.Output()
			done <- err
		}()

		select {
		case err := <-done:
			if err == nil {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			_ = cmd.Process.Kill()
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/pricedash_benchmark_%s.csv", timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"dataset", "source", "cmd", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, result := range results {
		if err := writer.Write([]string{result.Dataset, result.Source, result.Command, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")
	for _, source := range []string{"csv", "sqlite"} {
		fmt.Printf("%s source:\n", source)
		for _, result := range results {
			if result.Source == source {
				fmt.Printf("  %-7s %-11s: Cold: %s, Warm: %s\n", result.Dataset, result.Command, result.ColdTime, result.WarmTime)
			}
		}
	}
}
