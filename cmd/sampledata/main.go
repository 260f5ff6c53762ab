// Package main provides the sample-data generator command-line tool.
// It fetches reciter and chapter metadata from the mp3quran API and
// writes it as Kotlin literals for the app's sample data.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"qurangen/internal/config"
	"qurangen/internal/fetch"
	"qurangen/internal/logger"
	"qurangen/internal/mp3quran"
	"qurangen/internal/sampledata"
)

const defaultConfigPath = "configs/sampledata.yaml"

func main() {
	// Define command-line flags
	configFile := flag.String("config", "", "Path to YAML configuration file")
	baseURL := flag.String("base-url", "", "API base URL (overrides config)")
	language := flag.String("language", "", "API language parameter (overrides config)")
	output := flag.String("output", "", "Output Kotlin file path (overrides config)")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
	quiet := flag.Bool("quiet", false, "Suppress progress output")
	showUsage := flag.Bool("help", false, "Show usage information")

	flag.Parse()

	if *showUsage {
		printUsage()
		os.Exit(0)
	}

	cfg := loadConfig(*configFile)

	// CLI flags override config values
	if *baseURL != "" {
		cfg.Generator.API.BaseURL = *baseURL
	}

	if *language != "" {
		cfg.Generator.API.Language = *language
	}

	if *output != "" {
		cfg.Generator.Output.Path = *output
	}

	if *logLevel != "" {
		cfg.Generator.Logging.Level = *logLevel
	}

	if *quiet {
		cfg.Generator.Logging.ShowProgress = false
		cfg.Generator.Logging.PreviewRows = 0
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("[✗] Invalid configuration: %v\n", err)
	}

	appLogger := logger.NewLogger(cfg.Generator.Logging.Level)

	fetcher := fetch.NewFetcherWithPolicy(&cfg.Generator.Retry, appLogger)
	client := mp3quran.NewClient(fetcher, &cfg.Generator.API)
	generator := sampledata.NewGenerator(client, &cfg.Generator, appLogger)

	if err := generator.Run(); err != nil {
		appLogger.Error("pipeline failed", "error", err)
		os.Exit(sampledata.ExitCode(err))
	}
}

// loadConfig resolves the configuration: explicit flag, then the default
// path, then built-in defaults.
func loadConfig(configFile string) *config.Config {
	if configFile != "" {
		cfg, err := config.LoadConfig(configFile)
		if err != nil {
			log.Fatalf("[✗] Failed to load config: %v\n", err)
		}

		return cfg
	}

	if _, err := os.Stat(defaultConfigPath); err == nil {
		cfg, err := config.LoadConfig(defaultConfigPath)
		if err != nil {
			log.Fatalf("[✗] Failed to load default config: %v\n", err)
		}

		return cfg
	}

	return config.Default()
}

func printUsage() {
	fmt.Println("Usage: sampledata [options]")
	fmt.Println()
	fmt.Println("Fetches reciters and surahs from the mp3quran API and generates")
	fmt.Println("a Kotlin SampleData.kt file with both collections as literals.")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Exit codes:")
	fmt.Println("  0  success")
	fmt.Println("  1  reciters fetch failed")
	fmt.Println("  2  surahs fetch failed")
	fmt.Println("  3  API payload did not match the expected shape")
	fmt.Println("  4  output file could not be written")
}
