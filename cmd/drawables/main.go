// Package main provides the surah title-card generator command-line tool.
// It renders a 512×512 PNG per surah, either headless (batch export) or
// through an animated preview window.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"qurangen/internal/config"
	"qurangen/internal/render"
)

const defaultConfigPath = "configs/sampledata.yaml"

func main() {
	// Define command-line flags
	configFile := flag.String("config", "", "Path to YAML configuration file")
	fontPath := flag.String("font", "", "TTF font file path (overrides config)")
	outputDir := flag.String("output", "", "Drawables output directory (overrides config)")
	headless := flag.Bool("headless", false, "Generate images without a preview window")
	showUsage := flag.Bool("help", false, "Show usage information")

	flag.Parse()

	if *showUsage {
		printUsage()
		os.Exit(0)
	}

	cfg := loadConfig(*configFile)

	// CLI flags override config values
	if *fontPath != "" {
		cfg.Drawables.FontPath = *fontPath
	}

	if *outputDir != "" {
		cfg.Drawables.OutputPath = *outputDir
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("[✗] Invalid configuration: %v\n", err)
	}

	renderer, err := render.NewRenderer(&cfg.Drawables)
	if err != nil {
		log.Fatalf("[✗] Failed to create renderer: %v\n", err)
	}

	if *headless {
		fmt.Printf("[*] Exporting drawables to %s...\n", cfg.Drawables.OutputPath)

		if err := renderer.Export(cfg.Drawables.OutputPath); err != nil {
			log.Fatalf("[✗] Export failed: %v\n", err)
		}

		fmt.Println("[✓] All drawables exported.")

		return
	}

	sketch := render.NewSketch(renderer, cfg.Drawables.OutputPath, cfg.Drawables.TargetFPS)
	if err := sketch.Run(); err != nil {
		log.Fatalf("[✗] Preview failed: %v\n", err)
	}

	fmt.Println("[✓] All surahs displayed.")
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
	fmt.Println("Usage: drawables [options]")
	fmt.Println()
	fmt.Println("Renders the surah title cards: a placeholder card, its blurred")
	fmt.Println("variant, and one card per surah. The default mode previews each")
	fmt.Println("card in a window before saving; -headless exports them directly.")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
}
