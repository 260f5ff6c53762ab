// Package config provides configuration management for the generator tools.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrMissingBaseURL           = errors.New("api.base_url is required")
	ErrMissingLanguage          = errors.New("api.language is required")
	ErrInvalidMaxRetries        = errors.New("retry.max_retries must be non-negative")
	ErrInvalidInitialDelay      = errors.New("retry.initial_delay_ms must be non-negative")
	ErrInvalidBackoffMultiplier = errors.New("retry.backoff_multiplier must be >= 1.0")
	ErrInvalidTimeout           = errors.New("retry.timeout_sec must be at least 1")
	ErrMissingOutputPath        = errors.New("output.path is required")
	ErrInvalidIndentSize        = errors.New("output.indent_size must be at least 1")
	ErrInvalidPreviewRows       = errors.New("logging.preview_rows must be non-negative")
	ErrInvalidLogLevel          = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrMissingFontPath          = errors.New("drawables.font_path is required")
	ErrMissingDrawablesPath     = errors.New("drawables.output_path is required")
	ErrInvalidFontSize          = errors.New("drawables.font_size must be at least 1")
)

// Config represents the complete generator configuration.
type Config struct {
	Generator GeneratorConfig `yaml:"generator"`
	Drawables DrawablesConfig `yaml:"drawables"`
}

// GeneratorConfig contains sample-data generator settings.
type GeneratorConfig struct {
	API     APIConfig     `yaml:"api"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
	Retry   RetryPolicy   `yaml:"retry"`
}

// APIConfig identifies the upstream mp3quran API.
type APIConfig struct {
	BaseURL  string `yaml:"base_url"`
	Language string `yaml:"language"`
}

// OutputConfig defines the generated source file.
type OutputConfig struct {
	Path       string   `yaml:"path"`
	IndentSize int      `yaml:"indent_size"`
	Headers    []string `yaml:"headers"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level        string `yaml:"level"`
	PreviewRows  int    `yaml:"preview_rows"`
	ShowProgress bool   `yaml:"show_progress"`
}

// RetryPolicy defines retry behavior for API fetches.
type RetryPolicy struct {
	MaxRetries        int     `yaml:"max_retries"`
	InitialDelayMs    int     `yaml:"initial_delay_ms"`
	MaxDelayMs        int     `yaml:"max_delay_ms"`
	BackoffMultiplier float64 `yaml:"backoff_multiplier"`
	TimeoutSec        int     `yaml:"timeout_sec"`
	RetriableStatuses []int   `yaml:"retriable_statuses"`
}

// DrawablesConfig contains title-card renderer settings.
type DrawablesConfig struct {
	FontPath        string `yaml:"font_path"`
	OutputPath      string `yaml:"output_path"`
	FontSize        int    `yaml:"font_size"`
	FontSizeReduced int    `yaml:"font_size_reduced"`
	TargetFPS       int    `yaml:"target_fps"`
}

// Default returns the configuration matching the original helper scripts.
func Default() *Config {
	return &Config{
		Generator: GeneratorConfig{
			API: APIConfig{
				BaseURL:  "https://mp3quran.net/api/v3",
				Language: "ar",
			},
			Output: OutputConfig{
				Path:       "SampleData.kt",
				IndentSize: 4,
				Headers: []string{
					`@file:Suppress("SpellCheckingInspection")`,
					"",
					"package com.hifnawy.alquran.utils",
					"",
					"import com.hifnawy.alquran.shared.model.Moshaf",
					"import com.hifnawy.alquran.shared.model.Reciter",
					"import com.hifnawy.alquran.shared.model.Surah",
					"import com.hifnawy.alquran.shared.model.asReciterId",
					"",
				},
			},
			Logging: LoggingConfig{
				Level:        "info",
				PreviewRows:  5,
				ShowProgress: true,
			},
			Retry: RetryPolicy{
				MaxRetries:        3,
				InitialDelayMs:    250,
				MaxDelayMs:        30000,
				BackoffMultiplier: 2.0,
				TimeoutSec:        3,
				RetriableStatuses: []int{408, 429, 500, 502, 503, 504},
			},
		},
		Drawables: DrawablesConfig{
			FontPath:        "shared/src/main/res/font/decotype_thuluth_2.ttf",
			OutputPath:      "shared/src/main/res/drawable",
			FontSize:        150,
			FontSizeReduced: 135,
			TargetFPS:       144,
		},
	}
}

// LoadConfig loads configuration from YAML file.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// SaveConfig saves configuration to YAML file.
func (c *Config) SaveConfig(filepath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	// Validate API config
	if c.Generator.API.BaseURL == "" {
		return ErrMissingBaseURL
	}

	if c.Generator.API.Language == "" {
		return ErrMissingLanguage
	}

	// Validate retry policy
	if c.Generator.Retry.MaxRetries < 0 {
		return ErrInvalidMaxRetries
	}

	if c.Generator.Retry.InitialDelayMs < 0 {
		return ErrInvalidInitialDelay
	}

	if c.Generator.Retry.BackoffMultiplier < 1.0 {
		return ErrInvalidBackoffMultiplier
	}

	if c.Generator.Retry.TimeoutSec < 1 {
		return ErrInvalidTimeout
	}

	// Validate output config
	if c.Generator.Output.Path == "" {
		return ErrMissingOutputPath
	}

	if c.Generator.Output.IndentSize < 1 {
		return ErrInvalidIndentSize
	}

	// Validate logging config
	if c.Generator.Logging.PreviewRows < 0 {
		return ErrInvalidPreviewRows
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Generator.Logging.Level] {
		return ErrInvalidLogLevel
	}

	// Validate drawables config
	if c.Drawables.FontPath == "" {
		return ErrMissingFontPath
	}

	if c.Drawables.OutputPath == "" {
		return ErrMissingDrawablesPath
	}

	if c.Drawables.FontSize < 1 || c.Drawables.FontSizeReduced < 1 {
		return ErrInvalidFontSize
	}

	return nil
}

// GetRetryDelay calculates exponential backoff delay before the given retry.
// Retry numbering starts at 0, so delays are initial_delay * multiplier^retry.
func (rp *RetryPolicy) GetRetryDelay(retry int) time.Duration {
	if retry < 0 {
		return 0
	}

	delayMs := float64(rp.InitialDelayMs)
	for i := 0; i < retry; i++ {
		delayMs *= rp.BackoffMultiplier
	}

	// Cap at max delay
	if rp.MaxDelayMs > 0 && int(delayMs) > rp.MaxDelayMs {
		delayMs = float64(rp.MaxDelayMs)
	}

	return time.Duration(int(delayMs)) * time.Millisecond
}

// GetTimeout returns the per-attempt timeout duration.
func (rp *RetryPolicy) GetTimeout() time.Duration {
	return time.Duration(rp.TimeoutSec) * time.Second
}

// IsRetryableStatus determines if a fetch should retry based on HTTP status code.
func (rp *RetryPolicy) IsRetryableStatus(statusCode int) bool {
	for _, code := range rp.RetriableStatuses {
		if statusCode == code {
			return true
		}
	}

	return false
}

// NewBackOff builds the backoff schedule for this policy.
// RandomizationFactor is zero so retry delays are exact, which keeps
// the worst-case fetch latency bound predictable.
func (rp *RetryPolicy) NewBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = time.Duration(rp.InitialDelayMs) * time.Millisecond
	b.RandomizationFactor = 0
	b.Multiplier = rp.BackoffMultiplier
	b.MaxInterval = time.Duration(rp.MaxDelayMs) * time.Millisecond
	b.MaxElapsedTime = 0
	b.Reset()

	return backoff.WithMaxRetries(b, uint64(rp.MaxRetries))
}

// ReciterURL returns the reciters endpoint URL.
func (a *APIConfig) ReciterURL() string {
	return fmt.Sprintf("%s/reciters?language=%s", a.BaseURL, a.Language)
}

// SuwarURL returns the suwar endpoint URL.
func (a *APIConfig) SuwarURL() string {
	return fmt.Sprintf("%s/suwar?language=%s", a.BaseURL, a.Language)
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{API: %s, MaxRetries: %d, Output: %s}",
		c.Generator.API.BaseURL,
		c.Generator.Retry.MaxRetries,
		c.Generator.Output.Path,
	)
}
