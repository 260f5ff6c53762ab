package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// Helper to create a temp config file.
func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create temp config file: %v", err)
	}

	return configPath
}

// validConfigYAML is a minimal valid configuration.
const validConfigYAML = `
generator:
  api:
    base_url: "https://mp3quran.net/api/v3"
    language: "ar"
  retry:
    max_retries: 3
    initial_delay_ms: 250
    max_delay_ms: 30000
    backoff_multiplier: 2.0
    timeout_sec: 3
    retriable_statuses: [408, 429, 500, 502, 503, 504]
  output:
    path: "SampleData.kt"
    indent_size: 4
    headers:
      - 'package com.hifnawy.alquran.utils'
      - ''
  logging:
    level: "info"
    preview_rows: 5
    show_progress: true
drawables:
  font_path: "fonts/decotype_thuluth_2.ttf"
  output_path: "drawable"
  font_size: 150
  font_size_reduced: 135
  target_fps: 144
`

func TestLoadConfig_Valid(t *testing.T) {
	configPath := createTempConfigFile(t, validConfigYAML)

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg == nil {
		t.Fatal("Expected config, got nil")
	}

	if cfg.Generator.API.BaseURL != "https://mp3quran.net/api/v3" {
		t.Errorf("Expected mp3quran base URL, got '%s'", cfg.Generator.API.BaseURL)
	}

	if cfg.Generator.Retry.MaxRetries != 3 {
		t.Errorf("Expected 3 max retries, got %d", cfg.Generator.Retry.MaxRetries)
	}

	if len(cfg.Generator.Output.Headers) != 2 {
		t.Errorf("Expected 2 header lines, got %d", len(cfg.Generator.Output.Headers))
	}

	if cfg.Drawables.FontSize != 150 {
		t.Errorf("Expected font size 150, got %d", cfg.Drawables.FontSize)
	}
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	_, err := LoadConfig("/nonexistent/config.yaml")
	if err == nil {
		t.Fatal("Expected error for missing file, got nil")
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	configPath := createTempConfigFile(t, "generator: [not: valid")

	_, err := LoadConfig(configPath)
	if err == nil {
		t.Fatal("Expected error for invalid YAML, got nil")
	}
}

func TestConfig_Validate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:    "missing base URL",
			mutate:  func(c *Config) { c.Generator.API.BaseURL = "" },
			wantErr: ErrMissingBaseURL,
		},
		{
			name:    "missing language",
			mutate:  func(c *Config) { c.Generator.API.Language = "" },
			wantErr: ErrMissingLanguage,
		},
		{
			name:    "negative max retries",
			mutate:  func(c *Config) { c.Generator.Retry.MaxRetries = -1 },
			wantErr: ErrInvalidMaxRetries,
		},
		{
			name:    "negative initial delay",
			mutate:  func(c *Config) { c.Generator.Retry.InitialDelayMs = -1 },
			wantErr: ErrInvalidInitialDelay,
		},
		{
			name:    "backoff multiplier below 1",
			mutate:  func(c *Config) { c.Generator.Retry.BackoffMultiplier = 0.5 },
			wantErr: ErrInvalidBackoffMultiplier,
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.Generator.Retry.TimeoutSec = 0 },
			wantErr: ErrInvalidTimeout,
		},
		{
			name:    "missing output path",
			mutate:  func(c *Config) { c.Generator.Output.Path = "" },
			wantErr: ErrMissingOutputPath,
		},
		{
			name:    "zero indent size",
			mutate:  func(c *Config) { c.Generator.Output.IndentSize = 0 },
			wantErr: ErrInvalidIndentSize,
		},
		{
			name:    "negative preview rows",
			mutate:  func(c *Config) { c.Generator.Logging.PreviewRows = -1 },
			wantErr: ErrInvalidPreviewRows,
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Generator.Logging.Level = "verbose" },
			wantErr: ErrInvalidLogLevel,
		},
		{
			name:    "missing font path",
			mutate:  func(c *Config) { c.Drawables.FontPath = "" },
			wantErr: ErrMissingFontPath,
		},
		{
			name:    "missing drawables path",
			mutate:  func(c *Config) { c.Drawables.OutputPath = "" },
			wantErr: ErrMissingDrawablesPath,
		},
		{
			name:    "zero font size",
			mutate:  func(c *Config) { c.Drawables.FontSize = 0 },
			wantErr: ErrInvalidFontSize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config should validate, got: %v", err)
	}

	if cfg.Generator.Retry.TimeoutSec != 3 {
		t.Errorf("Expected 3s per-attempt timeout, got %d", cfg.Generator.Retry.TimeoutSec)
	}

	if cfg.Generator.Output.IndentSize != 4 {
		t.Errorf("Expected indent size 4, got %d", cfg.Generator.Output.IndentSize)
	}
}

func TestRetryPolicy_GetRetryDelay(t *testing.T) {
	rp := RetryPolicy{
		MaxRetries:        3,
		InitialDelayMs:    250,
		MaxDelayMs:        30000,
		BackoffMultiplier: 2.0,
		TimeoutSec:        3,
	}

	tests := []struct {
		retry    int
		expected time.Duration
	}{
		{0, 250 * time.Millisecond},
		{1, 500 * time.Millisecond},
		{2, 1000 * time.Millisecond},
		{-1, 0},
	}

	for _, tt := range tests {
		got := rp.GetRetryDelay(tt.retry)
		if got != tt.expected {
			t.Errorf("GetRetryDelay(%d): expected %v, got %v", tt.retry, tt.expected, got)
		}
	}
}

func TestRetryPolicy_GetRetryDelay_CapsAtMax(t *testing.T) {
	rp := RetryPolicy{
		InitialDelayMs:    250,
		MaxDelayMs:        600,
		BackoffMultiplier: 2.0,
	}

	if got := rp.GetRetryDelay(5); got != 600*time.Millisecond {
		t.Errorf("Expected delay capped at 600ms, got %v", got)
	}
}

func TestRetryPolicy_GetTimeout(t *testing.T) {
	rp := RetryPolicy{TimeoutSec: 3}

	if got := rp.GetTimeout(); got != 3*time.Second {
		t.Errorf("Expected 3s timeout, got %v", got)
	}
}

func TestRetryPolicy_IsRetryableStatus(t *testing.T) {
	rp := RetryPolicy{RetriableStatuses: []int{408, 429, 500, 502, 503, 504}}

	for _, code := range []int{408, 429, 500, 502, 503, 504} {
		if !rp.IsRetryableStatus(code) {
			t.Errorf("Expected status %d to be retriable", code)
		}
	}

	for _, code := range []int{200, 400, 404, 418} {
		if rp.IsRetryableStatus(code) {
			t.Errorf("Expected status %d to be non-retriable", code)
		}
	}
}

func TestAPIConfig_EndpointURLs(t *testing.T) {
	api := APIConfig{BaseURL: "https://mp3quran.net/api/v3", Language: "ar"}

	if got := api.ReciterURL(); got != "https://mp3quran.net/api/v3/reciters?language=ar" {
		t.Errorf("Unexpected reciters URL: %s", got)
	}

	if got := api.SuwarURL(); got != "https://mp3quran.net/api/v3/suwar?language=ar" {
		t.Errorf("Unexpected suwar URL: %s", got)
	}
}

func TestConfig_SaveConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "saved.yaml")

	cfg := Default()
	if err := cfg.SaveConfig(configPath); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig after save failed: %v", err)
	}

	if loaded.Generator.API.BaseURL != cfg.Generator.API.BaseURL {
		t.Errorf("BaseURL changed through round trip: %s", loaded.Generator.API.BaseURL)
	}

	if len(loaded.Generator.Output.Headers) != len(cfg.Generator.Output.Headers) {
		t.Errorf("Headers changed through round trip: %d lines", len(loaded.Generator.Output.Headers))
	}
}

func TestConfig_String(t *testing.T) {
	cfg := Default()

	s := cfg.String()
	if s == "" {
		t.Error("Expected non-empty string representation")
	}
}
