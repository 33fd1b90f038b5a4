package main

import (
	"os"
	"path/filepath"
)

// Config holds configuration for the application
type Config struct {
	HistoryPath    string
	CategoriesPath string
}

// DefaultConfig returns the configuration from the environment
func DefaultConfig() *Config {
	// Check for BMICALC_HISTORY_FILE environment variable
	historyPath := os.Getenv("BMICALC_HISTORY_FILE")
	if historyPath == "" {
		// Fall back to the working directory
		historyPath = DefaultHistoryFile
	}

	return &Config{
		HistoryPath:    historyPath,
		CategoriesPath: os.Getenv("BMICALC_CATEGORIES_FILE"),
	}
}

// TestConfig returns a configuration for testing
func TestConfig(testDir string) *Config {
	return &Config{
		HistoryPath: filepath.Join(testDir, DefaultHistoryFile),
	}
}
