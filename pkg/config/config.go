package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Config holds the analysis settings. Every field has a default, so the
// config file is optional.
type Config struct {
	// TestFileSuffix marks test files, e.g. ".spec.ts".
	TestFileSuffix string `json:"test_file_suffix"`
	// HelperExtensions are the non-test source extensions whose function
	// changes are correlated to tests.
	HelperExtensions []string `json:"helper_extensions"`
	// Extractor selects the block extractor: "scan" or "sitter".
	Extractor string `json:"extractor"`
}

func Default() *Config {
	return &Config{
		TestFileSuffix:   ".spec.ts",
		HelperExtensions: []string{".ts", ".js"},
		Extractor:        "scan",
	}
}

// TestFileGlob is the ls-files pattern matching the test corpus.
func (c *Config) TestFileGlob() string {
	return "*" + c.TestFileSuffix
}

// LoadConfig reads a JSON config file, filling unset fields with defaults.
// A missing file yields the defaults without error.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if config.TestFileSuffix == "" {
		config.TestFileSuffix = ".spec.ts"
	}
	if len(config.HelperExtensions) == 0 {
		config.HelperExtensions = []string{".ts", ".js"}
	}
	if config.Extractor == "" {
		config.Extractor = "scan"
	}

	return config, nil
}
