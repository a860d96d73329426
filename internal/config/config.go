// =============================================================================
// Sales Cost Computation - Configuration Module
// =============================================================================
//
// This module loads the optional application configuration. The program is
// fully functional without a config file: every setting has a default that
// reproduces the plain command-line behavior (report written next to the
// working directory, diagnostics on stderr, no spreadsheet export).
//
// CONFIGURATION FILE:
//   config.yaml (path overridable via the --config flag)
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// MAIN CONFIGURATION STRUCTURE
// =============================================================================

// MainConfig holds the global application configuration.
type MainConfig struct {
	// =========================================================================
	// OUTPUT SETTINGS
	// =========================================================================

	// OutputDir is the directory where report artifacts are written.
	// Default: "."
	OutputDir string `yaml:"output_dir"`

	// ReportFile is the name of the text report artifact.
	// Default: "SalesResults.txt"
	ReportFile string `yaml:"report_file"`

	// XLSXReport enables the spreadsheet export alongside the text report.
	// Default: false
	XLSXReport bool `yaml:"xlsx_report"`

	// XLSXFile is the name of the spreadsheet artifact.
	// Default: "SalesResults.xlsx"
	XLSXFile string `yaml:"xlsx_file"`

	// =========================================================================
	// ARCHIVAL SETTINGS
	// =========================================================================

	// ArchivePrevious moves an existing report artifact into the archive
	// directory before it is overwritten by a new run.
	// Default: false (previous reports are overwritten in place)
	ArchivePrevious bool `yaml:"archive_previous"`

	// ArchiveDir is the directory receiving archived report artifacts.
	// Default: "./archive"
	ArchiveDir string `yaml:"archive_dir"`

	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogLevel controls the verbosity of diagnostics.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// LogFormat selects the diagnostic encoding: "console" or "json".
	// Default: "console"
	LogFormat string `yaml:"log_format"`

	// LogFile is an optional file path for diagnostics.
	// Default: "" (standard error; standard output belongs to the report)
	LogFile string `yaml:"log_file"`

	// =========================================================================
	// PROCESSING SETTINGS
	// =========================================================================

	// MaxConcurrency is the maximum number of sales files loaded in
	// parallel. Set to 1 for strictly sequential loading.
	// Default: 4
	MaxConcurrency int `yaml:"max_concurrency"`
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// LoadMainConfig loads the main configuration from a YAML file.
//
// PARAMETERS:
//   - configPath: The path to the configuration file.
//
// RETURNS:
//   - A pointer to the MainConfig struct. A missing file is not an error:
//     running without configuration is the normal case and yields defaults.
//   - An error if the file exists but cannot be read or parsed.
func LoadMainConfig(configPath string) (*MainConfig, error) {
	var config MainConfig

	data, err := os.ReadFile(configPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// No config file: defaults apply.
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	// Apply default values.
	applyMainConfigDefaults(&config)

	// Validate the configuration.
	if err := validateMainConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// applyMainConfigDefaults sets default values for any unset configuration options.
func applyMainConfigDefaults(config *MainConfig) {
	if config.OutputDir == "" {
		config.OutputDir = "."
	}
	if config.ReportFile == "" {
		config.ReportFile = "SalesResults.txt"
	}
	if config.XLSXFile == "" {
		config.XLSXFile = "SalesResults.xlsx"
	}
	if config.ArchiveDir == "" {
		config.ArchiveDir = "./archive"
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	if config.LogFormat == "" {
		config.LogFormat = "console"
	}
	if config.MaxConcurrency == 0 {
		config.MaxConcurrency = 4
	}
}

// validateMainConfig validates the main configuration.
func validateMainConfig(config *MainConfig) error {
	if config.MaxConcurrency < 1 {
		return fmt.Errorf("max_concurrency must be at least 1, got %d", config.MaxConcurrency)
	}

	// Create the output directory if it doesn't exist. The archive
	// directory is only created when archival is enabled.
	dirs := []string{config.OutputDir}
	if config.ArchivePrevious {
		dirs = append(dirs, config.ArchiveDir)
	}

	for _, dir := range dirs {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", dir, err)
			}
		}
	}

	return nil
}
