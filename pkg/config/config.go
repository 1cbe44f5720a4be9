// Package config provides configuration management for txlist.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Catalog: base_url, key_prefix, timeout, user_agent
//   - Paths: semesters_dir, special_titles
//   - Log: level, format, destination
//   - General: jobs_number
//
// Runtime-only fields (CLI flags only):
//   - Run.Semester, Run.BookstoreFile, Run.DryRun (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use TXLIST_ prefix with underscores for nesting:
//
//	TXLIST_CATALOG_BASE_URL=https://catalog.lib.ncsu.edu
//	TXLIST_CATALOG_TIMEOUT=30
//	TXLIST_PATHS_SEMESTERS_DIR=/data/textbooks/semesters
//	TXLIST_LOG_LEVEL=info
//	TXLIST_JOBS_NUMBER=1
//
// Variables can also be placed into a .env file in the working directory.
package config

// Config represents the complete txlist configuration.
type Config struct {
	// Catalog contains settings of the library catalog service.
	Catalog CatalogConfig `mapstructure:"catalog" yaml:"catalog"`

	// Paths contains locations of semester folders and the special titles
	// workbook.
	Paths PathsConfig `mapstructure:"paths" yaml:"paths"`

	// Run contains settings specific to a single reconciliation run.
	Run RunConfig `mapstructure:"run" yaml:"-"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of catalog requests that can be in flight
	// at the same time. The catalog is rate limited, so the default is 1,
	// which issues requests strictly one after another.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string `yaml:"-"`
}

// CatalogConfig contains settings for the catalog lookup service.
type CatalogConfig struct {
	// BaseURL is the root of the catalog web site. Search pages and
	// JSON item records are both served under it.
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`

	// KeyPrefix is the institution prefix the catalog adds to catalog keys
	// in its URLs (for example NCSU in /catalog/NCSU1234567).
	KeyPrefix string `mapstructure:"key_prefix" yaml:"key_prefix"`

	// Timeout is the per-request timeout in seconds. An expired request
	// is treated the same way as a transport failure.
	Timeout int `mapstructure:"timeout" yaml:"timeout"`

	// UserAgent is sent with every request to the catalog.
	UserAgent string `mapstructure:"user_agent" yaml:"user_agent"`
}

// PathsConfig contains file system locations of input and output data.
type PathsConfig struct {
	// SemestersDir contains one folder per semester ("Fall 2023"). Bookstore
	// lists are read from there and order/pull lists are written there.
	SemestersDir string `mapstructure:"semesters_dir" yaml:"semesters_dir"`

	// SpecialTitles is the workbook with 'replace' and 'exclude' sheets.
	SpecialTitles string `mapstructure:"special_titles" yaml:"special_titles"`
}

// RunConfig contains settings specific to the run command.
type RunConfig struct {
	// Semester in "[Season] [Year]" format, for example "Fall 2023".
	Semester string `mapstructure:"semester"`

	// BookstoreFile is the name of the bookstore workbook inside the
	// semester folder, with or without the .xlsx extension.
	BookstoreFile string `mapstructure:"bookstore_file"`

	// DryRun runs the reconciliation without writing output files.
	DryRun bool `mapstructure:"dry_run"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Catalog: CatalogConfig{
			BaseURL:   "https://catalog.lib.ncsu.edu",
			KeyPrefix: "NCSU",
			Timeout:   30,
			UserAgent: AppName + "/" + "reconciler",
		},
		Paths: PathsConfig{
			SemestersDir:  "semesters",
			SpecialTitles: "SpecialTitles.xlsx",
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: 1,
	}

	return res
}
