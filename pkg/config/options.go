package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptCatalogBaseURL sets the root URL of the library catalog.
// A trailing slash is removed.
func OptCatalogBaseURL(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.TrimRight(s, "/")
	return func(c *Config) {
		if isValidURL("Catalog Base URL", s) {
			c.Catalog.BaseURL = s
		}
	}
}

// OptCatalogKeyPrefix sets the institution prefix of catalog keys.
func OptCatalogKeyPrefix(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Catalog Key Prefix", s) {
			c.Catalog.KeyPrefix = s
		}
	}
}

// OptCatalogTimeout sets per-request timeout in seconds.
func OptCatalogTimeout(i int) Option {
	return func(c *Config) {
		if isValidInt("Catalog Timeout", i) {
			c.Catalog.Timeout = i
		}
	}
}

// OptCatalogUserAgent sets the User-Agent header for catalog requests.
func OptCatalogUserAgent(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Catalog User Agent", s) {
			c.Catalog.UserAgent = s
		}
	}
}

// OptPathsSemestersDir sets the directory that contains semester folders.
func OptPathsSemestersDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Semesters Directory", s) {
			c.Paths.SemestersDir = s
		}
	}
}

// OptPathsSpecialTitles sets the path to the special titles workbook.
func OptPathsSpecialTitles(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Special Titles", s) {
			c.Paths.SpecialTitles = s
		}
	}
}

// OptRunSemester sets the semester folder name, e.g. "Fall 2023".
// Runtime-only field - not in ToOptions().
func OptRunSemester(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Semester", s) {
			c.Run.Semester = s
		}
	}
}

// OptRunBookstoreFile sets the name of the bookstore workbook.
// The .xlsx extension is optional.
// Runtime-only field - not in ToOptions().
func OptRunBookstoreFile(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, ".xlsx")
	return func(c *Config) {
		if isValidString("Bookstore File", s) {
			c.Run.BookstoreFile = s
		}
	}
}

// OptRunDryRun prevents writing of order and pull lists.
// Runtime-only field - not in ToOptions().
func OptRunDryRun(b bool) Option {
	return func(c *Config) {
		c.Run.DryRun = b
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptJobsNumber sets the number of catalog requests allowed in flight.
// Default is 1.
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptHomeDir sets the home directory for config and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
