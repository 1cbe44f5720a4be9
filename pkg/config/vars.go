package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "txlist"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/txlist by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/txlist/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/txlist/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// SemesterDir returns the folder of a semester, e.g.
// {semesters_dir}/Fall 2023.
func (c *Config) SemesterDir() string {
	return filepath.Join(c.Paths.SemestersDir, c.Run.Semester)
}

// BookstorePath returns the full path to the bookstore workbook of the
// current run.
func (c *Config) BookstorePath() string {
	return filepath.Join(c.SemesterDir(), c.Run.BookstoreFile+".xlsx")
}
