/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/txlist/internal/iofs"
	"github.com/gnames/txlist/internal/iologger"
	app "github.com/gnames/txlist/pkg"
	"github.com/gnames/txlist/pkg/config"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// getRootCmd returns the base command with all subcommands attached.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "txlist",
		Short:   "TXlist creates textbook order and pull lists",
		Long: `TXlist reconciles a bookstore textbook adoption list with the library
catalog. Titles the library does not hold go to the order list, titles it
holds go to the pull list for course reserves.

Main features:
  - Identifier normalization (ISBN-10 and ISBN-13)
  - Special titles: excluded and replaced identifiers
  - Catalog lookup of every new identifier
  - Skipping of titles ordered or pulled earlier in the semester

Configuration precedence (highest to lowest):
  1. CLI flags (--semester, --jobs, etc.)
  2. Environment variables (TXLIST_*), also read from a .env file
  3. Config file (~/.config/txlist/config.yaml)
  4. Built-in defaults

Examples:
  txlist files -s "Fall 2023"
  txlist run -s "Fall 2023" -b "FallBookstoreList 9-8-2023"
  txlist lookup 9780131103627`,
		PersistentPreRunE: bootstrap,
		RunE:              runRoot,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "txlist version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for txlist")

	rootCmd.AddCommand(
		getRunCmd(),
		getFilesCmd(),
		getLookupCmd(),
		getConfigCmd(),
	)

	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog, false); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// .env is optional
	if err = godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("Cannot load .env file", "error", err)
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Reconfigure logging with user's settings, every invocation
	// gets its own run id.
	if err = reconfigureLogging(cfg, uuid.NewString()); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"command", cmd.Name(),
	)

	return nil
}

// reconfigureLogging reinitializes the logger with the loaded
// configuration. Records from bootstrap stay in the log file.
func reconfigureLogging(cfg *config.Config, runID string) error {
	logDir := config.LogDir(cfg.HomeDir)
	return iologger.Init(logDir, cfg.Log, true, slog.String("run_id", runID))
}

func runRoot(cmd *cobra.Command, args []string) error {
	return cmd.Help()
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	err := getRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions() - i.e., persistent
	// configuration that can be stored in config.yaml.
	v.SetEnvPrefix("TXLIST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Catalog configuration
	v.BindEnv("catalog.base_url", "TXLIST_CATALOG_BASE_URL")
	v.BindEnv("catalog.key_prefix", "TXLIST_CATALOG_KEY_PREFIX")
	v.BindEnv("catalog.timeout", "TXLIST_CATALOG_TIMEOUT")
	v.BindEnv("catalog.user_agent", "TXLIST_CATALOG_USER_AGENT")

	// Paths
	v.BindEnv("paths.semesters_dir", "TXLIST_PATHS_SEMESTERS_DIR")
	v.BindEnv("paths.special_titles", "TXLIST_PATHS_SPECIAL_TITLES")

	// Log configuration
	v.BindEnv("log.level", "TXLIST_LOG_LEVEL")
	v.BindEnv("log.format", "TXLIST_LOG_FORMAT")
	v.BindEnv("log.destination", "TXLIST_LOG_DESTINATION")

	// General configuration
	v.BindEnv("jobs_number", "TXLIST_JOBS_NUMBER")

	v.AutomaticEnv()
}
