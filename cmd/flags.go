package cmd

import (
	"github.com/gnames/txlist/pkg/config"
	"github.com/spf13/cobra"
)

// runFlags keeps values of flags that change the run configuration.
type runFlags struct {
	semester      string
	bookstore     string
	specialTitles string
	jobs          int
	dryRun        bool
}

func semesterFlag(cmd *cobra.Command, f *runFlags) {
	cmd.Flags().StringVarP(
		&f.semester, "semester", "s", "",
		`semester folder, for example "Fall 2023"`,
	)
}

func addRunFlags(cmd *cobra.Command, f *runFlags) {
	semesterFlag(cmd, f)
	cmd.Flags().StringVarP(
		&f.bookstore, "bookstore", "b", "",
		"bookstore list name inside the semester folder",
	)
	cmd.Flags().StringVar(
		&f.specialTitles, "special-titles", "",
		"path to the special titles workbook",
	)
	cmd.Flags().IntVarP(
		&f.jobs, "jobs", "j", 0,
		"number of concurrent catalog requests",
	)
	cmd.Flags().BoolVar(
		&f.dryRun, "dry-run", false,
		"reconcile without writing order and pull lists",
	)
}

// options converts explicitly set flags into config options. Flags that
// were not given on the command line keep values from config.yaml and
// environment.
func (f *runFlags) options(cmd *cobra.Command) []config.Option {
	var res []config.Option
	flags := cmd.Flags()

	if flags.Changed("semester") {
		res = append(res, config.OptRunSemester(f.semester))
	}
	if flags.Changed("bookstore") {
		res = append(res, config.OptRunBookstoreFile(f.bookstore))
	}
	if flags.Changed("special-titles") {
		res = append(res, config.OptPathsSpecialTitles(f.specialTitles))
	}
	if flags.Changed("jobs") {
		res = append(res, config.OptJobsNumber(f.jobs))
	}
	if flags.Changed("dry-run") {
		res = append(res, config.OptRunDryRun(f.dryRun))
	}
	return res
}
