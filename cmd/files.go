package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/txlist/internal/iofs"
	"github.com/gnames/txlist/internal/ioreconcile"
	"github.com/spf13/cobra"
)

func getFilesCmd() *cobra.Command {
	var f runFlags

	filesCmd := &cobra.Command{
		Use:   "files",
		Short: "List bookstore, order and pull lists of a semester",
		Long: `Show workbooks found in a semester folder.

Bookstore lists are shown without the .xlsx extension, so a name can be
given to 'txlist run --bookstore' as is.

Examples:
  txlist files -s "Fall 2023"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runFiles(cmd, &f)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	semesterFlag(filesCmd, &f)

	return filesCmd
}

func runFiles(cmd *cobra.Command, f *runFlags) error {
	if runOpts := f.options(cmd); len(runOpts) > 0 {
		cfg.Update(runOpts)
	}
	if cfg.Run.Semester == "" {
		return ioreconcile.InputError("semester",
			`Set it with --semester, for example --semester "Fall 2023".`)
	}

	files, err := iofs.FindFiles(cfg.SemesterDir(), cfg.Run.Semester)
	if err != nil {
		return err
	}
	printFiles(cmd.OutOrStdout(), files)
	return nil
}

func printFiles(w io.Writer, files iofs.SemesterFiles) {
	fmt.Fprintf(w, "Semester folder: %s\n", files.Dir)

	books := make([]string, len(files.Bookstore))
	for i, v := range files.Bookstore {
		books[i] = strings.TrimSuffix(v, ".xlsx")
	}

	groups := []struct {
		title string
		names []string
	}{
		{"Bookstore lists", books},
		{"Order lists", files.OrderLists},
		{"Pull lists", files.PullLists},
	}
	for _, g := range groups {
		fmt.Fprintf(w, "\n%s:\n", g.title)
		if len(g.names) == 0 {
			fmt.Fprintln(w, "  none")
			continue
		}
		for _, v := range g.names {
			fmt.Fprintf(w, "  %s\n", v)
		}
	}
}
