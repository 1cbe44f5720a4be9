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
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gnames/gn"
	"github.com/gnames/txlist/internal/iocatalog"
	"github.com/gnames/txlist/internal/ioreconcile"
	"github.com/spf13/cobra"
)

// getRunCmd returns the run command.
func getRunCmd() *cobra.Command {
	var f runFlags

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Create order and pull lists from a bookstore list",
		Long: `Reconcile a bookstore adoption list with the library catalog.

This command:
  1. Reads the bookstore list from the semester folder
  2. Normalizes identifiers, invalid ones are dropped
  3. Skips identifiers from earlier order lists of the semester
  4. Applies special titles (exclude and replace sheets)
  5. Searches the catalog for every remaining identifier
  6. Skips catalog keys from earlier pull lists of the semester
  7. Fetches item details of new catalog keys
  8. Writes 'order_list {date}.xlsx' and 'pull_list {date}.xlsx'
     into the semester folder

Semester folders live in paths.semesters_dir of the config file.
Interrupting the run (Ctrl-C) writes no lists.

Examples:
  txlist run -s "Fall 2023" -b "FallBookstoreList 9-8-2023"

  # Check results without writing lists
  txlist run -s "Fall 2023" -b "FallBookstoreList 9-8-2023" --dry-run

  # Two catalog requests at a time
  txlist run -s "Fall 2023" -b "FallBookstoreList 9-8-2023" -j 2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runReconcile(cmd, &f)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	addRunFlags(runCmd, &f)

	return runCmd
}

func runReconcile(cmd *cobra.Command, f *runFlags) error {
	if runOpts := f.options(cmd); len(runOpts) > 0 {
		cfg.Update(runOpts)
	}

	in, err := ioreconcile.LoadInput(cfg)
	if err != nil {
		return err
	}

	gn.Info("Reconciling <em>%s</em> for %s",
		cfg.Run.BookstoreFile, cfg.Run.Semester)

	ctx, stop := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	rec := ioreconcile.New(cfg, iocatalog.New(cfg))
	res, err := rec.Reconcile(ctx, in)
	if err != nil {
		return err
	}

	if cfg.Run.DryRun {
		gn.Info("Dry run, <em>no lists were written</em>")
		return nil
	}

	orderPath, pullPath, err := ioreconcile.Save(cfg, res)
	if err != nil {
		return err
	}
	slog.Info("Lists written", "order_list", orderPath, "pull_list", pullPath)
	gn.Info("Order list: <em>%s</em>\nPull list:  <em>%s</em>",
		orderPath, pullPath)

	return nil
}
