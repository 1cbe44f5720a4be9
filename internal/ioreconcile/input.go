package ioreconcile

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gnames/gn"
	"github.com/gnames/txlist/internal/iofs"
	"github.com/gnames/txlist/internal/ioxlsx"
	txlist "github.com/gnames/txlist/pkg"
	"github.com/gnames/txlist/pkg/config"
)

// LoadInput reads the bookstore list of a run, special titles and all
// order and pull lists found in the semester folder. Any unreadable
// workbook stops the run.
func LoadInput(cfg *config.Config) (txlist.Input, error) {
	var res txlist.Input
	if cfg.Run.Semester == "" {
		return res, InputError("semester",
			`Set it with --semester, for example --semester "Fall 2023".`)
	}
	if cfg.Run.BookstoreFile == "" {
		return res, InputError("bookstore list",
			"Set it with --bookstore, 'txlist files' shows available lists.")
	}

	dir := cfg.SemesterDir()
	files, err := iofs.FindFiles(dir, cfg.Run.Semester)
	if err != nil {
		return res, err
	}

	res.Adoptions, err = ioxlsx.ReadAdoptions(cfg.BookstorePath())
	if err != nil {
		return res, err
	}

	res.Replace, res.Exclude, err = ioxlsx.ReadRules(cfg.Paths.SpecialTitles)
	if err != nil {
		return res, err
	}

	for _, v := range files.OrderLists {
		path := filepath.Join(dir, v)
		ids, err := ioxlsx.ReadColumn(path, ioxlsx.OrderSheet, ioxlsx.OrderColumn)
		if err != nil {
			return res, err
		}
		slog.Info("Read earlier order list", "path", path, "isbns", len(ids))
		res.PrevOrdered = append(res.PrevOrdered, ids...)
	}

	for _, v := range files.PullLists {
		path := filepath.Join(dir, v)
		keys, err := ioxlsx.ReadColumn(path, ioxlsx.PullSheet, ioxlsx.PullKeyColumn)
		if err != nil {
			return res, err
		}
		slog.Info("Read earlier pull list", "path", path, "keys", len(keys))
		res.PrevPulled = append(res.PrevPulled, keys...)
	}

	return res, nil
}

// OutputPaths returns paths of the order and pull lists of a run. Their
// names carry the date of the bookstore list, or today's date if the
// bookstore list name has none.
func OutputPaths(cfg *config.Config) (string, string) {
	date, ok := iofs.FileDate(cfg.Run.BookstoreFile)
	if !ok {
		date = time.Now().Format("1-2-2006")
	}
	dir := cfg.SemesterDir()
	return filepath.Join(dir, iofs.OrderListName(date)),
		filepath.Join(dir, iofs.PullListName(date))
}

// ExistingOutputs returns output paths of a run that already exist in
// the semester folder. Such files were read as earlier lists and are
// replaced by Save.
func ExistingOutputs(cfg *config.Config) []string {
	orderPath, pullPath := OutputPaths(cfg)
	var res []string
	for _, v := range []string{orderPath, pullPath} {
		if _, err := os.Stat(v); err == nil {
			res = append(res, v)
		}
	}
	return res
}

// Save writes the order and pull lists into the semester folder and
// returns their paths.
func Save(cfg *config.Config, res *txlist.Result) (string, string, error) {
	orderPath, pullPath := OutputPaths(cfg)
	for _, v := range ExistingOutputs(cfg) {
		slog.Warn("Overwriting list of an earlier run", "path", v)
		gn.Warn("<warn>Overwriting %s</warn>, "+
			"its titles were treated as ordered or pulled earlier", v)
	}
	if err := ioxlsx.WriteOrderList(orderPath, res.Tables); err != nil {
		return "", "", err
	}
	if err := ioxlsx.WritePullList(pullPath, res.Tables); err != nil {
		return "", "", err
	}
	return orderPath, pullPath, nil
}
