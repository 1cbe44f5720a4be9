// Package iotesting provides shared test utilities for packages that read
// and write workbooks. This is an internal package for test
// infrastructure only.
package iotesting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/txlist/internal/iofs"
	"github.com/xuri/excelize/v2"
)

// Sheet is a worksheet of a test workbook. The first row usually is
// the header.
type Sheet struct {
	Name string
	Rows [][]any
}

// WriteWorkbook saves sheets into a new workbook at path. Sheets keep
// the given order, the first one replaces the default 'Sheet1'.
//
// Usage:
//
//	iotesting.WriteWorkbook(t, path, iotesting.Sheet{
//	    Name: "Order List",
//	    Rows: [][]any{{"ISBN-13"}, {"9780000000003"}},
//	})
func WriteWorkbook(t *testing.T, path string, sheets ...Sheet) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, sh := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sh.Name); err != nil {
				t.Fatalf("Failed to rename sheet: %v", err)
			}
		} else if _, err := f.NewSheet(sh.Name); err != nil {
			t.Fatalf("Failed to add sheet %s: %v", sh.Name, err)
		}

		for j, row := range sh.Rows {
			cell, err := excelize.CoordinatesToCellName(1, j+1)
			if err != nil {
				t.Fatalf("Failed to get cell name: %v", err)
			}
			if err = f.SetSheetRow(sh.Name, cell, &row); err != nil {
				t.Fatalf("Failed to write row %d of %s: %v", j+1, sh.Name, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save workbook %s: %v", path, err)
	}
}

// TempWorkbook is WriteWorkbook into a temporary directory that is
// removed when the test finishes. Returns the path to the workbook.
func TempWorkbook(t *testing.T, name string, sheets ...Sheet) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	WriteWorkbook(t, path, sheets...)
	return path
}

// SetupSemesterDir creates a semester folder inside a temporary
// semesters directory. Returns the semesters directory and the semester
// folder.
func SetupSemesterDir(t *testing.T, semester string) (string, string) {
	t.Helper()
	root := filepath.Join(t.TempDir(), "semesters")
	dir := filepath.Join(root, semester)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create semester dir: %v", err)
	}
	return root, dir
}

// SetupHome creates a temporary home directory with config and log
// directories and the default config.yaml in place. It prevents tests
// from touching ~/.config/txlist.
func SetupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	if err := iofs.EnsureDirs(home); err != nil {
		t.Fatalf("Failed to create home dirs: %v", err)
	}
	if err := iofs.EnsureConfigFile(home); err != nil {
		t.Fatalf("Failed to write config.yaml: %v", err)
	}
	return home
}
