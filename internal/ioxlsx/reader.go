// Package ioxlsx reads bookstore adoption lists, special title rules and
// earlier order and pull lists from Excel workbooks, and writes new order
// and pull lists.
package ioxlsx

import (
	"log/slog"
	"strings"

	"github.com/gnames/txlist/pkg/adoption"
	"github.com/gnames/txlist/pkg/override"
	"github.com/xuri/excelize/v2"
)

// Sheet and column names of input workbooks.
const (
	AdoptionSheet = "formatted for DB processing"

	ReplaceSheet  = "replace"
	ExcludeSheet  = "exclude"
	SourceColumn  = "Bookstore ISBN"
	TargetColumn  = "Catalog ISBN"
	OrderSheet    = "Order List"
	OrderColumn   = "ISBN-13"
	PullSheet     = "Pull List"
	PullKeyColumn = "Catkey"
)

var adoptionColumns = []string{
	"Term", "Dept", "Crs", "Sect", "ISBN-13", "Author", "Binding", "Title",
	"Edition",
}

// table is a sheet with columns addressed by header names.
type table struct {
	path, sheet string
	cols        map[string]int
	rows        [][]string
}

func readTable(path, sheet string) (*table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, XLSXOpenError(path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, XLSXSheetError(path, sheet, err)
	}

	res := &table{path: path, sheet: sheet, cols: make(map[string]int)}
	if len(rows) == 0 {
		return res, nil
	}

	for i, v := range rows[0] {
		v = strings.TrimSpace(v)
		if _, ok := res.cols[v]; ok || v == "" {
			continue
		}
		res.cols[v] = i
	}

	for _, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		res.rows = append(res.rows, row)
	}
	return res, nil
}

func (t *table) require(cols ...string) error {
	for _, v := range cols {
		if _, ok := t.cols[v]; !ok {
			return XLSXColumnError(t.path, t.sheet, v)
		}
	}
	return nil
}

// value returns a trimmed cell of a row by column name. Short rows give
// empty strings.
func (t *table) value(row []string, col string) string {
	i, ok := t.cols[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// ReadAdoptions reads adoption rows of a bookstore list. Identifiers are
// returned as they are in the workbook.
func ReadAdoptions(path string) ([]adoption.Row, error) {
	t, err := readTable(path, AdoptionSheet)
	if err != nil {
		return nil, err
	}
	if err = t.require(adoptionColumns...); err != nil {
		return nil, err
	}

	res := make([]adoption.Row, 0, len(t.rows))
	for _, v := range t.rows {
		row := adoption.Row{
			Term:    t.value(v, "Term"),
			Dept:    t.value(v, "Dept"),
			Course:  t.value(v, "Crs"),
			Section: t.value(v, "Sect"),
			ISBN:    t.value(v, "ISBN-13"),
			Author:  t.value(v, "Author"),
			Binding: t.value(v, "Binding"),
			Title:   t.value(v, "Title"),
			Edition: t.value(v, "Edition"),
		}
		res = append(res, row.Clean())
	}
	slog.Info("Read adoption list", "path", path, "rows", len(res))
	return res, nil
}

// ReadRules reads replacement and exclusion rules of special titles.
func ReadRules(path string) ([]override.ReplaceRule, []string, error) {
	rt, err := readTable(path, ReplaceSheet)
	if err != nil {
		return nil, nil, err
	}
	if err = rt.require(SourceColumn, TargetColumn); err != nil {
		return nil, nil, err
	}

	replace := make([]override.ReplaceRule, 0, len(rt.rows))
	for _, v := range rt.rows {
		replace = append(replace, override.ReplaceRule{
			Source: rt.value(v, SourceColumn),
			Target: rt.value(v, TargetColumn),
		})
	}

	exclude, err := ReadColumn(path, ExcludeSheet, SourceColumn)
	if err != nil {
		return nil, nil, err
	}

	slog.Info("Read special titles",
		"path", path, "replace", len(replace), "exclude", len(exclude),
	)
	return replace, exclude, nil
}

// ReadColumn returns non-empty values of a column.
func ReadColumn(path, sheet, column string) ([]string, error) {
	t, err := readTable(path, sheet)
	if err != nil {
		return nil, err
	}
	if err = t.require(column); err != nil {
		return nil, err
	}

	var res []string
	for _, v := range t.rows {
		if s := t.value(v, column); s != "" {
			res = append(res, s)
		}
	}
	return res, nil
}
