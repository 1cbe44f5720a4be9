package ioxlsx

import (
	"log/slog"

	"github.com/gnames/txlist/pkg/lists"
	"github.com/xuri/excelize/v2"
)

// Sheet names of output workbooks.
const (
	ReplacedSheet    = "Replaced Titles"
	ExcludedSheet    = "Excluded Titles"
	PrevOrderedSheet = "Previously Ordered Titles"
)

type colWidth struct {
	from, to string
	width    float64
}

type sheet struct {
	name    string
	headers []string
	rows    [][]string
	widths  []colWidth
}

// WriteOrderList saves the order list together with replaced, excluded
// and previously ordered titles.
func WriteOrderList(path string, t lists.Tables) error {
	orders := make([][]string, len(t.Orders))
	for i, v := range t.Orders {
		orders[i] = v.Values()
	}

	replaced := make([][]string, len(t.Replaced))
	for i, v := range t.Replaced {
		replaced[i] = []string{v.Source, v.Target}
	}

	sheets := []sheet{
		{
			name:    OrderSheet,
			headers: lists.OrderHeaders,
			rows:    orders,
			widths: []colWidth{
				{"A", "A", 5}, {"B", "B", 15}, {"C", "C", 30}, {"D", "D", 15},
				{"E", "E", 60}, {"F", "F", 15}, {"G", "G", 15},
			},
		},
		{
			name:    ReplacedSheet,
			headers: lists.ReplacedHeaders,
			rows:    replaced,
			widths:  []colWidth{{"A", "A", 25}, {"B", "B", 25}},
		},
		{
			name:    ExcludedSheet,
			headers: lists.ExcludedHeaders,
			rows:    column(t.Excluded),
			widths:  []colWidth{{"A", "A", 25}},
		},
		{
			name:    PrevOrderedSheet,
			headers: lists.PrevOrderedHeaders,
			rows:    column(t.PrevOrdered),
			widths:  []colWidth{{"A", "A", 30}},
		},
	}

	if err := write(path, sheets); err != nil {
		return err
	}
	slog.Info("Wrote order list", "path", path, "orders", len(orders))
	return nil
}

// WritePullList saves the pull list.
func WritePullList(path string, t lists.Tables) error {
	pull := make([][]string, len(t.Pull))
	for i, v := range t.Pull {
		pull[i] = v.Values()
	}

	sheets := []sheet{
		{
			name:    PullSheet,
			headers: lists.PullHeaders,
			rows:    pull,
			widths: []colWidth{
				{"A", "A", 12}, {"B", "B", 10}, {"C", "D", 45}, {"E", "E", 35},
				{"F", "F", 20}, {"G", "G", 10}, {"H", "H", 15}, {"I", "I", 15},
				{"J", "J", 10}, {"K", "K", 5}, {"L", "L", 15}, {"M", "M", 20},
			},
		},
	}

	if err := write(path, sheets); err != nil {
		return err
	}
	slog.Info("Wrote pull list", "path", path, "pulls", len(pull))
	return nil
}

func column(vals []string) [][]string {
	res := make([][]string, len(vals))
	for i, v := range vals {
		res[i] = []string{v}
	}
	return res
}

func write(path string, sheets []sheet) error {
	f := excelize.NewFile()
	defer f.Close()

	style, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return XLSXWriteError(path, err)
	}

	for i, v := range sheets {
		if i == 0 {
			err = f.SetSheetName(f.GetSheetName(0), v.name)
		} else {
			_, err = f.NewSheet(v.name)
		}
		if err != nil {
			return XLSXWriteError(path, err)
		}
		if err = writeSheet(f, v, style); err != nil {
			return XLSXWriteError(path, err)
		}
	}
	f.SetActiveSheet(0)

	if err = f.SaveAs(path); err != nil {
		return XLSXWriteError(path, err)
	}
	return nil
}

func writeSheet(f *excelize.File, s sheet, style int) error {
	for _, v := range s.widths {
		if err := f.SetColWidth(s.name, v.from, v.to, v.width); err != nil {
			return err
		}
	}

	rows := append([][]string{s.headers}, s.rows...)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		vals := make([]any, len(row))
		for j, v := range row {
			vals[j] = v
		}
		if err = f.SetSheetRow(s.name, cell, &vals); err != nil {
			return err
		}
	}

	last, err := excelize.CoordinatesToCellName(len(s.headers), len(rows))
	if err != nil {
		return err
	}
	return f.SetCellStyle(s.name, "A1", last, style)
}
