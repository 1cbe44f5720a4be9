package iofs

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
)

const (
	orderListPrefix = "order_list"
	pullListPrefix  = "pull_list"
)

// SemesterFiles are workbooks found in a semester folder.
type SemesterFiles struct {
	// Dir is the semester folder.
	Dir string
	// Bookstore are bookstore adoption lists ({Season}Book*).
	Bookstore []string
	// OrderLists are order lists of earlier runs.
	OrderLists []string
	// PullLists are pull lists of earlier runs.
	PullLists []string
}

// Season returns the first word of a semester ("Fall" for "Fall 2023").
func Season(semester string) string {
	fields := strings.FieldsFunc(semester, func(r rune) bool {
		return !(r == '-' || r == '_' ||
			('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') ||
			('0' <= r && r <= '9'))
	})
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// FindFiles lists workbooks of a semester folder. Names are sorted,
// Office lock files are ignored.
func FindFiles(dir, semester string) (SemesterFiles, error) {
	res := SemesterFiles{Dir: dir}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return res, ReadDirError(dir, err)
	}

	bookPrefix := Season(semester) + "Book"
	for _, v := range entries {
		name := v.Name()
		if v.IsDir() || strings.HasPrefix(name, "~$") {
			continue
		}
		if !strings.EqualFold(filepath.Ext(name), ".xlsx") {
			continue
		}

		switch {
		case strings.HasPrefix(name, orderListPrefix):
			res.OrderLists = append(res.OrderLists, name)
		case strings.HasPrefix(name, pullListPrefix):
			res.PullLists = append(res.PullLists, name)
		case bookPrefix != "Book" && strings.HasPrefix(name, bookPrefix):
			res.Bookstore = append(res.Bookstore, name)
		}
	}

	slices.Sort(res.Bookstore)
	slices.Sort(res.OrderLists)
	slices.Sort(res.PullLists)
	return res, nil
}

// FileDate returns the date part of a bookstore list name: the text after
// the first space with all spaces removed ("FallBookstoreList 9-8-2023"
// gives "9-8-2023"). The second value is false if there is no date.
func FileDate(name string) (string, bool) {
	name = filepath.Base(name)
	if strings.EqualFold(filepath.Ext(name), ".xlsx") {
		name = name[:len(name)-len(".xlsx")]
	}
	_, date, ok := strings.Cut(name, " ")
	if !ok {
		return "", false
	}
	date = strings.ReplaceAll(date, " ", "")
	return date, date != ""
}

// OrderListName returns the file name of an order list for a date.
func OrderListName(date string) string {
	return orderListPrefix + " " + date + ".xlsx"
}

// PullListName returns the file name of a pull list for a date.
func PullListName(date string) string {
	return pullListPrefix + " " + date + ".xlsx"
}
