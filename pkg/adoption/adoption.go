// Package adoption describes rows of a bookstore textbook adoption list
// and aggregates course sections that share a book.
package adoption

import (
	"strings"

	"github.com/gnames/gnlib"
)

// Row is one course section adopting one book.
type Row struct {
	Term    string
	Dept    string
	Course  string
	Section string
	// ISBN is the identifier as given by the bookstore. After
	// normalization it is canonical, or an empty string if the bookstore
	// value was invalid.
	ISBN    string
	Author  string
	Binding string
	Title   string
	Edition string
}

// CourseInfo returns "Dept Crs-Sect" display form of the row.
func (r Row) CourseInfo() string {
	return r.Dept + " " + r.Course + "-" + r.Section
}

// Clean trims whitespace and fixes broken UTF-8 in text fields.
func (r Row) Clean() Row {
	fix := func(s string) string {
		return strings.TrimSpace(gnlib.FixUtf8(s))
	}
	r.Term = fix(r.Term)
	r.Dept = fix(r.Dept)
	r.Course = fix(r.Course)
	r.Section = fix(r.Section)
	r.Author = fix(r.Author)
	r.Binding = fix(r.Binding)
	r.Title = fix(r.Title)
	r.Edition = fix(r.Edition)
	return r
}

// Index provides lookups of adoption rows by identifier.
type Index struct {
	rows []Row
	byID map[string][]int
}

// NewIndex builds identifier to rows index. Rows without identifier
// are kept, but cannot be found.
func NewIndex(rows []Row) *Index {
	res := &Index{
		rows: rows,
		byID: make(map[string][]int),
	}
	for i, v := range rows {
		if v.ISBN == "" {
			continue
		}
		res.byID[v.ISBN] = append(res.byID[v.ISBN], i)
	}
	return res
}

// Len returns the number of all rows.
func (idx *Index) Len() int {
	return len(idx.rows)
}

// Rows returns rows of an identifier in source order.
func (idx *Index) Rows(id string) []Row {
	pos := idx.byID[id]
	if len(pos) == 0 {
		return nil
	}
	res := make([]Row, len(pos))
	for i, p := range pos {
		res[i] = idx.rows[p]
	}
	return res
}

// First returns the first row of an identifier.
func (idx *Index) First(id string) (Row, bool) {
	pos := idx.byID[id]
	if len(pos) == 0 {
		return Row{}, false
	}
	return idx.rows[pos[0]], true
}

// Has checks if the identifier is present in the rows.
func (idx *Index) Has(id string) bool {
	return len(idx.byID[id]) > 0
}

// Courses joins course info of all rows of given identifiers with a new
// line. Rows keep source order within an identifier, identifiers keep
// argument order. Returns an empty string if nothing matches.
func (idx *Index) Courses(ids ...string) string {
	var res []string
	for _, id := range ids {
		for _, p := range idx.byID[id] {
			res = append(res, idx.rows[p].CourseInfo())
		}
	}
	return strings.Join(res, "\n")
}
