// Package lists assembles order and pull lists out of reconciliation
// results and removes items that were handled in earlier runs.
package lists

import (
	"strings"

	"github.com/gnames/txlist/pkg/adoption"
	"github.com/gnames/txlist/pkg/catalog"
	"github.com/gnames/txlist/pkg/override"
)

// Headers of the output tables.
var (
	OrderHeaders = []string{
		"Term", "Dept Crs-Sect", "Author", "Binding", "Title", "ISBN-13",
		"Edition",
	}
	PullHeaders = []string{
		"Dept Crs-Sect", "Catkey", "Title", "Author", "Item Location",
		"Call Number", "Item Type", "Bookstore ISBN", "All ISBNs", "Edition",
		"Year", "Barcodes", "Access Restrictions",
	}
	ReplacedHeaders    = []string{"Bookstore ISBNs to Replace", "Replacement ISBNs"}
	ExcludedHeaders    = []string{"Bookstore ISBNs to Exclude"}
	PrevOrderedHeaders = []string{"Previously Ordered ISBNs"}
)

// OrderRecord is a book to acquire.
type OrderRecord struct {
	Term       string
	CourseInfo string
	Author     string
	Binding    string
	Title      string
	ISBN       string
	Edition    string
}

// Values returns fields in the order of OrderHeaders.
func (o OrderRecord) Values() []string {
	return []string{
		o.Term, o.CourseInfo, o.Author, o.Binding, o.Title, o.ISBN, o.Edition,
	}
}

// PullRecord is a held book to move to course reserves.
type PullRecord struct {
	CourseInfo         string
	Key                string
	Title              string
	Author             string
	Location           string
	CallNumber         string
	ItemType           string
	BookstoreISBN      string
	AllISBNs           string
	Edition            string
	Year               string
	Barcodes           string
	AccessRestrictions string
}

// Values returns fields in the order of PullHeaders.
func (p PullRecord) Values() []string {
	return []string{
		p.CourseInfo, p.Key, p.Title, p.Author, p.Location, p.CallNumber,
		p.ItemType, p.BookstoreISBN, p.AllISBNs, p.Edition, p.Year,
		p.Barcodes, p.AccessRestrictions,
	}
}

// Tables keeps all output collections of a run.
type Tables struct {
	Orders      []OrderRecord
	Replaced    []override.Replacement
	Excluded    []string
	PrevOrdered []string
	Pull        []PullRecord
}

// Subtract removes from ids everything that appears in any of prior
// collections. Both results keep the order of ids.
func Subtract(ids []string, prior ...[]string) (kept, removed []string) {
	seen := make(map[string]struct{})
	for _, p := range prior {
		for _, v := range p {
			v = strings.TrimSpace(v)
			if v == "" {
				continue
			}
			seen[v] = struct{}{}
		}
	}

	for _, v := range ids {
		if _, ok := seen[v]; ok {
			removed = append(removed, v)
			continue
		}
		kept = append(kept, v)
	}
	return kept, removed
}

// BuildOrders creates one order record per distinct identifier. Descriptive
// fields come from the first adoption row of the identifier, course info
// aggregates all its rows. Identifiers without rows are skipped.
func BuildOrders(idx *adoption.Index, ids []string) []OrderRecord {
	res := make([]OrderRecord, 0, len(ids))
	seen := make(map[string]struct{})
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		row, ok := idx.First(id)
		if !ok {
			continue
		}
		res = append(res, OrderRecord{
			Term:       row.Term,
			CourseInfo: idx.Courses(id),
			Author:     row.Author,
			Binding:    row.Binding,
			Title:      row.Title,
			ISBN:       id,
			Edition:    row.Edition,
		})
	}
	return res
}

// BuildPull creates a pull record of a catalog key. Origins are the
// adoption identifiers that led to the key, course info aggregates their
// rows. A nil detail record leaves descriptive fields blank.
func BuildPull(
	idx *adoption.Index,
	key string,
	origins []string,
	rec *catalog.Record,
) PullRecord {
	res := PullRecord{
		CourseInfo:    idx.Courses(origins...),
		Key:           key,
		BookstoreISBN: strings.Join(origins, "\n"),
	}
	if rec == nil {
		return res
	}

	res.Title = rec.Title.String()
	res.Author = rec.Responsibility.String()
	res.Location = rec.Locations()
	res.CallNumber = rec.CallNumber.String()
	res.ItemType = rec.ItemType()
	res.AllISBNs = rec.AllISBNs()
	res.Edition = rec.Edition.String()
	res.Year = rec.PublicationYear.String()
	res.Barcodes = rec.Barcodes()
	res.AccessRestrictions = rec.AccessRestrictions.String()
	return res
}
