package txlist

import (
	"context"
	"time"

	"github.com/gnames/txlist/pkg/adoption"
	"github.com/gnames/txlist/pkg/lists"
	"github.com/gnames/txlist/pkg/override"
)

// Reconciler compares a bookstore adoption list with the library catalog
// and decides which books to order and which books to pull for course
// reserves. Config and catalog are provided during construction.
type Reconciler interface {
	// Reconcile runs the whole pipeline on the input. Lookup failures of
	// single identifiers are recovered and counted. The error is returned
	// only if the run cannot finish, for example when the context is
	// cancelled. Nothing is written, results are returned to the caller.
	Reconcile(ctx context.Context, in Input) (*Result, error)
}

// Input is the data a reconciliation run needs.
type Input struct {
	// Adoptions are rows of the bookstore list with identifiers as given
	// by the bookstore.
	Adoptions []adoption.Row

	// Replace and Exclude are special titles rules.
	Replace []override.ReplaceRule
	Exclude []string

	// PrevOrdered are identifiers from order lists of earlier runs.
	PrevOrdered []string

	// PrevPulled are catalog keys from pull lists of earlier runs.
	PrevPulled []string
}

// Result contains output tables and statistics of a run.
type Result struct {
	Tables lists.Tables
	Stats  Stats
}

// Stats accumulates counts of a reconciliation run.
type Stats struct {
	// Rows is the number of adoption rows.
	Rows int
	// Invalid is the number of rows with unusable identifiers.
	Invalid int
	// Distinct is the number of distinct valid identifiers.
	Distinct int
	// PrevOrdered is the number of identifiers skipped because they
	// were ordered before.
	PrevOrdered int

	// Excluded and Replaced count identifiers affected by special titles.
	Excluded int
	Replaced int
	// InvalidRules counts rules with unusable identifiers,
	// DuplicateRules counts ignored repeated replacement sources.
	InvalidRules   int
	DuplicateRules int

	// Processed is the number of catalog searches.
	Processed int
	Found     int
	NotFound  int
	// LookupFailures are searches that did not complete. Their identifiers
	// go to the order list, as if not found.
	LookupFailures int
	// ReplacedNotFound are replacement identifiers the catalog does not
	// have. They are not ordered.
	ReplacedNotFound int

	// Keys is the number of distinct catalog keys found.
	Keys int
	// PrevPulled is the number of keys skipped because they were pulled
	// before.
	PrevPulled      int
	Details         int
	DetailNoContent int
	DetailFailures  int

	Orders int
	Pulls  int

	Duration time.Duration
}
