// Package catalog defines the library catalog lookup capability used
// during reconciliation. Implementations live in internal/iocatalog.
package catalog

import (
	"context"
	"strings"
)

// Catalog finds books by identifier and returns their holding records.
type Catalog interface {
	// Search looks up an identifier and returns the catalog key of the
	// top result. An empty key with nil error means the identifier is not
	// in the catalog. A non-nil error means the lookup itself failed.
	Search(ctx context.Context, isbn string) (string, error)

	// Detail returns a holding record of a catalog key. A nil record with
	// nil error means the catalog has no content for the key.
	Detail(ctx context.Context, key string) (*Record, error)
}

// Status of an identifier lookup.
type Status int

const (
	// NotFound means the catalog does not hold the identifier.
	NotFound Status = iota
	// Found means the catalog returned a key for the identifier.
	Found
	// Failed means the lookup did not complete. For reconciliation it
	// is equivalent to NotFound, but it is counted separately.
	Failed
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Found:
		return "found"
	case Failed:
		return "failed"
	default:
		return "not found"
	}
}

// Outcome is the result of resolving one identifier.
type Outcome struct {
	ISBN   string
	Key    string
	Status Status
	// Err keeps the cause of a failed lookup.
	Err error
}

// Resolve searches one identifier and converts the answer into an
// Outcome. It never returns an error, failures are kept in the Outcome.
func Resolve(ctx context.Context, c Catalog, isbn string) Outcome {
	res := Outcome{ISBN: isbn}
	key, err := c.Search(ctx, isbn)
	if err != nil {
		res.Status = Failed
		res.Err = err
		return res
	}

	key = strings.TrimSpace(key)
	if key == "" {
		res.Status = NotFound
		return res
	}

	res.Key = key
	res.Status = Found
	return res
}
