// Package ioreconcile implements the Reconciler interface. It walks the
// adoption list through identifier normalization, special titles rules,
// catalog searches and item detail requests, and assembles order and pull
// lists. This is an impure I/O package: catalog calls go over the network
// and input workbooks are read from the semester folder.
package ioreconcile

import (
	"context"
	"log/slog"
	"time"

	txlist "github.com/gnames/txlist/pkg"
	"github.com/gnames/txlist/pkg/adoption"
	"github.com/gnames/txlist/pkg/catalog"
	"github.com/gnames/txlist/pkg/config"
	"github.com/gnames/txlist/pkg/isbn"
	"github.com/gnames/txlist/pkg/lists"
	"github.com/gnames/txlist/pkg/override"
)

// reconciler implements the Reconciler interface.
type reconciler struct {
	cfg      *config.Config
	cat      catalog.Catalog
	progress bool
}

// New creates a new Reconciler.
func New(cfg *config.Config, cat catalog.Catalog) txlist.Reconciler {
	return &reconciler{cfg: cfg, cat: cat, progress: true}
}

// NewQuiet creates a Reconciler that does not draw progress bars.
func NewQuiet(cfg *config.Config, cat catalog.Catalog) txlist.Reconciler {
	return &reconciler{cfg: cfg, cat: cat}
}

// Reconcile runs the pipeline: normalize and dedupe identifiers, drop
// previously ordered ones, apply special titles, search the catalog, drop
// previously pulled keys, fetch item details and assemble the lists.
func (r *reconciler) Reconcile(
	ctx context.Context,
	in txlist.Input,
) (*txlist.Result, error) {
	startTime := time.Now()
	var st txlist.Stats

	rows, working := r.normalize(in.Adoptions, &st)

	prevOrdered, badPrev := isbn.NormalizeAll(in.PrevOrdered)
	if badPrev > 0 {
		slog.Warn("Unusable identifiers in earlier order lists",
			"count", badPrev)
	}
	working, skipped := lists.Subtract(working, prevOrdered)
	st.PrevOrdered = len(skipped)

	// rows of previously ordered titles neither go to the order list nor
	// add courses to pull records, even if they return as a replacement
	idx := adoption.NewIndex(withoutIDs(rows, skipped))

	part := r.applyRules(in, working, &st)

	slog.Info("Searching catalog", "identifiers", len(part.Remaining))
	outcomes, err := r.resolveAll(ctx, part.Remaining)
	if err != nil {
		return nil, err
	}
	notFound, keys, origins := r.classify(idx, part, outcomes, &st)

	keys, pulled := lists.Subtract(keys, in.PrevPulled)
	st.PrevPulled = len(pulled)

	slog.Info("Fetching item details", "keys", len(keys))
	details, err := r.fetchAll(ctx, keys, &st)
	if err != nil {
		return nil, err
	}

	res := &txlist.Result{
		Tables: lists.Tables{
			Orders:      lists.BuildOrders(idx, notFound),
			Replaced:    part.Replaced,
			Excluded:    part.Excluded,
			PrevOrdered: prevOrdered,
		},
	}
	res.Tables.Pull = make([]lists.PullRecord, len(keys))
	for i, key := range keys {
		res.Tables.Pull[i] = lists.BuildPull(idx, key, origins[key], details[i])
	}

	st.Orders = len(res.Tables.Orders)
	st.Pulls = len(res.Tables.Pull)
	st.Duration = time.Since(startTime)
	res.Stats = st

	r.summary(st)
	return res, nil
}

// normalize canonicalizes identifiers of adoption rows and returns the
// rows together with distinct valid identifiers in row order.
func (r *reconciler) normalize(
	rows []adoption.Row,
	st *txlist.Stats,
) ([]adoption.Row, []string) {
	norm := make([]adoption.Row, len(rows))
	seen := make(map[string]struct{})
	var working []string

	for i, v := range rows {
		id, err := isbn.Normalize(v.ISBN)
		if err != nil {
			slog.Debug("Invalid identifier",
				"isbn", v.ISBN, "course", v.CourseInfo(), "error", err)
			st.Invalid++
			id = ""
		}
		v.ISBN = id
		norm[i] = v
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		working = append(working, id)
	}

	st.Rows = len(rows)
	st.Distinct = len(working)
	return norm, working
}

// withoutIDs drops rows with the given identifiers.
func withoutIDs(rows []adoption.Row, ids []string) []adoption.Row {
	if len(ids) == 0 {
		return rows
	}
	skip := make(map[string]struct{}, len(ids))
	for _, v := range ids {
		skip[v] = struct{}{}
	}
	res := make([]adoption.Row, 0, len(rows))
	for _, v := range rows {
		if _, ok := skip[v.ISBN]; ok {
			continue
		}
		res = append(res, v)
	}
	return res
}

func (r *reconciler) applyRules(
	in txlist.Input,
	working []string,
	st *txlist.Stats,
) override.Partition {
	rules := override.NewRules(in.Replace, in.Exclude)
	st.InvalidRules = rules.Invalid
	st.DuplicateRules = len(rules.Duplicates)
	for _, v := range rules.Duplicates {
		slog.Warn("Repeated replacement rule is ignored",
			"source", v.Source, "target", v.Target)
	}

	part := rules.Resolve(working)
	for _, v := range part.Cyclic {
		slog.Warn("Replacement rules form a loop, identifier is not replaced",
			"isbn", v)
	}
	st.Excluded = len(part.Excluded)
	st.Replaced = len(part.Replaced)
	return part
}

// classify splits lookup outcomes into identifiers to order and catalog
// keys to pull. Each key keeps identifiers of the adoption list that led
// to it, keys are in the order of their first discovery.
func (r *reconciler) classify(
	idx *adoption.Index,
	part override.Partition,
	outcomes []catalog.Outcome,
	st *txlist.Stats,
) ([]string, []string, map[string][]string) {
	var notFound, keys []string
	origins := make(map[string][]string)

	for _, v := range outcomes {
		st.Processed++
		switch v.Status {
		case catalog.Found:
			st.Found++
			if _, ok := origins[v.Key]; !ok {
				keys = append(keys, v.Key)
				origins[v.Key] = []string{}
			}
			origins[v.Key] = append(origins[v.Key], originsOf(idx, part, v.ISBN)...)
			continue
		case catalog.Failed:
			st.LookupFailures++
			slog.Warn("Catalog search failed, identifier goes to order list",
				"isbn", v.ISBN, "error", v.Err)
		default:
			st.NotFound++
		}

		if part.IsTarget(v.ISBN) && !idx.Has(v.ISBN) {
			st.ReplacedNotFound++
			slog.Warn("Replacement identifier is not in the catalog",
				"isbn", v.ISBN, "sources", part.Sources(v.ISBN))
			continue
		}
		notFound = append(notFound, v.ISBN)
	}

	st.Keys = len(keys)
	return notFound, keys, origins
}

// originsOf returns adoption identifiers behind a looked up identifier:
// the identifier itself if it is in the adoption list, and identifiers
// it replaced.
func originsOf(
	idx *adoption.Index,
	part override.Partition,
	id string,
) []string {
	var res []string
	if idx.Has(id) {
		res = append(res, id)
	}
	return append(res, part.Sources(id)...)
}
