package ioreconcile

import (
	"context"
	"log/slog"
	"time"

	"github.com/cheggaaa/pb/v3"
	txlist "github.com/gnames/txlist/pkg"
	"github.com/gnames/txlist/pkg/catalog"
	"golang.org/x/sync/errgroup"
)

// resolveAll searches the catalog for every identifier. At most
// JobsNumber searches run at the same time. Results keep the order of
// identifiers no matter in which order searches finish.
func (r *reconciler) resolveAll(
	ctx context.Context,
	ids []string,
) ([]catalog.Outcome, error) {
	res := make([]catalog.Outcome, len(ids))

	bar := r.startBar(len(ids), "Searching catalog: ")
	defer bar.Finish()

	err := r.forEach(ctx, len(ids), func(ctx context.Context, i int) {
		res[i] = catalog.Resolve(ctx, r.cat, ids[i])
		bar.Increment()
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// fetchAll requests holding records of catalog keys. A key without content
// or with a failed request gets a nil record.
func (r *reconciler) fetchAll(
	ctx context.Context,
	keys []string,
	st *txlist.Stats,
) ([]*catalog.Record, error) {
	res := make([]*catalog.Record, len(keys))
	errs := make([]error, len(keys))

	bar := r.startBar(len(keys), "Fetching details: ")
	defer bar.Finish()

	err := r.forEach(ctx, len(keys), func(ctx context.Context, i int) {
		res[i], errs[i] = r.cat.Detail(ctx, keys[i])
		bar.Increment()
	})
	if err != nil {
		return nil, err
	}

	for i, key := range keys {
		switch {
		case errs[i] != nil:
			st.DetailFailures++
			res[i] = nil
			slog.Warn("Cannot get item details, pull record stays blank",
				"key", key, "error", errs[i])
		case res[i] == nil:
			st.DetailNoContent++
			slog.Info("Catalog item has no details", "key", key)
		default:
			st.Details++
		}
	}
	return res, nil
}

// forEach calls fn for indices 0..num-1 with bounded concurrency. Every
// call gets its own timeout. It returns CancelledError if ctx is done
// before all calls finish.
func (r *reconciler) forEach(
	ctx context.Context,
	num int,
	fn func(context.Context, int),
) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(r.cfg.JobsNumber, 1))
	timeout := time.Duration(r.cfg.Catalog.Timeout) * time.Second

	for i := range num {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			callCtx := gctx
			if timeout > 0 {
				var cancel context.CancelFunc
				callCtx, cancel = context.WithTimeout(gctx, timeout)
				defer cancel()
			}
			fn(callCtx, i)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return CancelledError(err)
	}
	return nil
}

// progressBar is the part of pb.ProgressBar used during lookups.
type progressBar interface {
	Increment() *pb.ProgressBar
	Finish() *pb.ProgressBar
}

type noBar struct{}

func (noBar) Increment() *pb.ProgressBar { return nil }
func (noBar) Finish() *pb.ProgressBar    { return nil }

func (r *reconciler) startBar(total int, prefix string) progressBar {
	if !r.progress || total == 0 {
		return noBar{}
	}
	bar := pb.Full.Start(total)
	bar.Set("prefix", prefix)
	bar.Set(pb.CleanOnFinish, true)
	return bar
}
