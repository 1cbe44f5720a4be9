package ioreconcile

import (
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	txlist "github.com/gnames/txlist/pkg"
	"github.com/gnames/gnfmt"
)

func (r *reconciler) summary(st txlist.Stats) {
	slog.Info("Reconciliation complete",
		"rows", st.Rows,
		"invalid", st.Invalid,
		"processed", st.Processed,
		"found", st.Found,
		"not_found", st.NotFound,
		"lookup_failures", st.LookupFailures,
		"excluded", st.Excluded,
		"replaced", st.Replaced,
		"replaced_not_found", st.ReplacedNotFound,
		"prev_ordered", st.PrevOrdered,
		"prev_pulled", st.PrevPulled,
		"details", st.Details,
		"detail_no_content", st.DetailNoContent,
		"detail_failures", st.DetailFailures,
		"orders", st.Orders,
		"pulls", st.Pulls,
		"duration", gnfmt.TimeString(st.Duration.Seconds()),
	)

	if !r.progress {
		return
	}

	gn.Info(`Reconciliation complete
Processed <em>%s</em> identifiers from %s rows: found %s, not found %s.
Excluded %s, replaced %s, previously ordered %s, previously pulled %s.
Invalid identifiers: %s.
Item details: %s fetched, %s without content.
Order list: <em>%s</em> titles, pull list: <em>%s</em> titles.
Elapsed time: <em>%s</em>
`,
		humanize.Comma(int64(st.Processed)),
		humanize.Comma(int64(st.Rows)),
		humanize.Comma(int64(st.Found)),
		humanize.Comma(int64(st.NotFound+st.LookupFailures)),
		humanize.Comma(int64(st.Excluded)),
		humanize.Comma(int64(st.Replaced)),
		humanize.Comma(int64(st.PrevOrdered)),
		humanize.Comma(int64(st.PrevPulled)),
		humanize.Comma(int64(st.Invalid)),
		humanize.Comma(int64(st.Details)),
		humanize.Comma(int64(st.DetailNoContent)),
		humanize.Comma(int64(st.Orders)),
		humanize.Comma(int64(st.Pulls)),
		gnfmt.TimeString(st.Duration.Seconds()),
	)

	if st.LookupFailures > 0 {
		gn.Warn("<warn>%d catalog searches failed</warn>, "+
			"their titles are on the order list", st.LookupFailures)
	}
	if st.ReplacedNotFound > 0 {
		gn.Warn("<warn>%d replacement titles are not in the catalog</warn>",
			st.ReplacedNotFound)
	}
	if st.DetailFailures > 0 {
		gn.Warn("<warn>%d item detail requests failed</warn>, "+
			"their pull records are incomplete", st.DetailFailures)
	}
}
