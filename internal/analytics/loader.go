package analytics

import (
	"context"
	"sync/atomic"

	"github.com/Vibora-FCAI2025/padel-metrics/internal/model"
	"github.com/Vibora-FCAI2025/padel-metrics/internal/parser"
)

// CSVFetcher fetches the raw analysis CSV for a match. Implemented by the
// backend client; tests substitute their own.
type CSVFetcher interface {
	FetchAnalysisCSV(ctx context.Context, matchID string) (string, error)
}

// Loader runs fetch-and-compute passes and guards against stale results.
//
// Only the newest requested match matters: when a caller starts a load while
// an earlier one is still fetching, the earlier result must not be rendered
// over the newer one. Each Load takes a generation ticket; a result whose
// ticket is no longer current is reported stale and the caller discards it.
type Loader struct {
	fetcher CSVFetcher
	opts    Options
	gen     atomic.Uint64
}

// NewLoader returns a Loader using the given fetcher and sampler options.
func NewLoader(fetcher CSVFetcher, opts Options) *Loader {
	return &Loader{fetcher: fetcher, opts: opts}
}

// Load fetches the CSV for matchID and computes its analysis. The bool is
// false when a newer Load superseded this one while it was in flight; such
// results must be discarded, not rendered.
//
// Fetch failures do not surface as errors: a match whose CSV is missing or
// unreachable yields a zero-valued analysis so the match page still renders,
// with "no data" placeholders left to the presentation layer.
func (l *Loader) Load(ctx context.Context, matchID string) (*model.MatchAnalysis, bool) {
	ticket := l.gen.Add(1)

	text, err := l.fetcher.FetchAnalysisCSV(ctx, matchID)
	if err != nil {
		text = ""
	}
	result := Compute(matchID, parser.Parse(text), l.opts)

	return result, l.gen.Load() == ticket
}
