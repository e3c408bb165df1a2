// Package pipeline wires the lineage layout engine to caching, logging,
// and observability hooks.
//
// The CLI and the HTTP server both go through a [Runner], which keeps
// their behavior identical: the same cache keys, the same hook events,
// and the same diagnostics for relationship cycles.
//
// A computed layout is a pure function of the roster bytes and the layout
// configuration, so Runner caches results keyed by a content hash of
// both. Highlight or filter changes downstream are pure re-paints and
// never invalidate the cache.
package pipeline

import (
	"context"
	"encoding/json"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/biglinehq/bigline/pkg/cache"
	"github.com/biglinehq/bigline/pkg/errors"
	"github.com/biglinehq/bigline/pkg/layout"
	"github.com/biglinehq/bigline/pkg/lineage"
	"github.com/biglinehq/bigline/pkg/observability"
)

// Runner executes layout and path-search requests with caching and
// instrumentation. Create with NewRunner; the zero value is not usable.
type Runner struct {
	cache  cache.Cache
	logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching and a nil
// logger discards output.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{cache: c, logger: logger}
}

// Close releases the underlying cache.
func (r *Runner) Close() error { return r.cache.Close() }

// LayoutRoster decodes roster JSON and returns its layout, consulting the
// cache first. The boolean reports whether the result came from cache.
func (r *Runner) LayoutRoster(ctx context.Context, data []byte, cfg layout.Config) (layout.Result, bool, error) {
	roster, err := lineage.UnmarshalRoster(data)
	if err != nil {
		return layout.Result{}, false, errors.Wrap(errors.ErrCodeInvalidRoster, err, "parse roster")
	}
	g := roster.Graph()

	cfgJSON, err := json.Marshal(cfg)
	if err != nil {
		return layout.Result{}, false, errors.Wrap(errors.ErrCodeInternal, err, "hash layout config")
	}
	key := cache.LayoutKey(cache.Hash(data), cache.Hash(cfgJSON))

	if cached, ok, err := r.cache.Get(ctx, key); err == nil && ok {
		if res, err := layout.UnmarshalResult(cached); err == nil {
			r.logger.Debug("layout cache hit", "members", g.MemberCount())
			return res, true, nil
		}
		// Unreadable entry: drop it and recompute.
		_ = r.cache.Delete(ctx, key)
	}

	res := r.ComputeLayout(ctx, g, cfg)
	if out, err := layout.MarshalResult(res); err == nil {
		_ = r.cache.Set(ctx, key, out, cache.DefaultTTL)
	}
	return res, false, nil
}

// ComputeLayout runs an uncached layout pass, emitting hook events and
// logging cycle diagnostics.
func (r *Runner) ComputeLayout(ctx context.Context, g *lineage.Graph, cfg layout.Config) layout.Result {
	observability.Layout().OnLayoutStart(ctx, g.MemberCount())
	start := time.Now()

	res := layout.Compute(g, cfg, nil)

	elapsed := time.Since(start)
	observability.Layout().OnLayoutComplete(ctx, len(res.Families), len(res.Cycles), elapsed)

	for _, cyc := range res.Cycles {
		r.logger.Warn("relationship cycle detected", "members", strings.Join(cyc, " -> "))
	}
	r.logger.Debug("layout computed",
		"members", g.MemberCount(),
		"families", len(res.Families),
		"elapsed", elapsed.Round(time.Millisecond))
	return res
}

// FindPath runs a shortest-path search with hook instrumentation.
// Unknown endpoint names return an error wrapping lineage.ErrUnknownMember;
// a disconnected pair returns a result with Found set to false.
func (r *Runner) FindPath(ctx context.Context, g *lineage.Graph, from, to string) (lineage.PathResult, error) {
	observability.Path().OnSearchStart(ctx, from, to)
	start := time.Now()

	res, err := lineage.ShortestPath(g, from, to)
	if err != nil {
		observability.Path().OnSearchComplete(ctx, from, to, -1, false, time.Since(start))
		return res, err
	}

	observability.Path().OnSearchComplete(ctx, from, to, res.Hops(), res.Found, time.Since(start))
	r.logger.Debug("path search finished", "from", from, "to", to, "found", res.Found, "hops", res.Hops())
	return res, nil
}
