package parsedriver

import (
	"context"
	"sync/atomic"

	"github.com/tdransfield/wikipedia-analysis/internal/ignore"
	"github.com/tdransfield/wikipedia-analysis/internal/intern"
	"github.com/tdransfield/wikipedia-analysis/internal/pipeline"
	"github.com/tdransfield/wikipedia-analysis/internal/title"
	"github.com/tdransfield/wikipedia-analysis/internal/wikitext"
)

// counters aggregates figures that the second pass updates concurrently
// from multiple workers.
type counters struct {
	pagesScanned      atomic.Int64
	malformedPages    atomic.Int64
	redirectOverflows atomic.Int64
	edgesWritten      atomic.Int64
}

// edgeExtractor is a pipeline.Processor that turns one page's body into its
// outbound edge list, against the read-only node set and redirect table
// frozen by the preceding sequential pass. A single instance is shared by
// every worker in the pool (see pipeline.NewFixedWorkerPool), so its state
// must be safe for concurrent use; nodes, redirects and ignore are
// immutable by the time the second pass starts.
type edgeExtractor struct {
	nodes     *intern.Interner
	redirects *title.Table
	ignore    *ignore.Set
	counters  *counters
}

var _ pipeline.Processor = (*edgeExtractor)(nil)

func (e *edgeExtractor) Process(_ context.Context, payload pipeline.Payload) (pipeline.Payload, error) {
	p, ok := payload.(*pagePayload)
	if !ok {
		return nil, nil
	}

	if p.page.Namespace != 0 {
		return nil, nil
	}

	source, ok := title.Canonicalize(p.page.Title)
	if !ok {
		return nil, nil
	}

	if _, isNode := e.nodes.Lookup(source); !isNode {
		// Not an article: a redirect, a disambiguation page, or a page
		// discarded for some other reason during the first pass.
		return nil, nil
	}

	if e.ignore.Contains(source) {
		return nil, nil
	}

	// Distinct raw wikilinks can canonicalize and resolve to the same
	// article (case variants, different redirects into the same target),
	// so the per-source edge set is deduplicated on the final, resolved
	// title rather than on the raw link text.
	seen := make(map[string]struct{})

	for _, raw := range wikitext.ExtractLinks(p.page.Body) {
		canon, ok := title.Canonicalize(raw)
		if !ok {
			continue
		}

		target, ok := e.resolve(canon)
		if !ok {
			continue
		}

		if target == source {
			continue
		}

		if e.ignore.Contains(target) {
			continue
		}

		if _, dup := seen[target]; dup {
			continue
		}

		seen[target] = struct{}{}
		p.edges = append(p.edges, edge{source: source, target: target})
	}

	return p, nil
}

// resolve returns the canonical article title a link target ultimately
// refers to, following the redirect table when canon is itself a redirect
// source. It reports false for dangling links and for chains that cycle or
// exceed the bounded hop count.
func (e *edgeExtractor) resolve(canon string) (string, bool) {
	resolved, ok := e.redirects.Resolve(canon)
	if !ok {
		e.counters.redirectOverflows.Add(1)

		return "", false
	}

	if _, ok := e.nodes.Lookup(resolved); !ok {
		return "", false
	}

	return resolved, true
}
