package parsedriver

import (
	"github.com/tdransfield/wikipedia-analysis/internal/dumpio"
	"github.com/tdransfield/wikipedia-analysis/internal/pipeline"
)

// edge is one resolved, canonicalized (source, target) pair discovered in a
// page's body. Titles only: the edge-list format is title-based, not
// ID-based (§3).
type edge struct {
	source string
	target string
}

// pagePayload carries one dump page through the edge-extraction pipeline
// and accumulates the edges discovered in it.
type pagePayload struct {
	page  dumpio.Page
	edges []edge
}

var _ pipeline.Payload = (*pagePayload)(nil)

func (p *pagePayload) Clone() pipeline.Payload {
	edges := make([]edge, len(p.edges))
	copy(edges, p.edges)

	return &pagePayload{page: p.page, edges: edges}
}

func (p *pagePayload) MarkAsProcessed() {
	p.edges = nil
}
