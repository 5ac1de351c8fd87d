package parsedriver

import (
	"context"

	"github.com/tdransfield/wikipedia-analysis/internal/edgegraph"
	"github.com/tdransfield/wikipedia-analysis/internal/pipeline"
)

// writerSink is the pipeline's single writer: every page's edge batch is
// written to the output file whole, so per-page atomicity guarantees no
// edge is split by a concurrent write (§5).
type writerSink struct {
	w        *edgegraph.Writer
	reverse  bool
	counters *counters
}

var _ pipeline.Sink = (*writerSink)(nil)

func (s *writerSink) Consume(_ context.Context, payload pipeline.Payload) error {
	p, ok := payload.(*pagePayload)
	if !ok {
		return nil
	}

	for _, e := range p.edges {
		source, target := e.source, e.target
		if s.reverse {
			source, target = target, source
		}

		if err := s.w.WriteEdge(source, target); err != nil {
			return err
		}

		s.counters.edgesWritten.Add(1)
	}

	return nil
}
