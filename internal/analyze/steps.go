package analyze

import (
	"context"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/willf/bitset"

	"github.com/tdransfield/wikipedia-analysis/internal/edgegraph"
	"github.com/tdransfield/wikipedia-analysis/internal/intern"
	"github.com/tdransfield/wikipedia-analysis/internal/pipeline"
)

// StepGroups runs one BFS per root in roots, fanning the roots out across a
// fixed worker pool (§5: "root fan-out reuses the same fixed-worker-pool
// abstraction as the parse stage" — each root's BFS owns its own visited
// bitset over the shared, read-only adjacency). Row i of the result
// corresponds to roots[i]; order of completion does not affect it.
func StepGroups(g *edgegraph.Graph, roots []string, numWorkers int, logger *logrus.Entry) []StepGroupRow {
	if numWorkers <= 0 {
		numWorkers = 1
	}

	rows := make([]StepGroupRow, len(roots))

	src := &rootSource{roots: roots}
	proc := &bfsProcessor{g: g, logger: logger}
	sink := &rowSink{rows: rows}

	p := pipeline.New(pipeline.NewFixedWorkerPool(proc, numWorkers))
	// A BFS never fails: the only failure mode (unknown root) is captured as
	// data in the row itself, so this error is always nil.
	_ = p.Execute(context.Background(), src, sink)

	return rows
}

// rootSource emits one payload per requested root, carrying its position in
// the output slice so completion order need not match request order.
type rootSource struct {
	roots []string
	next  int
}

var _ pipeline.Source = (*rootSource)(nil)

func (s *rootSource) Next(context.Context) bool {
	if s.next >= len(s.roots) {
		return false
	}

	s.next++

	return true
}

func (s *rootSource) Payload() pipeline.Payload {
	i := s.next - 1

	return &rootPayload{index: i, root: s.roots[i]}
}

func (s *rootSource) Error() error {
	return nil
}

type rootPayload struct {
	index int
	root  string
	row   StepGroupRow
}

func (p *rootPayload) Clone() pipeline.Payload {
	clone := *p

	return &clone
}

func (p *rootPayload) MarkAsProcessed() {}

// bfsProcessor is shared by every worker in the pool (see
// pipeline.NewFixedWorkerPool), so it must be safe for concurrent use; g is
// read-only adjacency and logger is safe for concurrent logging.
type bfsProcessor struct {
	g      *edgegraph.Graph
	logger *logrus.Entry
}

var _ pipeline.Processor = (*bfsProcessor)(nil)

func (b *bfsProcessor) Process(_ context.Context, payload pipeline.Payload) (pipeline.Payload, error) {
	p, ok := payload.(*rootPayload)
	if !ok {
		return payload, nil
	}

	p.row = bfsStepGroups(b.g, p.root, b.logger)

	return p, nil
}

type rowSink struct {
	rows []StepGroupRow
}

var _ pipeline.Sink = (*rowSink)(nil)

func (s *rowSink) Consume(_ context.Context, payload pipeline.Payload) error {
	p, ok := payload.(*rootPayload)
	if !ok {
		return nil
	}

	s.rows[p.index] = p.row

	return nil
}

func bfsStepGroups(g *edgegraph.Graph, root string, logger *logrus.Entry) StepGroupRow {
	id, ok := g.Lookup(root)
	if !ok {
		if logger != nil {
			logger.WithField("root", root).Warn("root not found in graph")
		}

		return StepGroupRow{Root: root, Unknown: true}
	}

	visited := bitset.New(uint(g.NumNodes()))
	visited.Set(uint(id))

	steps := []int{1}
	frontier := []intern.ID{id}

	for len(frontier) > 0 {
		var next []intern.ID

		for _, u := range frontier {
			for _, v := range g.Neighbors(u) {
				if visited.Test(uint(v)) {
					continue
				}

				visited.Set(uint(v))
				next = append(next, v)
			}
		}

		if len(next) == 0 {
			break
		}

		sort.Slice(next, func(a, b int) bool { return next[a] < next[b] })
		steps = append(steps, len(next))
		frontier = next
	}

	return StepGroupRow{Root: root, Steps: steps}
}
