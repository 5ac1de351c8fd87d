package analyze

import (
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/tdransfield/wikipedia-analysis/internal/edgegraph"
	"github.com/tdransfield/wikipedia-analysis/internal/intern"
)

// Histogram computes the degree distribution of g, sharding the node ID
// space across numWorkers goroutines (§5: "the degree analyses are
// trivially parallel over nodes"). Each shard accumulates its own local
// counts so no lock is held on the hot path; shards are merged once all
// goroutines finish.
func Histogram(g *edgegraph.Graph, numWorkers int) []HistogramRow {
	n := g.NumNodes()
	if numWorkers <= 0 {
		numWorkers = 1
	}

	if numWorkers > n && n > 0 {
		numWorkers = n
	}

	shardCounts := make([]map[int]int64, numWorkers)
	chunk := (n + numWorkers - 1) / numWorkers

	var eg errgroup.Group

	for w := 0; w < numWorkers; w++ {
		start := w * chunk
		end := start + chunk
		if end > n {
			end = n
		}

		if start >= end {
			continue
		}

		w := w

		eg.Go(func() error {
			counts := make(map[int]int64)
			for id := start; id < end; id++ {
				counts[g.Degree(intern.ID(id))]++
			}
			shardCounts[w] = counts

			return nil
		})
	}

	eg.Wait()

	merged := make(map[int]int64)
	for _, counts := range shardCounts {
		for degree, count := range counts {
			merged[degree] += count
		}
	}

	rows := make([]HistogramRow, 0, len(merged))
	for degree, count := range merged {
		rows = append(rows, HistogramRow{Degree: degree, Count: count})
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Degree < rows[j].Degree })

	return rows
}
