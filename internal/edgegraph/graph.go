/*
	edgegraph implements the on-disk edge-list format and the in-memory
	compressed-sparse-row adjacency structure the analyze stage evaluates
	its analyses over.
*/
package edgegraph

import "github.com/tdransfield/wikipedia-analysis/internal/intern"

// Header is the required first line of every edge-list TSV.
const Header = "source\ttarget"

// Graph is a directed adjacency structure sized for tens of millions of
// nodes and hundreds of millions of edges: a node table (via interner)
// indexed by ID, plus parallel offsets/neighbors arrays. Each neighbor run
// neighbors[offsets[i]:offsets[i+1]] is sorted and deduplicated, so degree
// lookups are O(1) and BFS visitation is deterministic. Immutable once
// built; safe for concurrent readers.
type Graph struct {
	interner  *intern.Interner
	offsets   []int32
	neighbors []intern.ID
}

// NumNodes returns the node count N.
func (g *Graph) NumNodes() int {
	return g.interner.Len()
}

// NumEdges returns the edge count M.
func (g *Graph) NumEdges() int {
	return len(g.neighbors)
}

// Title returns the canonical title of node id.
func (g *Graph) Title(id intern.ID) string {
	return g.interner.Title(id)
}

// Lookup returns the ID of title, if it is a node in this graph.
func (g *Graph) Lookup(title string) (intern.ID, bool) {
	return g.interner.Lookup(title)
}

// Degree returns the out-degree of node id (in reverse-mode edge lists this
// is the in-degree of the original graph; the loader does not distinguish
// the two).
func (g *Graph) Degree(id intern.ID) int {
	return int(g.offsets[id+1] - g.offsets[id])
}

// Neighbors returns the sorted, deduplicated neighbor IDs of node id.
// Callers must not mutate the returned slice.
func (g *Graph) Neighbors(id intern.ID) []intern.ID {
	return g.neighbors[g.offsets[id]:g.offsets[id+1]]
}
