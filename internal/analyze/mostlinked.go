package analyze

import (
	"sort"

	"github.com/tdransfield/wikipedia-analysis/internal/edgegraph"
	"github.com/tdransfield/wikipedia-analysis/internal/intern"
)

// RankByDegree ranks every node in g by (degree desc, title asc) and
// truncates to the top topK rows. topK <= 0 returns the full ranking.
func RankByDegree(g *edgegraph.Graph, topK int) []MostLinkedRow {
	n := g.NumNodes()
	rows := make([]MostLinkedRow, n)

	for id := 0; id < n; id++ {
		nodeID := intern.ID(id)
		rows[id] = MostLinkedRow{Title: g.Title(nodeID), Degree: g.Degree(nodeID)}
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Degree != rows[j].Degree {
			return rows[i].Degree > rows[j].Degree
		}

		return rows[i].Title < rows[j].Title
	})

	if topK > 0 && topK < len(rows) {
		rows = rows[:topK]
	}

	return rows
}
