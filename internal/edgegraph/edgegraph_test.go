package edgegraph_test

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	check "gopkg.in/check.v1"

	"github.com/tdransfield/wikipedia-analysis/internal/edgegraph"
)

var _ = check.Suite(new(edgegraphTestSuite))

func Test(t *testing.T) {
	check.TestingT(t)
}

type edgegraphTestSuite struct{}

func writeEdgeList(c *check.C, rows ...[2]string) string {
	path := filepath.Join(c.MkDir(), "edges.tsv")

	w, err := edgegraph.NewWriter(path)
	c.Assert(err, check.IsNil)

	for _, r := range rows {
		c.Assert(w.WriteEdge(r[0], r[1]), check.IsNil)
	}

	c.Assert(w.Close(), check.IsNil)

	return path
}

func (s *edgegraphTestSuite) TestWriterProducesHeaderAndRows(c *check.C) {
	path := writeEdgeList(c, [2]string{"A", "B"}, [2]string{"A", "C"})

	data, err := os.ReadFile(path)
	c.Assert(err, check.IsNil)
	c.Assert(string(data), check.Equals, "source\ttarget\nA\tB\nA\tC\n")
}

func (s *edgegraphTestSuite) TestLoadBuildsSortedDedupedAdjacency(c *check.C) {
	path := writeEdgeList(c,
		[2]string{"A", "B"},
		[2]string{"A", "C"},
		[2]string{"B", "C"},
		[2]string{"B", "D"},
	)

	g, err := edgegraph.Load(path)
	c.Assert(err, check.IsNil)
	c.Assert(g.NumNodes(), check.Equals, 4)
	c.Assert(g.NumEdges(), check.Equals, 4)

	a, ok := g.Lookup("A")
	c.Assert(ok, check.Equals, true)
	c.Assert(g.Degree(a), check.Equals, 2)

	d, ok := g.Lookup("D")
	c.Assert(ok, check.Equals, true)
	c.Assert(g.Degree(d), check.Equals, 0)
}

func (s *edgegraphTestSuite) TestLoadSortsAndDedupsAndDropsSelfEdges(c *check.C) {
	path := writeEdgeList(c,
		[2]string{"A", "C"},
		[2]string{"A", "B"},
		[2]string{"A", "C"},
		[2]string{"A", "A"},
	)

	g, err := edgegraph.Load(path)
	c.Assert(err, check.IsNil)

	a, _ := g.Lookup("A")
	neighbors := g.Neighbors(a)
	c.Assert(neighbors, check.HasLen, 2)

	titles := make([]string, len(neighbors))
	for i, id := range neighbors {
		titles[i] = g.Title(id)
	}
	sort.Strings(titles)
	c.Assert(titles, check.DeepEquals, []string{"B", "C"})
}

func (s *edgegraphTestSuite) TestLoadRejectsMissingHeader(c *check.C) {
	path := filepath.Join(c.MkDir(), "bad.tsv")
	c.Assert(os.WriteFile(path, []byte("A\tB\n"), 0o644), check.IsNil)

	_, err := edgegraph.Load(path)
	c.Assert(err, check.NotNil)
}

func (s *edgegraphTestSuite) TestLoadRejectsMalformedRow(c *check.C) {
	path := filepath.Join(c.MkDir(), "bad.tsv")
	content := edgegraph.Header + "\n" + "A-no-tab\n"
	c.Assert(os.WriteFile(path, []byte(content), 0o644), check.IsNil)

	_, err := edgegraph.Load(path)
	c.Assert(err, check.NotNil)
}
