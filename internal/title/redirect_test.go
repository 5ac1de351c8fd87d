package title_test

import (
	check "gopkg.in/check.v1"

	"github.com/tdransfield/wikipedia-analysis/internal/title"
)

var _ = check.Suite(new(redirectTestSuite))

type redirectTestSuite struct{}

func (s *redirectTestSuite) TestResolveNonRedirectReturnsItself(c *check.C) {
	tbl := title.NewTable(0)

	resolved, ok := tbl.Resolve("Gopher")
	c.Assert(ok, check.Equals, true)
	c.Assert(resolved, check.Equals, "Gopher")
}

func (s *redirectTestSuite) TestResolveFollowsSingleHop(c *check.C) {
	tbl := title.NewTable(1)
	tbl.Add("Golang", "Go (programming language)")

	resolved, ok := tbl.Resolve("Golang")
	c.Assert(ok, check.Equals, true)
	c.Assert(resolved, check.Equals, "Go (programming language)")
}

func (s *redirectTestSuite) TestResolveFollowsChain(c *check.C) {
	tbl := title.NewTable(3)
	tbl.Add("A", "B")
	tbl.Add("B", "C")
	tbl.Add("C", "D")

	resolved, ok := tbl.Resolve("A")
	c.Assert(ok, check.Equals, true)
	c.Assert(resolved, check.Equals, "D")
}

func (s *redirectTestSuite) TestResolveDetectsCycle(c *check.C) {
	tbl := title.NewTable(2)
	tbl.Add("A", "B")
	tbl.Add("B", "A")

	_, ok := tbl.Resolve("A")
	c.Assert(ok, check.Equals, false)
}

func (s *redirectTestSuite) TestResolveDetectsChainOverflow(c *check.C) {
	tbl := title.NewTable(title.MaxRedirectHops + 2)
	// Build a chain one hop longer than the bound: A -> B -> ... -> I -> J
	for i := 0; i < title.MaxRedirectHops+1; i++ {
		tbl.Add(hop(i), hop(i+1))
	}

	_, ok := tbl.Resolve(hop(0))
	c.Assert(ok, check.Equals, false)
}

func (s *redirectTestSuite) TestResolveWithinBoundSucceeds(c *check.C) {
	tbl := title.NewTable(title.MaxRedirectHops)
	for i := 0; i < title.MaxRedirectHops; i++ {
		tbl.Add(hop(i), hop(i+1))
	}

	resolved, ok := tbl.Resolve(hop(0))
	c.Assert(ok, check.Equals, true)
	c.Assert(resolved, check.Equals, hop(title.MaxRedirectHops))
}

func (s *redirectTestSuite) TestIsRedirectDirective(c *check.C) {
	c.Assert(title.IsRedirectDirective("#REDIRECT [[Go (programming language)]]"), check.Equals, true)
	c.Assert(title.IsRedirectDirective("  #redirect [[Foo]]"), check.Equals, true)
	c.Assert(title.IsRedirectDirective("Go is a programming language."), check.Equals, false)
}

func hop(i int) string {
	return string(rune('A' + i))
}
