package dumpio_test

import (
	"io"
	"strings"
	"testing"

	check "gopkg.in/check.v1"

	"github.com/tdransfield/wikipedia-analysis/internal/dumpio"
)

var _ = check.Suite(new(splitterTestSuite))

func Test(t *testing.T) {
	check.TestingT(t)
}

type splitterTestSuite struct{}

const sampleDump = `<mediawiki>
  <page>
    <title>Alpha</title>
    <ns>0</ns>
    <revision>
      <text>[[Beta]] [[Gamma]]</text>
    </revision>
  </page>
  <page>
    <title>Bet</title>
    <ns>0</ns>
    <redirect title="Beta" />
    <revision>
      <text>#REDIRECT [[Beta]]</text>
    </revision>
  </page>
  <page>
    <title>Talk:Alpha</title>
    <ns>1</ns>
    <revision>
      <text>discussion</text>
    </revision>
  </page>
</mediawiki>`

func (s *splitterTestSuite) TestSplitterReadsAllPagesInOrder(c *check.C) {
	sp := dumpio.NewSplitter(strings.NewReader(sampleDump))

	var pages []dumpio.Page
	for {
		p, err := sp.Next()
		if err == io.EOF {
			break
		}
		c.Assert(err, check.IsNil)
		pages = append(pages, p)
	}

	c.Assert(pages, check.HasLen, 3)
	c.Assert(pages[0].Title, check.Equals, "Alpha")
	c.Assert(pages[0].Namespace, check.Equals, 0)
	c.Assert(pages[0].IsRedirect, check.Equals, false)
	c.Assert(pages[0].Body, check.Equals, "[[Beta]] [[Gamma]]")

	c.Assert(pages[1].Title, check.Equals, "Bet")
	c.Assert(pages[1].IsRedirect, check.Equals, true)
	c.Assert(pages[1].RedirectTarget, check.Equals, "Beta")

	c.Assert(pages[2].Title, check.Equals, "Talk:Alpha")
	c.Assert(pages[2].Namespace, check.Equals, 1)
}

func (s *splitterTestSuite) TestSplitterReportsMalformedPageWithoutStopping(c *check.C) {
	dump := `<mediawiki>
  <page>
    <title>Bad</title>
    <ns>not-a-number</ns>
    <revision><text>x</text></revision>
  </page>
</mediawiki>`

	sp := dumpio.NewSplitter(strings.NewReader(dump))

	_, err := sp.Next()
	c.Assert(err, check.NotNil)
	c.Assert(err, check.Not(check.Equals), io.EOF)

	_, err = sp.Next()
	c.Assert(err, check.Equals, io.EOF)
}
