package wikitext_test

import (
	"testing"

	check "gopkg.in/check.v1"

	"github.com/tdransfield/wikipedia-analysis/internal/wikitext"
)

var _ = check.Suite(new(wikitextTestSuite))

func Test(t *testing.T) {
	check.TestingT(t)
}

type wikitextTestSuite struct{}

func (s *wikitextTestSuite) TestExtractLinksSimple(c *check.C) {
	links := wikitext.ExtractLinks("[[Beta]] [[Gamma]]")
	c.Assert(links, check.DeepEquals, []string{"Beta", "Gamma"})
}

func (s *wikitextTestSuite) TestExtractLinksDisplayTextAndAnchorAndDuplicate(c *check.C) {
	links := wikitext.ExtractLinks("[[Foo|display]] [[Foo#section]] [[Foo]]")
	c.Assert(links, check.DeepEquals, []string{"Foo"})
}

func (s *wikitextTestSuite) TestExtractLinksDropsLeadingColonEscape(c *check.C) {
	links := wikitext.ExtractLinks("See [[:Category:Foo]] for more.")
	c.Assert(links, check.HasLen, 0)
}

func (s *wikitextTestSuite) TestExtractLinksDropsNamespacedTarget(c *check.C) {
	links := wikitext.ExtractLinks("[[Category:Programming languages]] [[Go]]")
	c.Assert(links, check.DeepEquals, []string{"Go"})
}

func (s *wikitextTestSuite) TestExtractLinksSkipsNowiki(c *check.C) {
	links := wikitext.ExtractLinks("<nowiki>[[Hidden]]</nowiki> [[Visible]]")
	c.Assert(links, check.DeepEquals, []string{"Visible"})
}

func (s *wikitextTestSuite) TestExtractLinksSkipsComment(c *check.C) {
	links := wikitext.ExtractLinks("<!-- [[Hidden]] --> [[Visible]]")
	c.Assert(links, check.DeepEquals, []string{"Visible"})
}

func (s *wikitextTestSuite) TestExtractLinksSkipsPreAndCode(c *check.C) {
	links := wikitext.ExtractLinks("<pre>[[Hidden1]]</pre><code>[[Hidden2]]</code>[[Visible]]")
	c.Assert(links, check.DeepEquals, []string{"Visible"})
}

func (s *wikitextTestSuite) TestExtractLinksSkipsMath(c *check.C) {
	links := wikitext.ExtractLinks("<math>[[Hidden]]</math> [[Visible]]")
	c.Assert(links, check.DeepEquals, []string{"Visible"})
}

func (s *wikitextTestSuite) TestExtractLinksSkipsRefWithBody(c *check.C) {
	links := wikitext.ExtractLinks("<ref>See [[Hidden]] for citation.</ref> [[Visible]]")
	c.Assert(links, check.DeepEquals, []string{"Visible"})
}

func (s *wikitextTestSuite) TestExtractLinksSkipsSelfClosingRef(c *check.C) {
	links := wikitext.ExtractLinks(`before<ref name="x" /> [[Visible]]`)
	c.Assert(links, check.DeepEquals, []string{"Visible"})
}

func (s *wikitextTestSuite) TestExtractLinksSkipsInfobox(c *check.C) {
	body := "{{Infobox person\n| name = Someone\n| [[Hidden]]\n}}\nBody text [[Visible]]."
	links := wikitext.ExtractLinks(body)
	c.Assert(links, check.DeepEquals, []string{"Visible"})
}

func (s *wikitextTestSuite) TestExtractLinksMainArticleTemplate(c *check.C) {
	links := wikitext.ExtractLinks("{{main article|History of Go}}")
	c.Assert(links, check.DeepEquals, []string{"History of Go"})
}

func (s *wikitextTestSuite) TestExtractLinksSeeAlsoTemplate(c *check.C) {
	links := wikitext.ExtractLinks("{{see also|Rust|Python#Syntax}}")
	c.Assert(links, check.DeepEquals, []string{"Rust", "Python"})
}

func (s *wikitextTestSuite) TestExtractLinksEmptyTargetDropped(c *check.C) {
	links := wikitext.ExtractLinks("[[|display only]] [[Real]]")
	c.Assert(links, check.DeepEquals, []string{"Real"})
}

func (s *wikitextTestSuite) TestIsDisambiguationPage(c *check.C) {
	c.Assert(wikitext.IsDisambiguationPage("{{disambig}}"), check.Equals, true)
	c.Assert(wikitext.IsDisambiguationPage("{{Disambig}}"), check.Equals, true)
	c.Assert(wikitext.IsDisambiguationPage("{{dab}}"), check.Equals, true)
	c.Assert(wikitext.IsDisambiguationPage("A normal article."), check.Equals, false)
}
