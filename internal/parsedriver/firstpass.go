package parsedriver

import (
	"errors"
	"io"

	"github.com/tdransfield/wikipedia-analysis/internal/dumpio"
	"github.com/tdransfield/wikipedia-analysis/internal/intern"
	"github.com/tdransfield/wikipedia-analysis/internal/stageerr"
	"github.com/tdransfield/wikipedia-analysis/internal/title"
	"github.com/tdransfield/wikipedia-analysis/internal/wikitext"
)

// firstPass streams the dump once, sequentially, to discover the article
// node set and build the redirect table. Both must be known before edges
// can be canonicalized in the second, parallel pass.
func (d *Driver) firstPass() (*intern.Interner, *title.Table, error) {
	r, err := dumpio.Open(d.cfg.DumpPath)
	if err != nil {
		return nil, nil, err
	}
	defer r.Close()

	splitter := dumpio.NewSplitter(r)
	nodes := intern.New(1 << 16)
	redirects := title.NewTable(1 << 12)

	for {
		page, err := splitter.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			if errors.Is(err, stageerr.ErrXMLMalformed) {
				return nil, nil, err
			}

			d.stats.MalformedPages++
			d.cfg.Logger.WithError(err).Warn("skipping malformed page")

			continue
		}

		d.stats.PagesScanned++

		if page.Namespace != 0 {
			continue
		}

		canon, ok := title.Canonicalize(page.Title)
		if !ok {
			continue
		}

		if target, isRedirect := redirectTarget(page); isRedirect {
			targetCanon, ok := title.Canonicalize(target)
			if !ok {
				continue
			}

			redirects.Add(canon, targetCanon)
			d.stats.RedirectsFound++

			continue
		}

		if wikitext.IsDisambiguationPage(page.Body) {
			d.stats.DisambigsSkipped++

			continue
		}

		nodes.Intern(canon)
		d.stats.ArticlesFound++
	}

	return nodes, redirects, nil
}

// redirectTarget reports whether page is a redirect and, if so, its raw
// (pre-canonicalization) target title. The <redirect> element, when
// present, is authoritative; otherwise the body's redirect directive and
// its first wikilink are used.
func redirectTarget(page dumpio.Page) (string, bool) {
	isRedirect := page.IsRedirect || title.IsRedirectDirective(page.Body)
	if !isRedirect {
		return "", false
	}

	if page.RedirectTarget != "" {
		return page.RedirectTarget, true
	}

	links := wikitext.ExtractLinks(page.Body)
	if len(links) == 0 {
		return "", false
	}

	return links[0], true
}
