/*
	wikitext implements a lightweight wikilink scanner over raw MediaWiki
	article bodies. It does not attempt full wikitext rendering; it extracts
	just enough structure to recover outbound link targets.
*/
package wikitext

import "strings"

type region struct {
	open  string
	close string
}

// suppressedRegions lists the tag pairs whose contents must never yield a
// wikilink: comments, nowiki escapes, preformatted text, inline code, and
// math markup. <ref>...</ref> is handled separately because it may also
// appear self-closed.
var suppressedRegions = []region{
	{"<!--", "-->"},
	{"<nowiki", "</nowiki>"},
	{"<pre", "</pre>"},
	{"<code", "</code>"},
	{"<math", "</math>"},
}

// Suppress returns body with the mandatory suppression regions removed, so
// that the link scanner never sees wikilinks embedded inside them. A simple
// state machine suffices here; perfect fidelity to MediaWiki's tag nesting
// rules is not required.
func Suppress(body string) string {
	var b strings.Builder
	b.Grow(len(body))

	i := 0
	for i < len(body) {
		if consumed, ok := trySkipRef(body, i); ok {
			i += consumed

			continue
		}

		if consumed, ok := trySkipRegion(body, i); ok {
			i += consumed

			continue
		}

		b.WriteByte(body[i])
		i++
	}

	return b.String()
}

func trySkipRegion(body string, i int) (int, bool) {
	for _, r := range suppressedRegions {
		if !hasPrefixFold(body[i:], r.open) {
			continue
		}

		rest := body[i+len(r.open):]
		if idx := indexFold(rest, r.close); idx >= 0 {
			return len(r.open) + idx + len(r.close), true
		}

		// Unterminated region: the rest of the body is inside it.
		return len(body) - i, true
	}

	return 0, false
}

func trySkipRef(body string, i int) (int, bool) {
	if !hasPrefixFold(body[i:], "<ref") {
		return 0, false
	}

	end := strings.IndexByte(body[i:], '>')
	if end < 0 {
		return len(body) - i, true
	}

	if end > 0 && body[i+end-1] == '/' {
		// Self-closing <ref .../>, nothing to suppress but the tag.
		return end + 1, true
	}

	rest := body[i+end+1:]
	if idx := indexFold(rest, "</ref>"); idx >= 0 {
		return end + 1 + idx + len("</ref>"), true
	}

	return len(body) - i, true
}

func hasPrefixFold(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}

	return strings.EqualFold(s[:len(prefix)], prefix)
}

func indexFold(s, sub string) int {
	return strings.Index(strings.ToLower(s), strings.ToLower(sub))
}
