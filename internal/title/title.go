/*
	title implements canonical-title normalization and namespace
	classification for MediaWiki article titles, per the data model described
	in the project's link-graph specification.
*/
package title

import (
	"html"
	"strings"
	"unicode"
	"unicode/utf8"
)

// namespacePrefixes lists the well-known MediaWiki namespace and
// interwiki/cross-project prefixes that mark a title as non-mainspace. A
// title "Category:Foo" is never an article node; a leading-colon escape
// "[[:Category:Foo]]" is link-only and never promotes into mainspace.
var namespacePrefixes = map[string]struct{}{
	"talk":       {},
	"user":       {},
	"user talk":  {},
	"wikipedia":  {},
	"file":       {},
	"image":      {},
	"mediawiki":  {},
	"template":   {},
	"help":       {},
	"category":   {},
	"portal":     {},
	"draft":      {},
	"module":     {},
	"book":       {},
	"timedtext":  {},
	"wiktionary": {},
	"wikt":       {},
	"commons":    {},
	"meta":       {},
	"species":    {},
	"discussion": {},
}

// HasNamespacePrefix reports whether prefix (as it appears before the first
// ':' in a raw title or link target) names a known namespace or
// interwiki/cross-project prefix, matched case-insensitively, or a
// two-letter language code used for interwiki links (e.g. "fr:Paris"). The
// language-code form is recognized only when written in lowercase, so a
// capitalized word such as "Go" is not treated as one.
func HasNamespacePrefix(prefix string) bool {
	lower := strings.ToLower(prefix)
	if _, ok := namespacePrefixes[lower]; ok {
		return true
	}

	// Two-letter (or two-letter+region, e.g. "zh-hans") interwiki language
	// codes are never mainspace articles.
	if len(lower) == 2 || (len(lower) > 2 && lower[2] == '-') {
		return isASCIILower(prefix[:2])
	}

	return false
}

func isASCIILower(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}

	return true
}

// Canonicalize normalizes a raw title (as it appears in a <title> element or
// inside [[ ]]) into its canonical form:
//   - XML entities are decoded,
//   - a trailing "#section" anchor is stripped,
//   - internal whitespace runs collapse to a single ASCII space,
//   - leading/trailing whitespace is stripped,
//   - the first code point is upper-cased; the remainder is left as-is.
//
// It returns ok=false if the result is empty after normalization.
func Canonicalize(raw string) (canon string, ok bool) {
	s := html.UnescapeString(raw)

	if idx := strings.IndexByte(s, '#'); idx >= 0 {
		s = s[:idx]
	}

	s = collapseWhitespace(s)
	if s == "" {
		return "", false
	}

	return upperFirst(s), true
}

func collapseWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inSpace := false
	started := false

	for _, r := range s {
		if unicode.IsSpace(r) {
			if started {
				inSpace = true
			}

			continue
		}

		if inSpace {
			b.WriteByte(' ')

			inSpace = false
		}

		b.WriteRune(r)
		started = true
	}

	return b.String()
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	upper := unicode.ToUpper(r)
	if upper == r {
		return s
	}

	return string(upper) + s[size:]
}

// SplitPrefix splits a raw (pre-canonicalization) link target on the first
// ':' and reports whether a prefix was found at all. Callers use this to
// test the prefix against HasNamespacePrefix / an interwiki table before
// canonicalizing the remainder.
func SplitPrefix(raw string) (prefix, rest string, found bool) {
	idx := strings.IndexByte(raw, ':')
	if idx < 0 {
		return "", raw, false
	}

	return raw[:idx], raw[idx+1:], true
}
