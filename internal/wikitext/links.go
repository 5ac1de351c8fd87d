package wikitext

import (
	"regexp"
	"strings"

	"github.com/tdransfield/wikipedia-analysis/internal/title"
)

// Compiled once at package scope, matching this codebase's convention for
// regex-driven extraction.
var (
	infoboxOpenRegex = regexp.MustCompile(`(?i)\{\{\s*Infobox`)
	mainArticleRegex = regexp.MustCompile(`(?i)\{\{\s*main article\s*\|([^{}|]+?)\}\}`)
	seeAlsoRegex     = regexp.MustCompile(`(?i)\{\{\s*see also\s*\|([^{}]+?)\}\}`)
)

// ExtractLinks returns the raw, pre-canonicalization link targets found in
// body: every [[wikilink]] target, plus the supplemental
// {{main article|X}} and {{see also|X|Y|...}} template links. Targets
// embedded inside <nowiki>, HTML comments, <pre>, <code>, <math>, and <ref>
// blocks are excluded, as is a leading infobox block if present. Duplicates
// are collapsed in first-encounter order; callers still need to canonicalize
// and resolve each target against the title/redirect tables.
func ExtractLinks(body string) []string {
	masked := skipInfobox(Suppress(body))

	seen := make(map[string]struct{})
	var out []string

	add := func(raw string) {
		target, ok := normalizeRawTarget(raw)
		if !ok {
			return
		}

		if _, dup := seen[target]; dup {
			return
		}

		seen[target] = struct{}{}
		out = append(out, target)
	}

	for _, raw := range scanWikilinks(masked) {
		add(raw)
	}

	for _, m := range mainArticleRegex.FindAllStringSubmatch(masked, -1) {
		add(stripAnchor(m[1]))
	}

	for _, m := range seeAlsoRegex.FindAllStringSubmatch(masked, -1) {
		for _, part := range strings.Split(m[1], "|") {
			add(stripAnchor(part))
		}
	}

	return out
}

// skipInfobox drops the leading {{Infobox ...}} template block, if present,
// by counting balanced {{ }} pairs from its opening marker to its match.
func skipInfobox(body string) string {
	loc := infoboxOpenRegex.FindStringIndex(body)
	if loc == nil {
		return body
	}

	depth := 0
	i := loc[0]
	for i < len(body)-1 {
		switch {
		case body[i] == '{' && body[i+1] == '{':
			depth++
			i += 2
		case body[i] == '}' && body[i+1] == '}':
			depth--
			i += 2

			if depth == 0 {
				return body[:loc[0]] + body[i:]
			}
		default:
			i++
		}
	}

	// Unterminated infobox: treat the rest of the body as part of it.
	return body[:loc[0]]
}

// scanWikilinks finds every [[...]] token whose contents contain no further
// '[' or ']', mirroring a non-nested wikilink grammar, and returns each raw
// inner string unmodified.
func scanWikilinks(body string) []string {
	var out []string

	for i := 0; i < len(body)-1; i++ {
		if body[i] != '[' || body[i+1] != '[' {
			continue
		}

		j := i + 2
		k := j
		for k < len(body) && body[k] != '[' && body[k] != ']' {
			k++
		}

		if k == j || k+1 >= len(body) || body[k] != ']' || body[k+1] != ']' {
			continue
		}

		out = append(out, body[j:k])
		i = k + 1
	}

	return out
}

// normalizeRawTarget applies the drop rules that precede canonicalization:
// take the text up to the first '|' or '#', drop empty or leading-colon
// (namespace-escape) targets, and drop targets whose prefix names a known
// namespace or interwiki prefix.
func normalizeRawTarget(raw string) (string, bool) {
	if idx := strings.IndexAny(raw, "|#"); idx >= 0 {
		raw = raw[:idx]
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}

	if raw[0] == ':' {
		return "", false
	}

	if prefix, _, found := title.SplitPrefix(raw); found && title.HasNamespacePrefix(prefix) {
		return "", false
	}

	return raw, true
}

func stripAnchor(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.IndexByte(s, '#'); idx >= 0 {
		s = s[:idx]
	}

	return strings.TrimSpace(s)
}
