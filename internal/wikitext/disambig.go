package wikitext

import "strings"

// disambigMarkers are the template-name spellings that mark a page as a
// disambiguation page. This covers most real-world usage without parsing
// templates; per https://simple.wikipedia.org/wiki/MediaWiki:Disambiguationspage.
var disambigMarkers = []string{
	"{{disamb",
	"{{Disamb",
	"{{dab}}",
}

// IsDisambiguationPage reports whether body marks its page as a
// disambiguation page. Disambiguation pages are excluded from the node set
// entirely: they contribute neither as a source nor as a target.
func IsDisambiguationPage(body string) bool {
	for _, marker := range disambigMarkers {
		if strings.Contains(body, marker) {
			return true
		}
	}

	return false
}
