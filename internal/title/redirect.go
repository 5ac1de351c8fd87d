package title

import "strings"

// MaxRedirectHops bounds transitive redirect resolution (spec §4.1). Chains
// longer than this, or chains that cycle, collapse to "unresolved".
const MaxRedirectHops = 8

// redirectBodyPrefixes are the directive forms that mark a page body as a
// redirect. MediaWiki accepts "#REDIRECT" case-insensitively and a small set
// of localized spellings; this covers the common English-dump case plus the
// most frequently seen variant capitalizations.
var redirectBodyPrefixes = []string{
	"#REDIRECT",
	"#redirect",
	"#Redirect",
}

// IsRedirectDirective reports whether body begins with a redirect directive.
func IsRedirectDirective(body string) bool {
	trimmed := strings.TrimLeft(body, " \t\r\n")
	for _, p := range redirectBodyPrefixes {
		if strings.HasPrefix(trimmed, p) {
			return true
		}
	}

	return false
}

// Table maps a redirect source title to its (raw, not yet resolved) target
// title. It is built during the first dump pass and frozen before edge
// extraction begins; from then on it is read-only and requires no locking
// (spec §5).
type Table struct {
	targets map[string]string
}

// NewTable returns an empty redirect table with storage pre-sized for n
// expected redirects.
func NewTable(n int) *Table {
	return &Table{targets: make(map[string]string, n)}
}

// Add records that source redirects to target (both canonical titles).
func (t *Table) Add(source, target string) {
	t.targets[source] = target
}

// Len returns the number of recorded redirects.
func (t *Table) Len() int {
	return len(t.targets)
}

// Resolve follows the redirect chain starting at title up to MaxRedirectHops
// hops, stopping as soon as a title is not itself a redirect source. It
// returns the final title and true if resolution completed within the hop
// bound without cycling; otherwise it returns the chain's head title and
// false, indicating the caller should treat it as unresolved (spec §3/§4.1).
func (t *Table) Resolve(title string) (resolved string, ok bool) {
	seen := make(map[string]struct{}, MaxRedirectHops+1)
	current := title

	for hop := 0; hop < MaxRedirectHops; hop++ {
		next, isRedirect := t.targets[current]
		if !isRedirect {
			return current, true
		}

		if _, cyclic := seen[next]; cyclic {
			return title, false
		}

		seen[current] = struct{}{}
		current = next
	}

	// Exceeded the hop bound without settling on a non-redirect title.
	if _, isRedirect := t.targets[current]; isRedirect {
		return title, false
	}

	return current, true
}
