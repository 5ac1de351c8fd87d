/*
	ignore loads a directory of caller-supplied title lists and answers
	whether a canonical title should be dropped from the emitted edge list.
*/
package ignore

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdransfield/wikipedia-analysis/internal/stageerr"
)

// Set is a read-only, load-once collection of canonical titles to exclude
// as both edge sources and targets. The zero value is an empty set that
// excludes nothing.
type Set struct {
	titles map[string]struct{}
}

// Load reads every regular file directly under dir, treating each nonblank,
// non-comment line as one canonical title to ignore. Comment lines start
// with '#'. An empty dir path yields an empty Set.
func Load(dir string) (*Set, error) {
	if dir == "" {
		return &Set{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: reading ignore directory: %s", stageerr.ErrInputIO, err)
	}

	set := &Set{titles: make(map[string]struct{})}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		if err := set.loadFile(filepath.Join(dir, entry.Name())); err != nil {
			return nil, err
		}
	}

	return set, nil
}

func (s *Set) loadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: reading ignore file %s: %s", stageerr.ErrInputIO, path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		s.titles[line] = struct{}{}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%w: reading ignore file %s: %s", stageerr.ErrInputIO, path, err)
	}

	return nil
}

// Contains reports whether title (already canonicalized) should be dropped.
func (s *Set) Contains(title string) bool {
	if s == nil || s.titles == nil {
		return false
	}

	_, ok := s.titles[title]

	return ok
}

// Len returns the number of distinct ignored titles.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}

	return len(s.titles)
}
